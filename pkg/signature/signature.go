// Package signature bundles parameter descriptors with result types and
// renders them as text, JSON, or YAML documents.
package signature

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-paraminfo/pkg/param"
)

// ErrUnnamed is returned when Describe receives a blank name.
var ErrUnnamed = errors.New("signature: name is required")

// Signature describes a callable by name, parameters, and results.
type Signature struct {
	Name     string
	Params   []param.Parameter
	Results  []reflect.Type
	Variadic bool
}

// Describe builds a Signature for the function value fn.
func Describe(name string, fn any, opts ...param.Option) (Signature, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Signature{}, ErrUnnamed
	}
	params, err := param.Of(fn, opts...)
	if err != nil {
		return Signature{}, fmt.Errorf("signature: describe %s: %w", name, err)
	}

	fnType := reflect.TypeOf(fn)
	results := make([]reflect.Type, fnType.NumOut())
	for i := range results {
		results[i] = fnType.Out(i)
	}
	return Signature{
		Name:     name,
		Params:   params,
		Results:  results,
		Variadic: fnType.IsVariadic(),
	}, nil
}

// ParamTypes returns the parameter types in declaration order.
func (s Signature) ParamTypes() []reflect.Type {
	return param.ToTypes(s.Params)
}

// String renders the signature in Go syntax, e.g. `Repeat(s string, count int) (string)`.
func (s Signature) String() string {
	var b strings.Builder
	b.WriteString(s.Name)
	b.WriteByte('(')
	for i, p := range s.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteByte(')')
	if len(s.Results) > 0 {
		b.WriteString(" (")
		for i, r := range s.Results {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(r.String())
		}
		b.WriteByte(')')
	}
	return b.String()
}

// Document is the serialisable form of a Signature. Types are rendered with
// reflect.Type.String.
type Document struct {
	Name     string          `json:"name" yaml:"name"`
	Params   []ParamDocument `json:"params" yaml:"params"`
	Results  []string        `json:"results,omitempty" yaml:"results,omitempty"`
	Variadic bool            `json:"variadic,omitempty" yaml:"variadic,omitempty"`
}

// ParamDocument is the serialisable form of a param.Parameter.
type ParamDocument struct {
	Position int    `json:"position" yaml:"position"`
	Name     string `json:"name" yaml:"name"`
	Type     string `json:"type" yaml:"type"`
	Kind     string `json:"kind" yaml:"kind"`
	Variadic bool   `json:"variadic,omitempty" yaml:"variadic,omitempty"`
}

// Document converts the signature into its serialisable form.
func (s Signature) Document() Document {
	doc := Document{
		Name:     s.Name,
		Params:   make([]ParamDocument, len(s.Params)),
		Variadic: s.Variadic,
	}
	for i, p := range s.Params {
		doc.Params[i] = ParamDocument{
			Position: p.Position,
			Name:     p.Name,
			Type:     typeName(p.Type),
			Kind:     kindName(p.Type),
			Variadic: p.Variadic,
		}
	}
	if len(s.Results) > 0 {
		doc.Results = make([]string, len(s.Results))
		for i, r := range s.Results {
			doc.Results[i] = typeName(r)
		}
	}
	return doc
}

// EncodeJSON writes the signature document as indented JSON.
func EncodeJSON(sig Signature) ([]byte, error) {
	out, err := json.MarshalIndent(sig.Document(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("signature: encode json: %w", err)
	}
	return append(out, '\n'), nil
}

// EncodeYAML writes the signature document as YAML.
func EncodeYAML(sig Signature) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(sig.Document()); err != nil {
		return nil, fmt.Errorf("signature: encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("signature: encode yaml: %w", err)
	}
	return buf.Bytes(), nil
}

func typeName(t reflect.Type) string {
	if t == nil {
		return ""
	}
	return t.String()
}

func kindName(t reflect.Type) string {
	if t == nil {
		return ""
	}
	return t.Kind().String()
}
