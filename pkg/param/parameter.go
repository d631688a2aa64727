package param

import (
	"fmt"
	"reflect"
	"strings"
)

// Parameter describes one formal parameter of a function or method.
type Parameter struct {
	Position int
	Name     string
	Type     reflect.Type
	// Variadic marks the trailing ...T slot. Type is then []T, matching
	// reflect.Type.In.
	Variadic bool
}

// String renders the parameter as it would appear in a Go signature.
func (p Parameter) String() string {
	typeName := "<nil>"
	if p.Type != nil {
		typeName = p.Type.String()
		if p.Variadic && p.Type.Kind() == reflect.Slice {
			typeName = "..." + p.Type.Elem().String()
		}
	}
	if p.Name == "" {
		return typeName
	}
	return p.Name + " " + typeName
}

// Of returns descriptors for the parameters of the function value fn.
func Of(fn any, opts ...Option) ([]Parameter, error) {
	if fn == nil {
		return nil, ErrNilType
	}
	return FromFunc(reflect.TypeOf(fn), opts...)
}

// FromFunc returns descriptors for the parameters of the func type t.
func FromFunc(t reflect.Type, opts ...Option) ([]Parameter, error) {
	if t == nil {
		return nil, ErrNilType
	}
	if t.Kind() != reflect.Func {
		return nil, fmt.Errorf("%w: %s", ErrNotFunc, t)
	}
	return build(t, 0, newConfig(opts))
}

// FromMethod returns descriptors for the method called name on t. For
// concrete types the receiver is dropped unless WithReceiver(true) is set;
// methods declared on the pointer receiver are found when t is the element
// type.
func FromMethod(t reflect.Type, name string, opts ...Option) ([]Parameter, error) {
	if t == nil {
		return nil, ErrNilType
	}
	name = strings.TrimSpace(name)
	method, ok := t.MethodByName(name)
	if !ok && t.Kind() != reflect.Interface && t.Kind() != reflect.Pointer {
		method, ok = reflect.PointerTo(t).MethodByName(name)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrMethodNotFound, t, name)
	}

	cfg := newConfig(opts)
	skip := 0
	if t.Kind() != reflect.Interface && !cfg.receiver {
		skip = 1
	}
	return build(method.Type, skip, cfg)
}

func build(fn reflect.Type, skip int, cfg config) ([]Parameter, error) {
	count := fn.NumIn() - skip
	if len(cfg.names) > count {
		return nil, fmt.Errorf("%w: %d names for %d parameters", ErrNameCount, len(cfg.names), count)
	}

	params := make([]Parameter, count)
	seen := make(map[string]struct{}, count)
	for i := range params {
		name := nameAt(cfg.names, i)
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
		seen[name] = struct{}{}
		params[i] = Parameter{
			Position: i,
			Name:     name,
			Type:     fn.In(i + skip),
			Variadic: fn.IsVariadic() && i+skip == fn.NumIn()-1,
		}
	}
	return params, nil
}

func nameAt(names []string, i int) string {
	if i < len(names) {
		if name := strings.TrimSpace(names[i]); name != "" {
			return name
		}
	}
	return fmt.Sprintf("arg%d", i)
}
