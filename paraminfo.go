package paraminfo

import (
	"reflect"

	"github.com/goliatone/go-paraminfo/pkg/param"
	"github.com/goliatone/go-paraminfo/pkg/signature"
)

// Parameter aliases param.Parameter so callers can stay on the root package.
type Parameter = param.Parameter

// Signature aliases signature.Signature.
type Signature = signature.Signature

// Option aliases param.Option.
type Option = param.Option

// ToParameterTypes converts parameter descriptors into their types, in
// order. The result is a fresh slice with the same length as params and is
// never nil.
func ToParameterTypes(params []Parameter) []reflect.Type {
	return param.ToTypes(params)
}

// ParameterTypesOf describes fn and returns its parameter types.
func ParameterTypesOf(fn any) ([]reflect.Type, error) {
	params, err := param.Of(fn)
	if err != nil {
		return nil, err
	}
	return param.ToTypes(params), nil
}

// Parameters returns the descriptors for fn.
func Parameters(fn any, options ...Option) ([]Parameter, error) {
	return param.Of(fn, options...)
}

// Describe builds a named Signature for fn.
func Describe(name string, fn any, options ...Option) (Signature, error) {
	return signature.Describe(name, fn, options...)
}

// WithNames assigns parameter names by position.
func WithNames(names ...string) Option {
	return param.WithNames(names...)
}
