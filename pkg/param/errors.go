package param

import "errors"

var (
	// ErrNilType is returned when a nil function value or type is supplied.
	ErrNilType = errors.New("param: nil type")
	// ErrNotFunc is returned when the supplied type is not a function.
	ErrNotFunc = errors.New("param: type is not a function")
	// ErrMethodNotFound is returned when a method lookup fails.
	ErrMethodNotFound = errors.New("param: method not found")
	// ErrNameCount is returned when more names are supplied than parameters.
	ErrNameCount = errors.New("param: more names than parameters")
	// ErrDuplicateName is returned when two parameters resolve to the same name.
	ErrDuplicateName = errors.New("param: duplicate parameter name")
)
