// Package param describes the formal parameters of Go functions and methods
// and projects them onto their reflect.Type values.
//
// Go reflection exposes parameter types through reflect.Type.In but carries no
// per-parameter record, so Parameter fills that role: position, an optional
// caller-supplied name, the type, and whether the slot is the variadic tail.
// ToTypes is the projection most callers need; Project exposes the alternative
// allocation strategies for benchmarking. All of them return a fresh,
// caller-owned slice whose length always matches the input.
package param
