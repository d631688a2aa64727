package param

import (
	"reflect"

	"github.com/goliatone/go-paraminfo/internal/scratch"
)

// Strategy selects how Project allocates its result. Every strategy returns
// the same contents.
type Strategy int

const (
	// StrategyFastPath special-cases zero and one parameter inputs.
	StrategyFastPath Strategy = iota
	// StrategyDirect allocates the exact result size and fills it.
	StrategyDirect
	// StrategyPooled fills a pooled scratch buffer and copies it out.
	StrategyPooled
)

func (s Strategy) String() string {
	switch s {
	case StrategyFastPath:
		return "fast-path"
	case StrategyDirect:
		return "direct"
	case StrategyPooled:
		return "pooled"
	default:
		return "unknown"
	}
}

// emptyTypes is shared by every zero-length projection. Its capacity is zero
// so a caller's append never writes into it.
var emptyTypes = []reflect.Type{}

// ToTypes returns the type of every parameter, in order. The result is never
// nil: an empty or nil input yields an empty slice.
func ToTypes(params []Parameter) []reflect.Type {
	switch len(params) {
	case 0:
		return emptyTypes
	case 1:
		return []reflect.Type{params[0].Type}
	}
	return direct(params)
}

// Project is ToTypes with an explicit allocation strategy. Unknown
// strategies use the fast path.
func Project(params []Parameter, strategy Strategy) []reflect.Type {
	switch strategy {
	case StrategyDirect:
		return direct(params)
	case StrategyPooled:
		return pooled(params)
	default:
		return ToTypes(params)
	}
}

func direct(params []Parameter) []reflect.Type {
	types := make([]reflect.Type, len(params))
	for i := range params {
		types[i] = params[i].Type
	}
	return types
}

func pooled(params []Parameter) []reflect.Type {
	buf := scratch.Rent(len(params))
	defer scratch.Release(buf)

	for i := range params {
		buf.Types[i] = params[i].Type
	}
	out := make([]reflect.Type, len(params))
	copy(out, buf.Types)
	return out
}
