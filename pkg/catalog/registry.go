// Package catalog keeps a named set of function values whose signatures can
// be described on demand. The CLI resolves its targets through a Registry.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-paraminfo/pkg/param"
	"github.com/goliatone/go-paraminfo/pkg/signature"
)

var (
	// ErrDuplicate is returned when a name is registered twice.
	ErrDuplicate = errors.New("catalog: duplicate function name")
	// ErrUnknown is returned for names that were never registered.
	ErrUnknown = errors.New("catalog: unknown function")
)

type entry struct {
	fn    any
	names []string
}

// Registry maps names to function values. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]entry)}
}

// Register adds fn under name. Optional names label its parameters by
// position.
func (r *Registry) Register(name string, fn any, names ...string) error {
	name = strings.TrimSpace(name)
	if _, err := signature.Describe(name, fn, param.WithNames(names...)); err != nil {
		return fmt.Errorf("catalog: register %q: %w", name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicate, name)
	}
	r.entries[name] = entry{fn: fn, names: append([]string(nil), names...)}
	return nil
}

// Rename replaces the parameter names of a registered function.
func (r *Registry) Rename(name string, names ...string) error {
	name = strings.TrimSpace(name)

	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.entries[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknown, name)
	}
	if _, err := param.Of(current.fn, param.WithNames(names...)); err != nil {
		return fmt.Errorf("catalog: rename %q: %w", name, err)
	}
	current.names = append([]string(nil), names...)
	r.entries[name] = current
	return nil
}

// Describe returns the signature registered under name.
func (r *Registry) Describe(name string) (signature.Signature, error) {
	name = strings.TrimSpace(name)

	r.mu.RLock()
	current, ok := r.entries[name]
	r.mu.RUnlock()
	if !ok {
		return signature.Signature{}, fmt.Errorf("%w: %s", ErrUnknown, name)
	}
	return signature.Describe(name, current.fn, param.WithNames(current.names...))
}

// Lookup is Describe without the error detail.
func (r *Registry) Lookup(name string) (signature.Signature, bool) {
	sig, err := r.Describe(name)
	if err != nil {
		return signature.Signature{}, false
	}
	return sig, true
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}
