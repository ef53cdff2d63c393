package mapper

import (
	"sort"
	"sync/atomic"
)

// Registry holds named handlers for schema files. Lookups are lock-free; each
// Register swaps in a fresh copy of the table (copy-on-write).
type Registry struct {
	handlers atomic.Value // holds map[string]Handler
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	r := &Registry{}
	r.handlers.Store(map[string]Handler{})
	return r
}

// Register adds or replaces the handler stored under name.
func (r *Registry) Register(name string, h Handler) {
	old := r.handlers.Load().(map[string]Handler)
	next := make(map[string]Handler, len(old)+1)
	for k, v := range old {
		next[k] = v
	}
	next[name] = h
	r.handlers.Store(next)
}

// Lookup returns the handler stored under name.
func (r *Registry) Lookup(name string) (Handler, bool) {
	h, ok := r.handlers.Load().(map[string]Handler)[name]
	return h, ok
}

// Names lists registered handler names in sorted order.
func (r *Registry) Names() []string {
	m := r.handlers.Load().(map[string]Handler)
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
