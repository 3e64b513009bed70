package param

import (
	"fmt"
)

// Registry holds a plugin's parameters. Its size is fixed at creation
// from the count the plugin declares in its descriptor; the host indexes
// parameters by position inside that declared range.
type Registry struct {
	params []*Parameter
}

// NewRegistry creates a registry sized for the declared parameter count.
func NewRegistry(count int) *Registry {
	if count < 0 {
		count = 0
	}
	return &Registry{params: make([]*Parameter, count)}
}

// Add places parameters at their declared indices. It fails on an index
// outside the declared count or on a double registration.
func (r *Registry) Add(params ...*Parameter) error {
	for _, p := range params {
		if p.Index < 0 || p.Index >= len(r.params) {
			return fmt.Errorf("param: index %d outside declared count %d", p.Index, len(r.params))
		}
		if r.params[p.Index] != nil {
			return fmt.Errorf("param: index %d registered twice", p.Index)
		}
		r.params[p.Index] = p
	}
	return nil
}

// MustAdd is Add for static parameter sets; it panics on a bad index.
func (r *Registry) MustAdd(params ...*Parameter) {
	if err := r.Add(params...); err != nil {
		panic(err)
	}
}

// Get retrieves a parameter by index, nil when out of range or unset.
func (r *Registry) Get(index int) *Parameter {
	if index < 0 || index >= len(r.params) {
		return nil
	}
	return r.params[index]
}

// Count returns the declared parameter count.
func (r *Registry) Count() int {
	return len(r.params)
}

// All returns the parameters in index order; unset slots are nil.
func (r *Registry) All() []*Parameter {
	out := make([]*Parameter, len(r.params))
	copy(out, r.params)
	return out
}
