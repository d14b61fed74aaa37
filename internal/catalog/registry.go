package catalog

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"cloudops-workers/internal/common/aws"
)

var ErrUnknownOperation = errors.New("unknown operation")

// Registry maps operation names to descriptors. It is never mutated after
// construction, so concurrent readers need no locking.
type Registry struct {
	byName map[string]*Descriptor
	names  []string
}

// NewRegistry panics on an empty or duplicate name.
func NewRegistry(descriptors ...Descriptor) *Registry {
	r := &Registry{byName: make(map[string]*Descriptor, len(descriptors))}
	for i := range descriptors {
		d := descriptors[i]
		if d.Name == "" {
			panic(fmt.Sprintf("catalog: descriptor %d has no name", i))
		}
		if _, exists := r.byName[d.Name]; exists {
			panic(fmt.Sprintf("catalog: duplicate operation %q", d.Name))
		}
		r.byName[d.Name] = &d
		r.names = append(r.names, d.Name)
	}
	sort.Strings(r.names)
	return r
}

func (r *Registry) Lookup(name string) (*Descriptor, error) {
	d, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, name)
	}
	return d, nil
}

// List returns every descriptor sorted by name.
func (r *Registry) List() []*Descriptor {
	out := make([]*Descriptor, 0, len(r.names))
	for _, n := range r.names {
		out = append(out, r.byName[n])
	}
	return out
}

func (r *Registry) ByService(service aws.Service) []*Descriptor {
	var out []*Descriptor
	for _, n := range r.names {
		if d := r.byName[n]; d.Service == service {
			out = append(out, d)
		}
	}
	return out
}

func (r *Registry) Len() int {
	return len(r.names)
}

// Filter returns a registry holding only the descriptors keep accepts.
func (r *Registry) Filter(keep func(*Descriptor) bool) *Registry {
	var kept []Descriptor
	for _, d := range r.List() {
		if keep(d) {
			kept = append(kept, *d)
		}
	}
	return NewRegistry(kept...)
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the built-in catalog, built on first use.
func Default() *Registry {
	defaultOnce.Do(func() {
		var all []Descriptor
		all = append(all, snsOperations()...)
		all = append(all, sesOperations()...)
		all = append(all, ssmOperations()...)
		all = append(all, rdsOperations()...)
		all = append(all, stsOperations()...)
		defaultRegistry = NewRegistry(all...)
	})
	return defaultRegistry
}
