package secret

import (
	"sort"
	"sync"

	"github.com/kbukum/secretkit/errors"
)

// Registry is the catalog of known provider kinds. It holds declarative
// metadata only; live instances belong to the Manager.
type Registry struct {
	mu          sync.RWMutex
	descriptors []Descriptor
	index       map[string]int // Kind -> position in descriptors
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Register inserts a descriptor, overwriting any previous registration
// of the same Kind in place so insertion order stays stable. Display
// name collisions are not checked here; they are resolved at
// instantiation time, first registrant wins.
func (r *Registry) Register(d Descriptor) error {
	if d.Kind == "" {
		return errors.InvalidInput("kind", "descriptor kind is required")
	}
	if d.Factory == nil {
		return errors.InvalidInput("factory", "descriptor factory is required")
	}
	if d.Name == "" {
		d.Name = deriveName(d.Kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if pos, ok := r.index[d.Kind]; ok {
		r.descriptors[pos] = d
		return nil
	}
	r.index[d.Kind] = len(r.descriptors)
	r.descriptors = append(r.descriptors, d)
	return nil
}

// ByPriority returns a copy of all descriptors sorted ascending by
// priority. Ties keep registration order.
func (r *Registry) ByPriority() []Descriptor {
	r.mu.RLock()
	out := make([]Descriptor, len(r.descriptors))
	copy(out, r.descriptors)
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority < out[j].Priority
	})
	return out
}

// SetEnabled flips the enabled flag on the first descriptor whose name
// matches. Returns false when no descriptor matches; this is a lookup
// failure, not an error.
func (r *Registry) SetEnabled(name string, enabled bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.descriptors {
		if r.descriptors[i].Name == name {
			r.descriptors[i].Enabled = enabled
			return true
		}
	}
	return false
}

// Len returns the number of registered descriptors.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.descriptors)
}
