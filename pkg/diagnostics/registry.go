package diagnostics

import (
	"github.com/Punkwe1ght/modsync/pkg/errors"
	"github.com/Punkwe1ght/modsync/pkg/registry"
)

// Registry holds emitters by name in registration order.
type Registry struct {
	emitters registry.Registry[Emitter]
}

func NewRegistry() *Registry {
	return &Registry{emitters: registry.New[Emitter]()}
}

func (r *Registry) Register(e Emitter) error {
	return r.emitters.Register(e.Name(), e)
}

// Get returns the named emitter or an UNKNOWN_RULE error.
func (r *Registry) Get(name string) (Emitter, error) {
	e, err := r.emitters.Get(name)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrUnknownRule, "unknown rule %q", name).
			WithDetail("known", r.emitters.Ordered())
	}
	return e, nil
}

// Emitters returns all emitters in registration order.
func (r *Registry) Emitters() []Emitter {
	return r.emitters.Values()
}

// Names returns rule names in registration order.
func (r *Registry) Names() []string {
	return r.emitters.Ordered()
}

// Has reports whether a rule called name is registered.
func (r *Registry) Has(name string) bool {
	return r.emitters.Has(name)
}

// Len is the number of registered rules.
func (r *Registry) Len() int {
	return r.emitters.Count()
}

// Template finds the template with the given id and the rule that owns it.
func (r *Registry) Template(id ID) (Template, Emitter, bool) {
	for _, e := range r.Emitters() {
		for _, t := range e.Templates() {
			if t.ID == id {
				return t, e, true
			}
		}
	}
	return Template{}, nil, false
}
