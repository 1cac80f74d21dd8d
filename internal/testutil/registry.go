package testutil

import (
	"github.com/specialistvlad/pluginregistrant/registry"
)

// Operation names recorded by Registry.
const (
	OpHasPlugin    = "HasPlugin"
	OpRegistrarFor = "RegistrarFor"
	OpPublish      = "Publish"
)

// Call is a single recorded interaction with a Registry or one of its registrars.
type Call struct {
	Op  string
	Key string
}

// Registry is a recording registry.Registry double. Faults can be injected per
// operation and key, and OnPublish lets a test run code from inside a
// plugin's registration.
//
// It is not safe for concurrent use, matching the contract hosts provide.
type Registry struct {
	// HasPluginErr, RegistrarForErr and PublishErr map a key to the fault
	// returned by the corresponding operation for that key.
	HasPluginErr    map[string]error
	RegistrarForErr map[string]error
	PublishErr      map[string]error

	// OnPublish runs before a registrar records a published value.
	OnPublish func(key string, value any)

	calls      []Call
	registrars map[string]*Registrar
}

// NewRegistry returns a Registry with the given keys already claimed.
func NewRegistry(claimed ...string) *Registry {
	r := &Registry{
		HasPluginErr:    make(map[string]error),
		RegistrarForErr: make(map[string]error),
		PublishErr:      make(map[string]error),
		registrars:      make(map[string]*Registrar),
	}
	for _, key := range claimed {
		r.registrars[key] = &Registrar{key: key, reg: r}
	}
	return r
}

// HasPlugin implements registry.Registry.
func (r *Registry) HasPlugin(key string) (bool, error) {
	r.calls = append(r.calls, Call{Op: OpHasPlugin, Key: key})
	if err := r.HasPluginErr[key]; err != nil {
		return false, err
	}
	_, ok := r.registrars[key]
	return ok, nil
}

// RegistrarFor implements registry.Registry. Repeated requests for the same
// key return the same registrar.
func (r *Registry) RegistrarFor(key string) (registry.Registrar, error) {
	r.calls = append(r.calls, Call{Op: OpRegistrarFor, Key: key})
	if err := r.RegistrarForErr[key]; err != nil {
		return nil, err
	}
	reg, ok := r.registrars[key]
	if !ok {
		reg = &Registrar{key: key, reg: r}
		r.registrars[key] = reg
	}
	return reg, nil
}

// Calls returns every recorded interaction in order.
func (r *Registry) Calls() []Call {
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// Count returns how many times op was recorded for key.
func (r *Registry) Count(op, key string) int {
	n := 0
	for _, c := range r.calls {
		if c.Op == op && c.Key == key {
			n++
		}
	}
	return n
}

// Index returns the position of the first call matching op and key, or -1.
func (r *Registry) Index(op, key string) int {
	for i, c := range r.calls {
		if c.Op == op && c.Key == key {
			return i
		}
	}
	return -1
}

// Published returns the values published under key.
func (r *Registry) Published(key string) []any {
	reg, ok := r.registrars[key]
	if !ok {
		return nil
	}
	out := make([]any, len(reg.published))
	copy(out, reg.published)
	return out
}

// Registrar is the registry.Registrar issued by Registry.
type Registrar struct {
	key       string
	reg       *Registry
	published []any
}

// Key implements registry.Registrar.
func (g *Registrar) Key() string {
	return g.key
}

// Publish implements registry.Registrar.
func (g *Registrar) Publish(value any) error {
	g.reg.calls = append(g.reg.calls, Call{Op: OpPublish, Key: g.key})
	if g.reg.OnPublish != nil {
		g.reg.OnPublish(g.key, value)
	}
	if err := g.reg.PublishErr[g.key]; err != nil {
		return err
	}
	g.published = append(g.published, value)
	return nil
}

var (
	_ registry.Registry  = (*Registry)(nil)
	_ registry.Registrar = (*Registrar)(nil)
)
