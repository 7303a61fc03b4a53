// Package hook keeps the registry of discovered hook implementations:
// who they are, which event kinds they serve, and the metadata that
// ends up in generated configuration.
package hook

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"time"

	"github.com/hookforge/cli/cmd/hookforge/cli/event"
)

const (
	// DefaultMatcher applies a hook to every tool.
	DefaultMatcher = "*"
	// DefaultTimeout bounds a hook invocation unless overridden.
	DefaultTimeout = 10 * time.Second
)

var (
	// ErrInvalidKind marks a registration against a kind outside the
	// contract catalog.
	ErrInvalidKind = errors.New("invalid event kind")
	// ErrNotFound marks a lookup for a hook name nobody registered.
	ErrNotFound = errors.New("hook not found")
	// ErrNameTaken marks a registration whose name is already owned
	// by a different implementation. Names must stay globally unique
	// because the generated command encodes nothing but the name.
	ErrNameTaken = errors.New("hook name already registered by another implementation")
)

// Candidate is one implementation offered by a unit. Zero values mean
// defaults: matcher "*", timeout 10s, enabled.
type Candidate struct {
	Name        string
	Description string
	// Impl must satisfy at least one capability interface from the
	// event package.
	Impl     any
	Matcher  string
	Timeout  time.Duration
	Disabled bool
}

// Descriptor is the registry's record of one registered hook for one
// event kind.
type Descriptor struct {
	Name        string
	Kind        event.Kind
	Description string
	Matcher     string
	Timeout     time.Duration
	Enabled     bool
	// Unit names the extension unit the hook came from.
	Unit string

	impl any
}

// Impl returns the implementation value behind the descriptor.
func (d *Descriptor) Impl() any { return d.impl }

// KindHooks groups one kind's descriptors in insertion order.
type KindHooks struct {
	Kind  event.Kind
	Hooks []*Descriptor
}

// Registry buckets descriptors per event kind. It is an explicit
// value: built once per invocation by Discover and passed to whoever
// needs it, never stored globally.
type Registry struct {
	out     io.Writer
	buckets map[event.Kind][]*Descriptor
	byName  map[string]*Descriptor
}

// NewRegistry returns an empty registry. Registration confirmations
// go to out; pass io.Discard to keep registration quiet.
func NewRegistry(out io.Writer) *Registry {
	if out == nil {
		out = io.Discard
	}
	return &Registry{
		out:     out,
		buckets: make(map[event.Kind][]*Descriptor),
		byName:  make(map[string]*Descriptor),
	}
}

// Register adds c to the bucket for kind. Registering a name that
// already sits in the same bucket is a no-op, because discovery can
// reach the same implementation through more than one path. The same
// implementation may hold its name in several buckets; a different
// implementation reusing a taken name is ErrNameTaken.
func (r *Registry) Register(kind event.Kind, c Candidate, unit string) error {
	if _, err := event.Lookup(string(kind)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}
	if c.Name == "" {
		return fmt.Errorf("hook from unit %q has no name", unit)
	}
	if c.Impl == nil {
		return fmt.Errorf("hook %q has no implementation", c.Name)
	}

	if existing, ok := r.byName[c.Name]; ok {
		if existing.Kind == kind {
			return nil
		}
		for _, d := range r.buckets[kind] {
			if d.Name == c.Name {
				return nil
			}
		}
		// Same dynamic type means the same implementation picking up
		// an additional capability, which is fine.
		if reflect.TypeOf(existing.impl) != reflect.TypeOf(c.Impl) {
			return fmt.Errorf("%w: %q (kind %s, unit %s)", ErrNameTaken, c.Name, existing.Kind, existing.Unit)
		}
	}

	d := &Descriptor{
		Name:        c.Name,
		Kind:        kind,
		Description: c.Description,
		Matcher:     c.Matcher,
		Timeout:     c.Timeout,
		Enabled:     !c.Disabled,
		Unit:        unit,
		impl:        c.Impl,
	}
	if d.Matcher == "" {
		d.Matcher = DefaultMatcher
	}
	if d.Timeout <= 0 {
		d.Timeout = DefaultTimeout
	}

	r.buckets[kind] = append(r.buckets[kind], d)
	if _, ok := r.byName[d.Name]; !ok {
		r.byName[d.Name] = d
	}
	fmt.Fprintf(r.out, "✓ Registered: %s.%s\n", kind, d.Name)
	return nil
}

// Get returns the descriptor registered under exactly name.
func (r *Registry) Get(name string) (*Descriptor, error) {
	d, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return d, nil
}

// List returns the non-empty buckets in catalog order, descriptors in
// insertion order. That order is also the config generation order.
func (r *Registry) List() []KindHooks {
	var groups []KindHooks
	for _, kind := range event.Kinds() {
		if hooks := r.buckets[kind]; len(hooks) > 0 {
			groups = append(groups, KindHooks{Kind: kind, Hooks: hooks})
		}
	}
	return groups
}

// Len counts all registered descriptors across buckets.
func (r *Registry) Len() int {
	n := 0
	for _, hooks := range r.buckets {
		n += len(hooks)
	}
	return n
}
