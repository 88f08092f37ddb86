package grid

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/grindlemire/go-grid/internal/logging"
)

// Host is anything that can carry attached property values.
// Properties may return nil, in which case reads return defaults and
// writes are dropped. Hosts that embed Attached must be non-nil pointers;
// *Grid handles nil itself.
type Host interface {
	Properties() *PropertyStore
}

// Attached is an embeddable Host implementation.
type Attached struct {
	store PropertyStore
}

// Properties returns the host's attached property values.
func (a *Attached) Properties() *PropertyStore {
	if a == nil {
		return nil
	}
	return &a.store
}

// PropertyStore holds one host's attached values, keyed by property.
type PropertyStore struct {
	values map[uint64]any
}

// Len returns the number of properties explicitly set on the host.
func (s *PropertyStore) Len() int {
	return len(s.values)
}

func (s *PropertyStore) lookup(id uint64) (any, bool) {
	v, ok := s.values[id]
	return v, ok
}

func (s *PropertyStore) store(id uint64, v any) {
	if s.values == nil {
		s.values = make(map[uint64]any)
	}
	s.values[id] = v
}

func (s *PropertyStore) remove(id uint64) {
	delete(s.values, id)
}

// globalPropertyID gives each property a unique key into host stores.
var globalPropertyID atomic.Uint64

// Property is an attachable value of type T that can be set on any Host.
// Writing a property stores the value on the host, then synchronously runs
// the property's change handler followed by its bindings.
type Property[T any] struct {
	id       uint64
	name     string
	def      T
	changed  func(Host, T)
	bindings []*binding[T]
}

// binding represents a registered callback that fires when a property is set.
type binding[T any] struct {
	fn     func(Host, T)
	active bool
}

// Unbind is a handle to remove a binding. Call it to prevent
// future callback invocations for the associated binding.
type Unbind func()

// NewProperty creates a property with the given name and default value.
// The default is returned by Get for hosts that never set the property.
func NewProperty[T any](name string, def T) *Property[T] {
	return &Property[T]{
		id:   globalPropertyID.Add(1),
		name: name,
		def:  def,
	}
}

// Name returns the property name.
func (p *Property[T]) Name() string {
	return p.name
}

// Default returns the value reported for hosts without an explicit value.
func (p *Property[T]) Default() T {
	return p.def
}

// OnChanged installs the handler invoked on every Set, before bindings.
// Installing a handler replaces the previous one.
func (p *Property[T]) OnChanged(fn func(Host, T)) {
	p.changed = fn
}

// Get returns the host's value, or the default if it was never set.
func (p *Property[T]) Get(h Host) T {
	store := storeOf(h)
	if store == nil {
		return p.def
	}
	if v, ok := store.lookup(p.id); ok {
		return v.(T)
	}
	return p.def
}

// IsSet reports whether the host carries an explicit value.
func (p *Property[T]) IsSet(h Host) bool {
	store := storeOf(h)
	if store == nil {
		return false
	}
	_, ok := store.lookup(p.id)
	return ok
}

// Set stores v on the host and notifies the change handler and bindings.
// Notification happens even if v equals the current value.
func (p *Property[T]) Set(h Host, v T) {
	store := storeOf(h)
	if store == nil {
		return
	}
	logging.Debug("attached property set",
		zap.String("property", p.name),
		zap.String("host", fmt.Sprintf("%T", h)),
		zap.Any("value", v),
	)
	store.store(p.id, v)

	if p.changed != nil {
		p.changed(h, v)
	}

	// Drop inactive bindings so unbound callbacks don't accumulate
	active := p.bindings[:0]
	for _, b := range p.bindings {
		if b.active {
			active = append(active, b)
		}
	}
	p.bindings = active

	for _, b := range append([]*binding[T](nil), active...) {
		if b.active {
			b.fn(h, v)
		}
	}
}

// Clear removes the host's explicit value without notifying anyone.
func (p *Property[T]) Clear(h Host) {
	if store := storeOf(h); store != nil {
		store.remove(p.id)
	}
}

// Bind registers a function to be called after every Set of this property,
// on any host. Bindings run in registration order.
func (p *Property[T]) Bind(fn func(Host, T)) Unbind {
	b := &binding[T]{fn: fn, active: true}
	p.bindings = append(p.bindings, b)
	return func() {
		b.active = false
	}
}

func storeOf(h Host) *PropertyStore {
	if h == nil {
		return nil
	}
	return h.Properties()
}
