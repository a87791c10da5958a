// Package dispatch provides forwarding dispatchers that delegate work to
// whichever conforming variant is currently bound. The typed Dispatcher
// checks conformance at compile time; the Board checks it at bind time
// against a capability registry. Neither layer retries, caches, or
// transforms anything a variant returns.
package dispatch

import (
	"reflect"
	"sync"
)

// Dispatcher forwards calls to the currently bound variant of capability
// interface C. Construction requires an initial variant, so a dispatcher is
// never observable in an unbound state. Rebind and the forwarding helpers
// may be used concurrently.
//
// The dispatcher does not own its variant: the same variant instance may be
// bound into any number of dispatchers.
type Dispatcher[C any] struct {
	mu      sync.RWMutex
	current C
}

// New creates a dispatcher bound to an initial variant. A nil variant is
// rejected; conformance to C is enforced by the compiler.
func New[C any](initial C) (*Dispatcher[C], error) {
	if isNil(initial) {
		return nil, ErrNilVariant
	}
	return &Dispatcher[C]{current: initial}, nil
}

// Rebind replaces the current binding. The swap is atomic: calls already
// forwarding keep the variant they observed, and every later call sees the
// new one. A nil variant is rejected and the binding is left unchanged.
func (d *Dispatcher[C]) Rebind(v C) error {
	if isNil(v) {
		return ErrNilVariant
	}
	d.mu.Lock()
	d.current = v
	d.mu.Unlock()
	return nil
}

// Current returns the variant the dispatcher is bound to right now.
func (d *Dispatcher[C]) Current() C {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.current
}

// Do runs fn against a stable snapshot of the binding and returns fn's error
// unchanged. The snapshot is taken under the read lock, so fn never observes
// a torn binding, and a concurrent Rebind never affects a call in flight.
func (d *Dispatcher[C]) Do(fn func(C) error) error {
	return fn(d.Current())
}

// isNil reports whether v is nil, including a typed nil stored in an
// interface value.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}
