package dispatch

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/zjrosen/switchboard/internal/capability"
	"github.com/zjrosen/switchboard/internal/log"
)

var (
	ctxType = reflect.TypeOf((*context.Context)(nil)).Elem()
	errType = reflect.TypeOf((*error)(nil)).Elem()
)

// Board is a string-keyed dispatcher over a capability registry. It holds at
// most one binding per capability, validates every bind and rebind against
// the registered contract, and forwards string-keyed invocations to the
// bound variant by reflection.
//
// The Board exists for hosts that select capabilities and operations by
// name (configuration, CLIs). Code that knows the capability interface at
// compile time should use Dispatcher instead, where an undeclared operation
// cannot even be written down.
type Board struct {
	registry *capability.Registry

	mu       sync.RWMutex
	bindings map[string]any
}

// NewBoard creates a board backed by a contract registry.
func NewBoard(reg *capability.Registry) *Board {
	return &Board{
		registry: reg,
		bindings: make(map[string]any),
	}
}

// Bind establishes the initial binding for a capability. It fails with
// ErrContractMismatch if the variant does not conform, and with
// ErrAlreadyBound if a binding exists; neither failure touches any binding.
func (b *Board) Bind(capability string, variant any) error {
	if err := b.registry.Conforms(capability, variant); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.bindings[capability]; ok {
		return fmt.Errorf("capability %q: %w", capability, ErrAlreadyBound)
	}
	b.bindings[capability] = variant

	log.Debug(log.CatDispatch, "capability bound", "capability", capability, "variant", fmt.Sprintf("%T", variant))
	return nil
}

// Rebind replaces the binding for a capability. A non-conforming variant
// fails with ErrContractMismatch and the previous binding stays in effect.
// The swap is total: every invocation after Rebind returns sees the new
// variant.
func (b *Board) Rebind(capability string, variant any) error {
	if err := b.registry.Conforms(capability, variant); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.bindings[capability]; !ok {
		return fmt.Errorf("capability %q: %w", capability, ErrNotBound)
	}
	b.bindings[capability] = variant

	log.Debug(log.CatDispatch, "capability rebound", "capability", capability, "variant", fmt.Sprintf("%T", variant))
	return nil
}

// Current returns the variant bound for a capability, if any.
func (b *Board) Current(capability string) (any, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	v, ok := b.bindings[capability]
	return v, ok
}

// Bound returns the sorted names of capabilities that currently have a
// binding.
func (b *Board) Bound() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	names := make([]string, 0, len(b.bindings))
	for name := range b.bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Invoke forwards an operation to the variant currently bound for a
// capability and returns the variant's results and error unchanged. If the
// operation's first parameter is a context.Context, ctx is passed through.
//
// Naming an operation the contract does not declare fails with
// ErrUndeclaredOperation before any variant is touched.
func (b *Board) Invoke(ctx context.Context, capName, operation string, args ...any) ([]any, error) {
	contract, ok := b.registry.ContractFor(capName)
	if !ok {
		return nil, fmt.Errorf("capability %q: %w", capName, capability.ErrNotRegistered)
	}
	if _, ok := contract.Operation(operation); !ok {
		return nil, fmt.Errorf("capability %q operation %q: %w", capName, operation, ErrUndeclaredOperation)
	}

	variant, ok := b.Current(capName)
	if !ok {
		return nil, fmt.Errorf("capability %q: %w", capName, ErrNotBound)
	}

	// The bind-time conformance check guarantees the method exists.
	method := reflect.ValueOf(variant).MethodByName(operation)
	in, err := buildArgs(ctx, method.Type(), args)
	if err != nil {
		return nil, fmt.Errorf("capability %q operation %q: %w", capName, operation, err)
	}

	out := method.Call(in)
	return splitResults(out)
}

// buildArgs converts caller arguments into reflect values matching the
// method signature, injecting ctx when the method accepts one.
func buildArgs(ctx context.Context, mt reflect.Type, args []any) ([]reflect.Value, error) {
	in := make([]reflect.Value, 0, mt.NumIn())

	next := 0
	if mt.NumIn() > 0 && mt.In(0) == ctxType {
		in = append(in, reflect.ValueOf(ctx))
		next = 1
	}

	if got, want := len(args), mt.NumIn()-next; got != want {
		return nil, fmt.Errorf("expects %d argument(s), got %d", want, got)
	}

	for i, arg := range args {
		param := mt.In(next + i)
		if arg == nil {
			in = append(in, reflect.Zero(param))
			continue
		}
		av := reflect.ValueOf(arg)
		if !av.Type().AssignableTo(param) {
			return nil, fmt.Errorf("argument %d: %T is not assignable to %s", i, arg, param)
		}
		in = append(in, av)
	}

	return in, nil
}

// splitResults separates a trailing error return, if the method has one,
// from the other results. The error is whatever the variant returned; the
// board never wraps or masks it.
func splitResults(out []reflect.Value) ([]any, error) {
	var err error
	if n := len(out); n > 0 && out[n-1].Type().Implements(errType) {
		if e, ok := out[n-1].Interface().(error); ok && e != nil {
			err = e
		}
		out = out[:n-1]
	}

	results := make([]any, len(out))
	for i, v := range out {
		results[i] = v.Interface()
	}
	return results, err
}
