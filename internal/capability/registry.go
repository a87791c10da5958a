package capability

import (
	"fmt"
	"reflect"
	"sort"
	"sync"
)

// VariantEntry records a named variant registered for a capability.
type VariantEntry struct {
	// Name identifies the variant (e.g. "driving", "email").
	Name string

	// Value is the variant instance. It always conforms to the contract it
	// was registered under; Register refuses anything else.
	Value any
}

// Registry stores capability contracts and the variants that conform to
// them. It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	contracts map[string]Contract
	variants  map[string][]VariantEntry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		contracts: make(map[string]Contract),
		variants:  make(map[string][]VariantEntry),
	}
}

// RegisterContract adds a contract to the registry. Registering the same
// name with the same interface type again is a no-op; the same name with a
// different interface type fails with ErrContractConflict.
func (r *Registry) RegisterContract(c Contract) error {
	if c.Name == "" {
		return fmt.Errorf("capability: contract name is required")
	}
	if c.InterfaceType == nil || c.InterfaceType.Kind() != reflect.Interface {
		return fmt.Errorf("capability: contract %q requires an interface type", c.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.contracts[c.Name]; ok {
		if existing.InterfaceType != c.InterfaceType {
			return fmt.Errorf("capability %q: %w (existing %v, new %v)",
				c.Name, ErrContractConflict, existing.InterfaceType, c.InterfaceType)
		}
		return nil
	}

	r.contracts[c.Name] = c
	return nil
}

// RegisterVariant records a named variant for a capability. It fails with
// ErrNotRegistered if the capability is unknown and with ErrContractMismatch
// if the variant does not implement the contract interface.
func (r *Registry) RegisterVariant(capability, name string, variant any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.contracts[capability]
	if !ok {
		return fmt.Errorf("capability %q: %w", capability, ErrNotRegistered)
	}
	if err := conforms(c, variant); err != nil {
		return err
	}

	r.variants[capability] = append(r.variants[capability], VariantEntry{
		Name:  name,
		Value: variant,
	})
	return nil
}

// Resolve returns the named variant registered for a capability.
func (r *Registry) Resolve(capability, name string) (VariantEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.contracts[capability]; !ok {
		return VariantEntry{}, fmt.Errorf("capability %q: %w", capability, ErrNotRegistered)
	}
	for _, v := range r.variants[capability] {
		if v.Name == name {
			return v, nil
		}
	}
	return VariantEntry{}, fmt.Errorf("capability %q has no variant %q", capability, name)
}

// Conforms reports whether a variant satisfies the named capability's
// contract. It fails with ErrNotRegistered for unknown capabilities and
// ErrContractMismatch for non-conforming variants.
func (r *Registry) Conforms(capability string, variant any) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.contracts[capability]
	if !ok {
		return fmt.Errorf("capability %q: %w", capability, ErrNotRegistered)
	}
	return conforms(c, variant)
}

// ContractFor returns the contract registered under a capability name.
func (r *Registry) ContractFor(capability string) (Contract, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.contracts[capability]
	return c, ok
}

// List returns all registered capability names, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.contracts))
	for name := range r.contracts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Variants returns a copy of the variant entries registered for a capability.
func (r *Registry) Variants(capability string) []VariantEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := r.variants[capability]
	if len(entries) == 0 {
		return nil
	}
	out := make([]VariantEntry, len(entries))
	copy(out, entries)
	return out
}

func conforms(c Contract, variant any) error {
	if variant == nil {
		return fmt.Errorf("capability %q: nil variant: %w", c.Name, ErrContractMismatch)
	}
	t := reflect.TypeOf(variant)
	if !t.Implements(c.InterfaceType) {
		return fmt.Errorf("capability %q: %T: %w", c.Name, variant, ErrContractMismatch)
	}
	return nil
}
