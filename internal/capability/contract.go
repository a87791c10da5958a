// Package capability defines minimal capability contracts and a registry
// that checks variant conformance when a binding is made, never at call time.
package capability

import "reflect"

// Contract describes a capability category that variants can provide.
// A contract names the Go interface that conforming variants must implement
// and records the method signatures for listing and validation.
type Contract struct {
	// Name is the capability identifier (e.g. "route-calculation", "printing").
	Name string

	// Description is a human-readable explanation of what the capability does.
	Description string

	// InterfaceType is the reflect.Type of the interface variants must satisfy.
	InterfaceType reflect.Type

	// Methods lists the operations the contract requires.
	Methods []MethodSignature
}

// MethodSignature describes a single operation on a capability interface.
type MethodSignature struct {
	// Name is the method name.
	Name string

	// Params lists the parameter type names (excluding the receiver).
	Params []string

	// Returns lists the return type names.
	Returns []string
}

// Define builds a Contract for the interface type C, deriving the method
// signatures from the interface itself so the two can never drift apart.
func Define[C any](name, description string) Contract {
	ifaceType := reflect.TypeOf((*C)(nil)).Elem()

	methods := make([]MethodSignature, 0, ifaceType.NumMethod())
	for i := 0; i < ifaceType.NumMethod(); i++ {
		m := ifaceType.Method(i)

		params := make([]string, 0, m.Type.NumIn())
		for p := 0; p < m.Type.NumIn(); p++ {
			params = append(params, m.Type.In(p).String())
		}

		returns := make([]string, 0, m.Type.NumOut())
		for r := 0; r < m.Type.NumOut(); r++ {
			returns = append(returns, m.Type.Out(r).String())
		}

		methods = append(methods, MethodSignature{
			Name:    m.Name,
			Params:  params,
			Returns: returns,
		})
	}

	return Contract{
		Name:          name,
		Description:   description,
		InterfaceType: ifaceType,
		Methods:       methods,
	}
}

// Operation returns the signature of the named operation and true if the
// contract declares it.
func (c Contract) Operation(name string) (MethodSignature, bool) {
	for _, m := range c.Methods {
		if m.Name == name {
			return m, true
		}
	}
	return MethodSignature{}, false
}
