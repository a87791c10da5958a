package capability

import "errors"

// Registry errors.
var (
	// ErrContractMismatch is returned when a variant does not implement the
	// interface a contract requires. The attempted binding is never applied.
	ErrContractMismatch = errors.New("variant does not conform to capability contract")

	// ErrNotRegistered is returned when a capability name has no contract.
	ErrNotRegistered = errors.New("capability is not registered")

	// ErrContractConflict is returned when a contract name is re-registered
	// with a different interface type.
	ErrContractConflict = errors.New("capability already registered with a different interface type")
)
