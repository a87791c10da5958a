package dispatch

import "errors"

// Dispatcher errors.
var (
	// ErrNilVariant is returned when a dispatcher would be left without a
	// binding. A dispatcher is bound from construction until destruction;
	// there is no unbound state.
	ErrNilVariant = errors.New("variant must not be nil")

	// ErrNotBound is returned by Board operations that require an existing
	// binding for the capability.
	ErrNotBound = errors.New("capability has no binding")

	// ErrAlreadyBound is returned by Board.Bind when the capability already
	// has a binding; use Rebind to replace it.
	ErrAlreadyBound = errors.New("capability is already bound")

	// ErrUndeclaredOperation is returned when Invoke names an operation the
	// capability contract does not declare. This is API misuse: the typed
	// dispatcher path cannot express it at all.
	ErrUndeclaredOperation = errors.New("operation is not declared by the capability contract")
)
