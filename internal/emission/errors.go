package emission

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors for the emission model. Compare with errors.Is().
var (
	// ErrUnknownMode indicates a transport mode outside the configured set.
	// It signals a caller or configuration bug and is never defaulted to zero.
	ErrUnknownMode = constError("unknown transport mode")

	// ErrInvalidModel indicates a model that violates its invariants
	// (negative factor, duplicate mode, empty set, bad price band).
	ErrInvalidModel = constError("invalid emission model")
)
