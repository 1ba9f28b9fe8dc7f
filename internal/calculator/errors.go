package calculator

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

var (
	// ErrInvalidDistance indicates a zero, negative or non-finite distance.
	// Callers validate distance before asking for an emission.
	ErrInvalidDistance = constError("distance must be greater than 0 km")

	// ErrInvalidRequest indicates a trip request that failed field validation.
	ErrInvalidRequest = constError("invalid trip request")
)
