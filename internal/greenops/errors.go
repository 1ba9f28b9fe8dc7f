package greenops

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

var (
	// ErrInvalidUnit indicates an unrecognized carbon unit.
	ErrInvalidUnit = constError("invalid carbon unit")

	// ErrNegativeValue indicates a negative carbon value.
	ErrNegativeValue = constError("negative carbon value")

	// ErrCalculationOverflow indicates a non-finite input or result.
	ErrCalculationOverflow = constError("calculation overflow")

	// ErrUnsupportedLocale indicates a locale with no translations.
	ErrUnsupportedLocale = constError("unsupported locale")

	// ErrInvalidCurrency indicates a string that is not an ISO 4217 code.
	ErrInvalidCurrency = constError("invalid currency code")
)
