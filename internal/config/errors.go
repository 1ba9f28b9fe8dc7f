package config

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

var (
	// ErrInvalidConfig indicates a config file or value that fails validation.
	ErrInvalidConfig = constError("invalid configuration")

	// ErrUnsupportedSchema indicates a schema_version this build cannot read.
	ErrUnsupportedSchema = constError("unsupported config schema version")

	// ErrUnknownKey indicates a dotted key that names no config field.
	ErrUnknownKey = constError("unknown configuration key")
)
