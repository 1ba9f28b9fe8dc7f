package routes

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

var (
	// ErrRouteNotFound indicates no route matches a pair in either orientation.
	// It is a normal outcome; callers usually fall back to manual distance entry.
	ErrRouteNotFound = constError("route not found")

	// ErrInvalidRoute indicates a route that cannot be part of an index:
	// blank endpoints, a self-route, a non-positive distance, or a pair
	// registered twice with different distances.
	ErrInvalidRoute = constError("invalid route")
)
