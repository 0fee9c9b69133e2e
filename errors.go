package sessiongate

import "errors"

var (
	// ErrGatewayNotReady is returned when a Gateway method is called on a
	// nil or partially constructed gateway.
	ErrGatewayNotReady = errors.New("gateway not initialized")
	// ErrNotAuthenticated is returned by operations that need a signed-in
	// session when no access token is persisted.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrBuilderUsed is returned when Build is called twice on the same
	// Builder.
	ErrBuilderUsed = errors.New("builder already used")
	// ErrStoreRequired is returned by Build when neither a Redis client
	// nor a custom store was supplied.
	ErrStoreRequired = errors.New("session store required")
)
