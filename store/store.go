package store

import (
	"context"
	"errors"
)

// Slot names of the persisted identity state. The user slot holds a
// JSON-serialized account record; the token slots hold opaque bearer
// credentials.
const (
	KeyAccessToken  = "accessToken"
	KeyRefreshToken = "refreshToken"
	KeyUser         = "user"
)

// ErrUnavailable is returned when the persistence backend cannot be
// reached. Absence of a key is reported through the ok return, not an
// error.
var ErrUnavailable = errors.New("session store unavailable")

// Store is the key/value persistence surviving restarts. Delete must
// remove all given keys in a single operation so a session teardown can
// never leave a partial token pair behind.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}
