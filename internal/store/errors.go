package store

import "errors"

// Sentinel errors returned by the storage layer. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrKeyNotFound is returned by KVStorage.Get when no value is stored
	// under the requested key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrUserNotFound is returned when a credential lookup or a targeted
	// user mutation matches no stored record.
	ErrUserNotFound = errors.New("no user was found")

	// ErrAdminImmutable is returned when a block or delete operation
	// targets a record with the admin role. Admin accounts can be neither
	// blocked nor deleted.
	ErrAdminImmutable = errors.New("admin accounts are immutable")

	// ErrSessionNotFound is returned when no persisted session user exists.
	ErrSessionNotFound = errors.New("no session was found")
)
