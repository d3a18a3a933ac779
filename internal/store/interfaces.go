package store

import (
	"context"

	"github.com/medvision-ai/medvision-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KVStorage is the persisted key-value backend underneath all repositories.
// It is the Go analogue of the browser's localStorage: every value is an
// opaque JSON blob stored under a fixed key, and every mutation rewrites the
// whole value. Implementations: SQLite file (production) and in-memory
// (tests).
type KVStorage interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the value stored under key. Deleting an absent key is
	// a no-op.
	Delete(ctx context.Context, key string) error
}

// UserRepository is the local credential store. Records include the
// plaintext fallback password and must never leave the store/service
// boundary unstripped.
type UserRepository interface {
	// Initialize seeds the users collection with the fixed admin account
	// on first run. Idempotent: an existing collection is never
	// overwritten.
	Initialize(ctx context.Context) error

	// FindByCredentials matches email case-insensitively and the password
	// exactly. Returns ErrUserNotFound when no record matches.
	FindByCredentials(ctx context.Context, email, password string) (models.StoredUser, error)

	// ExistsByEmail reports whether a record with the given email exists,
	// compared case-insensitively.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// GetAll returns every stored record in collection order.
	GetAll(ctx context.Context) ([]models.StoredUser, error)

	// Create appends a record and rewrites the collection.
	Create(ctx context.Context, user models.StoredUser) error

	// SetBlocked updates the blocked flag of the record with the given id.
	// Returns ErrAdminImmutable for admin targets and ErrUserNotFound when
	// the id matches nothing.
	SetBlocked(ctx context.Context, id string, blocked bool) error

	// Delete removes the record with the given id. Returns
	// ErrAdminImmutable for admin targets; deleting an absent id is a
	// no-op.
	Delete(ctx context.Context, id string) error
}

// SessionRepository persists the at-most-one current session: the
// password-free user object and the opaque remote token.
type SessionRepository interface {
	// CurrentUser returns the persisted session user, or
	// ErrSessionNotFound.
	CurrentUser(ctx context.Context) (models.User, error)

	// SaveCurrentUser persists user as the current session user.
	SaveCurrentUser(ctx context.Context, user models.User) error

	// ClearCurrentUser removes the persisted session user. Idempotent.
	ClearCurrentUser(ctx context.Context) error

	// Token returns the persisted session token, or an empty string when
	// none is stored.
	Token(ctx context.Context) (string, error)

	// SaveToken persists the opaque session token.
	SaveToken(ctx context.Context, token string) error

	// ClearToken removes the persisted session token. Idempotent.
	ClearToken(ctx context.Context) error
}

// ScanRepository is the ordered scan collection, most-recent-first.
type ScanRepository interface {
	// Bootstrap seeds the collection from seed when none exists yet.
	// An existing collection (even an empty one) is left untouched.
	Bootstrap(ctx context.Context, seed SeedSource) error

	// Append prepends scan and rewrites the collection.
	Append(ctx context.Context, scan models.Scan) error

	// Delete removes the scan with the given id. Deleting an absent id is
	// a no-op.
	Delete(ctx context.Context, id string) error

	// FindByUser returns the scans owned by userID, preserving collection
	// order.
	FindByUser(ctx context.Context, userID string) ([]models.Scan, error)

	// GetAll returns the whole collection in order.
	GetAll(ctx context.Context) ([]models.Scan, error)
}

// SeedSource produces the synthetic demo scans used to populate an empty
// store on first run. Production builds can disable seeding entirely
// without touching the repository contract.
type SeedSource interface {
	SampleScans() []models.Scan
}
