package store

import (
	"context"
	"fmt"

	"github.com/medvision-ai/medvision-client/internal/config"
	"github.com/medvision-ai/medvision-client/internal/logger"
)

// ClientStorages groups all client-side repositories into a single value
// that can be passed around the service layer.
type ClientStorages struct {
	// Users is the local credential store.
	Users UserRepository

	// Sessions persists the current session user and token.
	Sessions SessionRepository

	// Scans is the ordered scan history collection.
	Scans ScanRepository
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path in cfg.DB.DSN, creating
//     the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires the repositories over a shared [KVStorage].
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewClientStoragesWithKV(NewSQLiteStorage(db, logger), logger), nil
}

// NewClientStoragesWithKV wires the repositories over an explicit
// [KVStorage] backend. Tests use it with [NewMemoryStorage].
func NewClientStoragesWithKV(kv KVStorage, logger *logger.Logger) *ClientStorages {
	return &ClientStorages{
		Users:    NewUserRepository(kv, logger),
		Sessions: NewSessionRepository(kv, logger),
		Scans:    NewScanRepository(kv, logger),
	}
}
