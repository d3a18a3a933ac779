package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/medvision-ai/medvision-client/internal/logger"
)

// sqliteStorage is the SQLite-backed implementation of [KVStorage]. Each
// collection lives as one JSON blob in the "kv" table, so a Set is always a
// full rewrite of the value, matching the localStorage semantics the data
// layout was designed around.
type sqliteStorage struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLiteStorage constructs a [KVStorage] backed by the given database
// connection.
func NewSQLiteStorage(db *DB, logger *logger.Logger) KVStorage {
	logger.Debug().Msg("creating sqlite kv storage")
	return &sqliteStorage{db: db, logger: logger}
}

func (s *sqliteStorage) Get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := sq.Select("value").
		From("kv").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build kv select: %w", err)
	}

	var value []byte
	row := s.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("scan kv value: %w", err)
	}

	return value, nil
}

func (s *sqliteStorage) Set(ctx context.Context, key string, value []byte) error {
	query, args, err := sq.Insert("kv").
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value").
		ToSql()
	if err != nil {
		return fmt.Errorf("build kv upsert: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("exec kv upsert: %w", err)
	}

	return nil
}

func (s *sqliteStorage) Delete(ctx context.Context, key string) error {
	query, args, err := sq.Delete("kv").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build kv delete: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("exec kv delete: %w", err)
	}

	return nil
}
