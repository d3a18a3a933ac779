package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medvision-ai/medvision-client/internal/logger"
)

func newTestSQLiteStorage(t *testing.T) (KVStorage, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	s := NewSQLiteStorage(&DB{DB: db, logger: l}, l)
	return s, mock, db
}

func TestSQLiteStorage_Get_Found(t *testing.T) {
	s, mock, db := newTestSQLiteStorage(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"value"}).AddRow([]byte(`["x"]`))
	mock.ExpectQuery("SELECT value FROM kv").
		WithArgs("medvision_scans").
		WillReturnRows(rows)

	got, err := s.Get(context.Background(), "medvision_scans")
	require.NoError(t, err)
	assert.Equal(t, []byte(`["x"]`), got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStorage_Get_NotFound(t *testing.T) {
	s, mock, db := newTestSQLiteStorage(t)
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM kv").
		WithArgs("absent").
		WillReturnError(sql.ErrNoRows)

	_, err := s.Get(context.Background(), "absent")
	assert.True(t, errors.Is(err, ErrKeyNotFound))
}

func TestSQLiteStorage_Set_Upserts(t *testing.T) {
	s, mock, db := newTestSQLiteStorage(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO kv").
		WithArgs("token", []byte("abc")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, s.Set(context.Background(), "token", []byte("abc")))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStorage_Delete(t *testing.T) {
	s, mock, db := newTestSQLiteStorage(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM kv").
		WithArgs("token").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Delete(context.Background(), "token"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStorage_Set_ExecError(t *testing.T) {
	s, mock, db := newTestSQLiteStorage(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO kv").
		WithArgs("token", []byte("abc")).
		WillReturnError(errors.New("disk full"))

	err := s.Set(context.Background(), "token", []byte("abc"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exec kv upsert")
}
