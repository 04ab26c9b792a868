package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/migrations"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// newDBFromSQL wraps an existing *sql.DB for tests.
func newDBFromSQL(db *sql.DB, dialect string) *DB {
	d := &DB{
		DB:      db,
		dialect: dialect,
		logger:  logger.Nop(),
	}
	if dialect == migrations.DialectPostgres {
		d.errorClassificator = NewPostgresErrorClassifier()
	} else {
		d.errorClassificator = NewSQLiteErrorClassifier()
	}
	return d
}

// newSQLiteTestDB opens a migrated SQLite database in a temp dir.
func newSQLiteTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := NewConnectSQLite(context.Background(), testClientDB(t), logger.Nop())
	require.NoError(t, err)
	require.NoError(t, db.Migrate())
	t.Cleanup(func() { db.Close() })
	return db
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func testClientDB(t *testing.T) config.ClientDB {
	t.Helper()
	return config.ClientDB{DSN: filepath.Join(t.TempDir(), "vault.db")}
}
