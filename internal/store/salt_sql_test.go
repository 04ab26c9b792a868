package store

import (
	"errors"
	"sync"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/migrations"
)

func TestSQLSaltStore_Get(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(mock sqlmock.Sqlmock)
		wantSalt  string
		wantFound bool
		wantErr   error
	}{
		{
			name: "found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT salt FROM vault_salts WHERE user_id = \$1`).
					WithArgs("alice").
					WillReturnRows(sqlmock.NewRows([]string{"salt"}).AddRow("c2FsdA=="))
			},
			wantSalt:  "c2FsdA==",
			wantFound: true,
		},
		{
			name: "not found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT salt FROM vault_salts`).
					WithArgs("alice").
					WillReturnRows(sqlmock.NewRows([]string{"salt"}))
			},
		},
		{
			name: "query error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT salt FROM vault_salts`).
					WithArgs("alice").
					WillReturnError(errors.New("connection reset"))
			},
			wantErr: ErrExecutingQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			tt.setup(mock)
			s := NewSQLSaltStore(newDBFromSQL(db, migrations.DialectPostgres), logger.Nop())

			salt, found, err := s.Get(testContext(), "alice")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantSalt, salt)
			assert.Equal(t, tt.wantFound, found)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSQLSaltStore_Set(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "inserted",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO vault_salts \(user_id,salt,created_at\) VALUES \(\?,\?,\?\)`).
					WithArgs("alice", "c2FsdA==", sqlmock.AnyArg()).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
		},
		{
			name: "duplicate maps to ErrSaltAlreadyExists",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO vault_salts`).
					WillReturnError(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey})
			},
			wantErr: ErrSaltAlreadyExists,
		},
		{
			name: "busy is retried",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO vault_salts`).
					WillReturnError(sqlite3.Error{Code: sqlite3.ErrBusy})
				mock.ExpectExec(`INSERT INTO vault_salts`).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
		},
		{
			name: "other error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO vault_salts`).
					WillReturnError(errors.New("disk full"))
			},
			wantErr: ErrExecutingStatement,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			tt.setup(mock)
			s := NewSQLSaltStore(newDBFromSQL(db, migrations.DialectSQLite), logger.Nop())

			err := s.Set(testContext(), "alice", "c2FsdA==")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSQLSaltStore_SQLiteIntegration(t *testing.T) {
	s := NewSQLSaltStore(newSQLiteTestDB(t), logger.Nop())
	ctx := testContext()

	_, found, err := s.Get(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set(ctx, "alice", "Zmlyc3Q="))
	assert.ErrorIs(t, s.Set(ctx, "alice", "c2Vjb25k"), ErrSaltAlreadyExists)

	salt, found, err := s.Get(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Zmlyc3Q=", salt, "the first salt must never be replaced")
}

func TestSQLSaltStore_ConcurrentSetOneWins(t *testing.T) {
	s := NewSQLSaltStore(newSQLiteTestDB(t), logger.Nop())
	ctx := testContext()

	const n = 8
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = s.Set(ctx, "bob", string(rune('a'+i)))
		}()
	}
	wg.Wait()

	ok := 0
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		assert.ErrorIs(t, err, ErrSaltAlreadyExists)
	}
	assert.Equal(t, 1, ok)
}
