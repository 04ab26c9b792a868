package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgresErrorClassifier maps pgx driver errors onto [ErrorClassification].
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify returns [NonRetryable] for nil and for errors that did not come
// from the PostgreSQL server.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if err == nil || !errors.As(err, &pgErr) {
		return NonRetryable
	}

	return classifyPgCode(pgErr.Code)
}

// classifyPgCode treats connection loss, rollbacks, server startup and
// connection exhaustion as transient. A unique_violation means a concurrent
// writer already stored the row.
func classifyPgCode(code string) ErrorClassification {
	switch code {
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.TransactionRollback,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected,
		pgerrcode.CannotConnectNow,
		pgerrcode.TooManyConnections:
		return Retryable
	case pgerrcode.UniqueViolation:
		return Duplicate
	default:
		return NonRetryable
	}
}
