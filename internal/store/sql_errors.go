package store

// ErrorClassification is the result type returned by
// [ErrorClassificator.Classify]. It tells the repository whether a failed
// operation may be retried, must be abandoned, or hit a uniqueness
// constraint that maps to a domain sentinel.
type ErrorClassification int

const (
	// NonRetryable indicates that the failed operation should not be retried.
	// This is the default classification for unrecognised errors.
	NonRetryable ErrorClassification = iota

	// Retryable indicates that the failed operation may succeed if attempted
	// again (e.g. a busy SQLite file or a deadlock rollback).
	Retryable

	// Duplicate indicates a unique or primary key violation.
	Duplicate
)
