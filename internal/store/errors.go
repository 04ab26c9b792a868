package store

import "errors"

// Sentinel errors returned by stores and repositories to signal well-known
// failure conditions. Callers should use [errors.Is] to match against these
// values.
var (
	// ErrSaltAlreadyExists is returned when Set is called for a user that
	// already has a salt. Salts are immutable once written.
	ErrSaltAlreadyExists = errors.New("salt already exists")

	// ErrVaultItemNotFound is returned when a query, update or delete targets
	// an item (identified by id and owner_id) that does not exist.
	ErrVaultItemNotFound = errors.New("vault item was not found")

	// ErrVaultItemAlreadyExists is returned when an insert collides with an
	// existing item id.
	ErrVaultItemAlreadyExists = errors.New("vault item already exists")

	// ErrUnsupportedSaltDriver is returned by NewClientStorages for an
	// unknown salt driver name.
	ErrUnsupportedSaltDriver = errors.New("unsupported salt store driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT, UPDATE or
	// DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning during multi-row iteration
	// fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
