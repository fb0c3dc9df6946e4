package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrDispatchRecordNotFound is returned when no ledger entry matches the
	// requested provider ID.
	ErrDispatchRecordNotFound = errors.New("dispatch record was not found")

	// ErrDispatchRecordAlreadyExists is returned when a ledger entry with the
	// same kind and provider ID was recorded before.
	ErrDispatchRecordAlreadyExists = errors.New("dispatch record already exists")

	// ErrLedgerDisabled is returned by lookups when no database is configured.
	ErrLedgerDisabled = errors.New("dispatch ledger is disabled")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a result
	// row fails.
	ErrScanningRow = errors.New("failed to scan dispatch record row")
)
