package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same login already exists in the database.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrFormNotFound is returned when a queried form does not exist, or when
	// an owner-scoped lookup targets a form that belongs to another user —
	// the two cases are deliberately indistinguishable to callers.
	ErrFormNotFound = errors.New("form was not found")

	// ErrComponentsNotSaved is returned when a replace-all component write
	// reports fewer inserted rows than requested.
	ErrComponentsNotSaved = errors.New("components were not saved")

	// ErrProspectNotSaved is returned when a prospect INSERT completes
	// without error but no row was persisted.
	ErrProspectNotSaved = errors.New("prospect was not saved")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning a result row into the target
	// model fails.
	ErrScanningRow = errors.New("error scanning row")
)
