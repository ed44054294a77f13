package store

import "errors"

// ErrKeyNotFound is returned by [KeyValueStore.Get] when nothing is stored
// under the requested key.
var ErrKeyNotFound = errors.New("key not found")

// ErrUnknownDriver is returned by [NewClientStorages] for an unsupported
// storage driver.
var ErrUnknownDriver = errors.New("unknown storage driver")

// Low-level database operation errors. These are returned (or wrapped) by
// the SQLite slot store when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT fails.
	ErrExecutingStatement = errors.New("failed to executing statement")
)
