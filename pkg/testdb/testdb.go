// Package testdb stands up throwaway SQLite databases for tests.
//
// Databases are scoped to the test: teardown is registered via t.Cleanup,
// and database files live in the test's temp directory under a unique name
// so parallel tests never collide. The default is a file-backed database in
// WAL mode, so every connection the database/sql pool opens sees the same
// data and a write can commit while a result set is still open.
package testdb

import (
	"database/sql"
	"testing"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Option configures a test database.
type Option func(*options)

type options struct {
	inMemory bool
	schema   []string
}

// WithInMemory keeps the database in memory instead of a temp file. An
// in-memory SQLite database is private to one connection, so the pool is
// pinned to a single connection; use only when the code under test never
// holds two connections at once (e.g. a statement issued while a *sql.Rows
// is still open would block).
func WithInMemory() Option {
	return func(o *options) { o.inMemory = true }
}

// WithSchema applies the statements after opening, in order.
func WithSchema(statements ...string) Option {
	return func(o *options) { o.schema = append(o.schema, statements...) }
}

// Open creates a fresh database for the test and closes it on cleanup.
func Open(t *testing.T, opts ...Option) *sql.DB {
	t.Helper()

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	dsn := ":memory:"
	if !o.inMemory {
		dsn = "file:" + t.TempDir() + "/" + uuid.NewString() + ".db" +
			"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(10000)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if o.inMemory {
		// Every pooled connection to ":memory:" gets its own empty
		// database; one connection keeps the schema visible.
		db.SetMaxOpenConns(1)
	}
	t.Cleanup(func() { _ = db.Close() })

	for _, stmt := range o.schema {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("failed to apply schema statement: %v\n%s", err, stmt)
		}
	}

	return db
}

// InTransaction runs fn inside a transaction that is always rolled back,
// so the database state is untouched regardless of what fn writes.
func InTransaction(t *testing.T, db *sql.DB, fn func(tx *sql.Tx)) {
	t.Helper()

	tx, err := db.Begin()
	if err != nil {
		t.Fatalf("failed to begin transaction: %v", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			t.Errorf("failed to roll back transaction: %v", err)
		}
	}()

	fn(tx)
}

// InsertReturningID executes an INSERT inside tx and returns the generated
// row id.
func InsertReturningID(t *testing.T, tx *sql.Tx, query string, args ...any) int64 {
	t.Helper()

	res, err := tx.Exec(query, args...)
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("failed to read generated key: %v", err)
	}
	return id
}
