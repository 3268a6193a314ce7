package audit

import "errors"

var (
	// ErrAuditWrite aborts the enclosing transaction: a domain mutation
	// without its change record must not commit.
	ErrAuditWrite = errors.New("change record write failed")

	// ErrCascade aborts the enclosing transaction: a parent delete/restore
	// and its dependent writes succeed or fail together.
	ErrCascade = errors.New("cascade operation failed")

	// ErrNotFound is returned by Restore when no soft-deleted record with
	// the given id exists.
	ErrNotFound = errors.New("no soft-deleted record with that id")
)
