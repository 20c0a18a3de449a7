// Package storage defines the error taxonomy shared by every repository,
// regardless of whether it is backed by Firestore or by memory in tests.
package storage

import "errors"

var (
	// ErrNotFound means the referenced document id does not exist in its collection.
	ErrNotFound = errors.New("document not found")

	// ErrPermissionDenied means the store rejected our credentials. Non-retryable.
	ErrPermissionDenied = errors.New("permission denied by document store")

	// ErrUnavailable means the store is unreachable, rate-limited, or timed out.
	ErrUnavailable = errors.New("document store unavailable")
)
