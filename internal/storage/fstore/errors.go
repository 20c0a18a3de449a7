package fstore

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/company-mgmt/company-api-backend/internal/storage"
)

// MapError translates a Firestore SDK error into the storage taxonomy.
// Unknown errors pass through unchanged.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	switch status.Code(err) {
	case codes.NotFound:
		return storage.ErrNotFound
	case codes.PermissionDenied, codes.Unauthenticated:
		return storage.ErrPermissionDenied
	case codes.Unavailable, codes.ResourceExhausted, codes.DeadlineExceeded:
		return storage.ErrUnavailable
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return storage.ErrUnavailable
	}

	return err
}
