package db

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Store error taxonomy. Repositories never retry; every failure is wrapped
// with exactly one of these sentinels so callers can branch with errors.Is.
var (
	// ErrNotFound indicates no document exists under the requested key.
	ErrNotFound = errors.New("document not found")
	// ErrParse indicates a stored document could not be coerced into its
	// domain entity.
	ErrParse = errors.New("document parse failure")
	// ErrPermissionDenied indicates the store rejected the caller's
	// credentials for the operation.
	ErrPermissionDenied = errors.New("store permission denied")
	// ErrTransport covers every other RPC failure (unavailable, deadline,
	// internal, ...). All of them are recoverable by user retry.
	ErrTransport = errors.New("store transport failure")
)

// classifyStoreErr maps a Firestore RPC error onto the taxonomy above.
func classifyStoreErr(err error) error {
	switch status.Code(err) {
	case codes.NotFound:
		return ErrNotFound
	case codes.PermissionDenied, codes.Unauthenticated:
		return ErrPermissionDenied
	default:
		return ErrTransport
	}
}
