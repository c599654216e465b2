package service

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound reports that no client record matched a resolved key.
	ErrNotFound = errors.New("oauth access record not found")

	// ErrConflict reports a duplicate clientId at creation time.
	ErrConflict = errors.New("client ID already exists")

	// ErrNoChange reports an update whose patch would not alter the stored
	// record. A no-op update is an error, not a success.
	ErrNoChange = errors.New("no changes made to the record")
)

// ValidationError names the first required field missing from a create
// request.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}
