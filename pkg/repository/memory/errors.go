package memory

import "errors"

var (
	// ErrNotFound is returned when the requested record does not exist
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyExists is returned on uniqueness violations
	ErrAlreadyExists = errors.New("record already exists")
)
