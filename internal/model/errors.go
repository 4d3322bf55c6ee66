package model

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("not found")

	// ErrReferenceNotFound is raised while resolving a book's author. It wraps
	// ErrNotFound so callers may treat both the same way.
	ErrReferenceNotFound = fmt.Errorf("reference %w", ErrNotFound)

	ErrValidationFailed = errors.New("validation failed")
)
