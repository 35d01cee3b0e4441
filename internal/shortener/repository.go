package shortener

import (
	"context"
	"errors"
)

// ErrNotFound indicates no link exists for the requested code.
var ErrNotFound = errors.New("link not found")

// ErrCodeTaken indicates an insert lost to an existing link with the same
// code. The creation pipeline regenerates instead of overwriting.
var ErrCodeTaken = errors.New("short code already taken")

// Repository is the system of record for links.
type Repository interface {
	// Save inserts a new link. It must never overwrite: when the code is
	// already in use, Save returns ErrCodeTaken.
	Save(ctx context.Context, link *Link) error

	// GetByCode returns the link for a code, or ErrNotFound.
	GetByCode(ctx context.Context, code Code) (*Link, error)
}
