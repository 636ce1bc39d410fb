package storage

import (
	"context"
	"errors"

	"esportconnect/auth/users"
)

var (
	// ErrNotFound is returned when no seeded identity matches a lookup.
	ErrNotFound = errors.New("user not found")
	// ErrNoSession is returned when no session record is persisted.
	ErrNoSession = errors.New("no stored session")
)

// AuthStorage backs the session store: seeded identity lookup plus the
// single persisted session record.
type AuthStorage interface {
	GetUserByEmailAndRole(ctx context.Context, email string, role users.Role) (users.User, error)
	SaveSession(ctx context.Context, payload []byte) error
	LoadSession(ctx context.Context) ([]byte, error)
	ClearSession(ctx context.Context) error
}
