package tracker

import (
	"context"

	"github.com/google/uuid"
)

// UserStore defines the interface for user storage operations
type UserStore interface {
	// InsertUser persists a new user with an empty log
	InsertUser(ctx context.Context, user *User) error
	// ListUsers returns all users projected to username and id
	ListUsers(ctx context.Context) ([]User, error)
	// GetUser loads a user and its full exercise log
	GetUser(ctx context.Context, id uuid.UUID) (*User, error)
	// SaveLog replaces a user's stored log after an append
	SaveLog(ctx context.Context, id uuid.UUID, log []Exercise) error
}
