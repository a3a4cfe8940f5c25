package services

import (
	"context"

	"github.com/bankapp-se/bankapp_backend/internal/core/domain"
)

// UserSvcFacade defines registration and authentication operations.
type UserSvcFacade interface {
	// RegisterUser creates a new login with a bcrypt-hashed password.
	RegisterUser(ctx context.Context, username string, name string, password string) (*domain.User, error)

	// AuthenticateUser verifies credentials and returns the user on success.
	// Returns apperrors.ErrNotFound for both unknown usernames and wrong
	// passwords so callers cannot distinguish the two.
	AuthenticateUser(ctx context.Context, username string, password string) (*domain.User, error)

	// GetUserByID retrieves a user by their internal identifier.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}
