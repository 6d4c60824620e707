package services

import (
	"context"

	"github.com/heliowash/backoffice/internal/core/domain"
	"github.com/heliowash/backoffice/internal/dto"
)

// UserSvcFacade defines operator account operations.
type UserSvcFacade interface {
	// CreateUser creates a local (password) account.
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)

	// CreateOAuthUser finds or creates an account from a validated OAuth
	// identity.
	CreateOAuthUser(ctx context.Context, name, email string, provider domain.AuthProvider, providerUserID string, emailVerified bool) (*domain.User, error)

	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByUsername retrieves a user by username.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
}
