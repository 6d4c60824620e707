package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heliowash/backoffice/internal/core/domain"
	portsrepo "github.com/heliowash/backoffice/internal/core/ports/repositories"
)

// UserRepository implements operator account persistence on PostgreSQL.
type UserRepository struct {
	BaseRepository
}

// NewUserRepository creates a new user repository.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{BaseRepository{Pool: pool}}
}

// Ensure UserRepository implements the facade
var _ portsrepo.UserRepositoryFacade = (*UserRepository)(nil)

const userColumns = `user_id, username, name, email, COALESCE(password_hash, ''),
	auth_provider, COALESCE(provider_user_id, ''), is_admin, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

func scanUser(row interface{ Scan(dest ...any) error }) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.UserID, &u.Username, &u.Name, &u.Email, &u.PasswordHash,
		&u.AuthProvider, &u.ProviderUserID, &u.IsAdmin, &u.IsActive,
		&u.CreatedAt, &u.CreatedBy, &u.LastUpdatedAt, &u.LastUpdatedBy,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return &u, nil
}

// FindUserByID retrieves a user by its unique identifier.
func (r *UserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	row := r.Pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE user_id = $1`, userID)
	return scanUser(row)
}

// FindUserByUsername retrieves a user by username.
func (r *UserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := r.Pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
	return scanUser(row)
}

// FindUserByProviderID retrieves an OAuth user by provider and subject.
func (r *UserRepository) FindUserByProviderID(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	row := r.Pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE auth_provider = $1 AND provider_user_id = $2`,
		provider, providerUserID)
	return scanUser(row)
}

// SaveUser persists a new user.
func (r *UserRepository) SaveUser(ctx context.Context, user domain.User) error {
	_, err := r.Pool.Exec(ctx, `INSERT INTO users
		(user_id, username, name, email, password_hash, auth_provider,
		 provider_user_id, is_admin, is_active,
		 created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		user.UserID, user.Username, user.Name, user.Email,
		nullable(user.PasswordHash), user.AuthProvider, nullable(user.ProviderUserID),
		user.IsAdmin, user.IsActive,
		user.CreatedAt, user.CreatedBy, user.LastUpdatedAt, user.LastUpdatedBy,
	)
	return translateError(err)
}
