package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heliowash/backoffice/internal/apperrors"
	"github.com/heliowash/backoffice/internal/core/domain"
	portsrepo "github.com/heliowash/backoffice/internal/core/ports/repositories"
)

// AccountRepository implements chart-of-accounts persistence on PostgreSQL.
type AccountRepository struct {
	BaseRepository
}

// NewAccountRepository creates a new account repository.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{BaseRepository{Pool: pool}}
}

// Ensure AccountRepository implements the facade
var _ portsrepo.AccountRepositoryFacade = (*AccountRepository)(nil)

const accountColumns = `account_id, company_id, number, label, class, sub_class,
	vat_deductible, vat_collected, description, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

func scanAccount(row interface{ Scan(dest ...any) error }) (*domain.Account, error) {
	var a domain.Account
	err := row.Scan(
		&a.AccountID, &a.CompanyID, &a.Number, &a.Label, &a.Class, &a.SubClass,
		&a.VATDeductible, &a.VATCollected, &a.Description, &a.IsActive,
		&a.CreatedAt, &a.CreatedBy, &a.LastUpdatedAt, &a.LastUpdatedBy,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return &a, nil
}

// FindAccountByID retrieves an account by its unique identifier.
func (r *AccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	row := r.Pool.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE account_id = $1`, accountID)
	return scanAccount(row)
}

// FindAccountByNumber retrieves an account by company and account number.
func (r *AccountRepository) FindAccountByNumber(ctx context.Context, companyID, number string) (*domain.Account, error) {
	row := r.Pool.QueryRow(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE company_id = $1 AND number = $2`,
		companyID, number)
	return scanAccount(row)
}

// ListAccounts retrieves the chart of accounts for a company, ordered by
// account number.
func (r *AccountRepository) ListAccounts(ctx context.Context, companyID string, includeInactive bool) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE company_id = $1`
	if !includeInactive {
		query += ` AND is_active`
	}
	query += ` ORDER BY number`

	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, *account)
	}
	return accounts, rows.Err()
}

// LabelsByNumber returns a map of account number to label for a company.
func (r *AccountRepository) LabelsByNumber(ctx context.Context, companyID string) (map[string]string, error) {
	rows, err := r.Pool.Query(ctx, `SELECT number, label FROM accounts WHERE company_id = $1`, companyID)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	labels := make(map[string]string)
	for rows.Next() {
		var number, label string
		if err := rows.Scan(&number, &label); err != nil {
			return nil, translateError(err)
		}
		labels[number] = label
	}
	return labels, rows.Err()
}

// SaveAccount persists a new account.
func (r *AccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	_, err := r.Pool.Exec(ctx, `INSERT INTO accounts
		(account_id, company_id, number, label, class, sub_class,
		 vat_deductible, vat_collected, description, is_active,
		 created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		account.AccountID, account.CompanyID, account.Number, account.Label,
		account.Class, account.SubClass, account.VATDeductible, account.VATCollected,
		account.Description, account.IsActive,
		account.CreatedAt, account.CreatedBy, account.LastUpdatedAt, account.LastUpdatedBy,
	)
	return translateError(err)
}

// UpdateAccount updates mutable fields of an account.
func (r *AccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	tag, err := r.Pool.Exec(ctx, `UPDATE accounts
		SET label = $2, vat_deductible = $3, vat_collected = $4, description = $5,
		    is_active = $6, last_updated_at = $7, last_updated_by = $8
		WHERE account_id = $1`,
		account.AccountID, account.Label, account.VATDeductible, account.VATCollected,
		account.Description, account.IsActive, account.LastUpdatedAt, account.LastUpdatedBy,
	)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeactivateAccount soft-deletes an account.
func (r *AccountRepository) DeactivateAccount(ctx context.Context, accountID string, updatedBy string, updatedAt time.Time) error {
	tag, err := r.Pool.Exec(ctx, `UPDATE accounts
		SET is_active = FALSE, last_updated_by = $2, last_updated_at = $3
		WHERE account_id = $1`,
		accountID, updatedBy, updatedAt,
	)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
