package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heliowash/backoffice/internal/apperrors"
	"github.com/heliowash/backoffice/internal/core/domain"
	portsrepo "github.com/heliowash/backoffice/internal/core/ports/repositories"
)

// CompanyRepository implements legal entity persistence on PostgreSQL.
type CompanyRepository struct {
	BaseRepository
}

// NewCompanyRepository creates a new company repository.
func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{BaseRepository{Pool: pool}}
}

// Ensure CompanyRepository implements the facade
var _ portsrepo.CompanyRepositoryFacade = (*CompanyRepository)(nil)

const companyColumns = `company_id, name, siret, email, phone, address, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

func scanCompany(row interface{ Scan(dest ...any) error }) (*domain.Company, error) {
	var c domain.Company
	err := row.Scan(
		&c.CompanyID, &c.Name, &c.SIRET, &c.Email, &c.Phone, &c.Address, &c.IsActive,
		&c.CreatedAt, &c.CreatedBy, &c.LastUpdatedAt, &c.LastUpdatedBy,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return &c, nil
}

// FindCompanyByID retrieves a company by its unique identifier.
func (r *CompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	row := r.Pool.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE company_id = $1`, companyID)
	return scanCompany(row)
}

// ListCompanies retrieves all active companies of the group.
func (r *CompanyRepository) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+companyColumns+` FROM companies WHERE is_active ORDER BY name`)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	var companies []domain.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		companies = append(companies, *c)
	}
	return companies, rows.Err()
}

// SaveCompany persists a new company.
func (r *CompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	_, err := r.Pool.Exec(ctx, `INSERT INTO companies
		(company_id, name, siret, email, phone, address, is_active,
		 created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		company.CompanyID, company.Name, company.SIRET, company.Email,
		company.Phone, company.Address, company.IsActive,
		company.CreatedAt, company.CreatedBy, company.LastUpdatedAt, company.LastUpdatedBy,
	)
	return translateError(err)
}

// UpdateCompany updates mutable fields of a company.
func (r *CompanyRepository) UpdateCompany(ctx context.Context, company domain.Company) error {
	tag, err := r.Pool.Exec(ctx, `UPDATE companies
		SET name = $2, siret = $3, email = $4, phone = $5, address = $6,
		    is_active = $7, last_updated_at = $8, last_updated_by = $9
		WHERE company_id = $1`,
		company.CompanyID, company.Name, company.SIRET, company.Email,
		company.Phone, company.Address, company.IsActive,
		company.LastUpdatedAt, company.LastUpdatedBy,
	)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
