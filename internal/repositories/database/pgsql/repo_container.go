package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/heliowash/backoffice/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every repository implementation over one pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		AccountRepo:  NewAccountRepository(pool),
		EntryRepo:    NewEntryRepository(pool),
		InvoiceRepo:  NewInvoiceRepository(pool),
		RelanceRepo:  NewRelanceRepository(pool),
		TemplateRepo: NewTemplateRepository(pool),
		CompanyRepo:  NewCompanyRepository(pool),
		UserRepo:     NewUserRepository(pool),
	}
}
