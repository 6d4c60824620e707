package services

import (
	"github.com/heliowash/backoffice/internal/core/ports"
	portsrepo "github.com/heliowash/backoffice/internal/core/ports/repositories"
	portssvc "github.com/heliowash/backoffice/internal/core/ports/services"
	"github.com/heliowash/backoffice/internal/platform/config"
)

// NewServiceContainer wires every service facade from the repository
// provider, configuration and external collaborators.
func NewServiceContainer(
	repos *portsrepo.RepositoryProvider,
	cfg *config.AppConfig,
	mailer ports.EmailSender,
	pdfRenderer ports.PDFRenderer,
) *portssvc.ServiceContainer {
	dunningOpts := []DunningOption{WithDunningConfig(cfg.Dunning)}
	if pdfRenderer != nil {
		dunningOpts = append(dunningOpts, WithPDFRenderer(pdfRenderer))
	}

	return &portssvc.ServiceContainer{
		Balance:  NewBalanceService(repos.EntryRepo, repos.AccountRepo),
		Entry:    NewEntryService(repos.EntryRepo, repos.AccountRepo),
		Account:  NewAccountService(repos.AccountRepo),
		Invoice:  NewInvoiceService(repos.InvoiceRepo),
		Dunning:  NewDunningService(repos.InvoiceRepo, repos.RelanceRepo, repos.TemplateRepo, repos.CompanyRepo, mailer, dunningOpts...),
		Template: NewTemplateService(repos.TemplateRepo),
		Company:  NewCompanyService(repos.CompanyRepo),
		User:     NewUserService(repos.UserRepo),
		GoogleOAuth: NewGoogleOAuthService(
			cfg.GoogleClientID,
			cfg.GoogleClientSecret,
			cfg.GoogleRedirectURL,
		),
	}
}
