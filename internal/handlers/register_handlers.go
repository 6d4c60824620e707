package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/heliowash/backoffice/internal/core/ports/services"
	"github.com/heliowash/backoffice/internal/middleware"
	"github.com/heliowash/backoffice/internal/platform/config"
)

// RegisterRoutes wires every HTTP route onto the engine.
func RegisterRoutes(engine *gin.Engine, services *portssvc.ServiceContainer, cfg *config.AppConfig) {
	engine.GET("/health", HealthCheck)

	if !cfg.IsProduction {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	setupAPIV1Routes(engine, services, cfg)
}

// loginRateLimiter bounds credential guessing: 10 attempts per minute per IP.
func loginRateLimiter() gin.HandlerFunc {
	rate := limiter.Rate{Period: 1 * time.Minute, Limit: 10}
	return middleware.RateLimit(limiter.New(memory.NewStore(), rate))
}

func setupAPIV1Routes(engine *gin.Engine, services *portssvc.ServiceContainer, cfg *config.AppConfig) {
	authHandler := NewAuthHandler(services.User, services.GoogleOAuth, cfg)
	companyHandler := NewCompanyHandler(services.Company)
	balanceHandler := NewBalanceHandler(services.Balance)
	entryHandler := NewEntryHandler(services.Entry)
	accountHandler := NewAccountHandler(services.Account)
	invoiceHandler := NewInvoiceHandler(services.Invoice)
	dunningHandler := NewDunningHandler(services.Dunning)
	templateHandler := NewTemplateHandler(services.Template)

	v1 := engine.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		rateLimited := loginRateLimiter()
		auth.POST("/login", rateLimited, authHandler.Login)
		auth.POST("/register", authHandler.Register)
		auth.POST("/google/exchange-code", rateLimited, authHandler.GoogleExchangeCode)
	}

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		protected.GET("/companies", companyHandler.ListCompanies)

		company := protected.Group("/companies/:company_id")
		{
			company.GET("", companyHandler.GetCompany)

			company.GET("/balance", balanceHandler.GetBalance)
			company.GET("/journal", balanceHandler.GetJournal)

			company.POST("/entries", entryHandler.CreateEntry)
			company.GET("/entries/:entry_id", entryHandler.GetEntry)
			company.POST("/entries/:entry_id/reconcile", entryHandler.ReconcileEntry)
			company.POST("/entries/:entry_id/correct", entryHandler.CreateCorrectiveEntry)

			company.POST("/accounts", accountHandler.CreateAccount)
			company.GET("/accounts", accountHandler.ListAccounts)
			company.GET("/accounts/:account_id", accountHandler.GetAccount)
			company.PUT("/accounts/:account_id", accountHandler.UpdateAccount)
			company.DELETE("/accounts/:account_id", accountHandler.DeactivateAccount)

			company.POST("/invoices", invoiceHandler.CreateInvoice)
			company.GET("/invoices", invoiceHandler.ListInvoices)
			company.GET("/invoices/:invoice_id", invoiceHandler.GetInvoice)
			company.POST("/invoices/:invoice_id/payments", invoiceHandler.RecordPayment)
			company.POST("/invoices/:invoice_id/send", invoiceHandler.MarkSent)
			company.POST("/invoices/:invoice_id/cancel", invoiceHandler.CancelInvoice)

			company.POST("/dunning/run", dunningHandler.RunDunning)
			company.GET("/relances", dunningHandler.ListRelances)
			company.POST("/relances/:relance_id/send", dunningHandler.SendRelance)

			company.POST("/templates", templateHandler.CreateTemplate)
			company.GET("/templates", templateHandler.ListTemplates)
			company.PUT("/templates/:template_id", templateHandler.UpdateTemplate)
		}
	}
}
