package services

// ServiceContainer holds all the service facades handed to the HTTP layer.
type ServiceContainer struct {
	Balance     BalanceService
	Entry       EntrySvcFacade
	Account     AccountSvcFacade
	Invoice     InvoiceSvcFacade
	Dunning     DunningSvcFacade
	Template    TemplateSvcFacade
	Company     CompanySvcFacade
	User        UserSvcFacade
	GoogleOAuth GoogleOAuthSvcFacade
}
