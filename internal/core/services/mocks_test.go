package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/heliowash/backoffice/internal/core/domain"
	"github.com/heliowash/backoffice/internal/core/ports"
)

// MockEntryRepo mocks the journal entry repository facade.
type MockEntryRepo struct {
	mock.Mock
}

func (m *MockEntryRepo) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockEntryRepo) ListEntriesByPeriod(ctx context.Context, companyID string, from, to time.Time) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, companyID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockEntryRepo) SaveEntry(ctx context.Context, entry domain.JournalEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockEntryRepo) UpdateEntryStatus(ctx context.Context, entryID string, status domain.EntryStatus, updatedBy string, updatedAt time.Time) error {
	return m.Called(ctx, entryID, status, updatedBy, updatedAt).Error(0)
}

// MockAccountRepo mocks the chart-of-accounts repository facade.
type MockAccountRepo struct {
	mock.Mock
}

func (m *MockAccountRepo) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepo) FindAccountByNumber(ctx context.Context, companyID, number string) (*domain.Account, error) {
	args := m.Called(ctx, companyID, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepo) ListAccounts(ctx context.Context, companyID string, includeInactive bool) ([]domain.Account, error) {
	args := m.Called(ctx, companyID, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepo) LabelsByNumber(ctx context.Context, companyID string) (map[string]string, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

func (m *MockAccountRepo) SaveAccount(ctx context.Context, account domain.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockAccountRepo) UpdateAccount(ctx context.Context, account domain.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockAccountRepo) DeactivateAccount(ctx context.Context, accountID string, updatedBy string, updatedAt time.Time) error {
	return m.Called(ctx, accountID, updatedBy, updatedAt).Error(0)
}

// MockInvoiceReader mocks invoice read operations.
type MockInvoiceReader struct {
	mock.Mock
}

func (m *MockInvoiceReader) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceReader) ListInvoices(ctx context.Context, companyID string, limit, offset int) ([]domain.Invoice, error) {
	args := m.Called(ctx, companyID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceReader) ListOverdueInvoices(ctx context.Context, companyID string, asOf time.Time) ([]domain.Invoice, error) {
	args := m.Called(ctx, companyID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceReader) ListPaymentsByInvoice(ctx context.Context, invoiceID string) ([]domain.Payment, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

// MockInvoiceRepo mocks the full invoice repository facade.
type MockInvoiceRepo struct {
	MockInvoiceReader
}

func (m *MockInvoiceRepo) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	return m.Called(ctx, invoice).Error(0)
}

func (m *MockInvoiceRepo) RecordPayment(ctx context.Context, payment domain.Payment, newAmountPaid decimal.Decimal, newStatus domain.InvoiceStatus) error {
	return m.Called(ctx, payment, newAmountPaid, newStatus).Error(0)
}

func (m *MockInvoiceRepo) UpdateInvoiceStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus, updatedBy string, updatedAt time.Time) error {
	return m.Called(ctx, invoiceID, status, updatedBy, updatedAt).Error(0)
}

// MockRelanceRepo mocks the reminder repository facade.
type MockRelanceRepo struct {
	mock.Mock
}

func (m *MockRelanceRepo) FindRelanceByID(ctx context.Context, relanceID string) (*domain.Relance, error) {
	args := m.Called(ctx, relanceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Relance), args.Error(1)
}

func (m *MockRelanceRepo) FindRelanceByInvoiceAndTier(ctx context.Context, invoiceID string, tier domain.DunningTier) (*domain.Relance, error) {
	args := m.Called(ctx, invoiceID, tier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Relance), args.Error(1)
}

func (m *MockRelanceRepo) ListRelancesByCompany(ctx context.Context, companyID string, status domain.RelanceStatus, limit, offset int) ([]domain.Relance, error) {
	args := m.Called(ctx, companyID, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Relance), args.Error(1)
}

func (m *MockRelanceRepo) SaveRelance(ctx context.Context, relance domain.Relance) error {
	return m.Called(ctx, relance).Error(0)
}

func (m *MockRelanceRepo) UpdateRelanceOutcome(ctx context.Context, relanceID string, status domain.RelanceStatus, templateID string, sentAt *time.Time, lastError string) error {
	return m.Called(ctx, relanceID, status, templateID, sentAt, lastError).Error(0)
}

// MockTemplateRepo mocks the template repository facade.
type MockTemplateRepo struct {
	mock.Mock
}

func (m *MockTemplateRepo) FindTemplateByID(ctx context.Context, templateID string) (*domain.ReminderTemplate, error) {
	args := m.Called(ctx, templateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReminderTemplate), args.Error(1)
}

func (m *MockTemplateRepo) FindActiveTemplateByTier(ctx context.Context, companyID string, tier domain.DunningTier) (*domain.ReminderTemplate, error) {
	args := m.Called(ctx, companyID, tier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReminderTemplate), args.Error(1)
}

func (m *MockTemplateRepo) ListTemplates(ctx context.Context, companyID string) ([]domain.ReminderTemplate, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReminderTemplate), args.Error(1)
}

func (m *MockTemplateRepo) SaveTemplate(ctx context.Context, template domain.ReminderTemplate) error {
	return m.Called(ctx, template).Error(0)
}

func (m *MockTemplateRepo) UpdateTemplate(ctx context.Context, template domain.ReminderTemplate) error {
	return m.Called(ctx, template).Error(0)
}

func (m *MockTemplateRepo) IncrementTemplateUsage(ctx context.Context, templateID string) error {
	return m.Called(ctx, templateID).Error(0)
}

// MockCompanyRepo mocks the company repository facade.
type MockCompanyRepo struct {
	mock.Mock
}

func (m *MockCompanyRepo) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepo) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}

func (m *MockCompanyRepo) SaveCompany(ctx context.Context, company domain.Company) error {
	return m.Called(ctx, company).Error(0)
}

func (m *MockCompanyRepo) UpdateCompany(ctx context.Context, company domain.Company) error {
	return m.Called(ctx, company).Error(0)
}

// MockUserRepo mocks the user repository facade.
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) FindUserByProviderID(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	args := m.Called(ctx, provider, providerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) SaveUser(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

// MockEmailSender mocks the outbound email port.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) Send(ctx context.Context, msg ports.EmailMessage) error {
	return m.Called(ctx, msg).Error(0)
}
