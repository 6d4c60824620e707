package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/heliowash/backoffice/internal/apperrors"
	"github.com/heliowash/backoffice/internal/core/domain"
	"github.com/heliowash/backoffice/internal/core/ports"
)

var today = time.Date(2024, 6, 15, 8, 0, 0, 0, time.UTC)

func overdueInvoice(id string, daysLate int, remaining string) domain.Invoice {
	total := d(remaining).Add(d("100.00"))
	return domain.Invoice{
		InvoiceID:   id,
		CompanyID:   "co-1",
		Number:      "FAC-2024-" + id,
		ClientID:    "cl-" + id,
		ClientName:  "Client " + id,
		ClientEmail: "client-" + id + "@example.fr",
		TotalAmount: total,
		AmountPaid:  d("100.00"),
		IssueDate:   today.AddDate(0, 0, -daysLate-30),
		DueDate:     today.AddDate(0, 0, -daysLate),
		Status:      domain.InvoiceSent,
	}
}

func TestClassify(t *testing.T) {
	config := domain.DefaultDunningConfig()

	tests := []struct {
		name     string
		invoice  domain.Invoice
		wantTier domain.DunningTier // 0 means no reminder due
	}{
		{"below first threshold", overdueInvoice("a", 10, "500.00"), 0},
		{"exactly at tier 1", overdueInvoice("b", 15, "500.00"), domain.TierAmicalReminder},
		{"between tier 1 and 2", overdueInvoice("c", 29, "500.00"), domain.TierAmicalReminder},
		{"exactly at tier 2", overdueInvoice("d", 30, "500.00"), domain.TierFirmReminder},
		{"tier 3 band", overdueInvoice("e", 50, "500.00"), domain.TierFormalNotice},
		{"deep into tier 4", overdueInvoice("f", 120, "500.00"), domain.TierLitigation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := Classify(&tt.invoice, today, config)
			if tt.wantTier == 0 {
				assert.Nil(t, decision)
				return
			}
			require.NotNil(t, decision)
			assert.Equal(t, tt.wantTier, decision.Tier)
			assert.Equal(t, tt.invoice.DaysOverdue(today), decision.DaysOverdue)
		})
	}
}

func TestClassifyIneligibleInvoices(t *testing.T) {
	config := domain.DefaultDunningConfig()

	paid := overdueInvoice("p", 40, "0.00")
	paid.AmountPaid = paid.TotalAmount
	assert.Nil(t, Classify(&paid, today, config))

	cancelled := overdueInvoice("c", 40, "500.00")
	cancelled.Status = domain.InvoiceCancelled
	assert.Nil(t, Classify(&cancelled, today, config))

	draft := overdueInvoice("d", 40, "500.00")
	draft.Status = domain.InvoiceDraft
	assert.Nil(t, Classify(&draft, today, config))

	notDue := overdueInvoice("n", 0, "500.00")
	notDue.DueDate = today.AddDate(0, 0, 10)
	assert.Nil(t, Classify(&notDue, today, config))
}

func TestClassifyHighestTierWins(t *testing.T) {
	// 65 days late satisfies all four thresholds; only contentieux applies.
	invoice := overdueInvoice("x", 65, "1000.00")
	decision := Classify(&invoice, today, domain.DefaultDunningConfig())
	require.NotNil(t, decision)
	assert.Equal(t, domain.TierLitigation, decision.Tier)
	assert.Equal(t, 65, decision.DaysOverdue)
}

type DunningServiceTestSuite struct {
	suite.Suite
	invoiceRepo  *MockInvoiceReader
	relanceRepo  *MockRelanceRepo
	templateRepo *MockTemplateRepo
	companyRepo  *MockCompanyRepo
	mailer       *MockEmailSender
	service      *dunningService
	ctx          context.Context
}

func (s *DunningServiceTestSuite) SetupTest() {
	s.invoiceRepo = new(MockInvoiceReader)
	s.relanceRepo = new(MockRelanceRepo)
	s.templateRepo = new(MockTemplateRepo)
	s.companyRepo = new(MockCompanyRepo)
	s.mailer = new(MockEmailSender)
	s.service = NewDunningService(
		s.invoiceRepo, s.relanceRepo, s.templateRepo, s.companyRepo, s.mailer,
	).(*dunningService)
	s.ctx = context.Background()
}

func TestDunningServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DunningServiceTestSuite))
}

func (s *DunningServiceTestSuite) company() *domain.Company {
	return &domain.Company{
		CompanyID: "co-1",
		Name:      "HelioWash Provence",
		Email:     "contact@heliowash.fr",
		Phone:     "04 91 00 00 00",
	}
}

func (s *DunningServiceTestSuite) activeTemplate(tier domain.DunningTier) *domain.ReminderTemplate {
	return &domain.ReminderTemplate{
		TemplateID: "tpl-" + string(rune('0'+int(tier))),
		CompanyID:  "co-1",
		Tier:       tier,
		Subject:    "Relance facture {{factureNumero}}",
		BodyText:   "Bonjour {{clientNom}}, il reste {{factureResteAPayer}} à régler ({{joursRetard}} jours de retard).",
		IsActive:   true,
	}
}

func (s *DunningServiceTestSuite) TestGenerateCreatesMissingReminders() {
	inv := overdueInvoice("1", 20, "350.00")
	s.invoiceRepo.On("ListOverdueInvoices", s.ctx, "co-1", today).
		Return([]domain.Invoice{inv}, nil)
	s.relanceRepo.On("FindRelanceByInvoiceAndTier", s.ctx, "1", domain.TierAmicalReminder).
		Return(nil, apperrors.ErrNotFound)
	s.relanceRepo.On("SaveRelance", s.ctx, mock.MatchedBy(func(r domain.Relance) bool {
		return r.InvoiceID == "1" &&
			r.Tier == domain.TierAmicalReminder &&
			r.Status == domain.RelancePending &&
			r.DaysOverdue == 20 &&
			r.Amount.Equal(d("350.00"))
	})).Return(nil)

	created, failures, err := s.service.GenerateDueReminders(s.ctx, "co-1", today)
	require.NoError(s.T(), err)
	assert.Empty(s.T(), failures)
	require.Len(s.T(), created, 1)
	assert.Equal(s.T(), "Client 1", created[0].ClientName)
}

func (s *DunningServiceTestSuite) TestGenerateIsIdempotent() {
	inv := overdueInvoice("1", 20, "350.00")
	s.invoiceRepo.On("ListOverdueInvoices", s.ctx, "co-1", today).
		Return([]domain.Invoice{inv}, nil)
	s.relanceRepo.On("FindRelanceByInvoiceAndTier", s.ctx, "1", domain.TierAmicalReminder).
		Return(&domain.Relance{RelanceID: "r-existing", InvoiceID: "1", Tier: domain.TierAmicalReminder}, nil)

	created, failures, err := s.service.GenerateDueReminders(s.ctx, "co-1", today)
	require.NoError(s.T(), err)
	assert.Empty(s.T(), created)
	assert.Empty(s.T(), failures)
	s.relanceRepo.AssertNotCalled(s.T(), "SaveRelance", mock.Anything, mock.Anything)
}

func (s *DunningServiceTestSuite) TestGeneratePartialSuccess() {
	good := overdueInvoice("1", 20, "350.00")
	bad := overdueInvoice("2", 35, "900.00")
	s.invoiceRepo.On("ListOverdueInvoices", s.ctx, "co-1", today).
		Return([]domain.Invoice{good, bad}, nil)
	s.relanceRepo.On("FindRelanceByInvoiceAndTier", s.ctx, "1", domain.TierAmicalReminder).
		Return(nil, apperrors.ErrNotFound)
	s.relanceRepo.On("FindRelanceByInvoiceAndTier", s.ctx, "2", domain.TierFirmReminder).
		Return(nil, apperrors.ErrNotFound)
	s.relanceRepo.On("SaveRelance", s.ctx, mock.MatchedBy(func(r domain.Relance) bool {
		return r.InvoiceID == "1"
	})).Return(nil)
	s.relanceRepo.On("SaveRelance", s.ctx, mock.MatchedBy(func(r domain.Relance) bool {
		return r.InvoiceID == "2"
	})).Return(errors.New("disk full"))

	created, failures, err := s.service.GenerateDueReminders(s.ctx, "co-1", today)
	require.NoError(s.T(), err)
	require.Len(s.T(), created, 1)
	assert.Equal(s.T(), "1", created[0].InvoiceID)
	require.Len(s.T(), failures, 1)
	assert.Equal(s.T(), "2", failures[0].ID)
	assert.Contains(s.T(), failures[0].Error, "disk full")
}

func (s *DunningServiceTestSuite) TestGenerateConcurrentDuplicateSkipped() {
	inv := overdueInvoice("1", 20, "350.00")
	s.invoiceRepo.On("ListOverdueInvoices", s.ctx, "co-1", today).
		Return([]domain.Invoice{inv}, nil)
	s.relanceRepo.On("FindRelanceByInvoiceAndTier", s.ctx, "1", domain.TierAmicalReminder).
		Return(nil, apperrors.ErrNotFound)
	s.relanceRepo.On("SaveRelance", s.ctx, mock.Anything).Return(apperrors.ErrDuplicate)

	created, failures, err := s.service.GenerateDueReminders(s.ctx, "co-1", today)
	require.NoError(s.T(), err)
	assert.Empty(s.T(), created)
	assert.Empty(s.T(), failures)
}

func (s *DunningServiceTestSuite) TestSendReminderSuccess() {
	relance := &domain.Relance{
		RelanceID: "r-1", CompanyID: "co-1", InvoiceID: "1",
		Tier: domain.TierAmicalReminder, DaysOverdue: 20,
		Amount: d("350.00"), Status: domain.RelancePending,
	}
	tpl := s.activeTemplate(domain.TierAmicalReminder)
	inv := overdueInvoice("1", 20, "350.00")

	s.relanceRepo.On("FindRelanceByID", s.ctx, "r-1").Return(relance, nil)
	s.templateRepo.On("FindActiveTemplateByTier", s.ctx, "co-1", domain.TierAmicalReminder).Return(tpl, nil)
	s.invoiceRepo.On("FindInvoiceByID", s.ctx, "1").Return(&inv, nil)
	s.companyRepo.On("FindCompanyByID", s.ctx, "co-1").Return(s.company(), nil)
	s.mailer.On("Send", s.ctx, mock.MatchedBy(func(msg ports.EmailMessage) bool {
		return msg.To[0] == "client-1@example.fr" &&
			msg.Subject == "Relance facture FAC-2024-1" &&
			!placeholderPattern.MatchString(msg.BodyText)
	})).Return(nil)
	s.relanceRepo.On("UpdateRelanceOutcome", s.ctx, "r-1", domain.RelanceSent, tpl.TemplateID, mock.Anything, "").Return(nil)
	s.templateRepo.On("IncrementTemplateUsage", s.ctx, tpl.TemplateID).Return(nil)

	sent, err := s.service.SendReminder(s.ctx, "co-1", "r-1", false)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), domain.RelanceSent, sent.Status)
	assert.Equal(s.T(), tpl.TemplateID, sent.TemplateID)
	require.NotNil(s.T(), sent.SentAt)
}

func (s *DunningServiceTestSuite) TestSendReminderNoActiveTemplate() {
	relance := &domain.Relance{
		RelanceID: "r-1", CompanyID: "co-1", InvoiceID: "1",
		Tier: domain.TierAmicalReminder, Status: domain.RelancePending,
	}
	s.relanceRepo.On("FindRelanceByID", s.ctx, "r-1").Return(relance, nil)
	s.templateRepo.On("FindActiveTemplateByTier", s.ctx, "co-1", domain.TierAmicalReminder).
		Return(nil, apperrors.ErrNotFound)

	sent, err := s.service.SendReminder(s.ctx, "co-1", "r-1", false)
	assert.Nil(s.T(), sent)
	assert.ErrorIs(s.T(), err, apperrors.ErrNoActiveTemplate)
	s.mailer.AssertNotCalled(s.T(), "Send", mock.Anything, mock.Anything)
}

func (s *DunningServiceTestSuite) TestSendReminderPolicyGateParksManualTiers() {
	relance := &domain.Relance{
		RelanceID: "r-3", CompanyID: "co-1", InvoiceID: "1",
		Tier: domain.TierFormalNotice, Status: domain.RelancePending,
	}
	s.relanceRepo.On("FindRelanceByID", s.ctx, "r-3").Return(relance, nil)
	s.relanceRepo.On("UpdateRelanceOutcome", s.ctx, "r-3", domain.RelanceAwaitingValidation, "", (*time.Time)(nil), "").Return(nil)

	parked, err := s.service.SendReminder(s.ctx, "co-1", "r-3", false)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), domain.RelanceAwaitingValidation, parked.Status)
	s.mailer.AssertNotCalled(s.T(), "Send", mock.Anything, mock.Anything)
	s.templateRepo.AssertNotCalled(s.T(), "FindActiveTemplateByTier", mock.Anything, mock.Anything, mock.Anything)
}

func (s *DunningServiceTestSuite) TestSendReminderForceBypassesGate() {
	relance := &domain.Relance{
		RelanceID: "r-3", CompanyID: "co-1", InvoiceID: "1",
		Tier: domain.TierFormalNotice, DaysOverdue: 50,
		Amount: d("900.00"), Status: domain.RelanceAwaitingValidation,
	}
	tpl := s.activeTemplate(domain.TierFormalNotice)
	inv := overdueInvoice("1", 50, "900.00")

	s.relanceRepo.On("FindRelanceByID", s.ctx, "r-3").Return(relance, nil)
	s.templateRepo.On("FindActiveTemplateByTier", s.ctx, "co-1", domain.TierFormalNotice).Return(tpl, nil)
	s.invoiceRepo.On("FindInvoiceByID", s.ctx, "1").Return(&inv, nil)
	s.companyRepo.On("FindCompanyByID", s.ctx, "co-1").Return(s.company(), nil)
	s.mailer.On("Send", s.ctx, mock.Anything).Return(nil)
	s.relanceRepo.On("UpdateRelanceOutcome", s.ctx, "r-3", domain.RelanceSent, tpl.TemplateID, mock.Anything, "").Return(nil)
	s.templateRepo.On("IncrementTemplateUsage", s.ctx, tpl.TemplateID).Return(nil)

	sent, err := s.service.SendReminder(s.ctx, "co-1", "r-3", true)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), domain.RelanceSent, sent.Status)
}

func (s *DunningServiceTestSuite) TestSendReminderTransportFailureRecordedNotRetried() {
	relance := &domain.Relance{
		RelanceID: "r-1", CompanyID: "co-1", InvoiceID: "1",
		Tier: domain.TierAmicalReminder, DaysOverdue: 20,
		Amount: d("350.00"), Status: domain.RelancePending,
	}
	tpl := s.activeTemplate(domain.TierAmicalReminder)
	inv := overdueInvoice("1", 20, "350.00")

	s.relanceRepo.On("FindRelanceByID", s.ctx, "r-1").Return(relance, nil)
	s.templateRepo.On("FindActiveTemplateByTier", s.ctx, "co-1", domain.TierAmicalReminder).Return(tpl, nil)
	s.invoiceRepo.On("FindInvoiceByID", s.ctx, "1").Return(&inv, nil)
	s.companyRepo.On("FindCompanyByID", s.ctx, "co-1").Return(s.company(), nil)
	s.mailer.On("Send", s.ctx, mock.Anything).Return(errors.New("smtp timeout")).Once()
	s.relanceRepo.On("UpdateRelanceOutcome", s.ctx, "r-1", domain.RelanceFailed, tpl.TemplateID, (*time.Time)(nil), "smtp timeout").Return(nil)

	failed, err := s.service.SendReminder(s.ctx, "co-1", "r-1", false)
	assert.ErrorIs(s.T(), err, apperrors.ErrTransport)
	require.NotNil(s.T(), failed)
	assert.Equal(s.T(), domain.RelanceFailed, failed.Status)
	assert.Equal(s.T(), "smtp timeout", failed.LastError)
	s.mailer.AssertNumberOfCalls(s.T(), "Send", 1)
	s.templateRepo.AssertNotCalled(s.T(), "IncrementTemplateUsage", mock.Anything, mock.Anything)
}

func (s *DunningServiceTestSuite) TestSendReminderUnknownPlaceholder() {
	relance := &domain.Relance{
		RelanceID: "r-1", CompanyID: "co-1", InvoiceID: "1",
		Tier: domain.TierAmicalReminder, DaysOverdue: 20,
		Amount: d("350.00"), Status: domain.RelancePending,
	}
	tpl := s.activeTemplate(domain.TierAmicalReminder)
	tpl.BodyText = "Bonjour {{clientPrenom}}"
	inv := overdueInvoice("1", 20, "350.00")

	s.relanceRepo.On("FindRelanceByID", s.ctx, "r-1").Return(relance, nil)
	s.templateRepo.On("FindActiveTemplateByTier", s.ctx, "co-1", domain.TierAmicalReminder).Return(tpl, nil)
	s.invoiceRepo.On("FindInvoiceByID", s.ctx, "1").Return(&inv, nil)
	s.companyRepo.On("FindCompanyByID", s.ctx, "co-1").Return(s.company(), nil)

	sent, err := s.service.SendReminder(s.ctx, "co-1", "r-1", false)
	assert.Nil(s.T(), sent)
	assert.ErrorIs(s.T(), err, apperrors.ErrTemplate)
	s.mailer.AssertNotCalled(s.T(), "Send", mock.Anything, mock.Anything)
	s.relanceRepo.AssertNotCalled(s.T(), "UpdateRelanceOutcome",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *DunningServiceTestSuite) TestSendReminderAlreadySent() {
	relance := &domain.Relance{
		RelanceID: "r-1", CompanyID: "co-1",
		Tier: domain.TierAmicalReminder, Status: domain.RelanceSent,
	}
	s.relanceRepo.On("FindRelanceByID", s.ctx, "r-1").Return(relance, nil)

	sent, err := s.service.SendReminder(s.ctx, "co-1", "r-1", true)
	assert.Nil(s.T(), sent)
	assert.ErrorIs(s.T(), err, apperrors.ErrValidation)
}

func (s *DunningServiceTestSuite) TestSendReminderWrongCompany() {
	relance := &domain.Relance{RelanceID: "r-1", CompanyID: "co-2"}
	s.relanceRepo.On("FindRelanceByID", s.ctx, "r-1").Return(relance, nil)

	sent, err := s.service.SendReminder(s.ctx, "co-1", "r-1", false)
	assert.Nil(s.T(), sent)
	assert.ErrorIs(s.T(), err, apperrors.ErrNotFound)
}

func (s *DunningServiceTestSuite) TestRunDailyDunningReport() {
	// No new generation; three pending reminders drive the send phase:
	// tier 1 sends, tier 2 hits a failing relay, tier 3 awaits validation.
	s.invoiceRepo.On("ListOverdueInvoices", s.ctx, "co-1", today).
		Return([]domain.Invoice{}, nil)

	pending := []domain.Relance{
		{RelanceID: "r-1", CompanyID: "co-1", InvoiceID: "1", Tier: domain.TierAmicalReminder, DaysOverdue: 16, Amount: d("200.00"), Status: domain.RelancePending},
		{RelanceID: "r-2", CompanyID: "co-1", InvoiceID: "2", Tier: domain.TierFirmReminder, DaysOverdue: 31, Amount: d("400.00"), Status: domain.RelancePending},
		{RelanceID: "r-3", CompanyID: "co-1", InvoiceID: "3", Tier: domain.TierFormalNotice, DaysOverdue: 46, Amount: d("600.00"), Status: domain.RelancePending},
	}
	s.relanceRepo.On("ListRelancesByCompany", s.ctx, "co-1", domain.RelancePending, 0, 0).
		Return(pending, nil)
	for i := range pending {
		r := pending[i]
		s.relanceRepo.On("FindRelanceByID", s.ctx, r.RelanceID).Return(&r, nil)
	}

	inv1 := overdueInvoice("1", 16, "200.00")
	inv2 := overdueInvoice("2", 31, "400.00")
	s.templateRepo.On("FindActiveTemplateByTier", s.ctx, "co-1", domain.TierAmicalReminder).
		Return(s.activeTemplate(domain.TierAmicalReminder), nil)
	s.templateRepo.On("FindActiveTemplateByTier", s.ctx, "co-1", domain.TierFirmReminder).
		Return(s.activeTemplate(domain.TierFirmReminder), nil)
	s.invoiceRepo.On("FindInvoiceByID", s.ctx, "1").Return(&inv1, nil)
	s.invoiceRepo.On("FindInvoiceByID", s.ctx, "2").Return(&inv2, nil)
	s.companyRepo.On("FindCompanyByID", s.ctx, "co-1").Return(s.company(), nil)

	s.mailer.On("Send", s.ctx, mock.MatchedBy(func(msg ports.EmailMessage) bool {
		return msg.To[0] == "client-1@example.fr"
	})).Return(nil)
	s.mailer.On("Send", s.ctx, mock.MatchedBy(func(msg ports.EmailMessage) bool {
		return msg.To[0] == "client-2@example.fr"
	})).Return(errors.New("relay refused"))

	s.relanceRepo.On("UpdateRelanceOutcome", s.ctx, "r-1", domain.RelanceSent, mock.Anything, mock.Anything, "").Return(nil)
	s.relanceRepo.On("UpdateRelanceOutcome", s.ctx, "r-2", domain.RelanceFailed, mock.Anything, (*time.Time)(nil), "relay refused").Return(nil)
	s.relanceRepo.On("UpdateRelanceOutcome", s.ctx, "r-3", domain.RelanceAwaitingValidation, "", (*time.Time)(nil), "").Return(nil)
	s.templateRepo.On("IncrementTemplateUsage", s.ctx, mock.Anything).Return(nil)

	report, err := s.service.RunDailyDunning(s.ctx, "co-1", today)
	require.NoError(s.T(), err)

	assert.Equal(s.T(), 0, report.Generated)
	assert.Equal(s.T(), 1, report.Sent)
	assert.Equal(s.T(), 1, report.Failed)
	assert.Equal(s.T(), 1, report.AwaitingValidation)
	assert.Equal(s.T(), []string{"r-1"}, report.SendSuccesses)
	require.Len(s.T(), report.SendFailures, 1)
	assert.Equal(s.T(), "r-2", report.SendFailures[0].ID)
}

func (s *DunningServiceTestSuite) TestRunDailyDunningSendsNewlyGenerated() {
	inv := overdueInvoice("1", 20, "350.00")
	s.invoiceRepo.On("ListOverdueInvoices", s.ctx, "co-1", today).
		Return([]domain.Invoice{inv}, nil)
	s.relanceRepo.On("FindRelanceByInvoiceAndTier", s.ctx, "1", domain.TierAmicalReminder).
		Return(nil, apperrors.ErrNotFound)

	// The generated id is random; capture the saved reminder so the send
	// phase lookup can hand it back.
	captured := &domain.Relance{}
	s.relanceRepo.On("SaveRelance", s.ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			*captured = args.Get(1).(domain.Relance)
		}).Return(nil)
	s.relanceRepo.On("ListRelancesByCompany", s.ctx, "co-1", domain.RelancePending, 0, 0).
		Return([]domain.Relance{}, nil)
	s.relanceRepo.On("FindRelanceByID", s.ctx, mock.MatchedBy(func(id string) bool {
		return id == captured.RelanceID
	})).Return(captured, nil)

	s.templateRepo.On("FindActiveTemplateByTier", s.ctx, "co-1", domain.TierAmicalReminder).
		Return(s.activeTemplate(domain.TierAmicalReminder), nil)
	s.invoiceRepo.On("FindInvoiceByID", s.ctx, "1").Return(&inv, nil)
	s.companyRepo.On("FindCompanyByID", s.ctx, "co-1").Return(s.company(), nil)
	s.mailer.On("Send", s.ctx, mock.Anything).Return(nil)
	s.relanceRepo.On("UpdateRelanceOutcome", s.ctx, mock.Anything, domain.RelanceSent, mock.Anything, mock.Anything, "").Return(nil)
	s.templateRepo.On("IncrementTemplateUsage", s.ctx, mock.Anything).Return(nil)

	report, err := s.service.RunDailyDunning(s.ctx, "co-1", today)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 1, report.Generated)
	assert.Equal(s.T(), 1, report.Sent)
	assert.Equal(s.T(), 0, report.Failed)
}

func (s *DunningServiceTestSuite) TestRunDailyDunningCountsGenerationErrors() {
	inv := overdueInvoice("1", 20, "350.00")
	s.invoiceRepo.On("ListOverdueInvoices", s.ctx, "co-1", today).
		Return([]domain.Invoice{inv}, nil)
	s.relanceRepo.On("FindRelanceByInvoiceAndTier", s.ctx, "1", domain.TierAmicalReminder).
		Return(nil, apperrors.ErrNotFound)
	s.relanceRepo.On("SaveRelance", s.ctx, mock.Anything).Return(errors.New("disk full"))
	s.relanceRepo.On("ListRelancesByCompany", s.ctx, "co-1", domain.RelancePending, 0, 0).
		Return([]domain.Relance{}, nil)

	report, err := s.service.RunDailyDunning(s.ctx, "co-1", today)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 0, report.Generated)
	assert.Equal(s.T(), 0, report.Sent)
	assert.Equal(s.T(), 1, report.Failed)
	require.Len(s.T(), report.GenerationErrors, 1)
	assert.Equal(s.T(), "1", report.GenerationErrors[0].ID)
}

func (s *DunningServiceTestSuite) TestRunDailyDunningStorageFailure() {
	s.invoiceRepo.On("ListOverdueInvoices", s.ctx, "co-1", today).
		Return(nil, errors.New("connection reset"))

	report, err := s.service.RunDailyDunning(s.ctx, "co-1", today)
	assert.Nil(s.T(), report)
	assert.ErrorIs(s.T(), err, apperrors.ErrStorageUnavailable)
}
