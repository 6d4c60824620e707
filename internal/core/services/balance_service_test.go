package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/heliowash/backoffice/internal/apperrors"
	"github.com/heliowash/backoffice/internal/core/domain"
)

func d(v string) decimal.Decimal {
	dec, err := decimal.NewFromString(v)
	if err != nil {
		panic(err)
	}
	return dec
}

func saleEntry(id string, date time.Time, amount string) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:        id,
		CompanyID:      "co-1",
		EntryDate:      date,
		DocumentNumber: "FAC-" + id,
		Label:          "Prestation nettoyage",
		SourceType:     domain.SourceCustomerInvoice,
		Status:         domain.EntryValidated,
		Lines: []domain.EntryLine{
			{EntryID: id, AccountNumber: "512000", Debit: d(amount), Credit: decimal.Zero},
			{EntryID: id, AccountNumber: "706000", Debit: decimal.Zero, Credit: d(amount)},
		},
	}
}

type BalanceServiceTestSuite struct {
	suite.Suite
	entryRepo   *MockEntryRepo
	accountRepo *MockAccountRepo
	service     *balanceService
	ctx         context.Context
	from, to    time.Time
}

func (s *BalanceServiceTestSuite) SetupTest() {
	s.entryRepo = new(MockEntryRepo)
	s.accountRepo = new(MockAccountRepo)
	s.service = NewBalanceService(s.entryRepo, s.accountRepo).(*balanceService)
	s.ctx = context.Background()
	s.from = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.to = time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
}

func TestBalanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BalanceServiceTestSuite))
}

func (s *BalanceServiceTestSuite) TestComputeBalanceAggregatesPerAccount() {
	entries := []domain.JournalEntry{
		saleEntry("e1", s.from.AddDate(0, 0, 5), "1200.00"),
		saleEntry("e2", s.from.AddDate(0, 1, 0), "800.00"),
	}
	labels := map[string]string{
		"512000": "Banque",
		"706000": "Prestations de services",
	}
	s.entryRepo.On("ListEntriesByPeriod", s.ctx, "co-1", s.from, s.to).Return(entries, nil)
	s.accountRepo.On("LabelsByNumber", s.ctx, "co-1").Return(labels, nil)

	rows, err := s.service.ComputeBalance(s.ctx, "co-1", s.from, s.to)
	require.NoError(s.T(), err)
	require.Len(s.T(), rows, 2)

	// Sorted by class: 512000 (class 5) before 706000 (class 7)
	assert.Equal(s.T(), "512000", rows[0].AccountNumber)
	assert.Equal(s.T(), "Banque", rows[0].Label)
	assert.True(s.T(), rows[0].TotalDebit.Equal(d("2000.00")))
	assert.True(s.T(), rows[0].TotalCredit.IsZero())
	assert.True(s.T(), rows[0].Solde.Equal(d("2000.00")))

	assert.Equal(s.T(), "706000", rows[1].AccountNumber)
	assert.True(s.T(), rows[1].TotalCredit.Equal(d("2000.00")))
	assert.True(s.T(), rows[1].Solde.Equal(d("-2000.00")))
}

func (s *BalanceServiceTestSuite) TestComputeBalanceReconcilesWithJournal() {
	entries := []domain.JournalEntry{
		saleEntry("e1", s.from, "150.50"),
		saleEntry("e2", s.from.AddDate(0, 0, 1), "99.99"),
		saleEntry("e3", s.from.AddDate(0, 0, 2), "1234.56"),
	}
	s.entryRepo.On("ListEntriesByPeriod", s.ctx, "co-1", s.from, s.to).Return(entries, nil)
	s.accountRepo.On("LabelsByNumber", s.ctx, "co-1").Return(map[string]string{}, nil)

	rows, err := s.service.ComputeBalance(s.ctx, "co-1", s.from, s.to)
	require.NoError(s.T(), err)

	journalDebit := decimal.Zero
	journalCredit := decimal.Zero
	for _, e := range entries {
		journalDebit = journalDebit.Add(e.TotalDebit())
		journalCredit = journalCredit.Add(e.TotalCredit())
	}
	balanceDebit := decimal.Zero
	balanceCredit := decimal.Zero
	for _, row := range rows {
		balanceDebit = balanceDebit.Add(row.TotalDebit)
		balanceCredit = balanceCredit.Add(row.TotalCredit)
	}

	assert.True(s.T(), balanceDebit.Equal(journalDebit))
	assert.True(s.T(), balanceCredit.Equal(journalCredit))
}

func (s *BalanceServiceTestSuite) TestComputeBalanceInvalidRange() {
	rows, err := s.service.ComputeBalance(s.ctx, "co-1", s.to, s.from)
	assert.Nil(s.T(), rows)
	assert.ErrorIs(s.T(), err, apperrors.ErrInvalidRange)
	s.entryRepo.AssertNotCalled(s.T(), "ListEntriesByPeriod", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *BalanceServiceTestSuite) TestComputeBalanceStorageFailureReturnsNothing() {
	s.entryRepo.On("ListEntriesByPeriod", s.ctx, "co-1", s.from, s.to).
		Return(nil, errors.New("connection reset"))

	rows, err := s.service.ComputeBalance(s.ctx, "co-1", s.from, s.to)
	assert.Nil(s.T(), rows)
	assert.ErrorIs(s.T(), err, apperrors.ErrStorageUnavailable)
}

func (s *BalanceServiceTestSuite) TestComputeBalanceLabelFailureReturnsNothing() {
	s.entryRepo.On("ListEntriesByPeriod", s.ctx, "co-1", s.from, s.to).
		Return([]domain.JournalEntry{saleEntry("e1", s.from, "10.00")}, nil)
	s.accountRepo.On("LabelsByNumber", s.ctx, "co-1").Return(nil, errors.New("connection reset"))

	rows, err := s.service.ComputeBalance(s.ctx, "co-1", s.from, s.to)
	assert.Nil(s.T(), rows)
	assert.ErrorIs(s.T(), err, apperrors.ErrStorageUnavailable)
}

func (s *BalanceServiceTestSuite) TestComputeBalanceEmptyPeriod() {
	s.entryRepo.On("ListEntriesByPeriod", s.ctx, "co-1", s.from, s.to).
		Return([]domain.JournalEntry{}, nil)
	s.accountRepo.On("LabelsByNumber", s.ctx, "co-1").Return(map[string]string{}, nil)

	rows, err := s.service.ComputeBalance(s.ctx, "co-1", s.from, s.to)
	require.NoError(s.T(), err)
	assert.Empty(s.T(), rows)
}

func TestAggregateEntriesRetainsZeroRows(t *testing.T) {
	entry := domain.JournalEntry{
		EntryID: "e1",
		Lines: []domain.EntryLine{
			{AccountNumber: "411000", Debit: d("500.00"), Credit: decimal.Zero},
			{AccountNumber: "411000", Debit: decimal.Zero, Credit: d("500.00")},
		},
	}

	rows := AggregateEntries([]domain.JournalEntry{entry}, nil)
	require.Len(t, rows, 1)
	assert.Equal(t, "411000", rows[0].AccountNumber)
	assert.True(t, rows[0].Solde.IsZero())
	assert.True(t, rows[0].TotalDebit.Equal(d("500.00")))
}

func TestAggregateEntriesDeterministicOrder(t *testing.T) {
	entries := []domain.JournalEntry{
		saleEntry("e1", time.Now(), "10.00"),
		{
			EntryID: "e2",
			Lines: []domain.EntryLine{
				{AccountNumber: "601000", Debit: d("40.00")},
				{AccountNumber: "401000", Credit: d("40.00")},
			},
		},
	}

	first := AggregateEntries(entries, nil)
	second := AggregateEntries(entries, nil)
	require.Equal(t, first, second)

	// Class order: 4, 5, 6, 7
	var numbers []string
	for _, row := range first {
		numbers = append(numbers, row.AccountNumber)
	}
	assert.Equal(t, []string{"401000", "512000", "601000", "706000"}, numbers)
}

func TestFilterBalanceRows(t *testing.T) {
	rows := []domain.BalanceRow{
		{AccountNumber: "411000", Class: "4", Solde: d("120.00")},
		{AccountNumber: "401000", Class: "4", Solde: d("-80.00")},
		{AccountNumber: "512000", Class: "5", Solde: decimal.Zero},
		{AccountNumber: "706000", Class: "7", Solde: d("-300.00")},
	}

	byClass := FilterBalanceRows(rows, domain.BalanceFilter{Class: "4"})
	assert.Len(t, byClass, 2)

	debtors := FilterBalanceRows(rows, domain.BalanceFilter{Side: domain.SideDebtor})
	require.Len(t, debtors, 1)
	assert.Equal(t, "411000", debtors[0].AccountNumber)

	creditors := FilterBalanceRows(rows, domain.BalanceFilter{Side: domain.SideCreditor})
	assert.Len(t, creditors, 2)

	zero := FilterBalanceRows(rows, domain.BalanceFilter{Side: domain.SideZero})
	require.Len(t, zero, 1)
	assert.Equal(t, "512000", zero[0].AccountNumber)

	both := FilterBalanceRows(rows, domain.BalanceFilter{Class: "4", Side: domain.SideCreditor})
	require.Len(t, both, 1)
	assert.Equal(t, "401000", both[0].AccountNumber)

	// Filtering never mutates the input aggregation
	assert.Len(t, rows, 4)
}
