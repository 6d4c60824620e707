package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/heliowash/backoffice/internal/apperrors"
	"github.com/heliowash/backoffice/internal/core/domain"
	"github.com/heliowash/backoffice/internal/dto"
)

type AccountServiceTestSuite struct {
	suite.Suite
	accountRepo *MockAccountRepo
	service     *accountService
	ctx         context.Context
}

func (s *AccountServiceTestSuite) SetupTest() {
	s.accountRepo = new(MockAccountRepo)
	s.service = NewAccountService(s.accountRepo).(*accountService)
	s.ctx = context.Background()
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}

func (s *AccountServiceTestSuite) TestCreateAccountDerivesClass() {
	req := dto.CreateAccountRequest{Number: "706000", Label: "Prestations de services"}
	s.accountRepo.On("FindAccountByNumber", s.ctx, "co-1", "706000").
		Return(nil, apperrors.ErrNotFound)
	s.accountRepo.On("SaveAccount", s.ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.Class == domain.ClassProduits &&
			a.SubClass == "70" &&
			a.IsActive
	})).Return(nil)

	account, err := s.service.CreateAccount(s.ctx, "co-1", req, "user-1")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), domain.ClassProduits, account.Class)
	assert.Equal(s.T(), "70", account.SubClass)
	assert.True(s.T(), account.IsActive)
}

func (s *AccountServiceTestSuite) TestCreateAccountRejectsBadClassDigit() {
	for _, number := range []string{"906000", "011000", "X11000", ""} {
		req := dto.CreateAccountRequest{Number: number, Label: "Compte invalide"}

		account, err := s.service.CreateAccount(s.ctx, "co-1", req, "user-1")
		assert.Nil(s.T(), account)
		assert.ErrorIs(s.T(), err, ErrAccountClass)
	}
	s.accountRepo.AssertNotCalled(s.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (s *AccountServiceTestSuite) TestCreateAccountRejectsDuplicateNumber() {
	req := dto.CreateAccountRequest{Number: "706000", Label: "Prestations de services"}
	s.accountRepo.On("FindAccountByNumber", s.ctx, "co-1", "706000").
		Return(activeAccount("706000"), nil)

	account, err := s.service.CreateAccount(s.ctx, "co-1", req, "user-1")
	assert.Nil(s.T(), account)
	assert.ErrorIs(s.T(), err, apperrors.ErrDuplicate)
}

func (s *AccountServiceTestSuite) TestCreateAccountVATMismatchAccepted() {
	// A deductible-VAT flag on a revenue account is suspicious but legal;
	// mixed accounts exist in practice.
	req := dto.CreateAccountRequest{Number: "706000", Label: "Prestations", VATDeductible: true}
	s.accountRepo.On("FindAccountByNumber", s.ctx, "co-1", "706000").
		Return(nil, apperrors.ErrNotFound)
	s.accountRepo.On("SaveAccount", s.ctx, mock.Anything).Return(nil)

	account, err := s.service.CreateAccount(s.ctx, "co-1", req, "user-1")
	require.NoError(s.T(), err)
	assert.True(s.T(), account.VATDeductible)
}

func (s *AccountServiceTestSuite) TestUpdateAccountKeepsNumberImmutable() {
	stored := activeAccount("706000")
	stored.AccountID = "acc-1"
	s.accountRepo.On("FindAccountByID", s.ctx, "acc-1").Return(stored, nil)
	s.accountRepo.On("UpdateAccount", s.ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.Number == "706000" && a.Class == domain.ClassProduits && a.Label == "Nettoyage panneaux"
	})).Return(nil)

	label := "Nettoyage panneaux"
	account, err := s.service.UpdateAccount(s.ctx, "co-1", "acc-1", dto.UpdateAccountRequest{Label: &label}, "user-1")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Nettoyage panneaux", account.Label)
	assert.Equal(s.T(), "706000", account.Number)
}

func (s *AccountServiceTestSuite) TestGetAccountScopedToCompany() {
	foreign := activeAccount("706000")
	foreign.CompanyID = "co-2"
	s.accountRepo.On("FindAccountByID", s.ctx, foreign.AccountID).Return(foreign, nil)

	account, err := s.service.GetAccountByID(s.ctx, "co-1", foreign.AccountID)
	assert.Nil(s.T(), account)
	assert.ErrorIs(s.T(), err, apperrors.ErrNotFound)
}

func (s *AccountServiceTestSuite) TestDeactivateAccount() {
	stored := activeAccount("706000")
	stored.AccountID = "acc-1"
	s.accountRepo.On("FindAccountByID", s.ctx, "acc-1").Return(stored, nil)
	s.accountRepo.On("DeactivateAccount", s.ctx, "acc-1", "user-1", mock.Anything).Return(nil)

	err := s.service.DeactivateAccount(s.ctx, "co-1", "acc-1", "user-1")
	require.NoError(s.T(), err)
	s.accountRepo.AssertExpectations(s.T())
}
