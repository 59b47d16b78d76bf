package handlers_test

import (
	"net/http"

	"github.com/revlo/revlo_ledger/internal/apperrors"
	"github.com/revlo/revlo_ledger/internal/core/domain"
	"github.com/revlo/revlo_ledger/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (s *HandlerTestSuite) TestCreateAccount() {
	opening := decimal.NewFromInt(500)
	s.accounts.On("CreateAccount", mock.Anything, testCompanyID,
		mock.MatchedBy(func(req dto.CreateAccountRequest) bool {
			return req.Name == "Main bank" && req.AccountType == domain.AccountBank &&
				req.OpeningBalance != nil && req.OpeningBalance.Equal(opening)
		}), testUserID,
	).Return(&domain.Account{
		AccountID:    "acc-1",
		CompanyID:    testCompanyID,
		Name:         "Main bank",
		AccountType:  domain.AccountBank,
		CurrencyCode: "USD",
		IsActive:     true,
		Balance:      opening,
	}, nil).Once()

	w := s.serve(http.MethodPost, companyURL("/accounts"),
		`{"name":"Main bank","accountType":"BANK","currencyCode":"USD","openingBalance":"500"}`)

	s.Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp dto.AccountResponse
	s.decode(w, &resp)
	s.Equal("acc-1", resp.AccountID)
	s.Equal("500.00", resp.FormattedBalance)
}

func (s *HandlerTestSuite) TestCreateAccount_RejectsUnknownType() {
	w := s.serve(http.MethodPost, companyURL("/accounts"), `{"name":"Wallet","accountType":"CRYPTO","currencyCode":"USD"}`)

	s.assertError(w, http.StatusBadRequest, "VALIDATION")
}

func (s *HandlerTestSuite) TestGetAccount_Forbidden() {
	s.accounts.On("GetAccountByID", mock.Anything, testCompanyID, "acc-1", testUserID).
		Return(nil, apperrors.ErrForbidden).Once()

	w := s.serve(http.MethodGet, companyURL("/accounts/acc-1"), nil)

	s.assertError(w, http.StatusForbidden, "FORBIDDEN")
}

func (s *HandlerTestSuite) TestListTransactionsByAccount() {
	next := "bmV4dA"
	s.ledger.On("ListTransactionsByAccount", mock.Anything, testCompanyID, "acc-1", testUserID,
		mock.MatchedBy(func(p dto.ListTransactionsParams) bool {
			return p.Limit == 2 && p.NextToken == nil
		}),
	).Return([]domain.Transaction{
		*sampleTransaction("t3", domain.Expense, 3),
		*sampleTransaction("t2", domain.Income, 2),
	}, &next, nil).Once()

	w := s.serve(http.MethodGet, companyURL("/accounts/acc-1/transactions?limit=2"), nil)

	s.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.ListTransactionsResponse
	s.decode(w, &resp)
	s.Require().Len(resp.Transactions, 2)
	s.Equal("t3", resp.Transactions[0].TransactionID)
	s.Require().NotNil(resp.NextToken)
	s.Equal(next, *resp.NextToken)
}

func (s *HandlerTestSuite) TestListTransactionsByAccount_ForwardsToken() {
	s.ledger.On("ListTransactionsByAccount", mock.Anything, testCompanyID, "acc-1", testUserID,
		mock.MatchedBy(func(p dto.ListTransactionsParams) bool {
			return p.Limit == 20 && p.NextToken != nil && *p.NextToken == "abc"
		}),
	).Return([]domain.Transaction{}, nil, nil).Once()

	w := s.serve(http.MethodGet, companyURL("/accounts/acc-1/transactions?nextToken=abc"), nil)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.ListTransactionsResponse
	s.decode(w, &resp)
	s.Nil(resp.NextToken)
}

func (s *HandlerTestSuite) TestListTransactionsByAccount_LimitOutOfRange() {
	w := s.serve(http.MethodGet, companyURL("/accounts/acc-1/transactions?limit=500"), nil)

	s.assertError(w, http.StatusBadRequest, "VALIDATION")
}

func (s *HandlerTestSuite) TestReconcileAccount_Repair() {
	s.accounts.On("ReconcileAccount", mock.Anything, testCompanyID, "acc-1", testUserID, true).
		Return(&domain.AccountReconciliation{
			AccountID:      "acc-1",
			StoredBalance:  decimal.NewFromInt(120),
			DerivedBalance: decimal.NewFromInt(100),
			Drift:          decimal.NewFromInt(20),
			Repaired:       true,
		}, nil).Once()

	w := s.serve(http.MethodPost, companyURL("/accounts/acc-1/reconcile?repair=true"), nil)

	s.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp domain.AccountReconciliation
	s.decode(w, &resp)
	s.True(resp.Repaired)
	s.True(resp.Drift.Equal(decimal.NewFromInt(20)))
}
