package handlers_test

import (
	"net/http"

	"github.com/revlo/revlo_ledger/internal/apperrors"
	"github.com/revlo/revlo_ledger/internal/core/domain"
	"github.com/revlo/revlo_ledger/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (s *HandlerTestSuite) TestCreateCounterparty() {
	s.counterparties.On("CreateCounterparty", mock.Anything, testCompanyID,
		dto.CreateCounterpartyRequest{Kind: domain.KindCustomer, Name: "Acme"}, testUserID,
	).Return(&domain.Counterparty{CounterpartyID: "cp-1", CompanyID: testCompanyID, Kind: domain.KindCustomer, Name: "Acme"}, nil).Once()

	w := s.serve(http.MethodPost, companyURL("/counterparties"), `{"kind":"CUSTOMER","name":"Acme"}`)

	s.Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp dto.CounterpartyResponse
	s.decode(w, &resp)
	s.Equal("cp-1", resp.CounterpartyID)
}

func (s *HandlerTestSuite) TestCreateCounterparty_InvalidEmail() {
	w := s.serve(http.MethodPost, companyURL("/counterparties"), `{"kind":"VENDOR","name":"Supplier","email":"not-an-email"}`)

	s.assertError(w, http.StatusBadRequest, "VALIDATION")
}

func (s *HandlerTestSuite) TestListCounterparties_KindFilter() {
	s.counterparties.On("ListCounterparties", mock.Anything, testCompanyID, testUserID,
		mock.MatchedBy(func(p dto.ListCounterpartiesParams) bool {
			return p.Kind != nil && *p.Kind == domain.KindVendor && p.Limit == 20
		}),
	).Return([]domain.Counterparty{{CounterpartyID: "cp-2", Kind: domain.KindVendor}}, nil).Once()

	w := s.serve(http.MethodGet, companyURL("/counterparties?kind=VENDOR"), nil)

	s.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.ListCounterpartiesResponse
	s.decode(w, &resp)
	s.Require().Len(resp.Counterparties, 1)
	s.Equal(domain.KindVendor, resp.Counterparties[0].Kind)
}

func (s *HandlerTestSuite) TestGetDebtSummary() {
	s.counterparties.On("GetDebtSummary", mock.Anything, testCompanyID, "cp-1", testUserID).
		Return(&domain.DebtSummary{
			CounterpartyID: "cp-1",
			TotalDebt:      decimal.NewFromInt(1000),
			TotalPaid:      decimal.NewFromInt(400),
			RemainingDebt:  decimal.NewFromInt(600),
			IsFullyPaid:    false,
		}, nil).Once()

	w := s.serve(http.MethodGet, companyURL("/counterparties/cp-1/debt-summary"), nil)

	s.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.DebtSummaryResponse
	s.decode(w, &resp)
	s.True(resp.TotalDebt.Equal(decimal.NewFromInt(1000)))
	s.True(resp.TotalPaid.Equal(decimal.NewFromInt(400)))
	s.True(resp.RemainingDebt.Equal(decimal.NewFromInt(600)))
	s.False(resp.IsFullyPaid)
}

func (s *HandlerTestSuite) TestGetDebtSummary_Employee() {
	s.counterparties.On("GetDebtSummary", mock.Anything, testCompanyID, "emp-1", testUserID).
		Return(nil, apperrors.NewValidationError("counterparty emp-1 is an employee")).Once()

	w := s.serve(http.MethodGet, companyURL("/counterparties/emp-1/debt-summary"), nil)

	s.assertError(w, http.StatusBadRequest, "VALIDATION")
}
