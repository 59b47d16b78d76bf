package handlers_test

import (
	"net/http"

	"github.com/revlo/revlo_ledger/internal/core/domain"
	"github.com/revlo/revlo_ledger/internal/dto"
	"github.com/stretchr/testify/mock"
)

func (s *HandlerTestSuite) TestCreateCompany() {
	usd := "usd"
	s.companies.On("CreateCompany", mock.Anything,
		dto.CreateCompanyRequest{Name: "Revlo Renovations", DefaultCurrencyCode: &usd}, testUserID,
	).Return(&domain.Company{CompanyID: testCompanyID, Name: "Revlo Renovations", IsActive: true}, nil).Once()

	w := s.serve(http.MethodPost, "/api/v1/companies", `{"name":"Revlo Renovations","defaultCurrencyCode":"usd"}`)

	s.Equal(http.StatusCreated, w.Code, w.Body.String())
}

func (s *HandlerTestSuite) TestCreateCompany_UnknownCurrency() {
	w := s.serve(http.MethodPost, "/api/v1/companies", `{"name":"Revlo","defaultCurrencyCode":"ZZ"}`)

	s.assertError(w, http.StatusBadRequest, "VALIDATION")
}

func (s *HandlerTestSuite) TestAddUserToCompany() {
	req := dto.AddUserToCompanyRequest{UserID: "user-2", Role: domain.RoleMember}
	s.companies.On("AddUserToCompany", mock.Anything, testUserID, testCompanyID, req).Return(nil).Once()

	w := s.serve(http.MethodPost, companyURL("/users"), req)

	s.Equal(http.StatusNoContent, w.Code, w.Body.String())
}

func (s *HandlerTestSuite) TestAddUserToCompany_RejectsRemovedRole() {
	w := s.serve(http.MethodPost, companyURL("/users"), `{"userID":"user-2","role":"REMOVED"}`)

	s.assertError(w, http.StatusBadRequest, "VALIDATION")
}
