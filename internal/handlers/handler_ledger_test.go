package handlers_test

import (
	"errors"
	"net/http"

	"github.com/revlo/revlo_ledger/internal/apperrors"
	"github.com/revlo/revlo_ledger/internal/core/domain"
	"github.com/revlo/revlo_ledger/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func strPtr(s string) *string { return &s }

func sampleTransaction(id string, typ domain.TransactionType, amount int64) *domain.Transaction {
	return &domain.Transaction{
		TransactionID: id,
		CompanyID:     testCompanyID,
		Type:          typ,
		Amount:        decimal.NewFromInt(amount),
		CurrencyCode:  "USD",
		AccountID:     strPtr("acc-1"),
	}
}

func (s *HandlerTestSuite) TestPostTransaction_HeaderKeyOverridesBody() {
	s.ledger.On("PostTransaction", mock.Anything, testCompanyID,
		mock.MatchedBy(func(req dto.PostTransactionRequest) bool {
			return req.Type == domain.Income &&
				req.Amount.Equal(decimal.NewFromInt(250)) &&
				req.IdempotencyKey != nil && *req.IdempotencyKey == "header-key"
		}), testUserID,
	).Return(sampleTransaction("txn-1", domain.Income, 250), nil).Once()

	body := `{"type":"INCOME","amount":"250","currencyCode":"usd","accountID":"acc-1","idempotencyKey":"body-key"}`
	w := s.serve(http.MethodPost, companyURL("/transactions"), body, "Idempotency-Key", "header-key")

	s.Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp dto.TransactionResponse
	s.decode(w, &resp)
	s.Equal("txn-1", resp.TransactionID)
	s.True(resp.Amount.Equal(decimal.NewFromInt(250)))
}

func (s *HandlerTestSuite) TestPostTransaction_BodyKeyUsedWithoutHeader() {
	s.ledger.On("PostTransaction", mock.Anything, testCompanyID,
		mock.MatchedBy(func(req dto.PostTransactionRequest) bool {
			return req.IdempotencyKey != nil && *req.IdempotencyKey == "body-key"
		}), testUserID,
	).Return(sampleTransaction("txn-1", domain.Expense, 10), nil).Once()

	w := s.serve(http.MethodPost, companyURL("/transactions"), `{"type":"EXPENSE","amount":"10","idempotencyKey":"body-key"}`)

	s.Equal(http.StatusCreated, w.Code)
}

func (s *HandlerTestSuite) TestPostTransaction_BindingErrors() {
	tests := []struct {
		name string
		body string
	}{
		{"transfer legs are not postable", `{"type":"TRANSFER_IN","amount":"10"}`},
		{"missing type", `{"amount":"10"}`},
		{"unknown currency", `{"type":"INCOME","amount":"10","currencyCode":"US"}`},
		{"malformed json", `{"type":`},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := s.serve(http.MethodPost, companyURL("/transactions"), tt.body)
			s.assertError(w, http.StatusBadRequest, string(apperrors.KindValidation))
		})
	}
	s.ledger.AssertNotCalled(s.T(), "PostTransaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestPostTransaction_ErrorKinds() {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{
			name:       "validation",
			err:        apperrors.NewValidationError("amount must be positive"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION",
		},
		{
			name:       "duplicate idempotency key",
			err:        apperrors.NewLedgerError(apperrors.KindConflict, "post transaction", apperrors.ErrDuplicate),
			wantStatus: http.StatusConflict,
			wantCode:   "CONFLICT",
		},
		{
			name:       "overdraft blocked",
			err:        apperrors.NewLedgerError(apperrors.KindInsufficientFunds, "post transaction", nil),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "INSUFFICIENT_FUNDS",
		},
		{
			name:       "cross tenant looks like not found",
			err:        apperrors.NewCrossTenantError("account", "acc-9"),
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
			wantMsg:    "resource not found",
		},
		{
			name:       "internal error text is hidden",
			err:        errors.New("dial tcp 10.0.0.5:5432: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL",
			wantMsg:    "Failed to record transaction",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.ledger.On("PostTransaction", mock.Anything, testCompanyID, mock.Anything, testUserID).
				Return(nil, tt.err).Once()

			w := s.serve(http.MethodPost, companyURL("/transactions"), `{"type":"EXPENSE","amount":"10","accountID":"acc-1"}`)

			resp := s.assertError(w, tt.wantStatus, tt.wantCode)
			if tt.wantMsg != "" {
				s.Equal(tt.wantMsg, resp.Error)
			}
		})
	}
}

func (s *HandlerTestSuite) TestAPIKeyAuthentication() {
	s.tokens.On("ValidateToken", mock.Anything, "rvl_tok.secret").Return("bot-user", nil).Once()
	s.ledger.On("GetTransactionByID", mock.Anything, testCompanyID, "txn-1", "bot-user").
		Return(sampleTransaction("txn-1", domain.Expense, 5), nil).Once()

	w := s.serve(http.MethodGet, companyURL("/transactions/txn-1"), nil,
		"Authorization", "", "X-API-Key", "rvl_tok.secret")

	s.Equal(http.StatusOK, w.Code, w.Body.String())
}

func (s *HandlerTestSuite) TestInvalidAPIKeyWithoutJWT() {
	s.tokens.On("ValidateToken", mock.Anything, "rvl_bad.secret").Return("", apperrors.ErrUnauthorized).Once()

	w := s.serve(http.MethodGet, companyURL("/transactions/txn-1"), nil,
		"Authorization", "", "X-API-Key", "rvl_bad.secret")

	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *HandlerTestSuite) TestTransferFunds() {
	group := "grp-1"
	s.ledger.On("TransferFunds", mock.Anything, testCompanyID,
		mock.MatchedBy(func(req dto.TransferFundsRequest) bool {
			return req.FromAccountID == "acc-a" && req.ToAccountID == "acc-b" &&
				req.Amount.Equal(decimal.NewFromInt(100)) && req.Fee.Equal(decimal.NewFromInt(2)) &&
				req.IdempotencyKey != nil && *req.IdempotencyKey == "tr-1"
		}), testUserID,
	).Return(&domain.TransferResult{
		TransferGroupID: group,
		FromAccountID:   "acc-a",
		ToAccountID:     "acc-b",
		FromBalance:     decimal.NewFromInt(398),
		ToBalance:       decimal.NewFromInt(100),
	}, nil).Once()

	body := map[string]any{"fromAccountID": "acc-a", "toAccountID": "acc-b", "amount": "100", "fee": "2"}
	w := s.serve(http.MethodPost, companyURL("/transfers"), body, "Idempotency-Key", "tr-1")

	s.Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp dto.TransferResponse
	s.decode(w, &resp)
	s.Equal(group, resp.TransferGroupID)
	s.True(resp.FromBalance.Equal(decimal.NewFromInt(398)))
}

func (s *HandlerTestSuite) TestTransferFunds_RequiresBothAccounts() {
	w := s.serve(http.MethodPost, companyURL("/transfers"), `{"fromAccountID":"acc-a","amount":"1"}`)

	s.assertError(w, http.StatusBadRequest, "VALIDATION")
}

func (s *HandlerTestSuite) TestDeleteTransaction() {
	s.ledger.On("DeleteTransaction", mock.Anything, testCompanyID, "txn-1", testUserID).Return(nil).Once()
	s.ledger.On("DeleteTransaction", mock.Anything, testCompanyID, "leg-1", testUserID).
		Return(apperrors.NewValidationError("transaction leg-1 is part of transfer grp-1")).Once()

	s.Equal(http.StatusNoContent, s.serve(http.MethodDelete, companyURL("/transactions/txn-1"), nil).Code)
	s.assertError(s.serve(http.MethodDelete, companyURL("/transactions/leg-1"), nil), http.StatusBadRequest, "VALIDATION")
}

func (s *HandlerTestSuite) TestDeleteTransfer() {
	s.ledger.On("DeleteTransfer", mock.Anything, testCompanyID, "grp-1", testUserID).Return(nil).Once()

	w := s.serve(http.MethodDelete, companyURL("/transfers/grp-1"), nil)

	s.Equal(http.StatusNoContent, w.Code)
}

func (s *HandlerTestSuite) TestReverseTransaction_Twice() {
	reversed := sampleTransaction("txn-1", domain.Income, 40)
	reversed.IsReversed = true
	s.ledger.On("ReverseTransaction", mock.Anything, testCompanyID, "txn-1", testUserID).Return(reversed, nil).Once()
	s.ledger.On("ReverseTransaction", mock.Anything, testCompanyID, "txn-1", testUserID).
		Return(nil, apperrors.NewLedgerError(apperrors.KindConflict, "reverse transaction", nil)).Once()

	first := s.serve(http.MethodPost, companyURL("/transactions/txn-1/reverse"), nil)
	s.Equal(http.StatusOK, first.Code)
	var resp dto.TransactionResponse
	s.decode(first, &resp)
	s.True(resp.IsReversed)

	s.assertError(s.serve(http.MethodPost, companyURL("/transactions/txn-1/reverse"), nil), http.StatusConflict, "CONFLICT")
}

func (s *HandlerTestSuite) TestUpdateTransactionAmount() {
	s.ledger.On("UpdateTransactionAmount", mock.Anything, testCompanyID, "txn-1",
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.RequireFromString("75.50")) }),
		testUserID,
	).Return(sampleTransaction("txn-1", domain.Expense, 75), nil).Once()

	w := s.serve(http.MethodPatch, companyURL("/transactions/txn-1/amount"), `{"amount":"75.50"}`)

	s.Equal(http.StatusOK, w.Code, w.Body.String())
}

func (s *HandlerTestSuite) TestFindDuplicates() {
	s.ledger.On("FindDuplicateTransactions", mock.Anything, testCompanyID, testUserID).Return([]domain.DuplicateGroup{
		{AccountID: "acc-1", Type: domain.Expense, Amount: decimal.NewFromInt(9), TransactionIDs: []string{"t1", "t2"}},
	}, nil).Once()

	w := s.serve(http.MethodGet, companyURL("/transactions/duplicates"), nil)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.DuplicateGroupsResponse
	s.decode(w, &resp)
	s.Require().Len(resp.Groups, 1)
	s.Equal([]string{"t1", "t2"}, resp.Groups[0].TransactionIDs)
}
