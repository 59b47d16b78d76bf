package handlers_test

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/revlo/revlo_ledger/internal/apperrors"
	"github.com/revlo/revlo_ledger/internal/core/domain"
	"github.com/revlo/revlo_ledger/internal/dto"
	"github.com/stretchr/testify/mock"
)

func (s *HandlerTestSuite) TestCreateAPIToken() {
	expires := time.Now().Add(time.Hour).UTC()
	s.tokens.On("CreateToken", mock.Anything, testUserID, "Telegram bot",
		mock.MatchedBy(func(d *time.Duration) bool { return d != nil && *d == time.Hour }),
	).Return("rvl_tok-1.secret", &domain.APIToken{ID: "tok-1", UserID: testUserID, Name: "Telegram bot", TokenHash: "hash", ExpiresAt: &expires}, nil).Once()

	w := s.serve(http.MethodPost, "/api/v1/tokens", `{"name":"Telegram bot","expiresIn":3600}`)

	s.Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp dto.CreateAPITokenResponse
	s.decode(w, &resp)
	s.Equal("rvl_tok-1.secret", resp.Token)
	s.Equal("tok-1", resp.Details.ID)
	s.NotContains(w.Body.String(), "hash")
}

func (s *HandlerTestSuite) TestCreateAPIToken_NameTooShort() {
	w := s.serve(http.MethodPost, "/api/v1/tokens", `{"name":"ab"}`)

	s.assertError(w, http.StatusBadRequest, "VALIDATION")
}

func (s *HandlerTestSuite) TestListAPITokens() {
	s.tokens.On("ListTokens", mock.Anything, testUserID).
		Return([]domain.APIToken{{ID: "tok-1", Name: "a"}, {ID: "tok-2", Name: "b"}}, nil).Once()

	w := s.serve(http.MethodGet, "/api/v1/tokens", nil)

	s.Equal(http.StatusOK, w.Code)
	var resp []dto.APITokenResponse
	s.decode(w, &resp)
	s.Len(resp, 2)
}

func (s *HandlerTestSuite) TestRevokeAPIToken() {
	id := uuid.NewString()
	s.tokens.On("RevokeToken", mock.Anything, testUserID, id).Return(nil).Once()

	s.Equal(http.StatusNoContent, s.serve(http.MethodDelete, "/api/v1/tokens/"+id, nil).Code)
}

func (s *HandlerTestSuite) TestRevokeAPIToken_Errors() {
	s.assertError(s.serve(http.MethodDelete, "/api/v1/tokens/not-a-uuid", nil), http.StatusBadRequest, "VALIDATION")

	id := uuid.NewString()
	s.tokens.On("RevokeToken", mock.Anything, testUserID, id).Return(apperrors.NewNotFoundError("api token", id)).Once()
	s.assertError(s.serve(http.MethodDelete, "/api/v1/tokens/"+id, nil), http.StatusNotFound, "NOT_FOUND")
}

func (s *HandlerTestSuite) TestRevokeAllAPITokens() {
	s.tokens.On("RevokeAllTokens", mock.Anything, testUserID).Return(nil).Once()

	s.Equal(http.StatusNoContent, s.serve(http.MethodDelete, "/api/v1/tokens", nil).Code)
}
