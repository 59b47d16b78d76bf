package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/revlo/revlo_ledger/internal/apperrors"
	"github.com/revlo/revlo_ledger/internal/core/domain"
	portssvc "github.com/revlo/revlo_ledger/internal/core/ports/services"
	"github.com/revlo/revlo_ledger/internal/core/services"
	"github.com/revlo/revlo_ledger/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// APITokenServiceTestSuite defines the test suite for APITokenService
type APITokenServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAPITokenRepository
	service  portssvc.APITokenSvc
	ctx      context.Context
}

func (s *APITokenServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockAPITokenRepository)
	s.service = services.NewAPITokenService(s.mockRepo)
	s.ctx = context.Background()
}

func TestAPITokenServiceTestSuite(t *testing.T) {
	suite.Run(t, new(APITokenServiceTestSuite))
}

func (s *APITokenServiceTestSuite) TestCreateToken_RoundTripsThroughValidate() {
	var saved *domain.APIToken
	s.mockRepo.On("Create", s.ctx, mock.AnythingOfType("*domain.APIToken")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*domain.APIToken) }).
		Return(nil).Once()

	expiry := time.Hour
	plaintext, token, err := s.service.CreateToken(s.ctx, "user-1", "  expense bot ", &expiry)
	s.Require().NoError(err)
	s.Equal("expense bot", token.Name)
	s.Require().NotNil(token.ExpiresAt)
	s.NotContains(token.TokenHash, plaintext)

	id, secret, err := utils.ParseAPIToken(plaintext)
	s.Require().NoError(err)
	s.Equal(token.ID, id)
	s.True(strings.HasPrefix(plaintext, "rvl_"+token.ID+"."), plaintext)
	s.NotEqual(secret, saved.TokenHash)

	s.mockRepo.On("FindByID", s.ctx, id).Return(saved, nil).Once()
	s.mockRepo.On("TouchLastUsed", s.ctx, id).Return(nil).Once()

	userID, err := s.service.ValidateToken(s.ctx, plaintext)
	s.Require().NoError(err)
	s.Equal("user-1", userID)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *APITokenServiceTestSuite) TestCreateToken_Validation() {
	_, _, err := s.service.CreateToken(s.ctx, "", "bot", nil)
	s.Equal(apperrors.KindUnauthorized, apperrors.KindOf(err))

	_, _, err = s.service.CreateToken(s.ctx, "user-1", "   ", nil)
	s.Equal(apperrors.KindValidation, apperrors.KindOf(err))

	negative := -time.Minute
	_, _, err = s.service.CreateToken(s.ctx, "user-1", "bot", &negative)
	s.Equal(apperrors.KindValidation, apperrors.KindOf(err))

	s.mockRepo.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *APITokenServiceTestSuite) TestValidateToken_Rejections() {
	hash, err := utils.HashSecret("right")
	s.Require().NoError(err)
	past := time.Now().Add(-time.Minute)

	s.mockRepo.On("FindByID", s.ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()
	s.mockRepo.On("FindByID", s.ctx, "expired").Return(&domain.APIToken{ID: "expired", UserID: "u", TokenHash: hash, ExpiresAt: &past}, nil).Once()
	s.mockRepo.On("FindByID", s.ctx, "valid").Return(&domain.APIToken{ID: "valid", UserID: "u", TokenHash: hash}, nil).Once()

	for _, token := range []string{
		"not-a-token",
		utils.FormatAPIToken("missing", "right"),
		utils.FormatAPIToken("expired", "right"),
		utils.FormatAPIToken("valid", "wrong"),
	} {
		_, err := s.service.ValidateToken(s.ctx, token)
		s.Equal(apperrors.KindUnauthorized, apperrors.KindOf(err), token)
		s.ErrorIs(err, apperrors.ErrUnauthorized)
	}
	s.mockRepo.AssertNotCalled(s.T(), "TouchLastUsed", mock.Anything, mock.Anything)
}

func (s *APITokenServiceTestSuite) TestValidateToken_TouchFailureIsIgnored() {
	hash, err := utils.HashSecret("secret")
	s.Require().NoError(err)
	s.mockRepo.On("FindByID", s.ctx, "t1").Return(&domain.APIToken{ID: "t1", UserID: "u1", TokenHash: hash}, nil).Once()
	s.mockRepo.On("TouchLastUsed", s.ctx, "t1").Return(errors.New("db down")).Once()

	userID, err := s.service.ValidateToken(s.ctx, utils.FormatAPIToken("t1", "secret"))
	s.Require().NoError(err)
	s.Equal("u1", userID)
}

func (s *APITokenServiceTestSuite) TestRevokeToken_OtherUsersTokenIsNotFound() {
	s.mockRepo.On("FindByID", s.ctx, "t1").Return(&domain.APIToken{ID: "t1", UserID: "owner"}, nil).Once()

	err := s.service.RevokeToken(s.ctx, "intruder", "t1")
	s.Equal(apperrors.KindNotFound, apperrors.KindOf(err))
	s.mockRepo.AssertNotCalled(s.T(), "Delete", mock.Anything, mock.Anything)
}

func (s *APITokenServiceTestSuite) TestRevokeToken_Success() {
	s.mockRepo.On("FindByID", s.ctx, "t1").Return(&domain.APIToken{ID: "t1", UserID: "owner"}, nil).Once()
	s.mockRepo.On("Delete", s.ctx, "t1").Return(nil).Once()

	s.Require().NoError(s.service.RevokeToken(s.ctx, "owner", "t1"))
	s.mockRepo.AssertExpectations(s.T())
}

func (s *APITokenServiceTestSuite) TestListTokens_EmptyIsNotNil() {
	s.mockRepo.On("FindByUserID", s.ctx, "u1").Return(nil, nil).Once()

	tokens, err := s.service.ListTokens(s.ctx, "u1")
	s.Require().NoError(err)
	s.NotNil(tokens)
	s.Empty(tokens)
}
