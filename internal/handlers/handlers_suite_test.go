package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	portssvc "github.com/revlo/revlo_ledger/internal/core/ports/services"
	"github.com/revlo/revlo_ledger/internal/dto"
	"github.com/revlo/revlo_ledger/internal/handlers"
	"github.com/revlo/revlo_ledger/internal/platform/config"
	"github.com/revlo/revlo_ledger/internal/utils"
	"github.com/stretchr/testify/suite"
)

const (
	testCompanyID = "company-1"
	testUserID    = "user-1"
)

// --- Test Suite ---
type HandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	cfg    *config.Config

	accounts       *MockAccountService
	ledger         *MockLedgerService
	projects       *MockProjectService
	counterparties *MockCounterpartyService
	companies      *MockCompanyService
	tokens         *MockAPITokenService
	queue          *MockRepairQueue
}

func (s *HandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(handlers.RegisterValidators())
}

func (s *HandlerTestSuite) SetupTest() {
	s.cfg = &config.Config{
		IsProduction: true,
		JWTSecret:    "test-secret-key-that-is-long-enough",
		JWTIssuer:    "revlo-test",
	}
	s.accounts = new(MockAccountService)
	s.ledger = new(MockLedgerService)
	s.projects = new(MockProjectService)
	s.counterparties = new(MockCounterpartyService)
	s.companies = new(MockCompanyService)
	s.tokens = new(MockAPITokenService)
	s.queue = new(MockRepairQueue)

	s.router = gin.New()
	handlers.RegisterRoutes(s.router, s.cfg, &portssvc.ServiceContainer{
		Company:      s.companies,
		Account:      s.accounts,
		Ledger:       s.ledger,
		Project:      s.projects,
		Counterparty: s.counterparties,
		APIToken:     s.tokens,
	}, s.queue)
}

func (s *HandlerTestSuite) TearDownTest() {
	s.accounts.AssertExpectations(s.T())
	s.ledger.AssertExpectations(s.T())
	s.projects.AssertExpectations(s.T())
	s.counterparties.AssertExpectations(s.T())
	s.companies.AssertExpectations(s.T())
	s.tokens.AssertExpectations(s.T())
	s.queue.AssertExpectations(s.T())
}

// bearer creates a signed JWT for userID.
func (s *HandlerTestSuite) bearer(userID string) string {
	token, err := utils.GenerateJWT(userID, s.cfg.JWTSecret, time.Hour, s.cfg.JWTIssuer)
	s.Require().NoError(err)
	return "Bearer " + token
}

// serve sends an authenticated request as testUserID. Extra headers are
// given as key/value pairs and override the defaults.
func (s *HandlerTestSuite) serve(method, url string, body any, headers ...string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, ok := body.(string)
		if !ok {
			encoded, err := json.Marshal(body)
			s.Require().NoError(err)
			raw = string(encoded)
		}
		reader = bytes.NewBufferString(raw)
	}
	req, err := http.NewRequest(method, url, reader)
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", s.bearer(testUserID))
	for i := 0; i+1 < len(headers); i += 2 {
		if headers[i+1] == "" {
			req.Header.Del(headers[i])
			continue
		}
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *HandlerTestSuite) decode(w *httptest.ResponseRecorder, out any) {
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}

func (s *HandlerTestSuite) assertError(w *httptest.ResponseRecorder, status int, code string) dto.ErrorResponse {
	s.Equal(status, w.Code, w.Body.String())
	var resp dto.ErrorResponse
	s.decode(w, &resp)
	s.Equal(code, resp.Code)
	return resp
}

func companyURL(path string) string {
	return "/api/v1/companies/" + testCompanyID + path
}

func (s *HandlerTestSuite) TestHealth() {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)
	s.Equal("OK", w.Body.String())
}

func (s *HandlerTestSuite) TestMissingCredentials() {
	w := s.serve(http.MethodGet, companyURL("/accounts"), nil, "Authorization", "")

	s.assertError(w, http.StatusUnauthorized, "UNAUTHORIZED")
}

func (s *HandlerTestSuite) TestExpiredJWT() {
	token, err := utils.GenerateJWT(testUserID, s.cfg.JWTSecret, -time.Minute, s.cfg.JWTIssuer)
	s.Require().NoError(err)

	w := s.serve(http.MethodGet, companyURL("/accounts"), nil, "Authorization", "Bearer "+token)

	s.Equal(http.StatusUnauthorized, w.Code)
}

// --- Run Test Suite ---
func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
