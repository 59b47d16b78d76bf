package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/revlo/revlo_ledger/internal/core/ports/services"
	"github.com/revlo/revlo_ledger/internal/dto"
	"github.com/revlo/revlo_ledger/internal/middleware"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
	ledgerService  portssvc.TransactionReaderSvc
}

func newAccountHandler(as portssvc.AccountSvcFacade, ls portssvc.TransactionReaderSvc) *accountHandler {
	return &accountHandler{accountService: as, ledgerService: ls}
}

// registerAccountRoutes registers account routes under a company group.
func registerAccountRoutes(company *gin.RouterGroup, accountService portssvc.AccountSvcFacade, ledgerService portssvc.TransactionReaderSvc) {
	h := newAccountHandler(accountService, ledgerService)

	accounts := company.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/:account_id", h.getAccount)
		accounts.GET("/:account_id/transactions", h.listAccountTransactions)
		accounts.POST("/:account_id/reconcile", h.reconcileAccount)
	}
}

// createAccount godoc
// @Summary Create a new account
// @Description Creates an account. A positive opening balance is recorded as an INCOME transaction.
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /companies/{company_id}/accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "request format")
		return
	}
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	companyID := c.Param("company_id")

	account, err := h.accountService.CreateAccount(c.Request.Context(), companyID, req, userID)
	if err != nil {
		respondError(c, err, "Failed to create account")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Account created",
		slog.String("company_id", companyID), slog.String("account_id", account.AccountID))
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// getAccount godoc
// @Summary Get an account by ID
// @Tags accounts
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   account_id path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /companies/{company_id}/accounts/{account_id} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	account, err := h.accountService.GetAccountByID(c.Request.Context(), c.Param("company_id"), c.Param("account_id"), userID)
	if err != nil {
		respondError(c, err, "Failed to retrieve account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// listAccounts godoc
// @Summary List accounts of a company
// @Tags accounts
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   limit query int false "Limit number of results" default(20)
// @Param   offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListAccountsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /companies/{company_id}/accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var params dto.ListAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err, "query parameters")
		return
	}

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), c.Param("company_id"), userID, params.Limit, params.Offset)
	if err != nil {
		respondError(c, err, "Failed to list accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ListAccountsResponse{Accounts: dto.ToListAccountResponse(accounts)})
}

// listAccountTransactions godoc
// @Summary List transactions of an account
// @Description Returns rows newest first. Pass the returned nextToken to fetch the following page.
// @Tags accounts
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   account_id path string true "Account ID"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /companies/{company_id}/accounts/{account_id}/transactions [get]
func (h *accountHandler) listAccountTransactions(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err, "query parameters")
		return
	}

	txns, next, err := h.ledgerService.ListTransactionsByAccount(c.Request.Context(), c.Param("company_id"), c.Param("account_id"), userID, params)
	if err != nil {
		respondError(c, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ListTransactionsResponse{Transactions: dto.ToTransactionResponses(txns), NextToken: next})
}

// reconcileAccount godoc
// @Summary Compare an account balance with its transaction log
// @Description Reports drift between the stored balance and the balance derived from the log. With repair=true the stored balance is overwritten.
// @Tags accounts
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   account_id path string true "Account ID"
// @Param   repair query bool false "Overwrite the stored balance" default(false)
// @Success 200 {object} domain.AccountReconciliation
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /companies/{company_id}/accounts/{account_id}/reconcile [post]
func (h *accountHandler) reconcileAccount(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var params dto.ReconcileAccountParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err, "query parameters")
		return
	}

	rec, err := h.accountService.ReconcileAccount(c.Request.Context(), c.Param("company_id"), c.Param("account_id"), userID, params.Repair)
	if err != nil {
		respondError(c, err, "Failed to reconcile account")
		return
	}
	if !rec.InSync() {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Account balance drift detected",
			slog.String("account_id", rec.AccountID),
			slog.String("stored", rec.StoredBalance.String()),
			slog.String("derived", rec.DerivedBalance.String()),
			slog.Bool("repaired", params.Repair))
	}
	c.JSON(http.StatusOK, rec)
}
