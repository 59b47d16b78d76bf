package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/revlo/revlo_ledger/internal/core/ports/services"
	"github.com/revlo/revlo_ledger/internal/dto"
	"github.com/revlo/revlo_ledger/internal/middleware"
)

// ledgerHandler handles HTTP requests against the transaction log.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls}
}

// registerLedgerRoutes registers transaction and transfer routes under a company group.
func registerLedgerRoutes(company *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	transactions := company.Group("/transactions")
	{
		transactions.POST("", h.postTransaction)
		transactions.GET("/duplicates", h.findDuplicates)
		transactions.GET("/:transaction_id", h.getTransaction)
		transactions.DELETE("/:transaction_id", h.deleteTransaction)
		transactions.POST("/:transaction_id/reverse", h.reverseTransaction)
		transactions.PATCH("/:transaction_id/amount", h.updateTransactionAmount)
	}

	transfers := company.Group("/transfers")
	{
		transfers.POST("", h.transferFunds)
		transfers.DELETE("/:transfer_id", h.deleteTransfer)
	}
}

// postTransaction godoc
// @Summary Record a transaction
// @Description Appends one row to the log and applies its effect on the linked account and project.
// @Description Retries carrying the same Idempotency-Key are rejected with 409.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   Idempotency-Key header string false "Idempotency key, overrides the body field"
// @Param   transaction body dto.PostTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /companies/{company_id}/transactions [post]
func (h *ledgerHandler) postTransaction(c *gin.Context) {
	var req dto.PostTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "request format")
		return
	}
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	req.IdempotencyKey = idempotencyKey(c, req.IdempotencyKey)
	companyID := c.Param("company_id")

	txn, err := h.ledgerService.PostTransaction(c.Request.Context(), companyID, req, userID)
	if err != nil {
		respondError(c, err, "Failed to record transaction")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Transaction recorded",
		slog.String("company_id", companyID),
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// getTransaction godoc
// @Summary Get a transaction
// @Tags transactions
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   transaction_id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /companies/{company_id}/transactions/{transaction_id} [get]
func (h *ledgerHandler) getTransaction(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	txn, err := h.ledgerService.GetTransactionByID(c.Request.Context(), c.Param("company_id"), c.Param("transaction_id"), userID)
	if err != nil {
		respondError(c, err, "Failed to retrieve transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Undoes the row's effects and removes it. Transfer legs must be deleted through their transfer.
// @Tags transactions
// @Param   company_id path string true "Company ID"
// @Param   transaction_id path string true "Transaction ID"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /companies/{company_id}/transactions/{transaction_id} [delete]
func (h *ledgerHandler) deleteTransaction(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.ledgerService.DeleteTransaction(c.Request.Context(), c.Param("company_id"), c.Param("transaction_id"), userID); err != nil {
		respondError(c, err, "Failed to delete transaction")
		return
	}
	c.Status(http.StatusNoContent)
}

// reverseTransaction godoc
// @Summary Reverse a transaction
// @Description Marks the row reversed and undoes its effects while keeping it in the log.
// @Tags transactions
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   transaction_id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /companies/{company_id}/transactions/{transaction_id}/reverse [post]
func (h *ledgerHandler) reverseTransaction(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	txn, err := h.ledgerService.ReverseTransaction(c.Request.Context(), c.Param("company_id"), c.Param("transaction_id"), userID)
	if err != nil {
		respondError(c, err, "Failed to reverse transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// updateTransactionAmount godoc
// @Summary Change a transaction amount
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   transaction_id path string true "Transaction ID"
// @Param   amount body dto.UpdateTransactionAmountRequest true "New amount"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /companies/{company_id}/transactions/{transaction_id}/amount [patch]
func (h *ledgerHandler) updateTransactionAmount(c *gin.Context) {
	var req dto.UpdateTransactionAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "request format")
		return
	}
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	txn, err := h.ledgerService.UpdateTransactionAmount(c.Request.Context(), c.Param("company_id"), c.Param("transaction_id"), req.Amount, userID)
	if err != nil {
		respondError(c, err, "Failed to update transaction amount")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// findDuplicates godoc
// @Summary List suspected duplicate transactions
// @Description Groups non-reversed rows that share account, type, amount, date and description.
// @Tags transactions
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Success 200 {object} dto.DuplicateGroupsResponse
// @Security BearerAuth
// @Router /companies/{company_id}/transactions/duplicates [get]
func (h *ledgerHandler) findDuplicates(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	groups, err := h.ledgerService.FindDuplicateTransactions(c.Request.Context(), c.Param("company_id"), userID)
	if err != nil {
		respondError(c, err, "Failed to find duplicate transactions")
		return
	}
	c.JSON(http.StatusOK, dto.DuplicateGroupsResponse{Groups: groups})
}

// transferFunds godoc
// @Summary Transfer funds between accounts
// @Description Moves amount from one account to another. A positive fee is booked as an EXPENSE on the source account.
// @Tags transfers
// @Accept  json
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   Idempotency-Key header string false "Idempotency key, overrides the body field"
// @Param   transfer body dto.TransferFundsRequest true "Transfer details"
// @Success 201 {object} dto.TransferResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /companies/{company_id}/transfers [post]
func (h *ledgerHandler) transferFunds(c *gin.Context) {
	var req dto.TransferFundsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "request format")
		return
	}
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	req.IdempotencyKey = idempotencyKey(c, req.IdempotencyKey)

	result, err := h.ledgerService.TransferFunds(c.Request.Context(), c.Param("company_id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to transfer funds")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransferResponse(result))
}

// deleteTransfer godoc
// @Summary Delete a transfer
// @Description Undoes and removes both legs of a transfer and its fee.
// @Tags transfers
// @Param   company_id path string true "Company ID"
// @Param   transfer_id path string true "Transfer group ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /companies/{company_id}/transfers/{transfer_id} [delete]
func (h *ledgerHandler) deleteTransfer(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.ledgerService.DeleteTransfer(c.Request.Context(), c.Param("company_id"), c.Param("transfer_id"), userID); err != nil {
		respondError(c, err, "Failed to delete transfer")
		return
	}
	c.Status(http.StatusNoContent)
}
