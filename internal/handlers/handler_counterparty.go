package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/revlo/revlo_ledger/internal/core/ports/services"
	"github.com/revlo/revlo_ledger/internal/dto"
)

// counterpartyHandler handles HTTP requests for customers, vendors and employees.
type counterpartyHandler struct {
	counterpartyService portssvc.CounterpartySvcFacade
}

func newCounterpartyHandler(cs portssvc.CounterpartySvcFacade) *counterpartyHandler {
	return &counterpartyHandler{counterpartyService: cs}
}

func registerCounterpartyRoutes(company *gin.RouterGroup, counterpartyService portssvc.CounterpartySvcFacade) {
	h := newCounterpartyHandler(counterpartyService)

	counterparties := company.Group("/counterparties")
	{
		counterparties.POST("", h.createCounterparty)
		counterparties.GET("", h.listCounterparties)
		counterparties.GET("/:counterparty_id", h.getCounterparty)
		counterparties.GET("/:counterparty_id/debt-summary", h.getDebtSummary)
	}
}

// createCounterparty godoc
// @Summary Create a customer, vendor or employee
// @Tags counterparties
// @Accept  json
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   counterparty body dto.CreateCounterpartyRequest true "Counterparty details"
// @Success 201 {object} dto.CounterpartyResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /companies/{company_id}/counterparties [post]
func (h *counterpartyHandler) createCounterparty(c *gin.Context) {
	var req dto.CreateCounterpartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "request format")
		return
	}
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	cp, err := h.counterpartyService.CreateCounterparty(c.Request.Context(), c.Param("company_id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create counterparty")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCounterpartyResponse(cp))
}

// listCounterparties godoc
// @Summary List counterparties
// @Tags counterparties
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   kind query string false "CUSTOMER, VENDOR or EMPLOYEE"
// @Param   limit query int false "Limit number of results" default(20)
// @Param   offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListCounterpartiesResponse
// @Security BearerAuth
// @Router /companies/{company_id}/counterparties [get]
func (h *counterpartyHandler) listCounterparties(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var params dto.ListCounterpartiesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err, "query parameters")
		return
	}

	cps, err := h.counterpartyService.ListCounterparties(c.Request.Context(), c.Param("company_id"), userID, params)
	if err != nil {
		respondError(c, err, "Failed to list counterparties")
		return
	}

	resp := dto.ListCounterpartiesResponse{Counterparties: make([]dto.CounterpartyResponse, len(cps))}
	for i := range cps {
		resp.Counterparties[i] = dto.ToCounterpartyResponse(&cps[i])
	}
	c.JSON(http.StatusOK, resp)
}

// getCounterparty godoc
// @Summary Get a counterparty
// @Tags counterparties
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   counterparty_id path string true "Counterparty ID"
// @Success 200 {object} dto.CounterpartyResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /companies/{company_id}/counterparties/{counterparty_id} [get]
func (h *counterpartyHandler) getCounterparty(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	cp, err := h.counterpartyService.GetCounterpartyByID(c.Request.Context(), c.Param("company_id"), c.Param("counterparty_id"), userID)
	if err != nil {
		respondError(c, err, "Failed to retrieve counterparty")
		return
	}
	c.JSON(http.StatusOK, dto.ToCounterpartyResponse(cp))
}

// getDebtSummary godoc
// @Summary Outstanding debt of a customer or vendor
// @Description Derived from the transaction log: DEBT_TAKEN rows count as debt; DEBT_REPAID rows and INCOME rows applied to debt count as paid.
// @Tags counterparties
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   counterparty_id path string true "Counterparty ID"
// @Success 200 {object} dto.DebtSummaryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /companies/{company_id}/counterparties/{counterparty_id}/debt-summary [get]
func (h *counterpartyHandler) getDebtSummary(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	summary, err := h.counterpartyService.GetDebtSummary(c.Request.Context(), c.Param("company_id"), c.Param("counterparty_id"), userID)
	if err != nil {
		respondError(c, err, "Failed to derive debt summary")
		return
	}
	c.JSON(http.StatusOK, dto.ToDebtSummaryResponse(summary))
}
