package api

import (
	"errors"
	"net/http"

	resdto "partner-portal/internal/handler/dto/response"
	"partner-portal/internal/handler/httperr"
	"partner-portal/internal/handler/middleware"
	"partner-portal/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EarningsHandler struct {
	earnings queries.EarningsQueries
	users    queries.UserQueries
}

func NewEarningsHandler(earnings queries.EarningsQueries, users queries.UserQueries) *EarningsHandler {
	return &EarningsHandler{earnings: earnings, users: users}
}

// @Summary Earnings statement
// @Description Per-event balances and portfolio totals for the authenticated partner
// @Tags earnings
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.EarningsStatementResponse
// @Failure 401 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /earnings [get]
func (h *EarningsHandler) Statement(c *gin.Context) {
	partner, ok := h.resolvePartner(c)
	if !ok {
		return
	}

	stmt, err := h.earnings.Statement(c.Request.Context(), partner.ID)
	if err != nil {
		abortEarningsError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStatement(stmt))
}

// @Summary Event balance
// @Description Balance breakdown for one event owned by the authenticated partner
// @Tags earnings
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} resdto.EventBalanceResponse
// @Failure 404 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /earnings/events/{id} [get]
func (h *EarningsHandler) EventBalance(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid event id", nil)
		return
	}

	partner, ok := h.resolvePartner(c)
	if !ok {
		return
	}

	balance, err := h.earnings.EventStatement(c.Request.Context(), partner.ID, eventID)
	if err != nil {
		abortEarningsError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEventBalance(balance))
}

func (h *EarningsHandler) resolvePartner(c *gin.Context) (*queries.PartnerView, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return nil, false
	}

	partner, err := h.users.GetPartnerProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, queries.ErrUserNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Partner profile not found", nil)
			return nil, false
		}
		abortEarningsError(c, err)
		return nil, false
	}
	return partner, true
}

// Balance reads must never degrade to zero on failure; an unavailable
// store is reported as 503 so clients can distinguish "no money" from
// "no answer".
func abortEarningsError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrEventNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Event not found", nil)
	case errors.Is(err, queries.ErrStoreUnavailable):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Balance temporarily unavailable", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
