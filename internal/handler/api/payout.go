package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "partner-portal/internal/handler/dto/request"
	resdto "partner-portal/internal/handler/dto/response"
	"partner-portal/internal/handler/httperr"
	"partner-portal/internal/handler/middleware"
	"partner-portal/internal/usecase/commands"
	"partner-portal/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PayoutHandler struct {
	cmds  commands.WithdrawalCommands
	q     queries.PayoutQueries
	users queries.UserQueries
}

func NewPayoutHandler(cmds commands.WithdrawalCommands, q queries.PayoutQueries, users queries.UserQueries) *PayoutHandler {
	return &PayoutHandler{cmds: cmds, q: q, users: users}
}

// @Summary Initiate withdrawal
// @Description Validate a withdrawal and send a confirmation code by email
// @Tags payouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.InitiateWithdrawalRequest true "Withdrawal request"
// @Success 200 {object} resdto.InitiateWithdrawalResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 412 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /payouts/withdrawals [post]
func (h *PayoutHandler) InitiateWithdrawal(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	var req reqdto.InitiateWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.Initiate(c.Request.Context(), userID, req)
	if err != nil {
		abortWithdrawalError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromInitiateResult(result))
}

// @Summary Confirm withdrawal
// @Description Confirm a pending withdrawal with the emailed code
// @Tags payouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ConfirmWithdrawalRequest true "Confirmation request"
// @Success 201 {object} resdto.ConfirmWithdrawalResponse
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /payouts/withdrawals/confirm [post]
func (h *PayoutHandler) ConfirmWithdrawal(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	var req reqdto.ConfirmWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.Confirm(c.Request.Context(), userID, req)
	if err != nil {
		abortWithdrawalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromConfirmResult(result))
}

// @Summary Payout history
// @Description List payout requests for the authenticated partner
// @Tags payouts
// @Security BearerAuth
// @Produce json
// @Param event_id query string false "Filter by event"
// @Param from query string false "RFC3339 lower bound on requested_at"
// @Param to query string false "RFC3339 upper bound on requested_at"
// @Success 200 {array} resdto.PayoutHistoryItemResponse
// @Failure 401 {object} map[string]string
// @Router /payouts [get]
func (h *PayoutHandler) History(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	partner, err := h.users.GetPartnerProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, queries.ErrUserNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Partner profile not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	filter, err := parseHistoryFilter(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid filter", nil)
		return
	}

	items, err := h.q.History(c.Request.Context(), partner.ID, filter)
	if err != nil {
		if errors.Is(err, queries.ErrStoreUnavailable) {
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "History temporarily unavailable", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"payouts": resdto.FromPayoutHistory(items)})
}

func parseHistoryFilter(c *gin.Context) (queries.HistoryFilter, error) {
	var filter queries.HistoryFilter
	if v := c.Query("event_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return filter, err
		}
		filter.EventID = &id
	}
	if v := c.Query("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, err
		}
		filter.From = &t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, err
		}
		filter.To = &t
	}
	return filter, nil
}

// Every distinct failure gets its own status so the frontend can react
// without parsing messages.
func abortWithdrawalError(c *gin.Context, err error) {
	var insufficientErr *commands.InsufficientFundsError

	switch {
	case errors.Is(err, commands.ErrInvalidAmount):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Withdrawal amount must be positive", nil)
	case errors.Is(err, commands.ErrAuthenticationFailed):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Password verification failed", nil)
	case errors.Is(err, commands.ErrBankDetailsMissing):
		httperr.AbortWithError(c, http.StatusPreconditionFailed, err, "Bank details must be registered before withdrawal", nil)
	case errors.Is(err, commands.ErrEventNotFound), errors.Is(err, queries.ErrEventNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Event not found", nil)
	case errors.Is(err, commands.ErrEventNotEligible):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Event has not concluded yet", nil)
	case errors.Is(err, commands.ErrWithdrawalAlreadyInProgress):
		httperr.AbortWithError(c, http.StatusConflict, err, "A withdrawal for this event is already in progress", nil)
	case errors.As(err, &insufficientErr):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Insufficient available balance",
			gin.H{"available": insufficientErr.Available.StringFixed(2)})
	case errors.Is(err, commands.ErrInvalidOrExpiredOtp):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired verification code", nil)
	case errors.Is(err, commands.ErrBalanceChanged):
		httperr.AbortWithError(c, http.StatusConflict, err, "Available balance changed, please restart the withdrawal", nil)
	case errors.Is(err, commands.ErrOtpDeliveryFailed):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Failed to send verification code", nil)
	case errors.Is(err, queries.ErrStoreUnavailable):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Service temporarily unavailable", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
