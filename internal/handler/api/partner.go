package api

import (
	"errors"
	"net/http"

	resdto "partner-portal/internal/handler/dto/response"
	"partner-portal/internal/handler/httperr"
	"partner-portal/internal/handler/middleware"
	"partner-portal/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PartnerHandler struct {
	users queries.UserQueries
}

func NewPartnerHandler(users queries.UserQueries) *PartnerHandler {
	return &PartnerHandler{users: users}
}

// @Summary Partner profile
// @Description Profile of the authenticated partner with masked bank details
// @Tags partners
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.PartnerProfileResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /partners/me [get]
func (h *PartnerHandler) Profile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	partner, err := h.users.GetPartnerProfile(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Partner profile not found", nil)
		case errors.Is(err, queries.ErrStoreUnavailable):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Profile temporarily unavailable", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPartnerProfile(partner))
}
