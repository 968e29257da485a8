//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"partner-portal/internal/domain/earnings"
	"partner-portal/internal/domain/user"
	"partner-portal/internal/handler/api"
	resdto "partner-portal/internal/handler/dto/response"
	"partner-portal/internal/usecase/queries"
	"partner-portal/tests/common/httptest"
	queriesmock "partner-portal/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EarningsHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockEarnings *queriesmock.MockEarningsQueries
	mockUsers    *queriesmock.MockUserQueries
	handler      *api.EarningsHandler
	userID       uuid.UUID
	partner      *queries.PartnerView
}

func (s *EarningsHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockEarnings = queriesmock.NewMockEarningsQueries(s.mockCtrl)
	s.mockUsers = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.handler = api.NewEarningsHandler(s.mockEarnings, s.mockUsers)
	s.userID = uuid.New()
	s.partner = &queries.PartnerView{ID: uuid.New(), UserID: s.userID, CompanyName: "Test Events Inc."}

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RolePartner)
		c.Next()
	}

	s.router.GET("/api/earnings", authMiddleware, s.handler.Statement)
	s.router.GET("/api/earnings/events/:id", authMiddleware, s.handler.EventBalance)
}

func (s *EarningsHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestEarningsHandlerSuite(t *testing.T) {
	suite.Run(t, new(EarningsHandlerTestSuite))
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// ================================================================================
// TestStatement
// ================================================================================

func (s *EarningsHandlerTestSuite) TestStatement() {
	url := "/api/earnings"

	s.Run("success: money fields serialize as fixed two-decimal strings", func() {
		stmt := &earnings.Statement{
			Events: []earnings.EventBalance{{
				EventID:      uuid.New(),
				Title:        "Spring Gala",
				Status:       earnings.EventCompleted,
				GrossRevenue: dec("3000"),
				Commission:   dec("150"),
				NetRevenue:   dec("2850"),
				Available:    dec("2850"),
			}},
			Totals: earnings.Totals{
				GrossRevenue: dec("3000"),
				Commission:   dec("150"),
				NetRevenue:   dec("2850"),
				Available:    dec("2850"),
			},
		}
		s.mockUsers.EXPECT().GetPartnerProfile(gomock.Any(), s.userID).Return(s.partner, nil).Times(1)
		s.mockEarnings.EXPECT().Statement(gomock.Any(), s.partner.ID).Return(stmt, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body resdto.EarningsStatementResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Events, 1)
		s.Equal("3000.00", body.Events[0].GrossRevenue)
		s.Equal("150.00", body.Events[0].Commission)
		s.Equal("2850.00", body.Totals.Available)
		s.Equal("0.00", body.Totals.Locked)
	})

	s.Run("error: 401 without authorization", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})

	s.Run("error: 404 when partner profile is missing", func() {
		s.mockUsers.EXPECT().GetPartnerProfile(gomock.Any(), s.userID).Return(nil, queries.ErrUserNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Partner profile not found")
	})

	s.Run("error: 503 when the store is unavailable", func() {
		s.mockUsers.EXPECT().GetPartnerProfile(gomock.Any(), s.userID).Return(s.partner, nil).Times(1)
		s.mockEarnings.EXPECT().Statement(gomock.Any(), s.partner.ID).Return(nil, queries.ErrStoreUnavailable).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "Balance temporarily unavailable")
	})
}

// ================================================================================
// TestEventBalance
// ================================================================================

func (s *EarningsHandlerTestSuite) TestEventBalance() {
	eventID := uuid.New()
	url := "/api/earnings/events/" + eventID.String()

	s.Run("success: returns the balance breakdown", func() {
		balance := &earnings.EventBalance{
			EventID:          eventID,
			Title:            "Spring Gala",
			Status:           earnings.EventCompleted,
			GrossRevenue:     dec("1000"),
			Commission:       dec("50"),
			NetRevenue:       dec("950"),
			PendingClearance: dec("100"),
			Locked:           dec("200"),
			Withdrawn:        dec("200"),
			Available:        dec("650"),
		}
		s.mockUsers.EXPECT().GetPartnerProfile(gomock.Any(), s.userID).Return(s.partner, nil).Times(1)
		s.mockEarnings.EXPECT().EventStatement(gomock.Any(), s.partner.ID, eventID).Return(balance, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body resdto.EventBalanceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(eventID.String(), body.EventID)
		s.Equal("650.00", body.Available)
		s.Equal("completed", body.Status)
	})

	s.Run("error: 400 on malformed event id", func() {
		s.mockUsers.EXPECT().GetPartnerProfile(gomock.Any(), gomock.Any()).Times(0)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/earnings/events/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 404 for a foreign or missing event", func() {
		s.mockUsers.EXPECT().GetPartnerProfile(gomock.Any(), s.userID).Return(s.partner, nil).Times(1)
		s.mockEarnings.EXPECT().EventStatement(gomock.Any(), s.partner.ID, eventID).Return(nil, queries.ErrEventNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Event not found")
	})

	s.Run("error: 503 when the store is unavailable", func() {
		s.mockUsers.EXPECT().GetPartnerProfile(gomock.Any(), s.userID).Return(s.partner, nil).Times(1)
		s.mockEarnings.EXPECT().EventStatement(gomock.Any(), s.partner.ID, eventID).Return(nil, queries.ErrStoreUnavailable).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "")
	})
}
