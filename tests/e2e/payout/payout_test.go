//go:build e2e

package payout_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"partner-portal/internal/domain/user"
	"partner-portal/internal/domain/verification"
	reqdto "partner-portal/internal/handler/dto/request"
	resdto "partner-portal/internal/handler/dto/response"
	"partner-portal/tests/common/authtest"
	"partner-portal/tests/common/dbtest"
	"partner-portal/tests/common/httptest"
	"partner-portal/tests/e2e"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	earningsURL  = "/api/earnings"
	historyURL   = "/api/payouts"
	initiateURL  = "/api/payouts/withdrawals"
	confirmURL   = "/api/payouts/withdrawals/confirm"
	partnerEmail = "partner@example.com"
)

type payoutSuite struct {
	e2e.SharedSuite

	userID    uuid.UUID
	partnerID uuid.UUID
	eventID   uuid.UUID
	token     string
}

func TestPayoutSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(payoutSuite))
}

// SetupSubTest seeds one partner with a completed event holding two paid
// bookings: gross 3000, commission 150, net 2850 at the 5% test rate.
func (s *payoutSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	t := s.T()

	s.userID = dbtest.CreateTestUser(t, s.DB, partnerEmail, string(user.RolePartner))
	s.partnerID = dbtest.CreateTestPartner(t, s.DB, s.userID)
	s.eventID = dbtest.CreateTestEvent(t, s.DB, s.partnerID, "Spring Gala", "completed")

	paidAt := time.Now().Add(-30 * 24 * time.Hour)
	dbtest.CreateTestBooking(t, s.DB, s.eventID, decimal.NewFromInt(1000), "paid", paidAt)
	dbtest.CreateTestBooking(t, s.DB, s.eventID, decimal.NewFromInt(2000), "paid", paidAt)
	// 返金済み・未払い予約は残高に入らないこと
	dbtest.CreateTestBooking(t, s.DB, s.eventID, decimal.NewFromInt(9999), "refunded", paidAt)

	s.token = authtest.LoginUser(t, s.Router, partnerEmail, dbtest.TestPassword)
}

// fetchOTP reads the emailed verification code from the challenge store.
func (s *payoutSuite) fetchOTP() string {
	t := s.T()
	key := fmt.Sprintf("verification:%s:%s", verification.PurposePayout, s.userID)
	payload, err := s.Redis.Get(context.Background(), key).Bytes()
	require.NoError(t, err, "検証コードが保存されていない")

	var ch verification.Challenge
	require.NoError(t, json.Unmarshal(payload, &ch))
	return ch.Code
}

func (s *payoutSuite) initiate(amount string) *nethttptest.ResponseRecorder {
	req := reqdto.InitiateWithdrawalRequest{
		EventID:  s.eventID,
		Amount:   decimal.RequireFromString(amount),
		Password: dbtest.TestPassword,
	}
	return httptest.PerformRequest(s.T(), s.Router, http.MethodPost, initiateURL, req, s.token)
}

func (s *payoutSuite) confirm(otp string) *nethttptest.ResponseRecorder {
	req := reqdto.ConfirmWithdrawalRequest{OTP: otp}
	return httptest.PerformRequest(s.T(), s.Router, http.MethodPost, confirmURL, req, s.token)
}

func (s *payoutSuite) TestWithdrawalFlow() {
	s.Run("出金フロー全体が成功すること", func() {
		t := s.T()

		// 残高確認: gross 3000 / net 2850 / available 2850
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, earningsURL, nil, s.token)
		var stmt resdto.EarningsStatementResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &stmt)
		require.Len(t, stmt.Events, 1)
		require.Equal(t, "3000.00", stmt.Events[0].GrossRevenue)
		require.Equal(t, "150.00", stmt.Events[0].Commission)
		require.Equal(t, "2850.00", stmt.Events[0].Available)

		// 出金開始
		w = s.initiate("1000")
		var initRes resdto.InitiateWithdrawalResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &initRes)
		require.Equal(t, "p***@example.com", initRes.SentTo)

		// 確認コードで確定
		otp := s.fetchOTP()
		w = s.confirm(otp)
		var confirmRes resdto.ConfirmWithdrawalResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &confirmRes)
		require.Equal(t, "pending", confirmRes.Status)
		require.Equal(t, "1000.00", confirmRes.Amount)

		// 確定後は available が減り locked が増えること
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, earningsURL+"/events/"+s.eventID.String(), nil, s.token)
		var balance resdto.EventBalanceResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &balance)
		require.Equal(t, "1000.00", balance.Locked)
		require.Equal(t, "1850.00", balance.Available)
		require.Equal(t, "0.00", balance.Withdrawn)

		// 履歴に pending として現れること
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, historyURL, nil, s.token)
		var history struct {
			Payouts []resdto.PayoutHistoryItemResponse `json:"payouts"`
		}
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &history)
		require.Len(t, history.Payouts, 1)
		require.Equal(t, "pending", history.Payouts[0].Status)
		require.Equal(t, confirmRes.PayoutID, history.Payouts[0].ID)

		// pending がある間は再出金できないこと
		w = s.initiate("100")
		require.Equal(t, http.StatusConflict, w.Code)

		// 監査ログが記録されること
		var auditCount int
		err := s.DB.QueryRow(s.T().Context(),
			"SELECT COUNT(*) FROM audit_logs WHERE actor_id = $1 AND action = 'payout.confirmed'", s.userID).Scan(&auditCount)
		require.NoError(t, err)
		require.Equal(t, 1, auditCount)
	})

	s.Run("確認コードは一度しか使えないこと", func() {
		t := s.T()

		w := s.initiate("500")
		require.Equal(t, http.StatusOK, w.Code)
		otp := s.fetchOTP()

		w = s.confirm(otp)
		require.Equal(t, http.StatusCreated, w.Code)

		// 同じコードで再確定はできない
		w = s.confirm(otp)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("再開始で前のコードが無効になること", func() {
		t := s.T()

		require.Equal(t, http.StatusOK, s.initiate("500").Code)
		firstOTP := s.fetchOTP()

		require.Equal(t, http.StatusOK, s.initiate("500").Code)
		secondOTP := s.fetchOTP()

		if firstOTP != secondOTP {
			// 古いコードは拒否されること
			require.Equal(t, http.StatusUnauthorized, s.confirm(firstOTP).Code)
		}
		require.Equal(t, http.StatusCreated, s.confirm(secondOTP).Code)
	})
}

func (s *payoutSuite) TestPartnerProfile() {
	s.Run("口座番号はマスクされて返ること", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/partners/me", nil, s.token)
		var profile resdto.PartnerProfileResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &profile)
		require.True(t, profile.HasBankDetails)
		require.NotNil(t, profile.BankAccountNumber)
		require.Equal(t, "***4567", *profile.BankAccountNumber)
		require.NotContains(t, w.Body.String(), "1234567")
	})
}

func (s *payoutSuite) TestInitiateGuards() {
	s.Run("パスワードが違う場合は401", func() {
		t := s.T()
		req := reqdto.InitiateWithdrawalRequest{
			EventID:  s.eventID,
			Amount:   decimal.NewFromInt(100),
			Password: "wrongpassword",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, initiateURL, req, s.token)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("銀行口座未登録の場合は412", func() {
		t := s.T()
		email := "nobank@example.com"
		userID := dbtest.CreateTestUser(t, s.DB, email, string(user.RolePartner))
		partnerID := dbtest.CreateTestPartnerWithoutBank(t, s.DB, userID)
		eventID := dbtest.CreateTestEvent(t, s.DB, partnerID, "No Bank Event", "completed")
		token := authtest.LoginUser(t, s.Router, email, dbtest.TestPassword)

		req := reqdto.InitiateWithdrawalRequest{
			EventID:  eventID,
			Amount:   decimal.NewFromInt(100),
			Password: dbtest.TestPassword,
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, initiateURL, req, token)
		require.Equal(t, http.StatusPreconditionFailed, w.Code)
	})

	s.Run("開催中イベントからは出金できないこと", func() {
		t := s.T()
		activeEventID := dbtest.CreateTestEvent(t, s.DB, s.partnerID, "Active Event", "active")
		dbtest.CreateTestBooking(t, s.DB, activeEventID, decimal.NewFromInt(1000), "paid", time.Now())

		req := reqdto.InitiateWithdrawalRequest{
			EventID:  activeEventID,
			Amount:   decimal.NewFromInt(100),
			Password: dbtest.TestPassword,
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, initiateURL, req, s.token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	s.Run("他パートナーのイベントは404", func() {
		t := s.T()
		otherUserID := dbtest.CreateTestUser(t, s.DB, "other@example.com", string(user.RolePartner))
		otherPartnerID := dbtest.CreateTestPartner(t, s.DB, otherUserID)
		foreignEventID := dbtest.CreateTestEvent(t, s.DB, otherPartnerID, "Foreign Event", "completed")

		req := reqdto.InitiateWithdrawalRequest{
			EventID:  foreignEventID,
			Amount:   decimal.NewFromInt(100),
			Password: dbtest.TestPassword,
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, initiateURL, req, s.token)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("残高不足の場合は422と利用可能額", func() {
		t := s.T()
		w := s.initiate("99999")
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		require.Contains(t, w.Body.String(), "2850.00")
	})

	s.Run("間違った確認コードは401", func() {
		t := s.T()
		require.Equal(t, http.StatusOK, s.initiate("500").Code)

		otp := s.fetchOTP()
		wrong := "000000"
		if otp == wrong {
			wrong = "000001"
		}
		require.Equal(t, http.StatusUnauthorized, s.confirm(wrong).Code)
	})

	s.Run("却下された出金の分は再出金できること", func() {
		t := s.T()
		// 過去に却下された出金はロックに数えない
		dbtest.CreateTestPayout(t, s.DB, s.partnerID, s.eventID, decimal.NewFromInt(2000), "rejected")

		w := s.initiate("2850")
		require.Equal(t, http.StatusOK, w.Code)
	})
}
