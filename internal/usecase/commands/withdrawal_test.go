//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"partner-portal/internal/domain/earnings"
	"partner-portal/internal/domain/payout"
	"partner-portal/internal/domain/verification"
	reqdto "partner-portal/internal/handler/dto/request"
	"partner-portal/internal/infra"
	"partner-portal/internal/infra/db"
	"partner-portal/internal/pkg/clock"
	"partner-portal/internal/pkg/password"
	"partner-portal/internal/usecase/commands"
	"partner-portal/internal/usecase/queries"
	commandsmock "partner-portal/tests/mock/commands"
	queriesmock "partner-portal/tests/mock/queries"
	sharedmock "partner-portal/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testPassword = "correct-password"

type WithdrawalCommandsTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	users         *queriesmock.MockUserReadStore
	partners      *queriesmock.MockPartnerReadStore
	events        *queriesmock.MockEventReadStore
	payoutReads   *queriesmock.MockPayoutReadStore
	earnings      *queriesmock.MockEarningsQueries
	challengeRepo *commandsmock.MockChallengeRepository
	payoutRepo    *commandsmock.MockPayoutRepository
	auditRepo     *commandsmock.MockAuditRepository
	mailer        *commandsmock.MockMailer
	tx            *sharedmock.MockTxManager
	clock         *clock.MockClock

	cmds commands.WithdrawalCommands

	userID       uuid.UUID
	partnerID    uuid.UUID
	eventID      uuid.UUID
	passwordHash string
}

func TestWithdrawalCommandsSuite(t *testing.T) {
	suite.Run(t, new(WithdrawalCommandsTestSuite))
}

func (s *WithdrawalCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.users = queriesmock.NewMockUserReadStore(s.ctrl)
	s.partners = queriesmock.NewMockPartnerReadStore(s.ctrl)
	s.events = queriesmock.NewMockEventReadStore(s.ctrl)
	s.payoutReads = queriesmock.NewMockPayoutReadStore(s.ctrl)
	s.earnings = queriesmock.NewMockEarningsQueries(s.ctrl)
	s.challengeRepo = commandsmock.NewMockChallengeRepository(s.ctrl)
	s.payoutRepo = commandsmock.NewMockPayoutRepository(s.ctrl)
	s.auditRepo = commandsmock.NewMockAuditRepository(s.ctrl)
	s.mailer = commandsmock.NewMockMailer(s.ctrl)
	s.tx = sharedmock.NewMockTxManager(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	s.cmds = commands.NewWithdrawalCommands(
		s.users, s.partners, s.events, s.payoutReads, s.earnings,
		s.challengeRepo, s.payoutRepo, s.auditRepo, s.mailer,
		s.tx, s.clock, 10*time.Minute,
	)

	s.userID = uuid.New()
	s.partnerID = uuid.New()
	s.eventID = uuid.New()

	hash, err := password.HashPassword(testPassword)
	s.Require().NoError(err)
	s.passwordHash = hash
}

func (s *WithdrawalCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *WithdrawalCommandsTestSuite) initiateReq(amount string) reqdto.InitiateWithdrawalRequest {
	return reqdto.InitiateWithdrawalRequest{
		EventID:  s.eventID,
		Amount:   decimal.RequireFromString(amount),
		Password: testPassword,
	}
}

func (s *WithdrawalCommandsTestSuite) userView() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       s.userID,
		Email:    "partner@example.com",
		Role:     "partner",
		IsActive: true,
	}
}

func (s *WithdrawalCommandsTestSuite) partnerView() *queries.PartnerView {
	bank := "Example Bank"
	account := "1234567"
	holder := "Example Inc."
	return &queries.PartnerView{
		ID:                s.partnerID,
		UserID:            s.userID,
		CompanyName:       "Example Inc.",
		BankName:          &bank,
		BankAccountName:   &holder,
		BankAccountNumber: &account,
	}
}

func (s *WithdrawalCommandsTestSuite) eventView(status earnings.EventStatus) *queries.EventView {
	return &queries.EventView{
		ID:        s.eventID,
		PartnerID: s.partnerID,
		Title:     "Spring Gala",
		Status:    status,
	}
}

func (s *WithdrawalCommandsTestSuite) balance(available string) *earnings.EventBalance {
	return &earnings.EventBalance{
		EventID:   s.eventID,
		Title:     "Spring Gala",
		Status:    earnings.EventCompleted,
		Available: decimal.RequireFromString(available),
	}
}

func (s *WithdrawalCommandsTestSuite) expectAuthOK() {
	s.users.EXPECT().FindByID(gomock.Any(), s.userID).Return(s.userView(), nil)
	s.users.EXPECT().PasswordHashByID(gomock.Any(), s.userID).Return(s.passwordHash, nil)
}

// ================================================================================
// Initiate
// ================================================================================

func (s *WithdrawalCommandsTestSuite) TestInitiate_Success() {
	s.expectAuthOK()
	s.partners.EXPECT().FindByUserID(gomock.Any(), s.userID).Return(s.partnerView(), nil)
	s.events.EXPECT().FindByID(gomock.Any(), s.eventID).Return(s.eventView(earnings.EventCompleted), nil)
	s.payoutReads.EXPECT().HasPending(gomock.Any(), s.partnerID, s.eventID).Return(false, nil)
	s.earnings.EXPECT().EventStatement(gomock.Any(), s.partnerID, s.eventID).Return(s.balance("1000"), nil)

	var stored *verification.Challenge
	s.challengeRepo.EXPECT().Put(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ch *verification.Challenge) error {
			stored = ch
			return nil
		})
	s.mailer.EXPECT().SendPayoutOTP(gomock.Any(), "partner@example.com", gomock.Any(), gomock.Any()).Return(nil)

	result, err := s.cmds.Initiate(context.Background(), s.userID, s.initiateReq("500"))

	s.Require().NoError(err)
	s.Require().NotNil(result)
	s.Equal("p***@example.com", result.MaskedEmail)
	s.Equal(s.clock.Now().Add(10*time.Minute), result.ExpiresAt)

	s.Require().NotNil(stored)
	s.Equal(s.userID, stored.UserID)
	s.Equal(verification.PurposePayout, stored.Purpose)
	s.Equal(s.partnerID, stored.Terms.PartnerID)
	s.Equal(s.eventID, stored.Terms.EventID)
	s.True(stored.Terms.Amount.Equal(decimal.RequireFromString("500")))
}

func (s *WithdrawalCommandsTestSuite) TestInitiate_InvalidAmount() {
	for _, amount := range []string{"0", "-10"} {
		_, err := s.cmds.Initiate(context.Background(), s.userID, s.initiateReq(amount))
		s.Require().ErrorIs(err, commands.ErrInvalidAmount)
	}
}

func (s *WithdrawalCommandsTestSuite) TestInitiate_WrongPassword() {
	s.users.EXPECT().FindByID(gomock.Any(), s.userID).Return(s.userView(), nil)
	s.users.EXPECT().PasswordHashByID(gomock.Any(), s.userID).Return(s.passwordHash, nil)

	req := s.initiateReq("500")
	req.Password = "wrong-password"

	_, err := s.cmds.Initiate(context.Background(), s.userID, req)
	s.Require().ErrorIs(err, commands.ErrAuthenticationFailed)
}

func (s *WithdrawalCommandsTestSuite) TestInitiate_BankDetailsMissing() {
	s.expectAuthOK()
	partner := s.partnerView()
	partner.BankName = nil
	partner.BankAccountNumber = nil
	s.partners.EXPECT().FindByUserID(gomock.Any(), s.userID).Return(partner, nil)

	_, err := s.cmds.Initiate(context.Background(), s.userID, s.initiateReq("500"))
	s.Require().ErrorIs(err, commands.ErrBankDetailsMissing)
}

func (s *WithdrawalCommandsTestSuite) TestInitiate_EventOwnership() {
	s.expectAuthOK()
	s.partners.EXPECT().FindByUserID(gomock.Any(), s.userID).Return(s.partnerView(), nil)

	foreign := s.eventView(earnings.EventCompleted)
	foreign.PartnerID = uuid.New()
	s.events.EXPECT().FindByID(gomock.Any(), s.eventID).Return(foreign, nil)

	_, err := s.cmds.Initiate(context.Background(), s.userID, s.initiateReq("500"))
	// A foreign event must be indistinguishable from a missing one
	s.Require().ErrorIs(err, commands.ErrEventNotFound)
}

func (s *WithdrawalCommandsTestSuite) TestInitiate_EventNotConcluded() {
	for _, status := range []earnings.EventStatus{earnings.EventDraft, earnings.EventActive, earnings.EventCancelled} {
		s.Run(status.String(), func() {
			s.expectAuthOK()
			s.partners.EXPECT().FindByUserID(gomock.Any(), s.userID).Return(s.partnerView(), nil)
			s.events.EXPECT().FindByID(gomock.Any(), s.eventID).Return(s.eventView(status), nil)

			_, err := s.cmds.Initiate(context.Background(), s.userID, s.initiateReq("500"))
			s.Require().ErrorIs(err, commands.ErrEventNotEligible)
		})
	}
}

func (s *WithdrawalCommandsTestSuite) TestInitiate_AlreadyInProgress() {
	s.expectAuthOK()
	s.partners.EXPECT().FindByUserID(gomock.Any(), s.userID).Return(s.partnerView(), nil)
	s.events.EXPECT().FindByID(gomock.Any(), s.eventID).Return(s.eventView(earnings.EventCompleted), nil)
	s.payoutReads.EXPECT().HasPending(gomock.Any(), s.partnerID, s.eventID).Return(true, nil)

	_, err := s.cmds.Initiate(context.Background(), s.userID, s.initiateReq("500"))
	s.Require().ErrorIs(err, commands.ErrWithdrawalAlreadyInProgress)
}

func (s *WithdrawalCommandsTestSuite) TestInitiate_InsufficientFunds() {
	s.expectAuthOK()
	s.partners.EXPECT().FindByUserID(gomock.Any(), s.userID).Return(s.partnerView(), nil)
	s.events.EXPECT().FindByID(gomock.Any(), s.eventID).Return(s.eventView(earnings.EventCompleted), nil)
	s.payoutReads.EXPECT().HasPending(gomock.Any(), s.partnerID, s.eventID).Return(false, nil)
	s.earnings.EXPECT().EventStatement(gomock.Any(), s.partnerID, s.eventID).Return(s.balance("100"), nil)

	_, err := s.cmds.Initiate(context.Background(), s.userID, s.initiateReq("500"))
	s.Require().ErrorIs(err, commands.ErrInsufficientFunds)

	var insufficientErr *commands.InsufficientFundsError
	s.Require().ErrorAs(err, &insufficientErr)
	s.True(insufficientErr.Available.Equal(decimal.RequireFromString("100")))
}

func (s *WithdrawalCommandsTestSuite) TestInitiate_ExactBalanceSucceeds() {
	s.expectAuthOK()
	s.partners.EXPECT().FindByUserID(gomock.Any(), s.userID).Return(s.partnerView(), nil)
	s.events.EXPECT().FindByID(gomock.Any(), s.eventID).Return(s.eventView(earnings.EventCompleted), nil)
	s.payoutReads.EXPECT().HasPending(gomock.Any(), s.partnerID, s.eventID).Return(false, nil)
	s.earnings.EXPECT().EventStatement(gomock.Any(), s.partnerID, s.eventID).Return(s.balance("500"), nil)
	s.challengeRepo.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil)
	s.mailer.EXPECT().SendPayoutOTP(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	_, err := s.cmds.Initiate(context.Background(), s.userID, s.initiateReq("500"))
	s.Require().NoError(err)
}

func (s *WithdrawalCommandsTestSuite) TestInitiate_MailFailureDiscardsChallenge() {
	s.expectAuthOK()
	s.partners.EXPECT().FindByUserID(gomock.Any(), s.userID).Return(s.partnerView(), nil)
	s.events.EXPECT().FindByID(gomock.Any(), s.eventID).Return(s.eventView(earnings.EventCompleted), nil)
	s.payoutReads.EXPECT().HasPending(gomock.Any(), s.partnerID, s.eventID).Return(false, nil)
	s.earnings.EXPECT().EventStatement(gomock.Any(), s.partnerID, s.eventID).Return(s.balance("1000"), nil)
	s.challengeRepo.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil)
	s.mailer.EXPECT().SendPayoutOTP(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("smtp down"))
	s.challengeRepo.EXPECT().Delete(gomock.Any(), s.userID, verification.PurposePayout).Return(nil)

	_, err := s.cmds.Initiate(context.Background(), s.userID, s.initiateReq("500"))
	s.Require().ErrorIs(err, commands.ErrOtpDeliveryFailed)
}

func (s *WithdrawalCommandsTestSuite) TestInitiate_StoreUnavailable() {
	s.expectAuthOK()
	s.partners.EXPECT().FindByUserID(gomock.Any(), s.userID).Return(s.partnerView(), nil)
	s.events.EXPECT().FindByID(gomock.Any(), s.eventID).Return(s.eventView(earnings.EventCompleted), nil)
	s.payoutReads.EXPECT().HasPending(gomock.Any(), s.partnerID, s.eventID).
		Return(false, infra.WrapRepoErr("db down", errors.New("conn refused")))

	_, err := s.cmds.Initiate(context.Background(), s.userID, s.initiateReq("500"))
	s.Require().ErrorIs(err, queries.ErrStoreUnavailable)
}

// ================================================================================
// Confirm
// ================================================================================

func (s *WithdrawalCommandsTestSuite) challenge(amount string) *verification.Challenge {
	now := s.clock.Now()
	return &verification.Challenge{
		UserID:  s.userID,
		Code:    "123456",
		Purpose: verification.PurposePayout,
		Terms: verification.WithdrawalTerms{
			PartnerID: s.partnerID,
			EventID:   s.eventID,
			Amount:    decimal.RequireFromString(amount),
		},
		IssuedAt:  now,
		ExpiresAt: now.Add(10 * time.Minute),
	}
}

func (s *WithdrawalCommandsTestSuite) expectTxRunThrough() {
	s.tx.EXPECT().Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(db.DBTX) error) error {
			return fn(nil)
		})
}

func (s *WithdrawalCommandsTestSuite) TestConfirm_Success() {
	s.challengeRepo.EXPECT().Get(gomock.Any(), s.userID, verification.PurposePayout).
		Return(s.challenge("500"), nil)
	s.earnings.EXPECT().EventStatement(gomock.Any(), s.partnerID, s.eventID).Return(s.balance("1000"), nil)
	s.expectTxRunThrough()

	payoutID := uuid.New()
	var created *payout.Request
	s.payoutRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ db.DBTX, req *payout.Request) (uuid.UUID, error) {
			created = req
			return payoutID, nil
		})
	s.auditRepo.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ db.DBTX, entry commands.AuditEntry) error {
			s.Equal(s.userID, entry.ActorID)
			s.Equal(s.eventID, entry.EventID)
			return nil
		})
	s.challengeRepo.EXPECT().Delete(gomock.Any(), s.userID, verification.PurposePayout).Return(nil)

	result, err := s.cmds.Confirm(context.Background(), s.userID, reqdto.ConfirmWithdrawalRequest{OTP: "123456"})

	s.Require().NoError(err)
	s.Equal(payoutID, result.PayoutID)
	s.Equal(s.eventID, result.EventID)
	s.Equal(payout.StatusPending, result.Status)
	s.True(result.Amount.Equal(decimal.RequireFromString("500")))

	s.Require().NotNil(created)
	s.Equal(s.partnerID, created.PartnerID())
	s.True(created.IsPending())
}

func (s *WithdrawalCommandsTestSuite) TestConfirm_NoChallenge() {
	s.challengeRepo.EXPECT().Get(gomock.Any(), s.userID, verification.PurposePayout).
		Return(nil, infra.WrapRepoErr("challenge not found", errors.New("redis: nil"), infra.KindNotFound))

	_, err := s.cmds.Confirm(context.Background(), s.userID, reqdto.ConfirmWithdrawalRequest{OTP: "123456"})
	s.Require().ErrorIs(err, commands.ErrInvalidOrExpiredOtp)
}

func (s *WithdrawalCommandsTestSuite) TestConfirm_WrongCode() {
	s.challengeRepo.EXPECT().Get(gomock.Any(), s.userID, verification.PurposePayout).
		Return(s.challenge("500"), nil)

	_, err := s.cmds.Confirm(context.Background(), s.userID, reqdto.ConfirmWithdrawalRequest{OTP: "654321"})
	s.Require().ErrorIs(err, commands.ErrInvalidOrExpiredOtp)
}

func (s *WithdrawalCommandsTestSuite) TestConfirm_ExpiredChallenge() {
	s.challengeRepo.EXPECT().Get(gomock.Any(), s.userID, verification.PurposePayout).
		Return(s.challenge("500"), nil)
	s.clock.Add(11 * time.Minute)

	_, err := s.cmds.Confirm(context.Background(), s.userID, reqdto.ConfirmWithdrawalRequest{OTP: "123456"})
	s.Require().ErrorIs(err, commands.ErrInvalidOrExpiredOtp)
}

func (s *WithdrawalCommandsTestSuite) TestConfirm_BalanceChanged() {
	s.challengeRepo.EXPECT().Get(gomock.Any(), s.userID, verification.PurposePayout).
		Return(s.challenge("500"), nil)
	// Funds shrank between initiate and confirm
	s.earnings.EXPECT().EventStatement(gomock.Any(), s.partnerID, s.eventID).Return(s.balance("300"), nil)
	s.challengeRepo.EXPECT().Delete(gomock.Any(), s.userID, verification.PurposePayout).Return(nil)

	_, err := s.cmds.Confirm(context.Background(), s.userID, reqdto.ConfirmWithdrawalRequest{OTP: "123456"})
	s.Require().ErrorIs(err, commands.ErrBalanceChanged)
}

func (s *WithdrawalCommandsTestSuite) TestConfirm_ConcurrentDuplicate() {
	s.challengeRepo.EXPECT().Get(gomock.Any(), s.userID, verification.PurposePayout).
		Return(s.challenge("500"), nil)
	s.earnings.EXPECT().EventStatement(gomock.Any(), s.partnerID, s.eventID).Return(s.balance("1000"), nil)
	s.expectTxRunThrough()
	s.payoutRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(uuid.Nil, infra.WrapRepoErr("pending payout already exists", errors.New("duplicate key"), infra.KindDuplicateKey))
	s.challengeRepo.EXPECT().Delete(gomock.Any(), s.userID, verification.PurposePayout).Return(nil)

	_, err := s.cmds.Confirm(context.Background(), s.userID, reqdto.ConfirmWithdrawalRequest{OTP: "123456"})
	s.Require().ErrorIs(err, commands.ErrWithdrawalAlreadyInProgress)
}

func (s *WithdrawalCommandsTestSuite) TestConfirm_TxFailure() {
	s.challengeRepo.EXPECT().Get(gomock.Any(), s.userID, verification.PurposePayout).
		Return(s.challenge("500"), nil)
	s.earnings.EXPECT().EventStatement(gomock.Any(), s.partnerID, s.eventID).Return(s.balance("1000"), nil)
	s.tx.EXPECT().Do(gomock.Any(), gomock.Any()).Return(errors.New("commit failed"))

	_, err := s.cmds.Confirm(context.Background(), s.userID, reqdto.ConfirmWithdrawalRequest{OTP: "123456"})
	s.Require().ErrorIs(err, commands.ErrDatabaseOperationFailed)
}
