package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"partner-portal/internal/domain/payout"
	"partner-portal/internal/domain/verification"
	reqdto "partner-portal/internal/handler/dto/request"
	"partner-portal/internal/infra"
	"partner-portal/internal/infra/db"
	"partner-portal/internal/pkg/clock"
	"partner-portal/internal/pkg/errs"
	"partner-portal/internal/pkg/password"
	"partner-portal/internal/usecase/queries"
	"partner-portal/internal/usecase/shared"
)

var (
	ErrInvalidAmount               = errs.New("invalid withdrawal amount")
	ErrAuthenticationFailed        = errs.New("authentication failed")
	ErrBankDetailsMissing          = errs.New("bank details missing")
	ErrEventNotFound               = errs.New("event not found")
	ErrEventNotEligible            = errs.New("event not eligible for withdrawal")
	ErrWithdrawalAlreadyInProgress = errs.New("withdrawal already in progress")
	ErrInsufficientFunds           = errs.New("insufficient funds")
	ErrInvalidOrExpiredOtp         = errs.New("invalid or expired verification code")
	ErrBalanceChanged              = errs.New("available balance changed since initiation")
	ErrOtpDeliveryFailed           = errs.New("failed to deliver verification code")
	ErrDatabaseOperationFailed     = errs.New("database operation failed")
)

// InsufficientFundsError carries the actual available amount so callers
// can render it.
type InsufficientFundsError struct {
	Available decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return "insufficient funds: " + e.Available.StringFixed(2) + " available"
}

func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

const actionPayoutConfirmed = "payout.confirmed"

type InitiateWithdrawalResult struct {
	MaskedEmail string
	ExpiresAt   time.Time
}

type ConfirmWithdrawalResult struct {
	PayoutID    uuid.UUID
	EventID     uuid.UUID
	Amount      decimal.Decimal
	Status      payout.Status
	RequestedAt time.Time
}

// WithdrawalCommands is the two-phase withdrawal state machine:
// Initiate locks nothing but issues a terms-bound OTP; Confirm
// re-derives the balance and persists the pending payout request.
type WithdrawalCommands interface {
	Initiate(ctx context.Context, userID uuid.UUID, req reqdto.InitiateWithdrawalRequest) (*InitiateWithdrawalResult, error)
	Confirm(ctx context.Context, userID uuid.UUID, req reqdto.ConfirmWithdrawalRequest) (*ConfirmWithdrawalResult, error)
}

type withdrawalCommandsImpl struct {
	users         queries.UserReadStore
	partners      queries.PartnerReadStore
	events        queries.EventReadStore
	payoutReads   queries.PayoutReadStore
	earnings      queries.EarningsQueries
	challengeRepo ChallengeRepository
	payoutRepo    PayoutRepository
	auditRepo     AuditRepository
	mailer        Mailer
	tx            shared.TxManager
	clock         clock.Clock
	otpTTL        time.Duration
}

func NewWithdrawalCommands(
	users queries.UserReadStore,
	partners queries.PartnerReadStore,
	events queries.EventReadStore,
	payoutReads queries.PayoutReadStore,
	earnings queries.EarningsQueries,
	challengeRepo ChallengeRepository,
	payoutRepo PayoutRepository,
	auditRepo AuditRepository,
	mailer Mailer,
	tx shared.TxManager,
	clock clock.Clock,
	otpTTL time.Duration,
) WithdrawalCommands {
	return &withdrawalCommandsImpl{
		users:         users,
		partners:      partners,
		events:        events,
		payoutReads:   payoutReads,
		earnings:      earnings,
		challengeRepo: challengeRepo,
		payoutRepo:    payoutRepo,
		auditRepo:     auditRepo,
		mailer:        mailer,
		tx:            tx,
		clock:         clock,
		otpTTL:        otpTTL,
	}
}

// Initiate runs the precondition chain in a fixed order so each failure
// maps to one distinct, actionable error. On success the terms are
// frozen into a challenge and the OTP is mailed; no PayoutRequest
// exists yet, which is why re-initiating doubles as resend.
func (w *withdrawalCommandsImpl) Initiate(ctx context.Context, userID uuid.UUID, req reqdto.InitiateWithdrawalRequest) (*InitiateWithdrawalResult, error) {
	if !req.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	email, err := w.verifyPassword(ctx, userID, req.Password)
	if err != nil {
		return nil, err
	}

	partner, err := w.partners.FindByUserID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAuthenticationFailed
		}
		return nil, errs.Mark(err, queries.ErrStoreUnavailable)
	}
	if !partner.HasBankDetails() {
		return nil, ErrBankDetailsMissing
	}

	if err := w.checkEventEligible(ctx, partner.ID, req.EventID); err != nil {
		return nil, err
	}

	pending, err := w.payoutReads.HasPending(ctx, partner.ID, req.EventID)
	if err != nil {
		return nil, errs.Mark(err, queries.ErrStoreUnavailable)
	}
	if pending {
		return nil, ErrWithdrawalAlreadyInProgress
	}

	balance, err := w.earnings.EventStatement(ctx, partner.ID, req.EventID)
	if err != nil {
		return nil, err
	}
	if req.Amount.GreaterThan(balance.Available) {
		return nil, &InsufficientFundsError{Available: balance.Available}
	}

	now := w.clock.Now()
	challenge, err := verification.NewPayoutChallenge(userID, verification.WithdrawalTerms{
		PartnerID: partner.ID,
		EventID:   req.EventID,
		Amount:    req.Amount,
	}, now, w.otpTTL)
	if err != nil {
		return nil, errs.Mark(err, ErrOtpDeliveryFailed)
	}

	// Replaces any previous challenge: fresh code, fresh expiry.
	if err := w.challengeRepo.Put(ctx, challenge); err != nil {
		return nil, errs.Mark(err, queries.ErrStoreUnavailable)
	}

	if err := w.mailer.SendPayoutOTP(ctx, email, challenge.Code, challenge.Terms); err != nil {
		// A code the user never received must not stay confirmable.
		if delErr := w.challengeRepo.Delete(ctx, userID, verification.PurposePayout); delErr != nil {
			slog.Warn("failed to discard challenge after mail failure", "user_id", userID, "error", delErr.Error())
		}
		return nil, errs.Mark(err, ErrOtpDeliveryFailed)
	}

	return &InitiateWithdrawalResult{
		MaskedEmail: maskEmail(email),
		ExpiresAt:   challenge.ExpiresAt,
	}, nil
}

// Confirm closes the time-of-check/time-of-use gap by re-deriving the
// balance with the same calculator the initiate guard used. The pending
// payout and its audit entry commit in one transaction.
func (w *withdrawalCommandsImpl) Confirm(ctx context.Context, userID uuid.UUID, req reqdto.ConfirmWithdrawalRequest) (*ConfirmWithdrawalResult, error) {
	challenge, err := w.challengeRepo.Get(ctx, userID, verification.PurposePayout)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidOrExpiredOtp
		}
		return nil, errs.Mark(err, queries.ErrStoreUnavailable)
	}

	now := w.clock.Now()
	if !challenge.Matches(req.OTP, now) {
		return nil, ErrInvalidOrExpiredOtp
	}

	terms := challenge.Terms
	balance, err := w.earnings.EventStatement(ctx, terms.PartnerID, terms.EventID)
	if err != nil {
		return nil, err
	}
	if terms.Amount.GreaterThan(balance.Available) {
		// Another payout moved the balance between initiate and
		// confirm. The challenge is burned; the user must restart.
		w.discardChallenge(ctx, userID)
		return nil, ErrBalanceChanged
	}

	request, err := payout.NewRequest(terms.PartnerID, terms.EventID, terms.Amount, now)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidAmount)
	}

	var payoutID uuid.UUID
	err = w.tx.Do(ctx, func(tx db.DBTX) error {
		id, createErr := w.payoutRepo.Create(ctx, tx, request)
		if createErr != nil {
			return createErr
		}
		auditErr := w.auditRepo.Append(ctx, tx, AuditEntry{
			ActorID:   userID,
			Action:    actionPayoutConfirmed,
			PartnerID: terms.PartnerID,
			EventID:   terms.EventID,
			Amount:    terms.Amount,
			At:        now,
		})
		if auditErr != nil {
			return auditErr
		}
		payoutID = id
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			// Lost the race against a concurrent confirm.
			w.discardChallenge(ctx, userID)
			return nil, ErrWithdrawalAlreadyInProgress
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	w.discardChallenge(ctx, userID)

	return &ConfirmWithdrawalResult{
		PayoutID:    payoutID,
		EventID:     terms.EventID,
		Amount:      terms.Amount,
		Status:      request.Status(),
		RequestedAt: request.RequestedAt(),
	}, nil
}

func (w *withdrawalCommandsImpl) verifyPassword(ctx context.Context, userID uuid.UUID, plain string) (string, error) {
	view, err := w.users.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", ErrAuthenticationFailed
		}
		return "", errs.Mark(err, queries.ErrStoreUnavailable)
	}

	hash, err := w.users.PasswordHashByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", ErrAuthenticationFailed
		}
		return "", errs.Mark(err, queries.ErrStoreUnavailable)
	}

	if err := password.ComparePassword(hash, plain); err != nil {
		return "", ErrAuthenticationFailed
	}

	return view.Email, nil
}

func (w *withdrawalCommandsImpl) checkEventEligible(ctx context.Context, partnerID, eventID uuid.UUID) error {
	ev, err := w.events.FindByID(ctx, eventID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrEventNotFound
		}
		return errs.Mark(err, queries.ErrStoreUnavailable)
	}

	if ev.PartnerID != partnerID {
		return ErrEventNotFound
	}
	// Withdrawals are per event and only after it concludes; active
	// events may still need refunds.
	if !ev.Status.Concluded() {
		return ErrEventNotEligible
	}
	return nil
}

func (w *withdrawalCommandsImpl) discardChallenge(ctx context.Context, userID uuid.UUID) {
	if err := w.challengeRepo.Delete(ctx, userID, verification.PurposePayout); err != nil {
		slog.Warn("failed to discard verification challenge", "user_id", userID, "error", err.Error())
	}
}

func maskEmail(email string) string {
	at := strings.Index(email, "@")
	if at <= 1 {
		return email
	}
	return fmt.Sprintf("%c***%s", email[0], email[at:])
}
