package commands

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"partner-portal/internal/domain/payout"
	"partner-portal/internal/domain/verification"
	"partner-portal/internal/infra/db"
)

// Write-side ports. Implementations live in internal/infra.

// ChallengeRepository stores the live OTP challenge per (user, purpose).
// Put replaces any existing challenge, so re-initiating doubles as
// resend. Get must not return expired challenges.
type ChallengeRepository interface {
	Put(ctx context.Context, ch *verification.Challenge) error
	Get(ctx context.Context, userID uuid.UUID, purpose verification.Purpose) (*verification.Challenge, error)
	Delete(ctx context.Context, userID uuid.UUID, purpose verification.Purpose) error
}

// PayoutRepository is the append-only payout ledger. Create fails with
// KindDuplicateKey when a pending request already exists for the same
// (partner, event) pair.
type PayoutRepository interface {
	Create(ctx context.Context, tx db.DBTX, req *payout.Request) (uuid.UUID, error)
}

type AuditEntry struct {
	ActorID   uuid.UUID
	Action    string
	PartnerID uuid.UUID
	EventID   uuid.UUID
	Amount    decimal.Decimal
	At        time.Time
}

type AuditRepository interface {
	Append(ctx context.Context, tx db.DBTX, entry AuditEntry) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}

// Mailer delivers verification codes. A send failure must surface to
// the initiate caller so an undelivered code never stays confirmable.
type Mailer interface {
	SendPayoutOTP(ctx context.Context, email, code string, terms verification.WithdrawalTerms) error
}
