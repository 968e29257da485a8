package verification

import (
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPurpose = errors.New("invalid verification purpose")
	ErrCodeGeneration = errors.New("failed to generate verification code")
)

const (
	CodeLength = 6
	DefaultTTL = 10 * time.Minute
)

// Purpose discriminates what a challenge authorizes. Each purpose
// carries its own typed terms; a payout code can never confirm
// anything but the exact withdrawal it was issued for.
type Purpose string

const PurposePayout Purpose = "payout"

func (p Purpose) IsValid() bool {
	return p == PurposePayout
}

// WithdrawalTerms are captured at initiate time and bound to the
// challenge, so confirm cannot be tricked into different terms.
type WithdrawalTerms struct {
	PartnerID uuid.UUID       `json:"partner_id"`
	EventID   uuid.UUID       `json:"event_id"`
	Amount    decimal.Decimal `json:"amount"`
}

// Challenge is the ephemeral OTP record bridging initiate and confirm.
// Exactly one live challenge exists per (user, purpose); issuing a new
// one replaces the previous, which is also the resend path.
type Challenge struct {
	UserID    uuid.UUID       `json:"user_id"`
	Code      string          `json:"code"`
	Purpose   Purpose         `json:"purpose"`
	Terms     WithdrawalTerms `json:"terms"`
	IssuedAt  time.Time       `json:"issued_at"`
	ExpiresAt time.Time       `json:"expires_at"`
}

func NewPayoutChallenge(userID uuid.UUID, terms WithdrawalTerms, now time.Time, ttl time.Duration) (*Challenge, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	code, err := generateCode()
	if err != nil {
		return nil, err
	}

	return &Challenge{
		UserID:    userID,
		Code:      code,
		Purpose:   PurposePayout,
		Terms:     terms,
		IssuedAt:  now,
		ExpiresAt: now.Add(ttl),
	}, nil
}

func (c *Challenge) Expired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}

// Matches verifies the submitted code in constant time.
func (c *Challenge) Matches(code string, now time.Time) bool {
	if c.Expired(now) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(c.Code), []byte(code)) == 1
}

func (c *Challenge) TTL(now time.Time) time.Duration {
	return c.ExpiresAt.Sub(now)
}

func generateCode() (string, error) {
	max := big.NewInt(1)
	for range CodeLength {
		max.Mul(max, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", ErrCodeGeneration
	}

	return fmt.Sprintf("%0*d", CodeLength, n), nil
}
