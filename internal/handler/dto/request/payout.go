package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InitiateWithdrawalRequest carries the password for step-up
// re-authentication; the session token alone is not enough to move
// money.
type InitiateWithdrawalRequest struct {
	EventID  uuid.UUID       `json:"event_id" binding:"required"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Password string          `json:"password" binding:"required"`
}

type ConfirmWithdrawalRequest struct {
	OTP string `json:"otp" binding:"required,len=6,numeric"`
}
