//go:build unit || e2e

package builder

import (
	"time"

	reqdto "partner-portal/internal/handler/dto/request"
	"partner-portal/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type WithdrawalBuilder struct {
	EventID     uuid.UUID
	EventTitle  string
	Amount      decimal.Decimal
	Password    string
	OTP         string
	Status      string
	RequestedAt time.Time
}

func NewWithdrawalBuilder() *WithdrawalBuilder {
	return &WithdrawalBuilder{
		EventID:     uuid.New(),
		EventTitle:  "Spring Gala",
		Amount:      decimal.NewFromInt(500),
		Password:    "password123",
		OTP:         "123456",
		Status:      "pending",
		RequestedAt: time.Now(),
	}
}

func (w *WithdrawalBuilder) With(mutate func(*WithdrawalBuilder)) *WithdrawalBuilder {
	mutate(w)
	return w
}

// Build methods
func (w *WithdrawalBuilder) BuildInitiateRequestDTO() reqdto.InitiateWithdrawalRequest {
	return reqdto.InitiateWithdrawalRequest{
		EventID:  w.EventID,
		Amount:   w.Amount,
		Password: w.Password,
	}
}

func (w *WithdrawalBuilder) BuildConfirmRequestDTO() reqdto.ConfirmWithdrawalRequest {
	return reqdto.ConfirmWithdrawalRequest{
		OTP: w.OTP,
	}
}

func (w *WithdrawalBuilder) BuildHistoryItem() *queries.PayoutHistoryItem {
	return &queries.PayoutHistoryItem{
		ID:          uuid.New(),
		EventID:     w.EventID,
		EventTitle:  w.EventTitle,
		Amount:      w.Amount,
		Status:      w.Status,
		RequestedAt: w.RequestedAt,
	}
}

// Fluent builder methods
func (w *WithdrawalBuilder) WithEventID(eventID uuid.UUID) *WithdrawalBuilder {
	w.EventID = eventID
	return w
}

func (w *WithdrawalBuilder) WithAmount(amount decimal.Decimal) *WithdrawalBuilder {
	w.Amount = amount
	return w
}

func (w *WithdrawalBuilder) WithPassword(password string) *WithdrawalBuilder {
	w.Password = password
	return w
}

func (w *WithdrawalBuilder) WithOTP(otp string) *WithdrawalBuilder {
	w.OTP = otp
	return w
}

func (w *WithdrawalBuilder) WithStatus(status string) *WithdrawalBuilder {
	w.Status = status
	return w
}
