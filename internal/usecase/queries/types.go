package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"partner-portal/internal/domain/earnings"
)

// Read models (DTO for read side)
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

type PartnerView struct {
	ID                uuid.UUID `json:"id"`
	UserID            uuid.UUID `json:"user_id"`
	CompanyName       string    `json:"company_name"`
	BankName          *string   `json:"bank_name,omitempty"`
	BankAccountName   *string   `json:"bank_account_name,omitempty"`
	BankAccountNumber *string   `json:"bank_account_number,omitempty"`
}

// HasBankDetails reports whether a payout destination is on file.
func (p *PartnerView) HasBankDetails() bool {
	return p.BankName != nil && p.BankAccountNumber != nil
}

type EventView struct {
	ID        uuid.UUID           `json:"id"`
	PartnerID uuid.UUID           `json:"partner_id"`
	Title     string              `json:"title"`
	Status    earnings.EventStatus `json:"status"`
}

type PayoutHistoryItem struct {
	ID          uuid.UUID       `json:"id"`
	EventID     uuid.UUID       `json:"event_id"`
	EventTitle  string          `json:"event_title"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status"`
	RequestedAt time.Time       `json:"requested_at"`
	ProcessedAt *time.Time      `json:"processed_at,omitempty"`
}

type HistoryFilter struct {
	EventID *uuid.UUID
	From    *time.Time
	To      *time.Time
}

// Read store ports implemented by internal/infra/readstore.

type UserReadStore interface {
	FindByEmail(ctx context.Context, email string) (*AuthorizedUserView, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	// PasswordHashByID supports step-up re-authentication at withdrawal time.
	PasswordHashByID(ctx context.Context, id uuid.UUID) (string, error)
}

type PartnerReadStore interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*PartnerView, error)
}

type EventReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*EventView, error)
	FindByPartner(ctx context.Context, partnerID uuid.UUID) ([]earnings.Event, error)
}

type BookingReadStore interface {
	PaidByEvent(ctx context.Context, eventID uuid.UUID) ([]earnings.Booking, error)
	PaidByPartner(ctx context.Context, partnerID uuid.UUID) ([]earnings.Booking, error)
}

type PayoutReadStore interface {
	ByEvent(ctx context.Context, eventID uuid.UUID) ([]earnings.PayoutRecord, error)
	ByPartner(ctx context.Context, partnerID uuid.UUID) ([]earnings.PayoutRecord, error)
	HasPending(ctx context.Context, partnerID, eventID uuid.UUID) (bool, error)
	History(ctx context.Context, partnerID uuid.UUID, filter HistoryFilter) ([]*PayoutHistoryItem, error)
}
