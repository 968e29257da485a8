package payout

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount = errors.New("payout amount must be positive")
	ErrInvalidStatus = errors.New("invalid payout status")
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusPaid     Status = "paid"
	StatusRejected Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusRejected:
		return true
	default:
		return false
	}
}

// Locked reports whether the request still deducts from the available
// balance. Only rejection frees the funds.
func (s Status) Locked() bool {
	return s == StatusPending || s == StatusPaid
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// Request is one withdrawal attempt. It is created in pending state
// only after OTP confirmation; the pending→paid/rejected transition
// belongs to the back office and reaches this service as data.
type Request struct {
	id          uuid.UUID
	partnerID   uuid.UUID
	eventID     uuid.UUID
	amount      decimal.Decimal
	status      Status
	requestedAt time.Time
	processedAt *time.Time
}

func NewRequest(partnerID, eventID uuid.UUID, amount decimal.Decimal, requestedAt time.Time) (*Request, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	return &Request{
		id:          uuid.New(),
		partnerID:   partnerID,
		eventID:     eventID,
		amount:      amount,
		status:      StatusPending,
		requestedAt: requestedAt,
	}, nil
}

func ReconstructRequest(
	id, partnerID, eventID uuid.UUID,
	amount decimal.Decimal,
	status Status,
	requestedAt time.Time,
	processedAt *time.Time,
) *Request {
	return &Request{
		id:          id,
		partnerID:   partnerID,
		eventID:     eventID,
		amount:      amount,
		status:      status,
		requestedAt: requestedAt,
		processedAt: processedAt,
	}
}

func (r *Request) ID() uuid.UUID           { return r.id }
func (r *Request) PartnerID() uuid.UUID    { return r.partnerID }
func (r *Request) EventID() uuid.UUID      { return r.eventID }
func (r *Request) Amount() decimal.Decimal { return r.amount }
func (r *Request) Status() Status          { return r.status }
func (r *Request) RequestedAt() time.Time  { return r.requestedAt }
func (r *Request) ProcessedAt() *time.Time { return r.processedAt }

func (r *Request) IsPending() bool { return r.status == StatusPending }
