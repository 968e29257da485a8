package earnings

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"partner-portal/internal/domain/payout"
)

type EventStatus string

const (
	EventDraft     EventStatus = "draft"
	EventActive    EventStatus = "active"
	EventCompleted EventStatus = "completed"
	EventCancelled EventStatus = "cancelled"
)

func (s EventStatus) String() string {
	return string(s)
}

// Concluded reports whether the event can release revenue for withdrawal.
func (s EventStatus) Concluded() bool {
	return s == EventCompleted
}

// Event is the read-only view of an event this calculator needs.
// Ownership filtering happens before the data reaches here.
type Event struct {
	ID     uuid.UUID
	Title  string
	Status EventStatus
}

// Booking is one paid ticket purchase. Only paid bookings may be fed to
// the calculator; filtering by status is the data source's job.
type Booking struct {
	ID      uuid.UUID
	EventID uuid.UUID
	Gross   decimal.Decimal
	PaidAt  time.Time
}

// PayoutRecord is the slice of a payout request the calculator cares
// about. Rejected requests are excluded from locked funds inside the
// calculation, not by the data source, so a stale read can never free
// funds early.
type PayoutRecord struct {
	EventID uuid.UUID
	Amount  decimal.Decimal
	Status  payout.Status
}

type EventBalance struct {
	EventID          uuid.UUID
	Title            string
	Status           EventStatus
	GrossRevenue     decimal.Decimal
	Commission       decimal.Decimal
	NetRevenue       decimal.Decimal
	PendingClearance decimal.Decimal
	Locked           decimal.Decimal
	Withdrawn        decimal.Decimal
	Available        decimal.Decimal
}

type Totals struct {
	GrossRevenue     decimal.Decimal
	Commission       decimal.Decimal
	NetRevenue       decimal.Decimal
	PendingClearance decimal.Decimal
	Locked           decimal.Decimal
	Withdrawn        decimal.Decimal
	Available        decimal.Decimal
}

type Statement struct {
	Events []EventBalance
	Totals Totals
}
