package earnings

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"partner-portal/internal/domain/payout"
)

var ErrInvalidCommissionRate = errors.New("commission rate must be in [0, 1)")

// Policy holds every tunable of the balance computation. The commission
// rate and clearance window live here and nowhere else.
type Policy struct {
	CommissionRate  decimal.Decimal
	ClearanceWindow time.Duration
}

func DefaultPolicy() Policy {
	return Policy{
		CommissionRate:  decimal.NewFromFloat(0.05),
		ClearanceWindow: 0,
	}
}

// Calculator derives withdrawable balances from paid bookings and
// payout requests. It is pure: same inputs, same output. Both the
// earnings dashboard and the withdrawal guards call this one
// implementation, so the two can never drift.
type Calculator struct {
	policy Policy
}

func NewCalculator(policy Policy) (*Calculator, error) {
	if policy.CommissionRate.IsNegative() || policy.CommissionRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return nil, ErrInvalidCommissionRate
	}
	return &Calculator{policy: policy}, nil
}

func (c *Calculator) Policy() Policy {
	return c.policy
}

// Statement computes per-event balances for every event in the input
// order plus the aggregate totals. Events without bookings still get a
// zero-valued entry.
func (c *Calculator) Statement(now time.Time, events []Event, bookings []Booking, payouts []PayoutRecord) Statement {
	bookingsByEvent := make(map[uuid.UUID][]Booking, len(events))
	for _, b := range bookings {
		bookingsByEvent[b.EventID] = append(bookingsByEvent[b.EventID], b)
	}
	payoutsByEvent := make(map[uuid.UUID][]PayoutRecord, len(events))
	for _, p := range payouts {
		payoutsByEvent[p.EventID] = append(payoutsByEvent[p.EventID], p)
	}

	stmt := Statement{Events: make([]EventBalance, 0, len(events))}
	for _, ev := range events {
		eb := c.EventBalance(now, ev, bookingsByEvent[ev.ID], payoutsByEvent[ev.ID])
		stmt.Events = append(stmt.Events, eb)

		stmt.Totals.GrossRevenue = stmt.Totals.GrossRevenue.Add(eb.GrossRevenue)
		stmt.Totals.Commission = stmt.Totals.Commission.Add(eb.Commission)
		stmt.Totals.NetRevenue = stmt.Totals.NetRevenue.Add(eb.NetRevenue)
		stmt.Totals.PendingClearance = stmt.Totals.PendingClearance.Add(eb.PendingClearance)
		stmt.Totals.Locked = stmt.Totals.Locked.Add(eb.Locked)
		stmt.Totals.Withdrawn = stmt.Totals.Withdrawn.Add(eb.Withdrawn)
		stmt.Totals.Available = stmt.Totals.Available.Add(eb.Available)
	}

	return stmt
}

// EventBalance computes the balance of a single event.
//
// Commission is deducted exactly once: net = gross - gross*rate per
// booking, and everything downstream (clearance hold, locked deduction,
// available) works in net terms.
func (c *Calculator) EventBalance(now time.Time, ev Event, bookings []Booking, payouts []PayoutRecord) EventBalance {
	eb := EventBalance{
		EventID: ev.ID,
		Title:   ev.Title,
		Status:  ev.Status,
	}

	for _, b := range bookings {
		commission := b.Gross.Mul(c.policy.CommissionRate)
		net := b.Gross.Sub(commission)

		eb.GrossRevenue = eb.GrossRevenue.Add(b.Gross)
		eb.Commission = eb.Commission.Add(commission)
		eb.NetRevenue = eb.NetRevenue.Add(net)

		if c.held(now, ev, b) {
			eb.PendingClearance = eb.PendingClearance.Add(net)
		}
	}

	for _, p := range payouts {
		if p.Status == payout.StatusRejected {
			continue
		}
		eb.Locked = eb.Locked.Add(p.Amount)
		if p.Status == payout.StatusPaid {
			eb.Withdrawn = eb.Withdrawn.Add(p.Amount)
		}
	}

	available := eb.NetRevenue.Sub(eb.PendingClearance).Sub(eb.Locked)
	if available.IsNegative() {
		// Over-locked states (e.g. a payout inserted beyond revenue)
		// must never surface as a negative balance.
		available = decimal.Zero
	}
	eb.Available = available

	return eb
}

// held reports whether a booking's net revenue is still inside the
// clearance hold: the event has not concluded, or the booking is
// younger than the clearance window.
func (c *Calculator) held(now time.Time, ev Event, b Booking) bool {
	if !ev.Status.Concluded() {
		return true
	}
	return now.Sub(b.PaidAt) < c.policy.ClearanceWindow
}
