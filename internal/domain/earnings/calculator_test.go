//go:build unit

package earnings_test

import (
	"testing"
	"time"

	"partner-portal/internal/domain/earnings"
	"partner-portal/internal/domain/payout"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool {
	return a.Equal(b)
})

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func newCalculator(t *testing.T, rate string, window time.Duration) *earnings.Calculator {
	t.Helper()
	calc, err := earnings.NewCalculator(earnings.Policy{
		CommissionRate:  dec(rate),
		ClearanceWindow: window,
	})
	require.NoError(t, err)
	return calc
}

func TestNewCalculator(t *testing.T) {
	cases := []struct {
		name  string
		rate  string
		errIs error
	}{
		{name: "zero rate", rate: "0"},
		{name: "typical rate", rate: "0.05"},
		{name: "just below one", rate: "0.999"},
		{name: "negative rate", rate: "-0.01", errIs: earnings.ErrInvalidCommissionRate},
		{name: "rate of one", rate: "1", errIs: earnings.ErrInvalidCommissionRate},
		{name: "rate above one", rate: "1.5", errIs: earnings.ErrInvalidCommissionRate},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			calc, err := earnings.NewCalculator(earnings.Policy{CommissionRate: dec(c.rate)})
			if c.errIs != nil {
				require.Nil(t, calc)
				require.ErrorIs(t, err, c.errIs)
			} else {
				require.NoError(t, err)
				require.NotNil(t, calc)
			}
		})
	}
}

func TestEventBalance(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	eventID := uuid.New()
	completed := earnings.Event{ID: eventID, Title: "Spring Gala", Status: earnings.EventCompleted}

	booking := func(gross string, paidAt time.Time) earnings.Booking {
		return earnings.Booking{ID: uuid.New(), EventID: eventID, Gross: dec(gross), PaidAt: paidAt}
	}

	t.Run("commission deducted exactly once: 1000+2000 at 5%", func(t *testing.T) {
		calc := newCalculator(t, "0.05", 0)
		eb := calc.EventBalance(now, completed, []earnings.Booking{
			booking("1000", now.Add(-48*time.Hour)),
			booking("2000", now.Add(-24*time.Hour)),
		}, nil)

		assert.Empty(t, cmp.Diff(dec("3000"), eb.GrossRevenue, decimalComparer))
		assert.Empty(t, cmp.Diff(dec("150"), eb.Commission, decimalComparer))
		assert.Empty(t, cmp.Diff(dec("2850"), eb.NetRevenue, decimalComparer))
		assert.Empty(t, cmp.Diff(dec("2850"), eb.Available, decimalComparer))
	})

	t.Run("non-concluded event holds all net revenue", func(t *testing.T) {
		calc := newCalculator(t, "0.05", 0)
		active := earnings.Event{ID: eventID, Title: "Spring Gala", Status: earnings.EventActive}
		eb := calc.EventBalance(now, active, []earnings.Booking{
			booking("1000", now.Add(-100*24*time.Hour)),
		}, nil)

		assert.Empty(t, cmp.Diff(dec("950"), eb.PendingClearance, decimalComparer))
		assert.True(t, eb.Available.IsZero())
	})

	t.Run("clearance window holds young bookings only", func(t *testing.T) {
		calc := newCalculator(t, "0.10", 72*time.Hour)
		eb := calc.EventBalance(now, completed, []earnings.Booking{
			booking("100", now.Add(-24*time.Hour)),  // inside window
			booking("200", now.Add(-96*time.Hour)),  // cleared
			booking("300", now.Add(-72*time.Hour)),  // exactly at boundary: cleared
		}, nil)

		assert.Empty(t, cmp.Diff(dec("90"), eb.PendingClearance, decimalComparer))
		assert.Empty(t, cmp.Diff(dec("450"), eb.Available, decimalComparer))
	})

	t.Run("pending and paid payouts lock funds, rejected do not", func(t *testing.T) {
		calc := newCalculator(t, "0", 0)
		eb := calc.EventBalance(now, completed, []earnings.Booking{
			booking("1000", now.Add(-time.Hour)),
		}, []earnings.PayoutRecord{
			{EventID: eventID, Amount: dec("100"), Status: payout.StatusPending},
			{EventID: eventID, Amount: dec("200"), Status: payout.StatusPaid},
			{EventID: eventID, Amount: dec("400"), Status: payout.StatusRejected},
		})

		assert.Empty(t, cmp.Diff(dec("300"), eb.Locked, decimalComparer))
		assert.Empty(t, cmp.Diff(dec("200"), eb.Withdrawn, decimalComparer))
		// 1000 - 300 locked; the rejected 400 is back in the pool.
		assert.Empty(t, cmp.Diff(dec("700"), eb.Available, decimalComparer))
	})

	t.Run("available clamps to zero when over-locked", func(t *testing.T) {
		calc := newCalculator(t, "0.05", 0)
		eb := calc.EventBalance(now, completed, []earnings.Booking{
			booking("100", now.Add(-time.Hour)),
		}, []earnings.PayoutRecord{
			{EventID: eventID, Amount: dec("500"), Status: payout.StatusPending},
		})

		assert.True(t, eb.Available.IsZero())
		assert.False(t, eb.Available.IsNegative())
	})

	t.Run("no bookings yields zero-valued balance", func(t *testing.T) {
		calc := newCalculator(t, "0.05", 0)
		eb := calc.EventBalance(now, completed, nil, nil)

		assert.True(t, eb.GrossRevenue.IsZero())
		assert.True(t, eb.Available.IsZero())
		assert.Equal(t, eventID, eb.EventID)
	})
}

func TestStatement(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	calc := newCalculator(t, "0.05", 0)

	ev1 := earnings.Event{ID: uuid.New(), Title: "Gala", Status: earnings.EventCompleted}
	ev2 := earnings.Event{ID: uuid.New(), Title: "Workshop", Status: earnings.EventActive}
	ev3 := earnings.Event{ID: uuid.New(), Title: "Draft Meetup", Status: earnings.EventDraft}

	bookings := []earnings.Booking{
		{ID: uuid.New(), EventID: ev1.ID, Gross: dec("1000"), PaidAt: now.Add(-48 * time.Hour)},
		{ID: uuid.New(), EventID: ev1.ID, Gross: dec("2000"), PaidAt: now.Add(-24 * time.Hour)},
		{ID: uuid.New(), EventID: ev2.ID, Gross: dec("500"), PaidAt: now.Add(-24 * time.Hour)},
	}
	payouts := []earnings.PayoutRecord{
		{EventID: ev1.ID, Amount: dec("850"), Status: payout.StatusPaid},
	}

	stmt := calc.Statement(now, []earnings.Event{ev1, ev2, ev3}, bookings, payouts)

	require.Len(t, stmt.Events, 3)

	t.Run("per-event balances", func(t *testing.T) {
		assert.Empty(t, cmp.Diff(dec("2000"), stmt.Events[0].Available, decimalComparer))
		assert.True(t, stmt.Events[1].Available.IsZero())
		assert.True(t, stmt.Events[2].GrossRevenue.IsZero())
	})

	t.Run("totals are the sum of events", func(t *testing.T) {
		var gross, commission, net, held, locked, available decimal.Decimal
		for _, eb := range stmt.Events {
			gross = gross.Add(eb.GrossRevenue)
			commission = commission.Add(eb.Commission)
			net = net.Add(eb.NetRevenue)
			held = held.Add(eb.PendingClearance)
			locked = locked.Add(eb.Locked)
			available = available.Add(eb.Available)
		}

		assert.Empty(t, cmp.Diff(gross, stmt.Totals.GrossRevenue, decimalComparer))
		assert.Empty(t, cmp.Diff(commission, stmt.Totals.Commission, decimalComparer))
		assert.Empty(t, cmp.Diff(net, stmt.Totals.NetRevenue, decimalComparer))
		assert.Empty(t, cmp.Diff(held, stmt.Totals.PendingClearance, decimalComparer))
		assert.Empty(t, cmp.Diff(locked, stmt.Totals.Locked, decimalComparer))
		assert.Empty(t, cmp.Diff(available, stmt.Totals.Available, decimalComparer))
	})

	t.Run("net conservation: available + held + locked - rejected never exceeds net", func(t *testing.T) {
		for _, eb := range stmt.Events {
			sum := eb.Available.Add(eb.PendingClearance).Add(eb.Locked)
			assert.True(t, sum.GreaterThanOrEqual(eb.NetRevenue),
				"available+held+locked must cover net for event %s", eb.Title)
		}
	})

	t.Run("same inputs give identical output", func(t *testing.T) {
		again := calc.Statement(now, []earnings.Event{ev1, ev2, ev3}, bookings, payouts)
		assert.Empty(t, cmp.Diff(stmt, again, decimalComparer))
	})
}
