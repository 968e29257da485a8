package queries

import (
	"context"

	"github.com/google/uuid"

	"partner-portal/internal/domain/earnings"
	"partner-portal/internal/infra"
	"partner-portal/internal/pkg/clock"
	"partner-portal/internal/pkg/errs"
)

var (
	ErrEventNotFound = errs.New("event not found")
	// ErrStoreUnavailable marks any read failure. A zero balance must
	// only ever mean "verified zero", never "query failed".
	ErrStoreUnavailable = errs.New("store unavailable")
)

// EarningsQueries is the single entry point for balance computation.
// The earnings dashboard, the withdrawal initiate guard, and the
// confirm-time re-validation all go through this interface, so there is
// exactly one balance formula in the system.
type EarningsQueries interface {
	Statement(ctx context.Context, partnerID uuid.UUID) (*earnings.Statement, error)
	EventStatement(ctx context.Context, partnerID, eventID uuid.UUID) (*earnings.EventBalance, error)
}

type earningsQueriesImpl struct {
	events   EventReadStore
	bookings BookingReadStore
	payouts  PayoutReadStore
	calc     *earnings.Calculator
	clock    clock.Clock
}

func NewEarningsQueries(
	events EventReadStore,
	bookings BookingReadStore,
	payouts PayoutReadStore,
	calc *earnings.Calculator,
	clock clock.Clock,
) EarningsQueries {
	return &earningsQueriesImpl{
		events:   events,
		bookings: bookings,
		payouts:  payouts,
		calc:     calc,
		clock:    clock,
	}
}

func (q *earningsQueriesImpl) Statement(ctx context.Context, partnerID uuid.UUID) (*earnings.Statement, error) {
	events, err := q.events.FindByPartner(ctx, partnerID)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	bookings, err := q.bookings.PaidByPartner(ctx, partnerID)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	payouts, err := q.payouts.ByPartner(ctx, partnerID)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	stmt := q.calc.Statement(q.clock.Now(), events, bookings, payouts)
	return &stmt, nil
}

func (q *earningsQueriesImpl) EventStatement(ctx context.Context, partnerID, eventID uuid.UUID) (*earnings.EventBalance, error) {
	ev, err := q.events.FindByID(ctx, eventID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	// Ownership check: a foreign event is indistinguishable from a
	// missing one.
	if ev.PartnerID != partnerID {
		return nil, ErrEventNotFound
	}

	bookings, err := q.bookings.PaidByEvent(ctx, eventID)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	payouts, err := q.payouts.ByEvent(ctx, eventID)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	eb := q.calc.EventBalance(
		q.clock.Now(),
		earnings.Event{ID: ev.ID, Title: ev.Title, Status: ev.Status},
		bookings,
		payouts,
	)
	return &eb, nil
}
