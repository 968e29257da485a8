package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"partner-portal/internal/domain/earnings"
	"partner-portal/internal/infra"
	"partner-portal/internal/pkg/pgconv"
)

type BookingReadStore struct {
	pool *pgxpool.Pool
}

func NewBookingReadStore(pool *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{pool: pool}
}

// Only paid bookings contribute revenue. Cancelled and refunded rows
// stay out of the calculator entirely.
const paidBookingsByEventQuery = `
SELECT id, event_id, total_amount, paid_at
FROM bookings
WHERE event_id = $1 AND status = 'paid'`

func (r *BookingReadStore) PaidByEvent(ctx context.Context, eventID uuid.UUID) ([]earnings.Booking, error) {
	rows, err := r.pool.Query(ctx, paidBookingsByEventQuery, eventID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list paid bookings for event", err)
	}
	return scanBookings(rows)
}

const paidBookingsByPartnerQuery = `
SELECT b.id, b.event_id, b.total_amount, b.paid_at
FROM bookings b
JOIN events e ON e.id = b.event_id
WHERE e.partner_id = $1 AND b.status = 'paid'`

func (r *BookingReadStore) PaidByPartner(ctx context.Context, partnerID uuid.UUID) ([]earnings.Booking, error) {
	rows, err := r.pool.Query(ctx, paidBookingsByPartnerQuery, partnerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list paid bookings for partner", err)
	}
	return scanBookings(rows)
}

func scanBookings(rows pgx.Rows) ([]earnings.Booking, error) {
	defer rows.Close()

	var bookings []earnings.Booking
	for rows.Next() {
		var (
			b      earnings.Booking
			gross  pgtype.Numeric
			paidAt pgtype.Timestamptz
		)
		if err := rows.Scan(&b.ID, &b.EventID, &gross, &paidAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		amount, err := pgconv.DecimalFromNumeric(gross)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt booking amount", err)
		}
		b.Gross = amount
		b.PaidAt = pgconv.TimeFromPgtype(paidAt)
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return bookings, nil
}
