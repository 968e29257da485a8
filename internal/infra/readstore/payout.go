package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"partner-portal/internal/domain/earnings"
	"partner-portal/internal/domain/payout"
	"partner-portal/internal/infra"
	"partner-portal/internal/pkg/pgconv"
	"partner-portal/internal/usecase/queries"
)

type PayoutReadStore struct {
	pool *pgxpool.Pool
}

func NewPayoutReadStore(pool *pgxpool.Pool) *PayoutReadStore {
	return &PayoutReadStore{pool: pool}
}

// All statuses are loaded; the calculator decides what locks funds.
const payoutsByEventQuery = `
SELECT event_id, amount, status
FROM payout_requests
WHERE event_id = $1`

func (r *PayoutReadStore) ByEvent(ctx context.Context, eventID uuid.UUID) ([]earnings.PayoutRecord, error) {
	rows, err := r.pool.Query(ctx, payoutsByEventQuery, eventID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payouts for event", err)
	}
	return scanPayoutRecords(rows)
}

const payoutsByPartnerQuery = `
SELECT event_id, amount, status
FROM payout_requests
WHERE partner_id = $1`

func (r *PayoutReadStore) ByPartner(ctx context.Context, partnerID uuid.UUID) ([]earnings.PayoutRecord, error) {
	rows, err := r.pool.Query(ctx, payoutsByPartnerQuery, partnerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payouts for partner", err)
	}
	return scanPayoutRecords(rows)
}

const hasPendingPayoutQuery = `
SELECT EXISTS (
    SELECT 1 FROM payout_requests
    WHERE partner_id = $1 AND event_id = $2 AND status = 'pending'
)`

func (r *PayoutReadStore) HasPending(ctx context.Context, partnerID, eventID uuid.UUID) (bool, error) {
	var exists bool
	if err := r.pool.QueryRow(ctx, hasPendingPayoutQuery, partnerID, eventID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check pending payout", err)
	}
	return exists, nil
}

const payoutHistoryQuery = `
SELECT p.id, p.event_id, e.title, p.amount, p.status, p.requested_at, p.processed_at
FROM payout_requests p
JOIN events e ON e.id = p.event_id
WHERE p.partner_id = $1
  AND ($2::uuid IS NULL OR p.event_id = $2)
  AND ($3::timestamptz IS NULL OR p.requested_at >= $3)
  AND ($4::timestamptz IS NULL OR p.requested_at <= $4)
ORDER BY p.requested_at DESC`

func (r *PayoutReadStore) History(ctx context.Context, partnerID uuid.UUID, filter queries.HistoryFilter) ([]*queries.PayoutHistoryItem, error) {
	rows, err := r.pool.Query(ctx, payoutHistoryQuery,
		partnerID,
		pgconv.UUIDPtrToPgtype(filter.EventID),
		pgconv.TimePtrToPgtype(filter.From),
		pgconv.TimePtrToPgtype(filter.To),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payout history", err)
	}
	defer rows.Close()

	items := []*queries.PayoutHistoryItem{}
	for rows.Next() {
		var (
			item        queries.PayoutHistoryItem
			amount      pgtype.Numeric
			requestedAt pgtype.Timestamptz
			processedAt pgtype.Timestamptz
		)
		if err := rows.Scan(&item.ID, &item.EventID, &item.EventTitle, &amount, &item.Status, &requestedAt, &processedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan payout history row", err)
		}
		value, err := pgconv.DecimalFromNumeric(amount)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt payout amount", err)
		}
		item.Amount = value
		item.RequestedAt = pgconv.TimeFromPgtype(requestedAt)
		item.ProcessedAt = pgconv.TimePtrFromPgtype(processedAt)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read payout history rows", err)
	}
	return items, nil
}

func scanPayoutRecords(rows pgx.Rows) ([]earnings.PayoutRecord, error) {
	defer rows.Close()

	var records []earnings.PayoutRecord
	for rows.Next() {
		var (
			rec    earnings.PayoutRecord
			amount pgtype.Numeric
			status string
		)
		if err := rows.Scan(&rec.EventID, &amount, &status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan payout row", err)
		}
		value, err := pgconv.DecimalFromNumeric(amount)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt payout amount", err)
		}
		parsed, err := payout.NewStatus(status)
		if err != nil {
			return nil, infra.WrapRepoErr("unknown payout status", err)
		}
		rec.Amount = value
		rec.Status = parsed
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read payout rows", err)
	}
	return records, nil
}
