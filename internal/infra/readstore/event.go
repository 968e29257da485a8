package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"partner-portal/internal/domain/earnings"
	"partner-portal/internal/infra"
	"partner-portal/internal/pkg/pgconv"
	"partner-portal/internal/usecase/queries"
)

type EventReadStore struct {
	pool *pgxpool.Pool
}

func NewEventReadStore(pool *pgxpool.Pool) *EventReadStore {
	return &EventReadStore{pool: pool}
}

const findEventByIDQuery = `
SELECT id, partner_id, title, status
FROM events
WHERE id = $1`

func (r *EventReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.EventView, error) {
	var (
		view   queries.EventView
		status string
	)
	err := r.pool.QueryRow(ctx, findEventByIDQuery, id).
		Scan(&view.ID, &view.PartnerID, &view.Title, &status)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find event by ID", err)
	}
	view.Status = earnings.EventStatus(status)
	return &view, nil
}

const findEventsByPartnerQuery = `
SELECT id, title, status
FROM events
WHERE partner_id = $1
ORDER BY created_at`

func (r *EventReadStore) FindByPartner(ctx context.Context, partnerID uuid.UUID) ([]earnings.Event, error) {
	rows, err := r.pool.Query(ctx, findEventsByPartnerQuery, partnerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list partner events", err)
	}
	defer rows.Close()

	var events []earnings.Event
	for rows.Next() {
		var (
			ev     earnings.Event
			status string
		)
		if err := rows.Scan(&ev.ID, &ev.Title, &status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan event row", err)
		}
		ev.Status = earnings.EventStatus(status)
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read event rows", err)
	}
	return events, nil
}
