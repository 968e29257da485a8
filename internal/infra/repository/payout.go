package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"partner-portal/internal/domain/payout"
	"partner-portal/internal/infra"
	"partner-portal/internal/infra/db"
	"partner-portal/internal/pkg/pgconv"
	"partner-portal/internal/usecase/commands"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

type PayoutRepository struct{}

func NewPayoutRepository() commands.PayoutRepository {
	return &PayoutRepository{}
}

const insertPayoutRequestQuery = `
INSERT INTO payout_requests (id, partner_id, event_id, amount, status, requested_at)
VALUES ($1, $2, $3, $4, $5, $6)`

// Create relies on the partial unique index over pending rows: a second
// pending request for the same (partner, event) fails with
// KindDuplicateKey no matter how the callers raced.
func (r *PayoutRepository) Create(ctx context.Context, tx db.DBTX, req *payout.Request) (uuid.UUID, error) {
	_, err := tx.Exec(ctx, insertPayoutRequestQuery,
		req.ID(),
		req.PartnerID(),
		req.EventID(),
		pgconv.NumericFromDecimal(req.Amount()),
		req.Status().String(),
		pgconv.TimeToPgtype(req.RequestedAt()),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgErrCodeUniqueViolation:
				return uuid.Nil, infra.WrapRepoErr("pending payout already exists", err, infra.KindDuplicateKey)
			case pgErrCodeForeignKeyViolation:
				return uuid.Nil, infra.WrapRepoErr("payout references missing partner or event", err, infra.KindForeignKeyViolated)
			}
		}
		return uuid.Nil, infra.WrapRepoErr("failed to insert payout request", err)
	}
	return req.ID(), nil
}
