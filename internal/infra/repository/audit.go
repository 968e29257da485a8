package repository

import (
	"context"

	"partner-portal/internal/infra"
	"partner-portal/internal/infra/db"
	"partner-portal/internal/pkg/pgconv"
	"partner-portal/internal/usecase/commands"
)

type AuditRepository struct{}

func NewAuditRepository() commands.AuditRepository {
	return &AuditRepository{}
}

const insertAuditLogQuery = `
INSERT INTO audit_logs (actor_id, action, partner_id, event_id, amount, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

func (r *AuditRepository) Append(ctx context.Context, tx db.DBTX, entry commands.AuditEntry) error {
	_, err := tx.Exec(ctx, insertAuditLogQuery,
		entry.ActorID,
		entry.Action,
		entry.PartnerID,
		entry.EventID,
		pgconv.NumericFromDecimal(entry.Amount),
		pgconv.TimeToPgtype(entry.At),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to append audit log", err)
	}
	return nil
}
