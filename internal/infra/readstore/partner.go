package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"partner-portal/internal/infra"
	"partner-portal/internal/pkg/pgconv"
	"partner-portal/internal/usecase/queries"
)

type PartnerReadStore struct {
	pool *pgxpool.Pool
}

func NewPartnerReadStore(pool *pgxpool.Pool) *PartnerReadStore {
	return &PartnerReadStore{pool: pool}
}

const findPartnerByUserIDQuery = `
SELECT id, user_id, company_name, bank_name, bank_account_name, bank_account_number
FROM partners
WHERE user_id = $1`

func (r *PartnerReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) (*queries.PartnerView, error) {
	var (
		view        queries.PartnerView
		bankName    pgtype.Text
		accountName pgtype.Text
		accountNum  pgtype.Text
	)
	err := r.pool.QueryRow(ctx, findPartnerByUserIDQuery, userID).
		Scan(&view.ID, &view.UserID, &view.CompanyName, &bankName, &accountName, &accountNum)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("partner not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find partner by user ID", err)
	}

	view.BankName = pgconv.StringPtrFromPgtype(bankName)
	view.BankAccountName = pgconv.StringPtrFromPgtype(accountName)
	view.BankAccountNumber = pgconv.StringPtrFromPgtype(accountNum)
	return &view, nil
}
