package queries

import (
	"context"

	"github.com/google/uuid"

	"partner-portal/internal/pkg/errs"
)

type PayoutQueries interface {
	History(ctx context.Context, partnerID uuid.UUID, filter HistoryFilter) ([]*PayoutHistoryItem, error)
}

type payoutQueriesImpl struct {
	payouts PayoutReadStore
}

func NewPayoutQueries(payouts PayoutReadStore) PayoutQueries {
	return &payoutQueriesImpl{payouts: payouts}
}

func (q *payoutQueriesImpl) History(ctx context.Context, partnerID uuid.UUID, filter HistoryFilter) ([]*PayoutHistoryItem, error) {
	items, err := q.payouts.History(ctx, partnerID, filter)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	return items, nil
}
