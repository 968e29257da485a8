package queries

import (
	"context"

	"github.com/google/uuid"

	"partner-portal/internal/infra"
	"partner-portal/internal/pkg/errs"
)

var ErrUserNotFound = errs.New("user not found")

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error)
	GetPartnerProfile(ctx context.Context, userID uuid.UUID) (*PartnerView, error)
}

type userQueriesImpl struct {
	users    UserReadStore
	partners PartnerReadStore
}

func NewUserQueries(users UserReadStore, partners PartnerReadStore) UserQueries {
	return &userQueriesImpl{users: users, partners: partners}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error) {
	view, err := q.users.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	return view, nil
}

func (q *userQueriesImpl) GetPartnerProfile(ctx context.Context, userID uuid.UUID) (*PartnerView, error) {
	view, err := q.partners.FindByUserID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	return view, nil
}
