package queries

import (
	"context"

	"boxarena/internal/infra"
	"boxarena/internal/pkg/errs"

	"github.com/google/uuid"
)

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
}

type UserQueries interface {
	GetCurrentUser(ctx context.Context, id uuid.UUID) (*UserView, error)
}

type userQueriesImpl struct {
	users UserReadStore
}

func NewUserQueries(users UserReadStore) UserQueries {
	return &userQueriesImpl{users: users}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, id uuid.UUID) (*UserView, error) {
	view, err := q.users.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}
