package queries

import (
	"context"

	"boxarena/internal/infra"
	"boxarena/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingQueries interface {
	// GetBooking is owner scoped; a booking belonging to another user reads
	// as not found.
	GetBooking(ctx context.Context, id, userID uuid.UUID) (*BookingView, error)
	ListUserBookings(ctx context.Context, userID uuid.UUID, filter BookingListFilter) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	bookings BookingReadStore
}

func NewBookingQueries(bookings BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{bookings: bookings}
}

func (q *bookingQueriesImpl) GetBooking(ctx context.Context, id, userID uuid.UUID) (*BookingView, error) {
	view, err := q.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if view.UserID != userID {
		return nil, errs.ErrBookingNotFound
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListUserBookings(ctx context.Context, userID uuid.UUID, filter BookingListFilter) ([]*BookingView, error) {
	if filter == "" {
		filter = BookingFilterAll
	}
	if !filter.IsValid() {
		return nil, errs.ErrDomainValidation
	}
	views, err := q.bookings.FindByUser(ctx, userID, filter)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}
