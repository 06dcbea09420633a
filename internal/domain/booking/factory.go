package booking

import (
	"time"

	"boxarena/internal/domain/facility"
	"boxarena/internal/pkg/clock"

	"github.com/google/uuid"
)

type Factory struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
}

func NewFactory(clock clock.Clock, priceCalculator PriceCalculator) *Factory {
	return &Factory{
		Clock:           clock,
		PriceCalculator: priceCalculator,
	}
}

// CreateBooking builds a pending, unpaid booking for a whole-hour window.
// The conflict check against persisted inventory happens in the repository
// inside the insert transaction, not here.
func (f *Factory) CreateBooking(
	fac *facility.Facility,
	userID uuid.UUID,
	date time.Time,
	start facility.TimeOfDay,
	durationHours int,
	people int,
	notes string,
) (*Booking, error) {
	now := f.Clock.Now()

	if fac == nil || !fac.IsActive() {
		return nil, ErrFacilityUnavailable
	}
	if IsPastDate(date, now) {
		return nil, ErrPastDate
	}
	if durationHours < 1 {
		return nil, ErrInvalidDuration
	}
	if !fac.CanAccommodate(people) {
		return nil, ErrCapacityExceeded
	}

	timeRange, err := NewTimeRange(start, start.AddMinutes(durationHours*60))
	if err != nil {
		return nil, err
	}

	amount, _ := f.PriceCalculator.PriceForWindow(fac.Schedule(), start.Hour(), durationHours)

	return &Booking{
		id:            uuid.New(),
		userID:        userID,
		facilityID:    fac.ID(),
		date:          DateOnly(date),
		timeRange:     timeRange,
		people:        people,
		amount:        amount,
		status:        StatusPending,
		paymentStatus: PaymentPending,
		reference:     NewReference(now),
		notes:         notes,
		createdAt:     now,
	}, nil
}
