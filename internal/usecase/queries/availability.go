package queries

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"boxarena/internal/domain/booking"
	"boxarena/internal/domain/facility"
	"boxarena/internal/infra"
	"boxarena/internal/pkg/clock"
	"boxarena/internal/pkg/errs"

	"github.com/google/uuid"
)

type FacilityReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*FacilityView, error)
	FindEntityByID(ctx context.Context, id uuid.UUID) (*facility.Facility, error)
	ListActive(ctx context.Context, ftype string) ([]*FacilityView, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByUser(ctx context.Context, userID uuid.UUID, filter BookingListFilter) ([]*BookingView, error)
	FindBlockingStarts(ctx context.Context, facilityID uuid.UUID, date time.Time) ([]string, error)
}

// PendingPurger deletes unpaid pending bookings older than the cutoff.
type PendingPurger interface {
	PurgeStalePending(ctx context.Context, cutoff time.Time) (int64, error)
}

type AvailabilityQueries interface {
	GetAvailability(ctx context.Context, facilityID uuid.UUID, date time.Time) (*AvailabilityView, error)
	QuotePrice(ctx context.Context, facilityID uuid.UUID, date time.Time, startTime string, durationHours int) (*QuoteView, error)
}

type availabilityQueriesImpl struct {
	facilities FacilityReadStore
	bookings   BookingReadStore
	purger     PendingPurger
	calc       booking.PriceCalculator
	clock      clock.Clock
	retention  time.Duration
}

func NewAvailabilityQueries(
	facilities FacilityReadStore,
	bookings BookingReadStore,
	purger PendingPurger,
	calc booking.PriceCalculator,
	clock clock.Clock,
	retention time.Duration,
) AvailabilityQueries {
	return &availabilityQueriesImpl{
		facilities: facilities,
		bookings:   bookings,
		purger:     purger,
		calc:       calc,
		clock:      clock,
		retention:  retention,
	}
}

func (q *availabilityQueriesImpl) GetAvailability(ctx context.Context, facilityID uuid.UUID, date time.Time) (*AvailabilityView, error) {
	now := q.clock.Now()
	if booking.IsPastDate(date, now) {
		return nil, errs.ErrPastDate
	}

	fac, err := q.loadFacility(ctx, facilityID)
	if err != nil {
		return nil, err
	}

	// Best-effort purge so availability reflects only genuinely reserved
	// inventory; a failure here must not block the read.
	q.purgeStalePending(ctx, now)

	starts, err := q.bookings.FindBlockingStarts(ctx, facilityID, booking.DateOnly(date))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	blocking := make([]booking.BlockingSlot, 0, len(starts))
	for _, s := range starts {
		t, parseErr := facility.ParseTimeOfDay(s)
		if parseErr != nil {
			return nil, errs.Mark(parseErr, errs.ErrDatabaseOperationFailed)
		}
		blocking = append(blocking, booking.BlockingSlot{Start: t})
	}

	resolved := booking.ResolveAvailability(fac.Schedule(), date, q.calc, blocking)

	slots := make([]SlotView, len(resolved))
	for i, slot := range resolved {
		slots[i] = SlotView{
			StartTime:   slot.Start.String(),
			EndTime:     slot.End.String(),
			Duration:    slot.Duration,
			Price:       slot.Price.Rupees(),
			IsAvailable: slot.Available,
		}
	}

	return &AvailabilityView{
		FacilityID:   fac.ID(),
		FacilityName: fac.Name(),
		Date:         booking.DateOnly(date).Format("2006-01-02"),
		Slots:        slots,
	}, nil
}

func (q *availabilityQueriesImpl) QuotePrice(ctx context.Context, facilityID uuid.UUID, date time.Time, startTime string, durationHours int) (*QuoteView, error) {
	if booking.IsPastDate(date, q.clock.Now()) {
		return nil, errs.ErrPastDate
	}
	if durationHours < 1 {
		return nil, errs.ErrInvalidTimeSlot
	}
	start, err := facility.ParseTimeOfDay(startTime)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidTimeSlot)
	}

	fac, err := q.loadFacility(ctx, facilityID)
	if err != nil {
		return nil, err
	}

	starts, err := q.bookings.FindBlockingStarts(ctx, facilityID, booking.DateOnly(date))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	booked := make(map[string]bool, len(starts))
	for _, s := range starts {
		booked[s] = true
	}

	total, breakdown := q.calc.PriceForWindow(fac.Schedule(), start.Hour(), durationHours)

	available := true
	for i := 0; i < durationHours; i++ {
		hourStart := fmt.Sprintf("%02d:00", start.Hour()+i)
		if booked[hourStart] {
			available = false
			break
		}
	}

	view := &QuoteView{
		Available:  available,
		TotalPrice: total.Rupees(),
		Breakdown:  make([]HourRateView, len(breakdown)),
	}
	for i, hr := range breakdown {
		view.Breakdown[i] = HourRateView{Hour: hr.Hour, Rate: hr.Rate, Night: hr.Night}
	}
	return view, nil
}

func (q *availabilityQueriesImpl) loadFacility(ctx context.Context, facilityID uuid.UUID) (*facility.Facility, error) {
	fac, err := q.facilities.FindEntityByID(ctx, facilityID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrFacilityNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return fac, nil
}

func (q *availabilityQueriesImpl) purgeStalePending(ctx context.Context, now time.Time) {
	purged, err := q.purger.PurgeStalePending(ctx, now.Add(-q.retention))
	if err != nil {
		slog.Warn("pending booking purge failed", "error", err.Error())
		return
	}
	if purged > 0 {
		slog.Info("purged stale pending bookings", "count", purged)
	}
}
