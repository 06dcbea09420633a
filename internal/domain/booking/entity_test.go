//go:build unit

package booking_test

import (
	"testing"
	"time"

	"boxarena/internal/domain/booking"
	"boxarena/internal/domain/facility"
	"boxarena/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var factoryNow = time.Date(2025, 7, 10, 12, 0, 0, 0, time.UTC)

func testFacility(t *testing.T, capacity int, active bool) *facility.Facility {
	t.Helper()
	schedule := allWeekSchedule(t, 60, "06:00", "23:00", 500, 800)
	fac, err := facility.NewFacility(
		uuid.New(), "Arena One", facility.TypeCricket, "", capacity, schedule, nil, active,
	)
	require.NoError(t, err)
	return fac
}

func newFactory(t *testing.T) (*booking.Factory, *clock.MockClock) {
	t.Helper()
	clk := clock.NewMockClock(factoryNow)
	return booking.NewFactory(clk, booking.NewTieredPriceCalculator()), clk
}

func createPending(t *testing.T, f *booking.Factory, fac *facility.Facility) *booking.Booking {
	t.Helper()
	b, err := f.CreateBooking(fac, uuid.New(), factoryNow.AddDate(0, 0, 1), mustTime(t, "16:00"), 2, 4, "")
	require.NoError(t, err)
	return b
}

func TestCreateBooking(t *testing.T) {
	f, _ := newFactory(t)
	fac := testFacility(t, 10, true)

	t.Run("prices the window across the rate boundary", func(t *testing.T) {
		b := createPending(t, f, fac)

		assert.Equal(t, int64(1300), b.Amount().Rupees())
		assert.Equal(t, booking.StatusPending, b.Status())
		assert.Equal(t, booking.PaymentPending, b.PaymentStatus())
		assert.Equal(t, "16:00", b.TimeRange().Start().String())
		assert.Equal(t, "18:00", b.TimeRange().End().String())
		assert.NotEmpty(t, b.Reference().String())
	})

	t.Run("rejects past dates by calendar day", func(t *testing.T) {
		_, err := f.CreateBooking(fac, uuid.New(), factoryNow.AddDate(0, 0, -1), mustTime(t, "10:00"), 1, 2, "")
		assert.ErrorIs(t, err, booking.ErrPastDate)

		// same calendar day is allowed even if the hour has passed
		_, err = f.CreateBooking(fac, uuid.New(), factoryNow, mustTime(t, "09:00"), 1, 2, "")
		assert.NoError(t, err)
	})

	t.Run("rejects over capacity", func(t *testing.T) {
		small := testFacility(t, 4, true)
		_, err := f.CreateBooking(small, uuid.New(), factoryNow.AddDate(0, 0, 1), mustTime(t, "10:00"), 1, 5, "")
		assert.ErrorIs(t, err, booking.ErrCapacityExceeded)
	})

	t.Run("rejects inactive facility", func(t *testing.T) {
		inactive := testFacility(t, 10, false)
		_, err := f.CreateBooking(inactive, uuid.New(), factoryNow.AddDate(0, 0, 1), mustTime(t, "10:00"), 1, 2, "")
		assert.ErrorIs(t, err, booking.ErrFacilityUnavailable)
	})

	t.Run("rejects zero duration", func(t *testing.T) {
		_, err := f.CreateBooking(fac, uuid.New(), factoryNow.AddDate(0, 0, 1), mustTime(t, "10:00"), 0, 2, "")
		assert.ErrorIs(t, err, booking.ErrInvalidDuration)
	})
}

func TestConfirmPayment(t *testing.T) {
	f, _ := newFactory(t)
	fac := testFacility(t, 10, true)

	t.Run("pending moves to confirmed and paid", func(t *testing.T) {
		b := createPending(t, f, fac)
		b.AttachPaymentOrder("order_123")

		require.NoError(t, b.ConfirmPayment("pay_456", "sig_789"))
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.Equal(t, booking.PaymentPaid, b.PaymentStatus())
		assert.Equal(t, "pay_456", b.PaymentID())
	})

	t.Run("double confirmation is rejected", func(t *testing.T) {
		b := createPending(t, f, fac)
		require.NoError(t, b.ConfirmPayment("pay_1", "sig_1"))
		assert.ErrorIs(t, b.ConfirmPayment("pay_2", "sig_2"), booking.ErrNotPending)
	})
}

func TestCancel(t *testing.T) {
	f, clk := newFactory(t)
	fac := testFacility(t, 10, true)

	t.Run("confirmed paid booking is cancelled and marked refunded", func(t *testing.T) {
		b := createPending(t, f, fac)
		require.NoError(t, b.ConfirmPayment("pay_1", "sig_1"))

		require.NoError(t, b.Cancel("rain", clk.Now()))
		assert.Equal(t, booking.StatusCancelled, b.Status())
		assert.Equal(t, booking.PaymentRefunded, b.PaymentStatus())
		assert.Equal(t, "rain", b.CancelReason())
		require.NotNil(t, b.CancelledAt())
	})

	t.Run("pending booking cannot be cancelled", func(t *testing.T) {
		b := createPending(t, f, fac)
		assert.ErrorIs(t, b.Cancel("", clk.Now()), booking.ErrNotCancellable)
	})

	t.Run("cancelling twice is rejected", func(t *testing.T) {
		b := createPending(t, f, fac)
		require.NoError(t, b.ConfirmPayment("pay_1", "sig_1"))
		require.NoError(t, b.Cancel("", clk.Now()))
		assert.ErrorIs(t, b.Cancel("", clk.Now()), booking.ErrAlreadyCancelled)
	})
}

func TestIsStalePending(t *testing.T) {
	f, _ := newFactory(t)
	fac := testFacility(t, 10, true)
	retention := 15 * time.Minute

	b := createPending(t, f, fac)

	assert.False(t, b.IsStalePending(factoryNow.Add(10*time.Minute), retention))
	assert.True(t, b.IsStalePending(factoryNow.Add(16*time.Minute), retention))

	require.NoError(t, b.ConfirmPayment("pay_1", "sig_1"))
	assert.False(t, b.IsStalePending(factoryNow.Add(time.Hour), retention), "paid bookings never purge")
}

func TestStatusBlocks(t *testing.T) {
	assert.True(t, booking.StatusConfirmed.Blocks())
	assert.True(t, booking.StatusCompleted.Blocks())
	assert.False(t, booking.StatusPending.Blocks())
	assert.False(t, booking.StatusCancelled.Blocks())
	assert.False(t, booking.StatusNoShow.Blocks())
}

func TestDateHelpers(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	stamp := time.Date(2025, 7, 10, 23, 45, 0, 0, loc)

	day := booking.DateOnly(stamp)
	assert.Equal(t, 0, day.Hour())
	assert.Equal(t, stamp.Day(), day.Day())
	assert.Equal(t, loc, day.Location())

	assert.True(t, booking.IsPastDate(stamp.AddDate(0, 0, -1), stamp))
	assert.False(t, booking.IsPastDate(stamp, stamp))
	assert.False(t, booking.IsPastDate(stamp.AddDate(0, 0, 1), stamp))
}
