//go:build unit

package booking_test

import (
	"strings"
	"testing"
	"time"

	"boxarena/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRange(t *testing.T, start, end string) booking.TimeRange {
	t.Helper()
	r, err := booking.NewTimeRange(mustTime(t, start), mustTime(t, end))
	require.NoError(t, err)
	return r
}

func TestNewTimeRange(t *testing.T) {
	_, err := booking.NewTimeRange(mustTime(t, "10:00"), mustTime(t, "09:00"))
	assert.ErrorIs(t, err, booking.ErrInvalidTimeRange)

	_, err = booking.NewTimeRange(mustTime(t, "10:00"), mustTime(t, "10:00"))
	assert.ErrorIs(t, err, booking.ErrInvalidTimeRange)

	r := mustRange(t, "09:00", "11:00")
	assert.Equal(t, 120, r.DurationMinutes())
}

func TestTimeRangeOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b booking.TimeRange
		want bool
	}{
		{name: "identical", a: mustRange(t, "10:00", "11:00"), b: mustRange(t, "10:00", "11:00"), want: true},
		{name: "partial overlap", a: mustRange(t, "10:00", "12:00"), b: mustRange(t, "11:00", "13:00"), want: true},
		{name: "containment", a: mustRange(t, "09:00", "13:00"), b: mustRange(t, "10:00", "11:00"), want: true},
		{name: "touching endpoints", a: mustRange(t, "09:00", "10:00"), b: mustRange(t, "10:00", "11:00"), want: false},
		{name: "disjoint", a: mustRange(t, "06:00", "07:00"), b: mustRange(t, "20:00", "21:00"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a), "overlap must be symmetric")
		})
	}
}

func TestMoney(t *testing.T) {
	m, err := booking.NewMoney(1500)
	require.NoError(t, err)
	assert.Equal(t, int64(1500), m.Rupees())
	assert.Equal(t, int64(150000), m.Paise())

	_, err = booking.NewMoney(-1)
	assert.Error(t, err)

	sum := m.Add(mustMoney(t, 500))
	assert.Equal(t, int64(2000), sum.Rupees())
}

func mustMoney(t *testing.T, rupees int64) booking.Money {
	t.Helper()
	m, err := booking.NewMoney(rupees)
	require.NoError(t, err)
	return m
}

func TestNewReference(t *testing.T) {
	now := time.Date(2025, 7, 10, 12, 0, 0, 0, time.UTC)

	ref := booking.NewReference(now)
	assert.True(t, strings.HasPrefix(ref.String(), "BA-"))
	assert.Equal(t, ref.String(), strings.ToUpper(ref.String()))

	other := booking.NewReference(now)
	assert.NotEqual(t, ref, other, "references issued at the same instant must still differ")
}
