//go:build unit

package booking_test

import (
	"testing"

	"boxarena/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceForWindow(t *testing.T) {
	calc := booking.NewTieredPriceCalculator()
	schedule := allWeekSchedule(t, 60, "06:00", "23:00", 500, 800)

	tests := []struct {
		name      string
		startHour int
		duration  int
		wantTotal int64
	}{
		{name: "all day hours", startHour: 9, duration: 3, wantTotal: 1500},
		{name: "all night hours", startHour: 18, duration: 2, wantTotal: 1600},
		{name: "window straddling the boundary", startHour: 16, duration: 2, wantTotal: 1300},
		{name: "single hour at the boundary", startHour: 17, duration: 1, wantTotal: 800},
		{name: "single hour just before the boundary", startHour: 16, duration: 1, wantTotal: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, breakdown := calc.PriceForWindow(schedule, tt.startHour, tt.duration)
			assert.Equal(t, tt.wantTotal, total.Rupees())
			require.Len(t, breakdown, tt.duration)

			var sum int64
			for i, hr := range breakdown {
				assert.Equal(t, tt.startHour+i, hr.Hour)
				assert.Equal(t, hr.Hour >= booking.NightStartHour, hr.Night)
				sum += hr.Rate
			}
			assert.Equal(t, tt.wantTotal, sum, "breakdown must sum to the total")
		})
	}
}

func TestRateForHour(t *testing.T) {
	calc := booking.NewTieredPriceCalculator()
	schedule := allWeekSchedule(t, 60, "06:00", "23:00", 500, 800)

	assert.Equal(t, int64(500), calc.RateForHour(schedule, 6).Rupees())
	assert.Equal(t, int64(500), calc.RateForHour(schedule, 16).Rupees())
	assert.Equal(t, int64(800), calc.RateForHour(schedule, 17).Rupees())
	assert.Equal(t, int64(800), calc.RateForHour(schedule, 22).Rupees())
}
