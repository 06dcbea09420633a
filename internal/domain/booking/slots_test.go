//go:build unit

package booking_test

import (
	"testing"
	"time"

	"boxarena/internal/domain/booking"
	"boxarena/internal/domain/facility"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var slotCmpOpts = []cmp.Option{
	cmp.Comparer(func(a, b facility.TimeOfDay) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b booking.Money) bool { return a.Rupees() == b.Rupees() }),
}

func mustTime(t *testing.T, s string) facility.TimeOfDay {
	t.Helper()
	tod, err := facility.ParseTimeOfDay(s)
	require.NoError(t, err)
	return tod
}

func allWeekSchedule(t *testing.T, slotDuration int, open, close string, dayRate, nightRate int64) facility.Schedule {
	t.Helper()
	hours, err := facility.NewOperatingHours(mustTime(t, open), mustTime(t, close))
	require.NoError(t, err)

	var week facility.WeeklyHours
	for wd := range week {
		week[wd] = hours
	}
	schedule, err := facility.NewSchedule(slotDuration, week, dayRate, nightRate)
	require.NoError(t, err)
	return schedule
}

var anyDate = time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)

func TestGenerateSlots(t *testing.T) {
	t.Run("full day of hourly slots", func(t *testing.T) {
		schedule := allWeekSchedule(t, 60, "06:00", "23:00", 500, 800)
		slots := booking.GenerateSlots(schedule, anyDate)

		require.Len(t, slots, 17)
		assert.Equal(t, "06:00", slots[0].Start.String())
		assert.Equal(t, "07:00", slots[0].End.String())
		assert.Equal(t, "22:00", slots[16].Start.String())
		assert.Equal(t, "23:00", slots[16].End.String())

		for i := 1; i < len(slots); i++ {
			assert.True(t, slots[i-1].End.Equal(slots[i].Start), "slots must be contiguous")
		}
	})

	t.Run("exact sequence for a short window", func(t *testing.T) {
		schedule := allWeekSchedule(t, 60, "10:00", "13:00", 500, 800)
		expected := []booking.TimeSlot{
			{Start: mustTime(t, "10:00"), End: mustTime(t, "11:00"), Duration: 60},
			{Start: mustTime(t, "11:00"), End: mustTime(t, "12:00"), Duration: 60},
			{Start: mustTime(t, "12:00"), End: mustTime(t, "13:00"), Duration: 60},
		}

		if diff := cmp.Diff(expected, booking.GenerateSlots(schedule, anyDate), slotCmpOpts...); diff != "" {
			t.Errorf("Slot sequence mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("trailing partial window is dropped", func(t *testing.T) {
		// 06:00-20:30 with 60-min slots: the 20:00-21:00 window runs past close
		schedule := allWeekSchedule(t, 60, "06:00", "20:30", 500, 800)
		slots := booking.GenerateSlots(schedule, anyDate)

		require.Len(t, slots, 14)
		assert.Equal(t, "20:00", slots[len(slots)-1].End.String())
	})

	t.Run("90 minute slots", func(t *testing.T) {
		schedule := allWeekSchedule(t, 90, "09:00", "21:00", 500, 800)
		slots := booking.GenerateSlots(schedule, anyDate)

		require.Len(t, slots, 8)
		assert.Equal(t, 90, slots[0].Duration)
		assert.Equal(t, "21:00", slots[len(slots)-1].End.String())
	})

	t.Run("slot ending exactly at midnight", func(t *testing.T) {
		schedule := allWeekSchedule(t, 60, "18:00", "24:00", 500, 800)
		slots := booking.GenerateSlots(schedule, anyDate)

		require.Len(t, slots, 6)
		assert.Equal(t, "24:00", slots[len(slots)-1].End.String())
	})

	t.Run("closed day yields nothing", func(t *testing.T) {
		schedule := allWeekSchedule(t, 60, "06:00", "23:00", 500, 800)
		schedule.Hours[anyDate.Weekday()] = facility.ClosedDay()

		assert.Nil(t, booking.GenerateSlots(schedule, anyDate))
	})

	t.Run("window shorter than one slot", func(t *testing.T) {
		schedule := allWeekSchedule(t, 120, "10:00", "11:00", 500, 800)
		assert.Empty(t, booking.GenerateSlots(schedule, anyDate))
	})
}

func TestResolveAvailability(t *testing.T) {
	calc := booking.NewTieredPriceCalculator()

	t.Run("blocked starts are marked unavailable", func(t *testing.T) {
		schedule := allWeekSchedule(t, 60, "06:00", "23:00", 500, 800)
		blocking := []booking.BlockingSlot{
			{Start: mustTime(t, "10:00")},
			{Start: mustTime(t, "18:00")},
		}

		resolved := booking.ResolveAvailability(schedule, anyDate, calc, blocking)
		require.Len(t, resolved, 17)

		byStart := make(map[string]booking.ResolvedSlot, len(resolved))
		for _, slot := range resolved {
			byStart[slot.Start.String()] = slot
		}

		assert.False(t, byStart["10:00"].Available)
		assert.False(t, byStart["18:00"].Available)
		assert.True(t, byStart["09:00"].Available)
		assert.True(t, byStart["11:00"].Available)
	})

	t.Run("prices switch to night rate from 17:00", func(t *testing.T) {
		schedule := allWeekSchedule(t, 60, "06:00", "23:00", 500, 800)
		resolved := booking.ResolveAvailability(schedule, anyDate, calc, nil)

		for _, slot := range resolved {
			want := int64(500)
			if slot.Start.Hour() >= booking.NightStartHour {
				want = 800
			}
			assert.Equal(t, want, slot.Price.Rupees(), "slot %s", slot.Start)
		}
	})

	t.Run("no blocking bookings leaves everything available", func(t *testing.T) {
		schedule := allWeekSchedule(t, 60, "06:00", "23:00", 500, 800)
		for _, slot := range booking.ResolveAvailability(schedule, anyDate, calc, nil) {
			assert.True(t, slot.Available)
		}
	})

	t.Run("closed day resolves to nil", func(t *testing.T) {
		schedule := allWeekSchedule(t, 60, "06:00", "23:00", 500, 800)
		schedule.Hours[anyDate.Weekday()] = facility.ClosedDay()

		assert.Nil(t, booking.ResolveAvailability(schedule, anyDate, calc, nil))
	})
}
