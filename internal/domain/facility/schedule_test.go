//go:build unit

package facility_test

import (
	"testing"
	"time"

	"boxarena/internal/domain/facility"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, s string) facility.TimeOfDay {
	t.Helper()
	tod, err := facility.ParseTimeOfDay(s)
	require.NoError(t, err)
	return tod
}

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		minutes int
	}{
		{name: "midnight", input: "00:00", minutes: 0},
		{name: "morning", input: "06:00", minutes: 360},
		{name: "with minutes", input: "18:30", minutes: 1110},
		{name: "end of day sentinel", input: "24:00", minutes: 1440},
		{name: "past end of day", input: "24:01", wantErr: true},
		{name: "hour out of range", input: "25:00", wantErr: true},
		{name: "minute out of range", input: "10:60", wantErr: true},
		{name: "missing colon", input: "1000", wantErr: true},
		{name: "not a number", input: "aa:bb", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tod, err := facility.ParseTimeOfDay(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, facility.ErrInvalidTimeOfDay)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.minutes, tod.Minutes())
		})
	}
}

func TestTimeOfDayString(t *testing.T) {
	assert.Equal(t, "06:00", mustTime(t, "06:00").String())
	assert.Equal(t, "23:30", mustTime(t, "23:30").String())
	assert.Equal(t, "24:00", mustTime(t, "24:00").String())
}

func TestTimeOfDayAddMinutes(t *testing.T) {
	start := mustTime(t, "22:30")
	end := start.AddMinutes(90)
	assert.Equal(t, "24:00", end.String())
	assert.True(t, start.Before(end))
}

func TestNewOperatingHours(t *testing.T) {
	_, err := facility.NewOperatingHours(mustTime(t, "06:00"), mustTime(t, "23:00"))
	assert.NoError(t, err)

	_, err = facility.NewOperatingHours(mustTime(t, "23:00"), mustTime(t, "06:00"))
	assert.ErrorIs(t, err, facility.ErrInvalidHours)

	_, err = facility.NewOperatingHours(mustTime(t, "10:00"), mustTime(t, "10:00"))
	assert.ErrorIs(t, err, facility.ErrInvalidHours)
}

func TestWeeklyHoursForDate(t *testing.T) {
	var week facility.WeeklyHours
	for wd := range week {
		week[wd] = facility.ClosedDay()
	}
	open, err := facility.NewOperatingHours(mustTime(t, "09:00"), mustTime(t, "21:00"))
	require.NoError(t, err)
	week[time.Saturday] = open

	// 2025-06-14 is a Saturday
	saturday := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
	assert.False(t, week.ForDate(saturday).Closed)
	assert.True(t, week.ForDate(saturday.AddDate(0, 0, 1)).Closed)
}

func TestNewSchedule(t *testing.T) {
	var week facility.WeeklyHours
	for wd := range week {
		week[wd] = facility.ClosedDay()
	}

	for _, dur := range []int{30, 60, 90, 120} {
		_, err := facility.NewSchedule(dur, week, 500, 800)
		assert.NoError(t, err, "duration %d", dur)
	}

	_, err := facility.NewSchedule(45, week, 500, 800)
	assert.ErrorIs(t, err, facility.ErrInvalidSlotLength)

	_, err = facility.NewSchedule(60, week, -1, 800)
	assert.Error(t, err)
}
