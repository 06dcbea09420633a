package facility

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidTimeOfDay  = errors.New("invalid time of day")
	ErrInvalidHours      = errors.New("open time must be before close time")
	ErrInvalidSlotLength = errors.New("invalid slot duration")
)

// TimeOfDay is a facility-local wall-clock time with minute precision.
// No timezone conversion is applied anywhere; "18:00" means six in the
// evening at the facility, whatever the server's zone is.
type TimeOfDay struct {
	minutes int
}

// NewTimeOfDay accepts 00:00 through 24:00; "24:00" is the end-of-day
// sentinel used as the close of a slot ending at midnight.
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || minute < 0 || minute > 59 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	if hour > 24 || (hour == 24 && minute != 0) {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{minutes: hour*60 + minute}, nil
}

// ParseTimeOfDay parses a "HH:MM" wall-clock string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return NewTimeOfDay(hour, minute)
}

func (t TimeOfDay) Hour() int   { return t.minutes / 60 }
func (t TimeOfDay) Minute() int { return t.minutes % 60 }

// Minutes returns minutes since midnight.
func (t TimeOfDay) Minutes() int { return t.minutes }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// AddMinutes returns the time m minutes later. The result may run past
// midnight; callers compare against the close time before using it.
func (t TimeOfDay) AddMinutes(m int) TimeOfDay {
	return TimeOfDay{minutes: t.minutes + m}
}

func (t TimeOfDay) Before(other TimeOfDay) bool { return t.minutes < other.minutes }
func (t TimeOfDay) After(other TimeOfDay) bool  { return t.minutes > other.minutes }
func (t TimeOfDay) Equal(other TimeOfDay) bool  { return t.minutes == other.minutes }

type OperatingHours struct {
	Open   TimeOfDay
	Close  TimeOfDay
	Closed bool
}

func NewOperatingHours(open, close TimeOfDay) (OperatingHours, error) {
	if !open.Before(close) {
		return OperatingHours{}, ErrInvalidHours
	}
	return OperatingHours{Open: open, Close: close}, nil
}

func ClosedDay() OperatingHours {
	return OperatingHours{Closed: true}
}

// WeeklyHours holds one OperatingHours entry per day, indexed by
// time.Weekday (Sunday = 0).
type WeeklyHours [7]OperatingHours

func (w WeeklyHours) ForDate(date time.Time) OperatingHours {
	return w[date.Weekday()]
}

var validSlotDurations = map[int]bool{30: true, 60: true, 90: true, 120: true}

// Schedule is the slot-generation and pricing configuration of a facility.
type Schedule struct {
	SlotDuration int // minutes
	Hours        WeeklyHours
	DayRate      int64 // per hour, before 17:00
	NightRate    int64 // per hour, 17:00 onward
}

func NewSchedule(slotDuration int, hours WeeklyHours, dayRate, nightRate int64) (Schedule, error) {
	if !validSlotDurations[slotDuration] {
		return Schedule{}, ErrInvalidSlotLength
	}
	if dayRate < 0 || nightRate < 0 {
		return Schedule{}, errors.New("rates cannot be negative")
	}
	return Schedule{
		SlotDuration: slotDuration,
		Hours:        hours,
		DayRate:      dayRate,
		NightRate:    nightRate,
	}, nil
}
