package booking

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"boxarena/internal/domain/facility"
)

var ErrInvalidTimeRange = errors.New("start time must be before end time")

// TimeRange is a half-open [start, end) window within a single day.
type TimeRange struct {
	start facility.TimeOfDay
	end   facility.TimeOfDay
}

func NewTimeRange(start, end facility.TimeOfDay) (TimeRange, error) {
	if !start.Before(end) {
		return TimeRange{}, ErrInvalidTimeRange
	}
	return TimeRange{start: start, end: end}, nil
}

func (r TimeRange) Start() facility.TimeOfDay { return r.start }
func (r TimeRange) End() facility.TimeOfDay   { return r.end }

func (r TimeRange) DurationMinutes() int {
	return r.end.Minutes() - r.start.Minutes()
}

// Overlaps uses the half-open interval test: touching endpoints do not
// overlap, so [09:00,10:00) and [10:00,11:00) are compatible.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.start.Before(other.end) && other.start.Before(r.end)
}

type Money struct {
	rupees int64
}

func NewMoney(rupees int64) (Money, error) {
	if rupees < 0 {
		return Money{}, errors.New("money cannot be negative")
	}
	return Money{rupees: rupees}, nil
}

func (m Money) Rupees() int64 { return m.rupees }

// Paise returns the amount in the gateway's smallest unit.
func (m Money) Paise() int64 { return m.rupees * 100 }

func (m Money) Add(other Money) Money {
	return Money{rupees: m.rupees + other.rupees}
}

// Reference is a human-readable booking reference, e.g. BA-LX2K1M-A3F9C.
type Reference string

func NewReference(now time.Time) Reference {
	buf := make([]byte, 3)
	suffix := "00000"
	if _, err := rand.Read(buf); err == nil {
		suffix = hex.EncodeToString(buf)[:5]
	}
	ts := strconv.FormatInt(now.UnixMilli(), 36)
	return Reference(strings.ToUpper(fmt.Sprintf("BA-%s-%s", ts, suffix)))
}

func (r Reference) String() string {
	return string(r)
}
