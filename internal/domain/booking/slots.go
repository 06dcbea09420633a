package booking

import (
	"time"

	"boxarena/internal/domain/facility"
)

// TimeSlot is a candidate booking window. Slots are value objects,
// regenerated per request and never persisted on their own.
type TimeSlot struct {
	Start    facility.TimeOfDay
	End      facility.TimeOfDay
	Duration int // minutes
}

// ResolvedSlot is a TimeSlot annotated with price and availability.
type ResolvedSlot struct {
	TimeSlot
	Price     Money
	Available bool
}

// GenerateSlots enumerates the fixed-width windows a facility can be booked
// in on the given date. Slots are emitted in ascending order starting at the
// day's open time; a trailing window that would run past close is dropped
// rather than shortened. A closed day yields nil.
func GenerateSlots(schedule facility.Schedule, date time.Time) []TimeSlot {
	hours := schedule.Hours.ForDate(date)
	if hours.Closed {
		return nil
	}

	var slots []TimeSlot
	cur := hours.Open
	for {
		end := cur.AddMinutes(schedule.SlotDuration)
		if end.After(hours.Close) {
			break
		}
		slots = append(slots, TimeSlot{
			Start:    cur,
			End:      end,
			Duration: schedule.SlotDuration,
		})
		cur = end
	}
	return slots
}

// ResolveAvailability marks each generated slot against the set of bookings
// that hold inventory and prices it by its start hour. Only confirmed and
// paid bookings block a slot; pending ones never do, which is why the
// pending cleanup sweep runs before callers reach this point.
func ResolveAvailability(schedule facility.Schedule, date time.Time, calc PriceCalculator, blocking []BlockingSlot) []ResolvedSlot {
	slots := GenerateSlots(schedule, date)
	if len(slots) == 0 {
		return nil
	}

	booked := make(map[int]bool, len(blocking))
	for _, b := range blocking {
		booked[b.Start.Minutes()] = true
	}

	resolved := make([]ResolvedSlot, len(slots))
	for i, slot := range slots {
		resolved[i] = ResolvedSlot{
			TimeSlot:  slot,
			Price:     calc.RateForHour(schedule, slot.Start.Hour()),
			Available: !booked[slot.Start.Minutes()],
		}
	}
	return resolved
}

// BlockingSlot is the start time of a booking that holds inventory
// (confirmed and paid) on the requested facility and date.
type BlockingSlot struct {
	Start facility.TimeOfDay
}
