package booking

import "boxarena/internal/domain/facility"

// NightStartHour is the wall-clock hour at which the night rate begins.
const NightStartHour = 17

// HourRate classifies one hour of a booking window for the price breakdown.
type HourRate struct {
	Hour  int
	Rate  int64
	Night bool
}

type PriceCalculator interface {
	// PriceForWindow totals a whole-hour window starting at startHour,
	// charging each hour at the day or night rate.
	PriceForWindow(schedule facility.Schedule, startHour, durationHours int) (Money, []HourRate)
	// RateForHour prices a single slot by its start hour.
	RateForHour(schedule facility.Schedule, hour int) Money
}

// TieredPriceCalculator applies the facility's two-tier day/night split.
// Hours at or after NightStartHour charge the night rate; no proration for
// partial hours.
type TieredPriceCalculator struct{}

func NewTieredPriceCalculator() *TieredPriceCalculator {
	return &TieredPriceCalculator{}
}

func (c *TieredPriceCalculator) PriceForWindow(schedule facility.Schedule, startHour, durationHours int) (Money, []HourRate) {
	var total int64
	breakdown := make([]HourRate, 0, durationHours)
	for h := startHour; h < startHour+durationHours; h++ {
		night := h >= NightStartHour
		rate := schedule.DayRate
		if night {
			rate = schedule.NightRate
		}
		total += rate
		breakdown = append(breakdown, HourRate{Hour: h, Rate: rate, Night: night})
	}
	return Money{rupees: total}, breakdown
}

func (c *TieredPriceCalculator) RateForHour(schedule facility.Schedule, hour int) Money {
	if hour >= NightStartHour {
		return Money{rupees: schedule.NightRate}
	}
	return Money{rupees: schedule.DayRate}
}
