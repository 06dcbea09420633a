package converter

import (
	"time"

	"boxarena/internal/domain/facility"
	"boxarena/internal/pkg/errs"
	"boxarena/internal/usecase/queries"
)

var dayNames = map[time.Weekday]string{
	time.Sunday:    "sunday",
	time.Monday:    "monday",
	time.Tuesday:   "tuesday",
	time.Wednesday: "wednesday",
	time.Thursday:  "thursday",
	time.Friday:    "friday",
	time.Saturday:  "saturday",
}

// FacilityFromView rebuilds the domain entity from a read-model row.
// A day missing from the stored hours document is treated as closed.
func FacilityFromView(v *queries.FacilityView) (*facility.Facility, error) {
	var week facility.WeeklyHours
	for wd, name := range dayNames {
		doc, ok := v.Hours[name]
		if !ok || doc.Closed {
			week[wd] = facility.ClosedDay()
			continue
		}
		open, err := facility.ParseTimeOfDay(doc.Open)
		if err != nil {
			return nil, errs.Wrap(err, "invalid open time for "+name)
		}
		close, err := facility.ParseTimeOfDay(doc.Close)
		if err != nil {
			return nil, errs.Wrap(err, "invalid close time for "+name)
		}
		hours, err := facility.NewOperatingHours(open, close)
		if err != nil {
			return nil, errs.Wrap(err, "invalid operating hours for "+name)
		}
		week[wd] = hours
	}

	schedule, err := facility.NewSchedule(v.SlotDuration, week, v.DayRate, v.NightRate)
	if err != nil {
		return nil, err
	}

	return facility.ReconstructFacility(
		v.ID,
		v.Name,
		facility.Type(v.Type),
		v.Description,
		v.Capacity,
		schedule,
		v.Amenities,
		v.IsActive,
		v.CreatedAt,
	), nil
}

// WeekHoursDocFromSchedule serializes domain hours back to the stored shape.
func WeekHoursDocFromSchedule(s facility.Schedule) queries.WeekHoursDoc {
	doc := make(queries.WeekHoursDoc, 7)
	for wd, name := range dayNames {
		h := s.Hours[wd]
		if h.Closed {
			doc[name] = queries.DayHoursDoc{Closed: true}
			continue
		}
		doc[name] = queries.DayHoursDoc{Open: h.Open.String(), Close: h.Close.String()}
	}
	return doc
}
