package response

import (
	"time"

	"boxarena/internal/usecase/queries"

	"github.com/google/uuid"
)

type FacilityResponse struct {
	ID           uuid.UUID            `json:"id"`
	Name         string               `json:"name"`
	Type         string               `json:"type"`
	Description  string               `json:"description,omitempty"`
	Capacity     int                  `json:"capacity"`
	DayRate      int64                `json:"dayRate"`
	NightRate    int64                `json:"nightRate"`
	SlotDuration int                  `json:"slotDuration"`
	Hours        queries.WeekHoursDoc `json:"operatingHours"`
	Amenities    []string             `json:"amenities"`
	CreatedAt    time.Time            `json:"createdAt"`
}

func FromFacilityView(v *queries.FacilityView) *FacilityResponse {
	return &FacilityResponse{
		ID:           v.ID,
		Name:         v.Name,
		Type:         v.Type,
		Description:  v.Description,
		Capacity:     v.Capacity,
		DayRate:      v.DayRate,
		NightRate:    v.NightRate,
		SlotDuration: v.SlotDuration,
		Hours:        v.Hours,
		Amenities:    v.Amenities,
		CreatedAt:    v.CreatedAt,
	}
}

func FromFacilityViews(views []*queries.FacilityView) []*FacilityResponse {
	out := make([]*FacilityResponse, len(views))
	for i, v := range views {
		out[i] = FromFacilityView(v)
	}
	return out
}
