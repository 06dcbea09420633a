package response

import (
	"boxarena/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotResponse struct {
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Duration    int    `json:"duration"`
	Price       int64  `json:"price"`
	IsAvailable bool   `json:"isAvailable"`
}

type AvailabilityResponse struct {
	FacilityID   uuid.UUID      `json:"facilityId"`
	FacilityName string         `json:"facilityName"`
	Date         string         `json:"date"`
	Slots        []SlotResponse `json:"slots"`
}

type HourRateResponse struct {
	Hour  int   `json:"hour"`
	Rate  int64 `json:"rate"`
	Night bool  `json:"isNightRate"`
}

type QuoteResponse struct {
	Available  bool               `json:"available"`
	TotalPrice int64              `json:"totalPrice"`
	Breakdown  []HourRateResponse `json:"breakdown"`
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	slots := make([]SlotResponse, len(v.Slots))
	for i, s := range v.Slots {
		slots[i] = SlotResponse{
			StartTime:   s.StartTime,
			EndTime:     s.EndTime,
			Duration:    s.Duration,
			Price:       s.Price,
			IsAvailable: s.IsAvailable,
		}
	}
	return &AvailabilityResponse{
		FacilityID:   v.FacilityID,
		FacilityName: v.FacilityName,
		Date:         v.Date,
		Slots:        slots,
	}
}

func FromQuoteView(v *queries.QuoteView) *QuoteResponse {
	breakdown := make([]HourRateResponse, len(v.Breakdown))
	for i, b := range v.Breakdown {
		breakdown[i] = HourRateResponse{Hour: b.Hour, Rate: b.Rate, Night: b.Night}
	}
	return &QuoteResponse{
		Available:  v.Available,
		TotalPrice: v.TotalPrice,
		Breakdown:  breakdown,
	}
}
