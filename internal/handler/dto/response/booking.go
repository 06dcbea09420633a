package response

import (
	"time"

	"boxarena/internal/usecase/commands"
	"boxarena/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID            uuid.UUID  `json:"id"`
	Reference     string     `json:"reference"`
	FacilityID    uuid.UUID  `json:"facilityId"`
	FacilityName  string     `json:"facilityName"`
	FacilityType  string     `json:"facilityType"`
	Date          string     `json:"date"`
	StartTime     string     `json:"startTime"`
	EndTime       string     `json:"endTime"`
	Duration      int        `json:"duration"`
	People        int        `json:"people"`
	TotalAmount   int64      `json:"totalAmount"`
	Status        string     `json:"status"`
	PaymentStatus string     `json:"paymentStatus"`
	Notes         string     `json:"notes,omitempty"`
	CancelReason  string     `json:"cancelReason,omitempty"`
	CancelledAt   *time.Time `json:"cancelledAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// CheckoutResponse is returned on create so the client can open the payment
// widget against the pending booking.
type CheckoutResponse struct {
	BookingID   uuid.UUID `json:"bookingId"`
	Reference   string    `json:"reference"`
	OrderID     string    `json:"orderId"`
	AmountPaise int64     `json:"amount"`
	Currency    string    `json:"currency"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:            v.ID,
		Reference:     v.Reference,
		FacilityID:    v.FacilityID,
		FacilityName:  v.FacilityName,
		FacilityType:  v.FacilityType,
		Date:          v.Date.Format("2006-01-02"),
		StartTime:     v.StartTime,
		EndTime:       v.EndTime,
		Duration:      v.Duration,
		People:        v.People,
		TotalAmount:   v.TotalAmount,
		Status:        v.Status,
		PaymentStatus: v.PaymentStatus,
		Notes:         v.Notes,
		CancelReason:  v.CancelReason,
		CancelledAt:   v.CancelledAt,
		CreatedAt:     v.CreatedAt,
	}
}

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	out := make([]*BookingResponse, len(views))
	for i, v := range views {
		out[i] = FromBookingView(v)
	}
	return out
}

func FromCreateBookingResult(r *commands.CreateBookingResult) *CheckoutResponse {
	return &CheckoutResponse{
		BookingID:   r.BookingID,
		Reference:   r.Reference,
		OrderID:     r.OrderID,
		AmountPaise: r.AmountPaise,
		Currency:    r.Currency,
	}
}
