package request

import (
	"strings"
	"time"

	"boxarena/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	FacilityID    uuid.UUID `json:"facilityId" binding:"required"`
	Date          string    `json:"date" binding:"required"`
	StartTime     string    `json:"startTime" binding:"required"`
	DurationHours int       `json:"durationHours" binding:"required,min=1"`
	People        int       `json:"people" binding:"required,min=1"`
	Notes         string    `json:"notes,omitempty"`
}

// ParseDate accepts the calendar-day shape the client sends.
func (r CreateBookingRequest) ParseDate() (time.Time, error) {
	return time.Parse("2006-01-02", r.Date)
}

func (r CreateBookingRequest) ToInput(userID uuid.UUID, date time.Time) commands.CreateBookingInput {
	return commands.CreateBookingInput{
		FacilityID:    r.FacilityID,
		UserID:        userID,
		Date:          date,
		StartTime:     r.StartTime,
		DurationHours: r.DurationHours,
		People:        r.People,
		Notes:         strings.TrimSpace(r.Notes),
	}
}

type CancelBookingRequest struct {
	Reason string `json:"reason,omitempty"`
}

type VerifyPaymentRequest struct {
	OrderID   string `json:"razorpayOrderId" binding:"required"`
	PaymentID string `json:"razorpayPaymentId" binding:"required"`
	Signature string `json:"razorpaySignature" binding:"required"`
}
