package queries

import (
	"time"

	"github.com/google/uuid"
)

// DayHoursDoc is the wire/storage shape of one day's operating hours.
// Open/Close are facility-local "HH:MM" wall-clock strings.
type DayHoursDoc struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	Closed bool   `json:"closed"`
}

// WeekHoursDoc is keyed by lowercase day name ("monday" .. "sunday").
type WeekHoursDoc map[string]DayHoursDoc

type FacilityView struct {
	ID           uuid.UUID
	Name         string
	Type         string
	Description  string
	Capacity     int
	DayRate      int64
	NightRate    int64
	SlotDuration int
	Hours        WeekHoursDoc
	Amenities    []string
	IsActive     bool
	CreatedAt    time.Time
}

type BookingView struct {
	ID            uuid.UUID
	Reference     string
	FacilityID    uuid.UUID
	FacilityName  string
	FacilityType  string
	UserID        uuid.UUID
	Date          time.Time
	StartTime     string
	EndTime       string
	Duration      int
	People        int
	TotalAmount   int64
	Status        string
	PaymentStatus string
	OrderID       string
	PaymentID     string
	Notes         string
	CancelReason  string
	CancelledAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type SlotView struct {
	StartTime   string
	EndTime     string
	Duration    int
	Price       int64
	IsAvailable bool
}

type AvailabilityView struct {
	FacilityID   uuid.UUID
	FacilityName string
	Date         string
	Slots        []SlotView
}

// HourRateView is one line of a price quote breakdown.
type HourRateView struct {
	Hour  int
	Rate  int64
	Night bool
}

type QuoteView struct {
	Available  bool
	TotalPrice int64
	Breakdown  []HourRateView
}

type UserView struct {
	ID            uuid.UUID
	Name          string
	Email         string
	Phone         string
	Role          string
	EmailVerified bool
	IsActive      bool
	LastLogin     *time.Time
	CreatedAt     time.Time
}

// CredentialRecord is the minimal projection the login flow needs.
type CredentialRecord struct {
	ID           uuid.UUID
	PasswordHash string
	Role         string
	IsActive     bool
}

// BookingListFilter selects which of a user's bookings to return.
type BookingListFilter string

const (
	BookingFilterAll       BookingListFilter = "all"
	BookingFilterUpcoming  BookingListFilter = "upcoming"
	BookingFilterPast      BookingListFilter = "past"
	BookingFilterCancelled BookingListFilter = "cancelled"
)

func (f BookingListFilter) IsValid() bool {
	switch f {
	case BookingFilterAll, BookingFilterUpcoming, BookingFilterPast, BookingFilterCancelled:
		return true
	default:
		return false
	}
}
