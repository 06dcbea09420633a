package facility

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidName     = errors.New("facility name is required")
	ErrInvalidType     = errors.New("invalid facility type")
	ErrInvalidCapacity = errors.New("capacity must be at least 1")
)

type Facility struct {
	id          uuid.UUID
	name        string
	ftype       Type
	description string
	capacity    int
	schedule    Schedule
	amenities   []string
	active      bool
	createdAt   time.Time
}

func NewFacility(id uuid.UUID, name string, ftype Type, description string, capacity int, schedule Schedule, amenities []string, active bool) (*Facility, error) {
	if name == "" {
		return nil, ErrInvalidName
	}
	if !ftype.IsValid() {
		return nil, ErrInvalidType
	}
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	return &Facility{
		id:          id,
		name:        name,
		ftype:       ftype,
		description: description,
		capacity:    capacity,
		schedule:    schedule,
		amenities:   amenities,
		active:      active,
	}, nil
}

func ReconstructFacility(
	id uuid.UUID,
	name string,
	ftype Type,
	description string,
	capacity int,
	schedule Schedule,
	amenities []string,
	active bool,
	createdAt time.Time,
) *Facility {
	return &Facility{
		id:          id,
		name:        name,
		ftype:       ftype,
		description: description,
		capacity:    capacity,
		schedule:    schedule,
		amenities:   amenities,
		active:      active,
		createdAt:   createdAt,
	}
}

func (f *Facility) ID() uuid.UUID       { return f.id }
func (f *Facility) Name() string        { return f.name }
func (f *Facility) Type() Type          { return f.ftype }
func (f *Facility) Description() string { return f.description }
func (f *Facility) Capacity() int       { return f.capacity }
func (f *Facility) Schedule() Schedule  { return f.schedule }
func (f *Facility) Amenities() []string { return f.amenities }
func (f *Facility) IsActive() bool      { return f.active }
func (f *Facility) CreatedAt() time.Time { return f.createdAt }

func (f *Facility) CanAccommodate(people int) bool {
	return people >= 1 && people <= f.capacity
}
