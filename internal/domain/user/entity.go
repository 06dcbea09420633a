package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidName = errors.New("name is required")

type User struct {
	id            uuid.UUID
	name          string
	email         Email
	phone         Phone
	passwordHash  string
	role          Role
	emailVerified bool
	active        bool
	lastLogin     *time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

func NewUser(name string, email Email, phone Phone, passwordHash string, role Role) (*User, error) {
	if name == "" {
		return nil, ErrInvalidName
	}
	return &User{
		id:            uuid.New(),
		name:          name,
		email:         email,
		phone:         phone,
		passwordHash:  passwordHash,
		role:          role,
		emailVerified: true, // registration requires a verified OTP first
		active:        true,
	}, nil
}

func ReconstructUser(
	id uuid.UUID,
	name string,
	email Email,
	phone Phone,
	passwordHash string,
	role Role,
	emailVerified, active bool,
	lastLogin *time.Time,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:            id,
		name:          name,
		email:         email,
		phone:         phone,
		passwordHash:  passwordHash,
		role:          role,
		emailVerified: emailVerified,
		active:        active,
		lastLogin:     lastLogin,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) Name() string          { return u.name }
func (u *User) Email() Email          { return u.email }
func (u *User) Phone() Phone          { return u.phone }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) Role() Role            { return u.role }
func (u *User) IsEmailVerified() bool { return u.emailVerified }
func (u *User) IsActive() bool        { return u.active }
func (u *User) LastLogin() *time.Time { return u.lastLogin }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }
