package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail = errors.New("invalid email address")
	ErrInvalidPhone = errors.New("invalid phone number")
	ErrInvalidRole  = errors.New("invalid role")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type Email struct {
	value string
}

func NewEmail(value string) (Email, error) {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	if !emailPattern.MatchString(trimmed) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: trimmed}, nil
}

func (e Email) String() string {
	return e.value
}

var phonePattern = regexp.MustCompile(`^\+?[0-9]{10,15}$`)

type Phone struct {
	value string
}

func NewPhone(value string) (Phone, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Phone{}, nil
	}
	if !phonePattern.MatchString(trimmed) {
		return Phone{}, ErrInvalidPhone
	}
	return Phone{value: trimmed}, nil
}

func (p Phone) String() string {
	return p.value
}

func (p Phone) IsEmpty() bool {
	return p.value == ""
}

func NewRole(value string) (Role, error) {
	role := Role(value)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
