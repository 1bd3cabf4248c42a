package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrInvalidRole     = errors.New("invalid role")
	ErrInvalidPassword = errors.New("invalid password")
	ErrInvalidDistance = errors.New("commute distance cannot be negative")
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type Email struct {
	value string
}

func NewEmail(value string) (Email, error) {
	trimmed := strings.TrimSpace(strings.ToLower(value))
	if trimmed == "" || !emailPattern.MatchString(trimmed) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: trimmed}, nil
}

func (e Email) Value() string {
	return e.value
}

type Role string

const (
	// RoleEmployee can manage their own parking requests.
	RoleEmployee Role = "employee"
	// RoleTeamLeader can additionally manage space reservations.
	RoleTeamLeader Role = "team_leader"
	// RoleAdmin can additionally change the allocation configuration.
	RoleAdmin Role = "admin"
)

func NewRole(value string) (Role, error) {
	switch Role(value) {
	case RoleEmployee, RoleTeamLeader, RoleAdmin:
		return Role(value), nil
	default:
		return "", ErrInvalidRole
	}
}

func (r Role) String() string {
	return string(r)
}

type Credentials struct {
	email    Email
	password string
}

func NewCredentials(email, password string) (Credentials, error) {
	e, err := NewEmail(email)
	if err != nil {
		return Credentials{}, err
	}
	if password == "" {
		return Credentials{}, ErrInvalidPassword
	}
	return Credentials{email: e, password: password}, nil
}

func (c Credentials) Email() Email {
	return c.email
}

func (c Credentials) Password() string {
	return c.password
}
