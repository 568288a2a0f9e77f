// Package user defines the user profile domain entity. Authentication and
// session handling live with the external auth provider; this entity only
// models what the recipe surfaces need.
package user

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// User represents a user profile in the system
type User struct {
	id          uuid.UUID
	email       string
	name        string
	preferences Preferences
	createdAt   time.Time
	updatedAt   time.Time
}

// Preferences contains display-affecting user preferences
type Preferences struct {
	MeasurementSystem MeasurementSystem
	DefaultServings   int
}

// MeasurementSystem represents a preferred measurement system
type MeasurementSystem string

const (
	MeasurementSystemMetric   MeasurementSystem = "metric"
	MeasurementSystemImperial MeasurementSystem = "imperial"
)

var (
	ErrInvalidEmail = errors.New("invalid email address")
	ErrNameRequired = errors.New("name is required")
	ErrUserNotFound = errors.New("user not found")
)

// NewUser creates a new user profile with validation. The ID comes from
// the external auth provider so profiles line up with token subjects.
func NewUser(id uuid.UUID, email, name string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}

	now := time.Now()
	return &User{
		id:    id,
		email: email,
		name:  name,
		preferences: Preferences{
			MeasurementSystem: MeasurementSystemMetric,
			DefaultServings:   4,
		},
		createdAt: now,
		updatedAt: now,
	}, nil
}

// Restore rebuilds a User from persisted state, for repository mappers.
func Restore(id uuid.UUID, email, name string, prefs Preferences, createdAt, updatedAt time.Time) *User {
	return &User{
		id:          id,
		email:       email,
		name:        name,
		preferences: prefs,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// ID returns the user's unique identifier
func (u *User) ID() uuid.UUID {
	return u.id
}

// Email returns the user's email
func (u *User) Email() string {
	return u.email
}

// Name returns the user's display name
func (u *User) Name() string {
	return u.name
}

// Preferences returns the user's preferences
func (u *User) Preferences() Preferences {
	return u.preferences
}

// CreatedAt returns when the profile was created
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// UpdatedAt returns when the profile was last updated
func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

// Rename updates the user's display name
func (u *User) Rename(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameRequired
	}
	u.name = name
	u.updatedAt = time.Now()
	return nil
}

// UpdatePreferences replaces the user's preferences
func (u *User) UpdatePreferences(prefs Preferences) {
	u.preferences = prefs
	u.updatedAt = time.Now()
}
