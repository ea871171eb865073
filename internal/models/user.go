package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Availability values a user may advertise
const (
	AvailabilityAny      = "Any"
	AvailabilityWeekdays = "Weekdays"
	AvailabilityWeekends = "Weekends"
	AvailabilityEvenings = "Evenings"
	AvailabilityMornings = "Mornings"
)

// User represents a registered member of the platform. Rating is the running
// mean of feedback received (0 while Reviews is 0). IsActive false means the
// account is banned; users are never hard-deleted.
type User struct {
	ID            string    `json:"id" gorm:"type:uuid;primaryKey"`
	Name          string    `json:"name"`
	Email         string    `json:"email" gorm:"uniqueIndex"`
	Password      string    `json:"-"` // bcrypt hash, never serialized
	ProfilePhoto  string    `json:"profilePhoto"`
	Location      string    `json:"location"`
	SkillsOffered SkillList `json:"skillsOffered" gorm:"type:text"`
	SkillsWanted  SkillList `json:"skillsWanted" gorm:"type:text"`
	Availability  string    `json:"availability"`
	IsPublic      bool      `json:"isPublic"`
	IsAdmin       bool      `json:"isAdmin"`
	IsActive      bool      `json:"isActive"`
	Rating        float64   `json:"rating"`
	Reviews       int       `json:"reviews"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"-"`
}

// RegisterRequest defines the request body for user registration
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest defines the request body for user login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest defines the request body for profile edits. Nil slices
// and pointers mean "leave unchanged".
type UpdateProfileRequest struct {
	Name          string    `json:"name,omitempty" validate:"omitempty,min=2,max=50"`
	ProfilePhoto  *string   `json:"profilePhoto,omitempty"`
	Location      *string   `json:"location,omitempty"`
	SkillsOffered SkillList `json:"skillsOffered,omitempty"`
	SkillsWanted  SkillList `json:"skillsWanted,omitempty"`
	Availability  string    `json:"availability,omitempty" validate:"omitempty,oneof=Any Weekdays Weekends Evenings Mornings"`
	IsPublic      *bool     `json:"isPublic,omitempty"`
}

// SetActiveRequest defines the request body for the admin ban/unban toggle
type SetActiveRequest struct {
	IsActive *bool `json:"isActive" validate:"required"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims.
// IsAdmin is a capability snapshot taken at issuance; revoking admin status
// takes effect when the token expires, not before.
type JwtCustomClaims struct {
	UserID  string `json:"user_id"`
	IsAdmin bool   `json:"is_admin"`
	jwt.RegisteredClaims
}
