package dto

import (
	"time"

	"jobboard-api/internal/models"

	"github.com/google/uuid"
)

// RegisterUserRequest defines the signup payload.
type RegisterUserRequest struct {
	FullName    string `json:"fullname" validate:"required,max=100"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phone_number" validate:"required,max=20"`
	Password    string `json:"password" validate:"required,min=8"`
	Role        string `json:"role" validate:"required,oneof=student recruiter"`
}

// LoginRequest defines the login payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest carries the refresh token when it is not supplied as a cookie.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// LogoutRequest revokes the session's refresh token.
type LogoutRequest struct {
	UserID       uuid.UUID `json:"-"`
	RefreshToken string    `json:"-"`
}

// GetUserByIDRequest defines the structure for getting a user by id.
type GetUserByIDRequest struct {
	ID uuid.UUID `json:"-" validate:"required"`
}

// GetUserByEmailRequest defines the structure for getting a user by email.
type GetUserByEmailRequest struct {
	Email string `json:"-" validate:"required,email"`
}

// UpdateProfileRequest updates top-level account and profile fields. Nil
// fields are left untouched.
type UpdateProfileRequest struct {
	UserID      uuid.UUID `json:"-"`
	FullName    *string   `json:"fullname,omitempty" validate:"omitempty,max=100"`
	PhoneNumber *string   `json:"phone_number,omitempty" validate:"omitempty,max=20"`
	Bio         *string   `json:"bio,omitempty" validate:"omitempty,max=1000"`
	Skills      *[]string `json:"skills,omitempty"`
	ResumeURL   *string   `json:"resume_url,omitempty" validate:"omitempty,url"`
	Title       *string   `json:"title,omitempty" validate:"omitempty,max=100"`
	Location    *string   `json:"location,omitempty" validate:"omitempty,max=100"`
	PhotoURL    *string   `json:"photo_url,omitempty" validate:"omitempty,url"`
	OpenToWork  *bool     `json:"open_to_work,omitempty"`
}

// UpdateExperienceRequest replaces the profile's experience list.
type UpdateExperienceRequest struct {
	UserID      uuid.UUID           `json:"-"`
	Experiences []models.Experience `json:"experiences" validate:"required,dive"`
}

// UpdateEducationRequest replaces the profile's education list.
type UpdateEducationRequest struct {
	UserID     uuid.UUID          `json:"-"`
	Educations []models.Education `json:"educations" validate:"required,dive"`
}

// UpdateCertificationsRequest replaces the profile's certification list.
type UpdateCertificationsRequest struct {
	UserID         uuid.UUID              `json:"-"`
	Certifications []models.Certification `json:"certifications" validate:"required,dive"`
}

// UserResponse is the account shape returned to the client (no hash).
type UserResponse struct {
	ID          uuid.UUID       `json:"id"`
	FullName    string          `json:"fullname"`
	Email       string          `json:"email"`
	PhoneNumber string          `json:"phone_number"`
	Role        models.UserRole `json:"role"`
	Profile     models.Profile  `json:"profile"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
