package dto

import (
	"jobboard-api/internal/models"

	"github.com/google/uuid"
)

// ApplyRequest is the candidate's apply action for one job.
type ApplyRequest struct {
	JobID       uuid.UUID `json:"-" validate:"required"` // From path
	ApplicantID uuid.UUID `json:"-"`                     // Set from auth context
}

// CreateApplicationRequest is used internally by the Apply service method.
type CreateApplicationRequest struct {
	JobID       uuid.UUID `json:"job_id"`
	ApplicantID uuid.UUID `json:"applicant_id"`
}

// GetApplicationByIDRequest defines the structure for getting an application.
type GetApplicationByIDRequest struct {
	ID uuid.UUID `json:"-" validate:"required"`
}

// GetByJobAndApplicantRequest checks for an existing (user, job) application.
type GetByJobAndApplicantRequest struct {
	JobID       uuid.UUID `json:"-" validate:"required"`
	ApplicantID uuid.UUID `json:"-" validate:"required"`
}

// ListApplicantsRequest lists every application for one posting.
type ListApplicantsRequest struct {
	JobID  uuid.UUID `json:"-" validate:"required"` // From path
	UserID uuid.UUID `json:"-"`                     // Set from auth context for ownership check
}

// ListUserApplicationsRequest lists the authenticated user's applications.
type ListUserApplicationsRequest struct {
	ApplicantID uuid.UUID `json:"-" validate:"required"`
}

// UpdateApplicationStatusRequest moves an application between workflow states.
type UpdateApplicationStatusRequest struct {
	ApplicationID uuid.UUID                `json:"-" validate:"required"` // From path
	UserID        uuid.UUID                `json:"-"`                     // Set from auth context (must be the job's recruiter)
	Status        models.ApplicationStatus `json:"status" validate:"required,oneof=pending shortlisted rejected"`
}

// SendInviteRequest sends an interview invite for an application and, on a
// successful send, forces the status to shortlisted.
type SendInviteRequest struct {
	ApplicationID uuid.UUID `json:"-" validate:"required"` // From path
	UserID        uuid.UUID `json:"-"`                     // Set from auth context (must be the job's recruiter)
	Subject       string    `json:"subject" validate:"omitempty,max=200"`
	Message       string    `json:"message" validate:"required,max=5000"`
}

// ExportApplicantsRequest renders a posting's applicants as CSV.
type ExportApplicantsRequest struct {
	JobID  uuid.UUID `json:"-" validate:"required"` // From path
	UserID uuid.UUID `json:"-"`                     // Set from auth context for ownership check
}

// SetStatusRequest is used internally by the services to persist a status.
type SetStatusRequest struct {
	ID     uuid.UUID                `json:"-"`
	Status models.ApplicationStatus `json:"-"`
}
