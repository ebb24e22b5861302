package dto

import (
	"jobboard-api/internal/models"

	"github.com/google/uuid"
)

// --- Job Request DTOs ---

// PostJobRequest defines the structure for posting a new job.
type PostJobRequest struct {
	Title           string              `json:"title" validate:"required,max=200"`
	Description     string              `json:"description" validate:"required"`
	Requirements    models.Requirements `json:"requirements"`
	Location        string              `json:"location" validate:"required,max=100"`
	Salary          float64             `json:"salary" validate:"required,gt=0"` // LPA
	JobType         string              `json:"job_type" validate:"required,oneof=full-time part-time contract internship remote"`
	ExperienceLevel string              `json:"experience_level" validate:"required,oneof=entry mid senior"`
	Position        int                 `json:"position" validate:"required,gt=0"`
	CompanyID       uuid.UUID           `json:"company_id" validate:"required"`
	CreatedBy       uuid.UUID           `json:"-"` // Set internally by handler from auth context
}

// GetJobByIDRequest defines the structure for getting a job by ID.
type GetJobByIDRequest struct {
	ID uuid.UUID `json:"-" validate:"required"`
}

// SearchJobsRequest carries the listing criteria from query parameters. The
// handler feeds these into the query engine; the repository only supplies the
// full fetched collection.
type SearchJobsRequest struct {
	Keyword string `form:"keyword"`
	Query   string `form:"query"`  // global search input, distinct from the page's own box
	Facets  string `form:"facets"` // selected facet values joined with " OR "
	Sort    string `form:"sort" validate:"omitempty,oneof=newest salary-high salary-low"`
}

// ListAdminJobsRequest lists every job posted by the authenticated recruiter.
type ListAdminJobsRequest struct {
	CreatedBy uuid.UUID `json:"-" validate:"required"`
}

// ListJobsByCompanyRequest lists jobs owned by one company.
type ListJobsByCompanyRequest struct {
	CompanyID uuid.UUID `json:"-" validate:"required"`
}

// UpdateJobRequest defines the structure for editing a posting. Nil fields
// are left untouched.
type UpdateJobRequest struct {
	ID              uuid.UUID            `json:"-" validate:"required"`
	UserID          uuid.UUID            `json:"-"` // Set from auth context for ownership check
	Title           *string              `json:"title,omitempty" validate:"omitempty,max=200"`
	Description     *string              `json:"description,omitempty"`
	Requirements    *models.Requirements `json:"requirements,omitempty"`
	Location        *string              `json:"location,omitempty" validate:"omitempty,max=100"`
	Salary          *float64             `json:"salary,omitempty" validate:"omitempty,gt=0"`
	JobType         *string              `json:"job_type,omitempty" validate:"omitempty,oneof=full-time part-time contract internship remote"`
	ExperienceLevel *string              `json:"experience_level,omitempty" validate:"omitempty,oneof=entry mid senior"`
	Position        *int                 `json:"position,omitempty" validate:"omitempty,gt=0"`
	Status          *models.JobStatus    `json:"-"` // Status changes go through UpdateJobStatus
}

// UpdateJobStatusRequest toggles a posting between active and rejected.
type UpdateJobStatusRequest struct {
	ID     uuid.UUID        `json:"-" validate:"required"`
	UserID uuid.UUID        `json:"-"` // Set from auth context for ownership check
	Status models.JobStatus `json:"status" validate:"required,oneof=active rejected"`
}

// DeleteJobRequest defines the structure for deleting a job.
type DeleteJobRequest struct {
	ID     uuid.UUID `json:"-" validate:"required"`
	UserID uuid.UUID `json:"-"` // Set from auth context for ownership check
}
