package dto

import (
	"github.com/google/uuid"
)

// RegisterCompanyRequest creates a company shell with just a name; details
// come later through update.
type RegisterCompanyRequest struct {
	Name    string    `json:"name" validate:"required,max=200"`
	OwnerID uuid.UUID `json:"-"` // Set internally by handler from auth context
}

// GetCompanyByIDRequest defines the structure for getting a company by ID.
type GetCompanyByIDRequest struct {
	ID uuid.UUID `json:"-" validate:"required"`
}

// ListCompaniesByOwnerRequest lists the companies owned by a recruiter.
type ListCompaniesByOwnerRequest struct {
	OwnerID uuid.UUID `json:"-" validate:"required"`
}

// UpdateCompanyRequest updates company details. Nil fields are left
// untouched. Setting IsActive to false demotes every owned active job.
type UpdateCompanyRequest struct {
	ID          uuid.UUID `json:"-" validate:"required"`
	UserID      uuid.UUID `json:"-"` // Set from auth context for ownership check
	Name        *string   `json:"name,omitempty" validate:"omitempty,max=200"`
	Description *string   `json:"description,omitempty" validate:"omitempty,max=2000"`
	Website     *string   `json:"website,omitempty" validate:"omitempty,url"`
	Location    *string   `json:"location,omitempty" validate:"omitempty,max=100"`
	LogoURL     *string   `json:"logo_url,omitempty" validate:"omitempty,url"`
	IsActive    *bool     `json:"is_active,omitempty"`
}
