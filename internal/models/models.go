package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// --- Job Status Enum ---
type JobStatus string

const (
	JobStatusActive   JobStatus = "active"
	JobStatusRejected JobStatus = "rejected"
)

// Scan implements the sql.Scanner interface for JobStatus
func (js *JobStatus) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan JobStatus: value is not string or []byte")
		}
	}
	v := JobStatus(strVal)
	switch v {
	case JobStatusActive, JobStatusRejected:
		*js = v
		return nil
	default:
		return fmt.Errorf("invalid JobStatus value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for JobStatus
func (js JobStatus) Value() (driver.Value, error) {
	return string(js), nil
}

// --- Application Status Enum ---
type ApplicationStatus string

const (
	ApplicationStatusPending     ApplicationStatus = "pending"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
)

// Scan implements the sql.Scanner interface for ApplicationStatus
func (as *ApplicationStatus) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan ApplicationStatus: value is not string or []byte")
		}
	}
	v := ApplicationStatus(strVal)
	switch v {
	case ApplicationStatusPending, ApplicationStatusShortlisted, ApplicationStatusRejected:
		*as = v
		return nil
	default:
		return fmt.Errorf("invalid ApplicationStatus value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for ApplicationStatus
func (as ApplicationStatus) Value() (driver.Value, error) {
	return string(as), nil
}

// --- User Role Enum ---
type UserRole string

const (
	UserRoleStudent   UserRole = "student"
	UserRoleRecruiter UserRole = "recruiter"
)

// Scan implements the sql.Scanner interface for UserRole
func (ur *UserRole) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan UserRole: value is not string or []byte")
		}
	}
	v := UserRole(strVal)
	switch v {
	case UserRoleStudent, UserRoleRecruiter:
		*ur = v
		return nil
	default:
		return fmt.Errorf("invalid UserRole value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for UserRole
func (ur UserRole) Value() (driver.Value, error) {
	return string(ur), nil
}

// Requirements normalizes the legacy job requirements field, which arrives as
// either a single string or a list of strings. It always marshals as a list
// and folds the single-string form into a one-element list.
type Requirements []string

// UnmarshalJSON accepts "req", ["a","b"], or null (-> empty list).
func (r *Requirements) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = Requirements{}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		if list == nil {
			list = []string{}
		}
		*r = list
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return fmt.Errorf("requirements must be a string or a list of strings")
	}
	if single == "" {
		*r = Requirements{}
		return nil
	}
	*r = Requirements{single}
	return nil
}

// MarshalJSON renders an empty list, never null, when no requirements are set.
func (r Requirements) MarshalJSON() ([]byte, error) {
	if r == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(r))
}

// User represents a registered account, either a job seeker (student) or a
// recruiter managing companies and postings.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	FullName     string    `json:"fullname" db:"full_name"`
	Email        string    `json:"email" db:"email"`
	PhoneNumber  string    `json:"phone_number" db:"phone_number"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         UserRole  `json:"role" db:"role"`
	Profile      Profile   `json:"profile" db:"profile"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Profile is the embedded profile document on a user. Stored as jsonb.
type Profile struct {
	Bio            string          `json:"bio"`
	Skills         []string        `json:"skills"`
	ResumeURL      string          `json:"resume_url"`
	Title          string          `json:"title"`
	Location       string          `json:"location"`
	PhotoURL       string          `json:"photo_url"`
	OpenToWork     bool            `json:"open_to_work"`
	Experiences    []Experience    `json:"experiences"`
	Educations     []Education     `json:"educations"`
	Certifications []Certification `json:"certifications"`
}

// Experience is a single work-history entry on a profile.
type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description"`
}

// Education is a single education entry on a profile.
type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartYear   int    `json:"start_year"`
	EndYear     int    `json:"end_year"`
}

// Certification is a single certification entry on a profile.
type Certification struct {
	Name         string `json:"name"`
	Issuer       string `json:"issuer"`
	IssueDate    string `json:"issue_date"`
	CredentialID string `json:"credential_id"`
}

// Company represents an employer owned by a recruiter.
type Company struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Website     string    `json:"website" db:"website"`
	Location    string    `json:"location" db:"location"`
	LogoURL     string    `json:"logo_url" db:"logo_url"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	OwnerID     uuid.UUID `json:"owner_id" db:"owner_id"`
	JobCount    int       `json:"job_count" db:"job_count"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`

	// Populated on detail reads that collect the company's postings; not a column.
	Jobs []Job `json:"jobs,omitempty" db:"-"`
}

// Job represents a posting owned by a company.
type Job struct {
	ID              uuid.UUID    `json:"id" db:"id"`
	Title           string       `json:"title" db:"title"`
	Description     string       `json:"description" db:"description"`
	Requirements    Requirements `json:"requirements" db:"requirements"`
	Location        string       `json:"location" db:"location"`
	Salary          float64      `json:"salary" db:"salary"` // annual, LPA
	JobType         string       `json:"job_type" db:"job_type"`
	ExperienceLevel string       `json:"experience_level" db:"experience_level"`
	Position        int          `json:"position" db:"position"`
	Status          JobStatus    `json:"status" db:"status"`
	CompanyID       uuid.UUID    `json:"company_id" db:"company_id"`
	CreatedBy       uuid.UUID    `json:"created_by" db:"created_by"`
	CreatedAt       time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at" db:"updated_at"`

	// Populated on reads that join the owning company; not a column.
	Company *Company `json:"company,omitempty" db:"-"`
	// Populated on reads that collect the posting's applications; not a column.
	Applications []Application `json:"applications,omitempty" db:"-"`
}

// Appliable reports effective applicability: the job itself is active and the
// owning company has not been deactivated.
func (j *Job) Appliable() bool {
	if j.Status != JobStatusActive {
		return false
	}
	if j.Company != nil && !j.Company.IsActive {
		return false
	}
	return true
}

// Application represents one candidate's application to one job.
type Application struct {
	ID          uuid.UUID         `json:"id" db:"id"`
	JobID       uuid.UUID         `json:"job_id" db:"job_id"`
	ApplicantID uuid.UUID         `json:"applicant_id" db:"applicant_id"`
	Status      ApplicationStatus `json:"status" db:"status"`
	CreatedAt   time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at" db:"updated_at"`

	// Populated on reads that join the applicant or the job; not columns.
	Applicant *User `json:"applicant,omitempty" db:"-"`
	Job       *Job  `json:"job,omitempty" db:"-"`
}
