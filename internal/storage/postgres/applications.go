package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"

	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const applicationColumns = `id, job_id, applicant_id, status, created_at, updated_at`

// ApplicationRepo implements the storage.ApplicationRepository interface
// using PostgreSQL. The apply-once invariant is backed by a unique index on
// (job_id, applicant_id).
type ApplicationRepo struct {
	db Querier
}

// NewApplicationRepo creates a new ApplicationRepo.
func NewApplicationRepo(db *pgxpool.Pool) *ApplicationRepo {
	return &ApplicationRepo{db: db}
}

// Compile-time check to ensure ApplicationRepo implements ApplicationRepository
var _ storage.ApplicationRepository = (*ApplicationRepo)(nil)

func scanApplication(row pgx.Row) (*models.Application, error) {
	var a models.Application
	err := row.Scan(&a.ID, &a.JobID, &a.ApplicantID, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create saves a new pending application.
func (r *ApplicationRepo) Create(ctx context.Context, req *dto.CreateApplicationRequest) (*models.Application, error) {
	query := `
		INSERT INTO applications (id, job_id, applicant_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING ` + applicationColumns

	app, err := scanApplication(r.db.QueryRow(ctx, query,
		uuid.New(),
		req.JobID,
		req.ApplicantID,
		models.ApplicationStatusPending,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgErrUniqueViolation:
				log.Printf("Duplicate application for job %s by user %s: %v\n", req.JobID, req.ApplicantID, err)
				return nil, storage.ErrDuplicateApplication
			case pgErrForeignKeyViolation:
				log.Printf("Error creating application: invalid job or applicant: %v\n", err)
				return nil, fmt.Errorf("failed to create application: invalid reference: %w", storage.ErrConflict)
			}
		}
		log.Printf("Error creating application: %v\n", err)
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	log.Printf("Application created successfully with ID: %s", app.ID)
	return app, nil
}

// GetByID retrieves a specific application by its ID with the applicant
// joined, so callers can reach the candidate's email without a second read.
func (r *ApplicationRepo) GetByID(ctx context.Context, req *dto.GetApplicationByIDRequest) (*models.Application, error) {
	query := `
		SELECT a.id, a.job_id, a.applicant_id, a.status, a.created_at, a.updated_at,
		       u.id, u.full_name, u.email, u.phone_number, u.role, u.profile, u.created_at, u.updated_at
		FROM applications a
		JOIN users u ON u.id = a.applicant_id
		WHERE a.id = $1
	`

	var a models.Application
	var u models.User
	err := r.db.QueryRow(ctx, query, req.ID).Scan(
		&a.ID, &a.JobID, &a.ApplicantID, &a.Status, &a.CreatedAt, &a.UpdatedAt,
		&u.ID, &u.FullName, &u.Email, &u.PhoneNumber, &u.Role, &u.Profile, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Application not found with ID: %s\n", req.ID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning application by ID %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to get application by ID %s: %w", req.ID, err)
	}
	a.Applicant = &u
	return &a, nil
}

// GetByJobAndApplicant retrieves the single application for a (job, user)
// pair, or storage.ErrNotFound when the user has not applied.
func (r *ApplicationRepo) GetByJobAndApplicant(ctx context.Context, req *dto.GetByJobAndApplicantRequest) (*models.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE job_id = $1 AND applicant_id = $2`

	app, err := scanApplication(r.db.QueryRow(ctx, query, req.JobID, req.ApplicantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning application for job %s and user %s: %v\n", req.JobID, req.ApplicantID, err)
		return nil, fmt.Errorf("failed to get application by job and applicant: %w", err)
	}
	return app, nil
}

// ListByJob retrieves every application for a posting with the applicant
// joined, newest first.
func (r *ApplicationRepo) ListByJob(ctx context.Context, req *dto.ListApplicantsRequest) ([]models.Application, error) {
	query := `
		SELECT a.id, a.job_id, a.applicant_id, a.status, a.created_at, a.updated_at,
		       u.id, u.full_name, u.email, u.phone_number, u.role, u.profile, u.created_at, u.updated_at
		FROM applications a
		JOIN users u ON u.id = a.applicant_id
		WHERE a.job_id = $1
		ORDER BY a.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, req.JobID)
	if err != nil {
		log.Printf("Error querying applications by job %s: %v\n", req.JobID, err)
		return nil, fmt.Errorf("failed to query applications by job: %w", err)
	}
	defer rows.Close()

	apps := []models.Application{}
	for rows.Next() {
		var a models.Application
		var u models.User
		err := rows.Scan(
			&a.ID, &a.JobID, &a.ApplicantID, &a.Status, &a.CreatedAt, &a.UpdatedAt,
			&u.ID, &u.FullName, &u.Email, &u.PhoneNumber, &u.Role, &u.Profile, &u.CreatedAt, &u.UpdatedAt,
		)
		if err != nil {
			log.Printf("Error scanning applications by job %s: %v\n", req.JobID, err)
			return nil, fmt.Errorf("failed to scan applications by job: %w", err)
		}
		a.Applicant = &u
		apps = append(apps, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read applications by job: %w", err)
	}

	return apps, nil
}

// ListByApplicant retrieves the user's applications with the job and owning
// company joined, newest first.
func (r *ApplicationRepo) ListByApplicant(ctx context.Context, req *dto.ListUserApplicationsRequest) ([]models.Application, error) {
	query := `
		SELECT a.id, a.job_id, a.applicant_id, a.status, a.created_at, a.updated_at,
		       ` + jobColumns + `
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		JOIN companies c ON c.id = j.company_id
		WHERE a.applicant_id = $1
		ORDER BY a.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, req.ApplicantID)
	if err != nil {
		log.Printf("Error querying applications by applicant %s: %v\n", req.ApplicantID, err)
		return nil, fmt.Errorf("failed to query applications by applicant: %w", err)
	}
	defer rows.Close()

	apps := []models.Application{}
	for rows.Next() {
		var a models.Application
		var j models.Job
		var c models.Company
		err := rows.Scan(
			&a.ID, &a.JobID, &a.ApplicantID, &a.Status, &a.CreatedAt, &a.UpdatedAt,
			&j.ID, &j.Title, &j.Description, &j.Requirements, &j.Location, &j.Salary,
			&j.JobType, &j.ExperienceLevel, &j.Position, &j.Status, &j.CompanyID, &j.CreatedBy,
			&j.CreatedAt, &j.UpdatedAt,
			&c.ID, &c.Name, &c.Description, &c.Website, &c.Location, &c.LogoURL, &c.IsActive, &c.OwnerID,
			&c.CreatedAt, &c.UpdatedAt,
		)
		if err != nil {
			log.Printf("Error scanning applications by applicant %s: %v\n", req.ApplicantID, err)
			return nil, fmt.Errorf("failed to scan applications by applicant: %w", err)
		}
		j.Company = &c
		a.Job = &j
		apps = append(apps, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read applications by applicant: %w", err)
	}

	return apps, nil
}

// SetStatus persists a status transition. Guard checks live in the service.
func (r *ApplicationRepo) SetStatus(ctx context.Context, req *dto.SetStatusRequest) (*models.Application, error) {
	query := `
		UPDATE applications
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + applicationColumns

	app, err := scanApplication(r.db.QueryRow(ctx, query, req.Status, req.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Application not found for status update with ID: %s\n", req.ID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating application status for ID %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to update application status: %w", err)
	}

	return app, nil
}
