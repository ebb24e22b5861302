package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const jobColumns = `j.id, j.title, j.description, j.requirements, j.location, j.salary,
	j.job_type, j.experience_level, j.position, j.status, j.company_id, j.created_by,
	j.created_at, j.updated_at,
	c.id, c.name, c.description, c.website, c.location, c.logo_url, c.is_active, c.owner_id,
	c.created_at, c.updated_at`

const jobFrom = ` FROM jobs j JOIN companies c ON c.id = j.company_id`

// JobRepo implements the storage.JobRepository interface using PostgreSQL.
// Every read joins the owning company so callers can evaluate effective
// applicability and the query engine can match against the company name.
type JobRepo struct {
	db Querier
}

// NewJobRepo creates a new JobRepo.
func NewJobRepo(db *pgxpool.Pool) *JobRepo {
	return &JobRepo{db: db}
}

// Compile-time check to ensure JobRepo implements JobRepository
var _ storage.JobRepository = (*JobRepo)(nil)

func scanJob(row pgx.Row) (*models.Job, error) {
	var j models.Job
	var c models.Company
	err := row.Scan(
		&j.ID, &j.Title, &j.Description, &j.Requirements, &j.Location, &j.Salary,
		&j.JobType, &j.ExperienceLevel, &j.Position, &j.Status, &j.CompanyID, &j.CreatedBy,
		&j.CreatedAt, &j.UpdatedAt,
		&c.ID, &c.Name, &c.Description, &c.Website, &c.Location, &c.LogoURL, &c.IsActive, &c.OwnerID,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	j.Company = &c
	return &j, nil
}

func collectJobs(rows pgx.Rows) ([]models.Job, error) {
	jobs := []models.Job{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *job)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return jobs, nil
}

// Create saves a new job posting with the default active status.
func (r *JobRepo) Create(ctx context.Context, req *dto.PostJobRequest) (*models.Job, error) {
	requirements := req.Requirements
	if requirements == nil {
		requirements = models.Requirements{}
	}

	id := uuid.New()
	insert := `
		INSERT INTO jobs (id, title, description, requirements, location, salary, job_type,
			experience_level, position, status, company_id, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
	`

	_, err := r.db.Exec(ctx, insert,
		id,
		req.Title,
		req.Description,
		requirements,
		req.Location,
		req.Salary,
		req.JobType,
		req.ExperienceLevel,
		req.Position,
		models.JobStatusActive,
		req.CompanyID,
		req.CreatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrForeignKeyViolation {
			log.Printf("Error creating job: foreign key violation (company_id: %s): %v\n", req.CompanyID, err)
			return nil, fmt.Errorf("failed to create job: invalid company ID: %w", storage.ErrConflict)
		}
		log.Printf("Error creating job: %v\n", err)
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	createdJob, err := r.GetByID(ctx, &dto.GetJobByIDRequest{ID: id})
	if err != nil {
		return nil, err
	}

	log.Printf("Job created successfully with ID: %s", createdJob.ID)
	return createdJob, nil
}

// GetByID retrieves a specific job by its ID with the owning company joined.
func (r *JobRepo) GetByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error) {
	query := `SELECT ` + jobColumns + jobFrom + ` WHERE j.id = $1`

	job, err := scanJob(r.db.QueryRow(ctx, query, req.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Job not found with ID: %s\n", req.ID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning job by ID %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to get job by ID %s: %w", req.ID, err)
	}
	return job, nil
}

// ListAll retrieves the full posting collection in fetch order (newest
// first). Filtering and re-sorting happen in the query engine, not in SQL.
func (r *JobRepo) ListAll(ctx context.Context) ([]models.Job, error) {
	query := `SELECT ` + jobColumns + jobFrom + ` ORDER BY j.created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		log.Printf("Error querying all jobs: %v\n", err)
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}
	defer rows.Close()

	jobs, err := collectJobs(rows)
	if err != nil {
		log.Printf("Error scanning jobs: %v\n", err)
		return nil, fmt.Errorf("failed to scan jobs: %w", err)
	}
	return jobs, nil
}

// ListByCreator retrieves jobs posted by a specific recruiter.
func (r *JobRepo) ListByCreator(ctx context.Context, req *dto.ListAdminJobsRequest) ([]models.Job, error) {
	query := `SELECT ` + jobColumns + jobFrom + ` WHERE j.created_by = $1 ORDER BY j.created_at DESC`

	rows, err := r.db.Query(ctx, query, req.CreatedBy)
	if err != nil {
		log.Printf("Error querying jobs by creator %s: %v\n", req.CreatedBy, err)
		return nil, fmt.Errorf("failed to query jobs by creator: %w", err)
	}
	defer rows.Close()

	jobs, err := collectJobs(rows)
	if err != nil {
		log.Printf("Error scanning jobs by creator %s: %v\n", req.CreatedBy, err)
		return nil, fmt.Errorf("failed to scan jobs by creator: %w", err)
	}
	return jobs, nil
}

// ListByCompany retrieves jobs owned by a specific company.
func (r *JobRepo) ListByCompany(ctx context.Context, req *dto.ListJobsByCompanyRequest) ([]models.Job, error) {
	query := `SELECT ` + jobColumns + jobFrom + ` WHERE j.company_id = $1 ORDER BY j.created_at DESC`

	rows, err := r.db.Query(ctx, query, req.CompanyID)
	if err != nil {
		log.Printf("Error querying jobs by company %s: %v\n", req.CompanyID, err)
		return nil, fmt.Errorf("failed to query jobs by company: %w", err)
	}
	defer rows.Close()

	jobs, err := collectJobs(rows)
	if err != nil {
		log.Printf("Error scanning jobs by company %s: %v\n", req.CompanyID, err)
		return nil, fmt.Errorf("failed to scan jobs by company: %w", err)
	}
	return jobs, nil
}

// Update modifies an existing job based on non-nil fields in the request DTO.
func (r *JobRepo) Update(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error) {
	var setClauses []string
	args := []interface{}{}
	argID := 1

	if req.Title != nil {
		args = append(args, *req.Title)
		setClauses = append(setClauses, fmt.Sprintf("title = $%d", argID))
		argID++
	}
	if req.Description != nil {
		args = append(args, *req.Description)
		setClauses = append(setClauses, fmt.Sprintf("description = $%d", argID))
		argID++
	}
	if req.Requirements != nil {
		args = append(args, *req.Requirements)
		setClauses = append(setClauses, fmt.Sprintf("requirements = $%d", argID))
		argID++
	}
	if req.Location != nil {
		args = append(args, *req.Location)
		setClauses = append(setClauses, fmt.Sprintf("location = $%d", argID))
		argID++
	}
	if req.Salary != nil {
		args = append(args, *req.Salary)
		setClauses = append(setClauses, fmt.Sprintf("salary = $%d", argID))
		argID++
	}
	if req.JobType != nil {
		args = append(args, *req.JobType)
		setClauses = append(setClauses, fmt.Sprintf("job_type = $%d", argID))
		argID++
	}
	if req.ExperienceLevel != nil {
		args = append(args, *req.ExperienceLevel)
		setClauses = append(setClauses, fmt.Sprintf("experience_level = $%d", argID))
		argID++
	}
	if req.Position != nil {
		args = append(args, *req.Position)
		setClauses = append(setClauses, fmt.Sprintf("position = $%d", argID))
		argID++
	}
	if req.Status != nil {
		args = append(args, *req.Status)
		setClauses = append(setClauses, fmt.Sprintf("status = $%d", argID))
		argID++
	}

	if len(setClauses) == 0 {
		log.Printf("Update called for job %s with no fields to change.", req.ID)
		return nil, fmt.Errorf("no fields provided for update on job %s", req.ID)
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	args = append(args, req.ID)

	update := fmt.Sprintf(`UPDATE jobs SET %s WHERE id = $%d`, strings.Join(setClauses, ", "), argID)

	tag, err := r.db.Exec(ctx, update, args...)
	if err != nil {
		log.Printf("Error updating job %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to update job %s: %w", req.ID, err)
	}
	if tag.RowsAffected() == 0 {
		log.Printf("Job not found for update with ID: %s\n", req.ID)
		return nil, storage.ErrNotFound
	}

	updatedJob, err := r.GetByID(ctx, &dto.GetJobByIDRequest{ID: req.ID})
	if err != nil {
		return nil, err
	}

	log.Printf("Job updated successfully: %s", updatedJob.ID)
	return updatedJob, nil
}

// SetStatus persists a status transition. Guard checks live in the service.
func (r *JobRepo) SetStatus(ctx context.Context, req *dto.GetJobByIDRequest, status models.JobStatus) (*models.Job, error) {
	update := `UPDATE jobs SET status = $1, updated_at = NOW() WHERE id = $2`

	tag, err := r.db.Exec(ctx, update, status, req.ID)
	if err != nil {
		log.Printf("Error updating job status %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to update job status %s: %w", req.ID, err)
	}
	if tag.RowsAffected() == 0 {
		log.Printf("Job not found for status update with ID: %s\n", req.ID)
		return nil, storage.ErrNotFound
	}

	return r.GetByID(ctx, req)
}

// Delete removes a job by its ID.
func (r *JobRepo) Delete(ctx context.Context, req *dto.DeleteJobRequest) error {
	query := `DELETE FROM jobs WHERE id = $1`

	cmdTag, err := r.db.Exec(ctx, query, req.ID)
	if err != nil {
		log.Printf("Error deleting job %s: %v\n", req.ID, err)
		return fmt.Errorf("failed to delete job %s: %w", req.ID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		log.Printf("Job not found for deletion with ID: %s\n", req.ID)
		return storage.ErrNotFound
	}

	log.Printf("Job deleted successfully: %s", req.ID)
	return nil
}
