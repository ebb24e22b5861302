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

const companyColumns = `id, name, description, website, location, logo_url, is_active, owner_id, created_at, updated_at`

// CompanyRepo implements the storage.CompanyRepository interface using PostgreSQL.
type CompanyRepo struct {
	db   Querier
	pool *pgxpool.Pool
}

// NewCompanyRepo creates a new CompanyRepo.
func NewCompanyRepo(db *pgxpool.Pool) *CompanyRepo {
	return &CompanyRepo{db: db, pool: db}
}

// Compile-time check to ensure CompanyRepo implements CompanyRepository
var _ storage.CompanyRepository = (*CompanyRepo)(nil)

func scanCompany(row pgx.Row) (*models.Company, error) {
	var c models.Company
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Description,
		&c.Website,
		&c.Location,
		&c.LogoURL,
		&c.IsActive,
		&c.OwnerID,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create registers a new company shell for a recruiter.
func (r *CompanyRepo) Create(ctx context.Context, req *dto.RegisterCompanyRequest) (*models.Company, error) {
	query := `
		INSERT INTO companies (id, name, description, website, location, logo_url, is_active, owner_id, created_at, updated_at)
		VALUES ($1, $2, '', '', '', '', TRUE, $3, NOW(), NOW())
		RETURNING ` + companyColumns

	company, err := scanCompany(r.db.QueryRow(ctx, query, uuid.New(), req.Name, req.OwnerID))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgErrUniqueViolation:
				log.Printf("Attempted to register duplicate company name %q: %v\n", req.Name, err)
				return nil, fmt.Errorf("failed to register company: name already taken: %w", storage.ErrConflict)
			case pgErrForeignKeyViolation:
				log.Printf("Error registering company: invalid owner %s: %v\n", req.OwnerID, err)
				return nil, fmt.Errorf("failed to register company: invalid owner: %w", storage.ErrConflict)
			}
		}
		log.Printf("Error registering company %q: %v\n", req.Name, err)
		return nil, fmt.Errorf("failed to register company: %w", err)
	}

	log.Printf("Company registered successfully with ID: %s", company.ID)
	return company, nil
}

// GetByID retrieves a specific company by its ID.
func (r *CompanyRepo) GetByID(ctx context.Context, req *dto.GetCompanyByIDRequest) (*models.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`

	company, err := scanCompany(r.db.QueryRow(ctx, query, req.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Company not found with ID: %s\n", req.ID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning company by ID %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to get company by ID %s: %w", req.ID, err)
	}
	return company, nil
}

// ListByOwner retrieves the companies owned by a recruiter, with the derived
// job count per company.
func (r *CompanyRepo) ListByOwner(ctx context.Context, req *dto.ListCompaniesByOwnerRequest) ([]models.Company, error) {
	query := `
		SELECT c.id, c.name, c.description, c.website, c.location, c.logo_url, c.is_active, c.owner_id,
		       COUNT(j.id) AS job_count, c.created_at, c.updated_at
		FROM companies c
		LEFT JOIN jobs j ON j.company_id = c.id
		WHERE c.owner_id = $1
		GROUP BY c.id
		ORDER BY c.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, req.OwnerID)
	if err != nil {
		log.Printf("Error querying companies by owner %s: %v\n", req.OwnerID, err)
		return nil, fmt.Errorf("failed to query companies by owner: %w", err)
	}
	defer rows.Close()

	companies := []models.Company{}
	for rows.Next() {
		var c models.Company
		err := rows.Scan(
			&c.ID, &c.Name, &c.Description, &c.Website, &c.Location, &c.LogoURL,
			&c.IsActive, &c.OwnerID, &c.JobCount, &c.CreatedAt, &c.UpdatedAt,
		)
		if err != nil {
			log.Printf("Error scanning companies by owner %s: %v\n", req.OwnerID, err)
			return nil, fmt.Errorf("failed to scan companies by owner: %w", err)
		}
		companies = append(companies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read companies by owner: %w", err)
	}

	return companies, nil
}

// Update modifies an existing company based on non-nil fields in the request.
// Activation changes are handled by the caller (see Deactivate).
func (r *CompanyRepo) Update(ctx context.Context, req *dto.UpdateCompanyRequest) (*models.Company, error) {
	var setClauses []string
	args := []interface{}{}
	argID := 1

	if req.Name != nil {
		args = append(args, *req.Name)
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", argID))
		argID++
	}
	if req.Description != nil {
		args = append(args, *req.Description)
		setClauses = append(setClauses, fmt.Sprintf("description = $%d", argID))
		argID++
	}
	if req.Website != nil {
		args = append(args, *req.Website)
		setClauses = append(setClauses, fmt.Sprintf("website = $%d", argID))
		argID++
	}
	if req.Location != nil {
		args = append(args, *req.Location)
		setClauses = append(setClauses, fmt.Sprintf("location = $%d", argID))
		argID++
	}
	if req.LogoURL != nil {
		args = append(args, *req.LogoURL)
		setClauses = append(setClauses, fmt.Sprintf("logo_url = $%d", argID))
		argID++
	}
	if req.IsActive != nil && *req.IsActive {
		args = append(args, true)
		setClauses = append(setClauses, fmt.Sprintf("is_active = $%d", argID))
		argID++
	}

	if len(setClauses) == 0 {
		log.Printf("Update called for company %s with no fields to change.", req.ID)
		return nil, fmt.Errorf("no fields provided for update on company %s", req.ID)
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	args = append(args, req.ID)

	query := fmt.Sprintf(`
		UPDATE companies
		SET %s
		WHERE id = $%d
		RETURNING `+companyColumns,
		strings.Join(setClauses, ", "), argID)

	company, err := scanCompany(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Company not found for update with ID: %s\n", req.ID)
			return nil, storage.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
			log.Printf("Error updating company %s: duplicate name: %v\n", req.ID, err)
			return nil, fmt.Errorf("failed to update company: name already taken: %w", storage.ErrConflict)
		}
		log.Printf("Error updating company %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to update company %s: %w", req.ID, err)
	}

	log.Printf("Company updated successfully: %s", company.ID)
	return company, nil
}

// Deactivate flips is_active to false and demotes every owned active job to
// rejected in the same transaction, so no job can be observed active under an
// inactive company.
func (r *CompanyRepo) Deactivate(ctx context.Context, req *dto.GetCompanyByIDRequest) (*models.Company, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		log.Printf("Deactivate: Error beginning transaction: %v", err)
		return nil, fmt.Errorf("internal error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE companies
		SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + companyColumns

	company, err := scanCompany(tx.QueryRow(ctx, query, req.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Company not found for deactivation with ID: %s\n", req.ID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error deactivating company %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to deactivate company %s: %w", req.ID, err)
	}

	demote := `
		UPDATE jobs
		SET status = $1, updated_at = NOW()
		WHERE company_id = $2 AND status = $3
	`
	tag, err := tx.Exec(ctx, demote, models.JobStatusRejected, req.ID, models.JobStatusActive)
	if err != nil {
		log.Printf("Error demoting active jobs for company %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to demote jobs for company %s: %w", req.ID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		log.Printf("Deactivate: Error committing transaction: %v", err)
		return nil, fmt.Errorf("internal error committing deactivation: %w", err)
	}

	log.Printf("Company %s deactivated, %d active jobs demoted", req.ID, tag.RowsAffected())
	return company, nil
}
