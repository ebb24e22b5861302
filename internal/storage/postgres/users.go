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
	"golang.org/x/crypto/bcrypt"
)

const userColumns = `id, full_name, email, phone_number, password_hash, role, profile, created_at, updated_at`

// UserRepo implements the storage.UserRepository interface using PostgreSQL.
type UserRepo struct {
	db Querier
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(db *pgxpool.Pool) *UserRepo {
	return &UserRepo{db: db}
}

// Compile-time check to ensure UserRepo implements UserRepository
var _ storage.UserRepository = (*UserRepo)(nil)

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID,
		&u.FullName,
		&u.Email,
		&u.PhoneNumber,
		&u.PasswordHash,
		&u.Role,
		&u.Profile,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create saves a new account with a bcrypt password hash and an empty profile.
func (r *UserRepo) Create(ctx context.Context, req *dto.RegisterUserRequest) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing password for email %s: %v\n", req.Email, err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	query := `
		INSERT INTO users (id, full_name, email, phone_number, password_hash, role, profile, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING ` + userColumns

	row := r.db.QueryRow(ctx, query,
		uuid.New(),
		req.FullName,
		req.Email,
		req.PhoneNumber,
		string(hashedPassword),
		models.UserRole(req.Role),
		emptyProfile(),
	)

	createdUser, err := scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
			log.Printf("Attempted to create user with duplicate email %s: %v\n", req.Email, err)
			return nil, storage.ErrDuplicateEmail
		}
		log.Printf("Error creating user with email %s: %v\n", req.Email, err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Printf("User created successfully with ID: %s", createdUser.ID)
	return createdUser, nil
}

// GetByID retrieves a single user by ID.
func (r *UserRepo) GetByID(ctx context.Context, req *dto.GetUserByIDRequest) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, req.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("User not found with ID: %s\n", req.ID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning user by ID %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to get user by ID %s: %w", req.ID, err)
	}
	return user, nil
}

// GetByEmail retrieves a single user by email (including password hash).
func (r *UserRepo) GetByEmail(ctx context.Context, req *dto.GetUserByEmailRequest) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, req.Email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("User not found with email: %s\n", req.Email)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning user by email %s: %v\n", req.Email, err)
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

// UpdateProfile patches the account and profile fields set in the request.
// The profile document is read-modified-written as one jsonb value.
func (r *UserRepo) UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*models.User, error) {
	existing, err := r.GetByID(ctx, &dto.GetUserByIDRequest{ID: req.UserID})
	if err != nil {
		return nil, err
	}

	fullName := existing.FullName
	if req.FullName != nil {
		fullName = *req.FullName
	}
	phone := existing.PhoneNumber
	if req.PhoneNumber != nil {
		phone = *req.PhoneNumber
	}

	profile := existing.Profile
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.Skills != nil {
		profile.Skills = *req.Skills
	}
	if req.ResumeURL != nil {
		profile.ResumeURL = *req.ResumeURL
	}
	if req.Title != nil {
		profile.Title = *req.Title
	}
	if req.Location != nil {
		profile.Location = *req.Location
	}
	if req.PhotoURL != nil {
		profile.PhotoURL = *req.PhotoURL
	}
	if req.OpenToWork != nil {
		profile.OpenToWork = *req.OpenToWork
	}

	return r.writeProfile(ctx, req.UserID, fullName, phone, profile)
}

// UpdateExperiences replaces the experience list on the profile document.
func (r *UserRepo) UpdateExperiences(ctx context.Context, req *dto.UpdateExperienceRequest) (*models.User, error) {
	existing, err := r.GetByID(ctx, &dto.GetUserByIDRequest{ID: req.UserID})
	if err != nil {
		return nil, err
	}
	profile := existing.Profile
	profile.Experiences = req.Experiences
	return r.writeProfile(ctx, req.UserID, existing.FullName, existing.PhoneNumber, profile)
}

// UpdateEducations replaces the education list on the profile document.
func (r *UserRepo) UpdateEducations(ctx context.Context, req *dto.UpdateEducationRequest) (*models.User, error) {
	existing, err := r.GetByID(ctx, &dto.GetUserByIDRequest{ID: req.UserID})
	if err != nil {
		return nil, err
	}
	profile := existing.Profile
	profile.Educations = req.Educations
	return r.writeProfile(ctx, req.UserID, existing.FullName, existing.PhoneNumber, profile)
}

// UpdateCertifications replaces the certification list on the profile document.
func (r *UserRepo) UpdateCertifications(ctx context.Context, req *dto.UpdateCertificationsRequest) (*models.User, error) {
	existing, err := r.GetByID(ctx, &dto.GetUserByIDRequest{ID: req.UserID})
	if err != nil {
		return nil, err
	}
	profile := existing.Profile
	profile.Certifications = req.Certifications
	return r.writeProfile(ctx, req.UserID, existing.FullName, existing.PhoneNumber, profile)
}

func (r *UserRepo) writeProfile(ctx context.Context, id uuid.UUID, fullName, phone string, profile models.Profile) (*models.User, error) {
	query := `
		UPDATE users
		SET full_name = $1, phone_number = $2, profile = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING ` + userColumns

	user, err := scanUser(r.db.QueryRow(ctx, query, fullName, phone, profile, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("User not found for profile update with ID: %s\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating profile for user %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to update profile for user %s: %w", id, err)
	}

	log.Printf("Profile updated successfully for user: %s", user.ID)
	return user, nil
}

func emptyProfile() models.Profile {
	return models.Profile{
		Skills:         []string{},
		Experiences:    []models.Experience{},
		Educations:     []models.Education{},
		Certifications: []models.Certification{},
	}
}
