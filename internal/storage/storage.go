package storage

import (
	"context"

	"jobboard-api/internal/models"
	"jobboard-api/internal/transport/dto"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(ctx context.Context, req *dto.RegisterUserRequest) (*models.User, error)
	GetByID(ctx context.Context, req *dto.GetUserByIDRequest) (*models.User, error)
	GetByEmail(ctx context.Context, req *dto.GetUserByEmailRequest) (*models.User, error)
	UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*models.User, error)
	UpdateExperiences(ctx context.Context, req *dto.UpdateExperienceRequest) (*models.User, error)
	UpdateEducations(ctx context.Context, req *dto.UpdateEducationRequest) (*models.User, error)
	UpdateCertifications(ctx context.Context, req *dto.UpdateCertificationsRequest) (*models.User, error)
}

// CompanyRepository defines the interface for company data operations.
type CompanyRepository interface {
	Create(ctx context.Context, req *dto.RegisterCompanyRequest) (*models.Company, error)
	GetByID(ctx context.Context, req *dto.GetCompanyByIDRequest) (*models.Company, error)
	ListByOwner(ctx context.Context, req *dto.ListCompaniesByOwnerRequest) ([]models.Company, error)
	Update(ctx context.Context, req *dto.UpdateCompanyRequest) (*models.Company, error)
	// Deactivate flips is_active to false and atomically demotes every owned
	// active job to rejected within one transaction.
	Deactivate(ctx context.Context, id *dto.GetCompanyByIDRequest) (*models.Company, error)
}

// JobRepository defines the interface for job data operations. Reads join the
// owning company so effective applicability can be computed without a second
// round trip.
type JobRepository interface {
	Create(ctx context.Context, req *dto.PostJobRequest) (*models.Job, error)
	GetByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error)
	ListAll(ctx context.Context) ([]models.Job, error)
	ListByCreator(ctx context.Context, req *dto.ListAdminJobsRequest) ([]models.Job, error)
	ListByCompany(ctx context.Context, req *dto.ListJobsByCompanyRequest) ([]models.Job, error)
	Update(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error)
	SetStatus(ctx context.Context, id *dto.GetJobByIDRequest, status models.JobStatus) (*models.Job, error)
	Delete(ctx context.Context, req *dto.DeleteJobRequest) error
}

// ApplicationRepository defines the interface for application data operations.
type ApplicationRepository interface {
	Create(ctx context.Context, req *dto.CreateApplicationRequest) (*models.Application, error)
	GetByID(ctx context.Context, req *dto.GetApplicationByIDRequest) (*models.Application, error)
	GetByJobAndApplicant(ctx context.Context, req *dto.GetByJobAndApplicantRequest) (*models.Application, error)
	ListByJob(ctx context.Context, req *dto.ListApplicantsRequest) ([]models.Application, error)
	ListByApplicant(ctx context.Context, req *dto.ListUserApplicationsRequest) ([]models.Application, error)
	SetStatus(ctx context.Context, req *dto.SetStatusRequest) (*models.Application, error)
}
