package services

import (
	"context"

	"jobboard-api/internal/models"
	"jobboard-api/internal/query"
	"jobboard-api/internal/transport/dto"
)

type UserService interface {
	Register(ctx context.Context, req *dto.RegisterUserRequest) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*models.User, *TokenPair, error)
	Refresh(ctx context.Context, req *dto.RefreshRequest) (*TokenPair, error)
	Logout(ctx context.Context, req *dto.LogoutRequest) error
	GetUserByID(ctx context.Context, req *dto.GetUserByIDRequest) (*models.User, error)
	UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*models.User, error)
	UpdateExperiences(ctx context.Context, req *dto.UpdateExperienceRequest) (*models.User, error)
	UpdateEducations(ctx context.Context, req *dto.UpdateEducationRequest) (*models.User, error)
	UpdateCertifications(ctx context.Context, req *dto.UpdateCertificationsRequest) (*models.User, error)
}

type CompanyService interface {
	Register(ctx context.Context, req *dto.RegisterCompanyRequest) (*models.Company, error)
	GetCompanyByID(ctx context.Context, req *dto.GetCompanyByIDRequest) (*models.Company, error)
	ListCompaniesByOwner(ctx context.Context, req *dto.ListCompaniesByOwnerRequest) ([]models.Company, error)
	Update(ctx context.Context, req *dto.UpdateCompanyRequest) (*models.Company, error)
}

type JobService interface {
	PostJob(ctx context.Context, req *dto.PostJobRequest) (*models.Job, error)
	GetJobByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error)
	SearchJobs(ctx context.Context, req *dto.SearchJobsRequest) ([]models.Job, query.EmptyState, error)
	ListAdminJobs(ctx context.Context, req *dto.ListAdminJobsRequest) ([]models.Job, error)
	UpdateJob(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error)
	UpdateJobStatus(ctx context.Context, req *dto.UpdateJobStatusRequest) (*models.Job, error)
	DeleteJob(ctx context.Context, req *dto.DeleteJobRequest) error
}

type ApplicationService interface {
	Apply(ctx context.Context, req *dto.ApplyRequest) (*models.Job, error)
	ListApplicants(ctx context.Context, req *dto.ListApplicantsRequest) ([]models.Application, error)
	ListUserApplications(ctx context.Context, req *dto.ListUserApplicationsRequest) ([]models.Application, error)
	UpdateApplicationStatus(ctx context.Context, req *dto.UpdateApplicationStatusRequest) (*models.Application, error)
	SendInvite(ctx context.Context, req *dto.SendInviteRequest) (*models.Application, error)
	ExportApplicants(ctx context.Context, req *dto.ExportApplicantsRequest) (*ApplicantsExport, error)
}

// ApplicantsExport bundles the generated CSV with its suggested filename.
type ApplicantsExport struct {
	Filename string
	Data     []byte
}
