package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"jobboard-api/internal/models"
	"jobboard-api/internal/query"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"
)

type jobService struct {
	repo        storage.JobRepository
	companyRepo storage.CompanyRepository
}

// NewJobService creates a new instance of JobService.
func NewJobService(repo storage.JobRepository, companyRepo storage.CompanyRepository) JobService {
	return &jobService{repo: repo, companyRepo: companyRepo}
}

var _ JobService = (*jobService)(nil)

func (s *jobService) PostJob(ctx context.Context, req *dto.PostJobRequest) (*models.Job, error) {
	company, err := s.companyRepo.GetByID(ctx, &dto.GetCompanyByIDRequest{ID: req.CompanyID})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: company does not exist", ErrValidation)
		}
		log.Printf("JobService: Error fetching company %s: %v", req.CompanyID, err)
		return nil, fmt.Errorf("internal error posting job: %w", err)
	}
	if company.OwnerID != req.CreatedBy {
		return nil, ErrForbidden
	}
	if !company.IsActive {
		return nil, ErrCompanyInactive
	}

	job, err := s.repo.Create(ctx, req)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, fmt.Errorf("%w: %w", ErrConflict, err)
		}
		log.Printf("JobService: Error creating job: %v", err)
		return nil, fmt.Errorf("internal error posting job: %w", err)
	}
	return job, nil
}

func (s *jobService) GetJobByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error) {
	job, err := s.repo.GetByID(ctx, req)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return job, nil
}

// SearchJobs fetches the full collection once and runs every criterion in
// memory. Only appliable postings (active job, active company) are listed
// publicly; the empty state distinguishes an empty board from filters that
// matched nothing.
func (s *jobService) SearchJobs(ctx context.Context, req *dto.SearchJobsRequest) ([]models.Job, query.EmptyState, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		log.Printf("JobService: Error listing jobs: %v", err)
		return nil, query.NotEmpty, fmt.Errorf("internal error listing jobs: %w", err)
	}

	visible := make([]models.Job, 0, len(all))
	for i := range all {
		if all[i].Appliable() {
			visible = append(visible, all[i])
		}
	}

	criteria := query.Criteria{
		Keywords: []string{req.Keyword, req.Query},
		Facets:   query.ParseFacets(req.Facets),
		Sort:     query.SortKey(req.Sort),
	}
	result := query.Run(visible, criteria)
	return result, query.Classify(visible, result, criteria), nil
}

func (s *jobService) ListAdminJobs(ctx context.Context, req *dto.ListAdminJobsRequest) ([]models.Job, error) {
	jobs, err := s.repo.ListByCreator(ctx, req)
	if err != nil {
		log.Printf("JobService: Error listing jobs for recruiter %s: %v", req.CreatedBy, err)
		return nil, fmt.Errorf("internal error listing jobs: %w", err)
	}
	return jobs, nil
}

func (s *jobService) UpdateJob(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error) {
	job, err := s.repo.GetByID(ctx, &dto.GetJobByIDRequest{ID: req.ID})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		log.Printf("JobService: Error fetching job %s: %v", req.ID, err)
		return nil, fmt.Errorf("internal error updating job: %w", err)
	}
	if job.CreatedBy != req.UserID {
		return nil, ErrForbidden
	}

	job, err = s.repo.Update(ctx, req)
	if err != nil {
		log.Printf("JobService: Error updating job %s: %v", req.ID, err)
		return nil, fmt.Errorf("internal error updating job: %w", err)
	}
	return job, nil
}

// UpdateJobStatus toggles a posting between active and rejected. Reactivation
// is refused outright while the owning company is deactivated; the posting is
// left untouched and the caller gets ErrCompanyInactive.
func (s *jobService) UpdateJobStatus(ctx context.Context, req *dto.UpdateJobStatusRequest) (*models.Job, error) {
	job, err := s.repo.GetByID(ctx, &dto.GetJobByIDRequest{ID: req.ID})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		log.Printf("JobService: Error fetching job %s: %v", req.ID, err)
		return nil, fmt.Errorf("internal error updating job status: %w", err)
	}
	if job.CreatedBy != req.UserID {
		return nil, ErrForbidden
	}
	if req.Status == models.JobStatusActive && job.Company != nil && !job.Company.IsActive {
		return nil, ErrCompanyInactive
	}
	if job.Status == req.Status {
		return job, nil
	}

	job, err = s.repo.SetStatus(ctx, &dto.GetJobByIDRequest{ID: req.ID}, req.Status)
	if err != nil {
		log.Printf("JobService: Error setting status for job %s: %v", req.ID, err)
		return nil, fmt.Errorf("internal error updating job status: %w", err)
	}
	return job, nil
}

func (s *jobService) DeleteJob(ctx context.Context, req *dto.DeleteJobRequest) error {
	job, err := s.repo.GetByID(ctx, &dto.GetJobByIDRequest{ID: req.ID})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		log.Printf("JobService: Error fetching job %s: %v", req.ID, err)
		return fmt.Errorf("internal error deleting job: %w", err)
	}
	if job.CreatedBy != req.UserID {
		return ErrForbidden
	}

	if err := s.repo.Delete(ctx, req); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		log.Printf("JobService: Error deleting job %s: %v", req.ID, err)
		return fmt.Errorf("internal error deleting job: %w", err)
	}
	return nil
}
