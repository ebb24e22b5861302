package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"
)

type companyService struct {
	repo    storage.CompanyRepository
	jobRepo storage.JobRepository
}

// NewCompanyService creates a new instance of CompanyService.
func NewCompanyService(repo storage.CompanyRepository, jobRepo storage.JobRepository) CompanyService {
	return &companyService{repo: repo, jobRepo: jobRepo}
}

var _ CompanyService = (*companyService)(nil)

func (s *companyService) Register(ctx context.Context, req *dto.RegisterCompanyRequest) (*models.Company, error) {
	company, err := s.repo.Create(ctx, req)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, fmt.Errorf("%w: %w", ErrConflict, err)
		}
		log.Printf("CompanyService: Error creating company: %v", err)
		return nil, fmt.Errorf("internal error creating company: %w", err)
	}
	return company, nil
}

// GetCompanyByID returns the company detail with its postings attached so the
// company page renders in one read.
func (s *companyService) GetCompanyByID(ctx context.Context, req *dto.GetCompanyByIDRequest) (*models.Company, error) {
	company, err := s.repo.GetByID(ctx, req)
	if err != nil {
		return nil, mapRepoError(err)
	}

	jobs, err := s.jobRepo.ListByCompany(ctx, &dto.ListJobsByCompanyRequest{CompanyID: req.ID})
	if err != nil {
		log.Printf("CompanyService: Error listing postings for company %s: %v", req.ID, err)
		return nil, fmt.Errorf("internal error loading company postings: %w", err)
	}
	company.Jobs = jobs
	return company, nil
}

func (s *companyService) ListCompaniesByOwner(ctx context.Context, req *dto.ListCompaniesByOwnerRequest) ([]models.Company, error) {
	companies, err := s.repo.ListByOwner(ctx, req)
	if err != nil {
		log.Printf("CompanyService: Error listing companies for owner %s: %v", req.OwnerID, err)
		return nil, fmt.Errorf("internal error listing companies: %w", err)
	}
	return companies, nil
}

func (s *companyService) Update(ctx context.Context, req *dto.UpdateCompanyRequest) (*models.Company, error) {
	company, err := s.repo.GetByID(ctx, &dto.GetCompanyByIDRequest{ID: req.ID})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		log.Printf("CompanyService: Error fetching company %s: %v", req.ID, err)
		return nil, fmt.Errorf("internal error updating company: %w", err)
	}
	if company.OwnerID != req.UserID {
		return nil, ErrForbidden
	}

	deactivating := req.IsActive != nil && !*req.IsActive && company.IsActive

	// A bare {"is_active": false} body carries no column the detail update
	// can set; Deactivate does all the work for that shape.
	if hasDetailChanges(req) {
		company, err = s.repo.Update(ctx, req)
		if err != nil {
			if errors.Is(err, storage.ErrConflict) {
				return nil, fmt.Errorf("%w: %w", ErrConflict, err)
			}
			log.Printf("CompanyService: Error updating company %s: %v", req.ID, err)
			return nil, fmt.Errorf("internal error updating company: %w", err)
		}
	}

	// Deactivation cascades: every owned active job is demoted to rejected in
	// the same transaction so none of them stays appliable.
	if deactivating {
		company, err = s.repo.Deactivate(ctx, &dto.GetCompanyByIDRequest{ID: req.ID})
		if err != nil {
			log.Printf("CompanyService: Error deactivating company %s: %v", req.ID, err)
			return nil, fmt.Errorf("internal error deactivating company: %w", err)
		}
	}
	return company, nil
}

// hasDetailChanges reports whether the request touches any column the detail
// update statement can set. Deactivation is not one of them.
func hasDetailChanges(req *dto.UpdateCompanyRequest) bool {
	return req.Name != nil || req.Description != nil || req.Website != nil ||
		req.Location != nil || req.LogoURL != nil ||
		(req.IsActive != nil && *req.IsActive)
}
