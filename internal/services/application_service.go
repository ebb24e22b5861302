package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"jobboard-api/internal/export"
	"jobboard-api/internal/mailer"
	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"github.com/google/uuid"
)

type applicationService struct {
	repo    storage.ApplicationRepository
	jobRepo storage.JobRepository
	mail    mailer.Mailer
}

// NewApplicationService creates a new instance of ApplicationService.
func NewApplicationService(repo storage.ApplicationRepository, jobRepo storage.JobRepository, mail mailer.Mailer) ApplicationService {
	return &applicationService{repo: repo, jobRepo: jobRepo, mail: mail}
}

var _ ApplicationService = (*applicationService)(nil)

// Apply creates the candidate's application for a job and returns the posting
// with the new application attached. A second apply by the same candidate is
// rejected without creating anything; each (applicant, job) pair holds at
// most one application.
func (s *applicationService) Apply(ctx context.Context, req *dto.ApplyRequest) (*models.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, &dto.GetJobByIDRequest{ID: req.JobID})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		log.Printf("ApplicationService: Error fetching job %s: %v", req.JobID, err)
		return nil, fmt.Errorf("internal error applying: %w", err)
	}
	if !job.Appliable() {
		return nil, ErrInvalidState
	}

	existing, err := s.repo.GetByJobAndApplicant(ctx, &dto.GetByJobAndApplicantRequest{
		JobID:       req.JobID,
		ApplicantID: req.ApplicantID,
	})
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		log.Printf("ApplicationService: Error checking existing application for job %s: %v", req.JobID, err)
		return nil, fmt.Errorf("internal error applying: %w", err)
	}
	if existing != nil {
		return nil, ErrAlreadyApplied
	}

	app, err := s.repo.Create(ctx, &dto.CreateApplicationRequest{
		JobID:       req.JobID,
		ApplicantID: req.ApplicantID,
	})
	if err != nil {
		// The unique index still races ahead of the pre-check.
		if errors.Is(err, storage.ErrDuplicateApplication) {
			return nil, ErrAlreadyApplied
		}
		log.Printf("ApplicationService: Error creating application for job %s: %v", req.JobID, err)
		return nil, fmt.Errorf("internal error applying: %w", err)
	}

	job.Applications = append(job.Applications, *app)
	return job, nil
}

func (s *applicationService) ListApplicants(ctx context.Context, req *dto.ListApplicantsRequest) ([]models.Application, error) {
	if _, err := s.ownedJob(ctx, req.JobID, req.UserID, "listing applicants"); err != nil {
		return nil, err
	}
	apps, err := s.repo.ListByJob(ctx, req)
	if err != nil {
		log.Printf("ApplicationService: Error listing applicants for job %s: %v", req.JobID, err)
		return nil, fmt.Errorf("internal error listing applicants: %w", err)
	}
	return apps, nil
}

func (s *applicationService) ListUserApplications(ctx context.Context, req *dto.ListUserApplicationsRequest) ([]models.Application, error) {
	apps, err := s.repo.ListByApplicant(ctx, req)
	if err != nil {
		log.Printf("ApplicationService: Error listing applications for user %s: %v", req.ApplicantID, err)
		return nil, fmt.Errorf("internal error listing applications: %w", err)
	}
	return apps, nil
}

// UpdateApplicationStatus moves an application along the workflow: pending may
// become shortlisted or rejected, shortlisted may become rejected, rejected is
// terminal. Repeating the current status is reported as a no-op, not an error.
func (s *applicationService) UpdateApplicationStatus(ctx context.Context, req *dto.UpdateApplicationStatusRequest) (*models.Application, error) {
	app, err := s.ownedApplication(ctx, req.ApplicationID, req.UserID, "updating application status")
	if err != nil {
		return nil, err
	}
	if app.Status == req.Status {
		return app, nil
	}
	if !isValidApplicationTransition(app.Status, req.Status) {
		return nil, fmt.Errorf("%w: %s to %s", ErrInvalidTransition, app.Status, req.Status)
	}

	updated, err := s.repo.SetStatus(ctx, &dto.SetStatusRequest{ID: req.ApplicationID, Status: req.Status})
	if err != nil {
		log.Printf("ApplicationService: Error setting status for application %s: %v", req.ApplicationID, err)
		return nil, fmt.Errorf("internal error updating application status: %w", err)
	}
	return updated, nil
}

// SendInvite emails an interview invite to the applicant. A successful send
// always leaves the application shortlisted, whatever state it was in before.
// A failed send changes nothing.
func (s *applicationService) SendInvite(ctx context.Context, req *dto.SendInviteRequest) (*models.Application, error) {
	app, err := s.ownedApplication(ctx, req.ApplicationID, req.UserID, "sending invite")
	if err != nil {
		return nil, err
	}
	if app.Applicant == nil || app.Applicant.Email == "" {
		return nil, fmt.Errorf("%w: application has no applicant email", ErrInvalidState)
	}

	subject := req.Subject
	if subject == "" {
		subject = "Interview Invitation"
	}
	msg := mailer.Message{
		To:      app.Applicant.Email,
		Subject: subject,
		Body:    req.Message,
	}
	if err := s.mail.Send(ctx, msg); err != nil {
		log.Printf("ApplicationService: Error sending invite for application %s: %v", req.ApplicationID, err)
		return nil, fmt.Errorf("failed to send invite: %w", err)
	}

	if app.Status == models.ApplicationStatusShortlisted {
		return app, nil
	}
	updated, err := s.repo.SetStatus(ctx, &dto.SetStatusRequest{ID: req.ApplicationID, Status: models.ApplicationStatusShortlisted})
	if err != nil {
		log.Printf("ApplicationService: Error shortlisting application %s after invite: %v", req.ApplicationID, err)
		return nil, fmt.Errorf("internal error updating application status: %w", err)
	}
	return updated, nil
}

// ExportApplicants renders the posting's applicants as a spreadsheet-ready
// CSV and names the file after the job title and today's date.
func (s *applicationService) ExportApplicants(ctx context.Context, req *dto.ExportApplicantsRequest) (*ApplicantsExport, error) {
	job, err := s.ownedJob(ctx, req.JobID, req.UserID, "exporting applicants")
	if err != nil {
		return nil, err
	}
	apps, err := s.repo.ListByJob(ctx, &dto.ListApplicantsRequest{JobID: req.JobID, UserID: req.UserID})
	if err != nil {
		log.Printf("ApplicationService: Error listing applicants for job %s: %v", req.JobID, err)
		return nil, fmt.Errorf("internal error exporting applicants: %w", err)
	}

	data, err := export.ApplicantsCSV(job, apps)
	if err != nil {
		log.Printf("ApplicationService: Error rendering CSV for job %s: %v", req.JobID, err)
		return nil, fmt.Errorf("internal error exporting applicants: %w", err)
	}
	return &ApplicantsExport{
		Filename: export.Filename(job.Title, time.Now()),
		Data:     data,
	}, nil
}

// ownedJob loads a job and checks the caller posted it.
func (s *applicationService) ownedJob(ctx context.Context, jobID, userID uuid.UUID, op string) (*models.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, &dto.GetJobByIDRequest{ID: jobID})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		log.Printf("ApplicationService: Error fetching job %s while %s: %v", jobID, op, err)
		return nil, fmt.Errorf("internal error %s: %w", op, err)
	}
	if job.CreatedBy != userID {
		return nil, ErrForbidden
	}
	return job, nil
}

// ownedApplication loads an application and checks the caller posted its job.
func (s *applicationService) ownedApplication(ctx context.Context, appID, userID uuid.UUID, op string) (*models.Application, error) {
	app, err := s.repo.GetByID(ctx, &dto.GetApplicationByIDRequest{ID: appID})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		log.Printf("ApplicationService: Error fetching application %s while %s: %v", appID, op, err)
		return nil, fmt.Errorf("internal error %s: %w", op, err)
	}
	if _, err := s.ownedJob(ctx, app.JobID, userID, op); err != nil {
		return nil, err
	}
	return app, nil
}
