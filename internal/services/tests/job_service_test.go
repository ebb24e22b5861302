package services_test

import (
	"context"
	"testing"
	"time"

	mock_storage "jobboard-api/internal/mocks"
	"jobboard-api/internal/models"
	"jobboard-api/internal/query"
	"jobboard-api/internal/services"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testRecruiterID = uuid.New()
	testCompanyID   = uuid.New()
	testJobID       = uuid.New()
)

func activeCompany() *models.Company {
	return &models.Company{ID: testCompanyID, Name: "Acme", IsActive: true, OwnerID: testRecruiterID}
}

func inactiveCompany() *models.Company {
	c := activeCompany()
	c.IsActive = false
	return c
}

func jobOwnedBy(recruiter uuid.UUID, status models.JobStatus, company *models.Company) *models.Job {
	return &models.Job{
		ID:        testJobID,
		Title:     "Backend Engineer",
		Status:    status,
		CompanyID: company.ID,
		CreatedBy: recruiter,
		Company:   company,
	}
}

func TestJobService_PostJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockJobRepo := mock_storage.NewMockJobRepository(ctrl)
	mockCompanyRepo := mock_storage.NewMockCompanyRepository(ctrl)
	jobService := services.NewJobService(mockJobRepo, mockCompanyRepo)

	req := &dto.PostJobRequest{
		Title:           "Backend Engineer",
		Description:     "Build APIs",
		Location:        "Remote",
		Salary:          12,
		JobType:         "full-time",
		ExperienceLevel: "mid",
		Position:        2,
		CompanyID:       testCompanyID,
		CreatedBy:       testRecruiterID,
	}

	t.Run("Success", func(t *testing.T) {
		mockCompanyRepo.EXPECT().
			GetByID(gomock.Any(), &dto.GetCompanyByIDRequest{ID: testCompanyID}).
			Return(activeCompany(), nil).Times(1)
		mockJobRepo.EXPECT().Create(gomock.Any(), req).
			Return(jobOwnedBy(testRecruiterID, models.JobStatusActive, activeCompany()), nil).Times(1)

		job, err := jobService.PostJob(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, models.JobStatusActive, job.Status)
	})

	t.Run("Not the company owner", func(t *testing.T) {
		other := activeCompany()
		other.OwnerID = uuid.New()
		mockCompanyRepo.EXPECT().
			GetByID(gomock.Any(), &dto.GetCompanyByIDRequest{ID: testCompanyID}).
			Return(other, nil).Times(1)

		job, err := jobService.PostJob(context.Background(), req)
		assert.ErrorIs(t, err, services.ErrForbidden)
		assert.Nil(t, job)
	})

	t.Run("Company deactivated", func(t *testing.T) {
		mockCompanyRepo.EXPECT().
			GetByID(gomock.Any(), &dto.GetCompanyByIDRequest{ID: testCompanyID}).
			Return(inactiveCompany(), nil).Times(1)

		job, err := jobService.PostJob(context.Background(), req)
		assert.ErrorIs(t, err, services.ErrCompanyInactive)
		assert.Nil(t, job)
	})
}

func TestJobService_UpdateJobStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockJobRepo := mock_storage.NewMockJobRepository(ctrl)
	mockCompanyRepo := mock_storage.NewMockCompanyRepository(ctrl)
	jobService := services.NewJobService(mockJobRepo, mockCompanyRepo)

	idReq := &dto.GetJobByIDRequest{ID: testJobID}

	t.Run("Reactivation refused while company is inactive", func(t *testing.T) {
		// No SetStatus expectation: the posting must be left untouched.
		mockJobRepo.EXPECT().GetByID(gomock.Any(), idReq).
			Return(jobOwnedBy(testRecruiterID, models.JobStatusRejected, inactiveCompany()), nil).Times(1)

		job, err := jobService.UpdateJobStatus(context.Background(), &dto.UpdateJobStatusRequest{
			ID: testJobID, UserID: testRecruiterID, Status: models.JobStatusActive,
		})
		assert.ErrorIs(t, err, services.ErrCompanyInactive)
		assert.Nil(t, job)
	})

	t.Run("Rejection always allowed", func(t *testing.T) {
		mockJobRepo.EXPECT().GetByID(gomock.Any(), idReq).
			Return(jobOwnedBy(testRecruiterID, models.JobStatusActive, inactiveCompany()), nil).Times(1)
		mockJobRepo.EXPECT().SetStatus(gomock.Any(), idReq, models.JobStatusRejected).
			Return(jobOwnedBy(testRecruiterID, models.JobStatusRejected, inactiveCompany()), nil).Times(1)

		job, err := jobService.UpdateJobStatus(context.Background(), &dto.UpdateJobStatusRequest{
			ID: testJobID, UserID: testRecruiterID, Status: models.JobStatusRejected,
		})
		require.NoError(t, err)
		assert.Equal(t, models.JobStatusRejected, job.Status)
	})

	t.Run("Reactivation allowed once company is active", func(t *testing.T) {
		mockJobRepo.EXPECT().GetByID(gomock.Any(), idReq).
			Return(jobOwnedBy(testRecruiterID, models.JobStatusRejected, activeCompany()), nil).Times(1)
		mockJobRepo.EXPECT().SetStatus(gomock.Any(), idReq, models.JobStatusActive).
			Return(jobOwnedBy(testRecruiterID, models.JobStatusActive, activeCompany()), nil).Times(1)

		job, err := jobService.UpdateJobStatus(context.Background(), &dto.UpdateJobStatusRequest{
			ID: testJobID, UserID: testRecruiterID, Status: models.JobStatusActive,
		})
		require.NoError(t, err)
		assert.Equal(t, models.JobStatusActive, job.Status)
	})

	t.Run("Setting the current status is a no-op", func(t *testing.T) {
		mockJobRepo.EXPECT().GetByID(gomock.Any(), idReq).
			Return(jobOwnedBy(testRecruiterID, models.JobStatusActive, activeCompany()), nil).Times(1)

		job, err := jobService.UpdateJobStatus(context.Background(), &dto.UpdateJobStatusRequest{
			ID: testJobID, UserID: testRecruiterID, Status: models.JobStatusActive,
		})
		require.NoError(t, err)
		assert.Equal(t, models.JobStatusActive, job.Status)
	})

	t.Run("Not the poster", func(t *testing.T) {
		mockJobRepo.EXPECT().GetByID(gomock.Any(), idReq).
			Return(jobOwnedBy(uuid.New(), models.JobStatusActive, activeCompany()), nil).Times(1)

		job, err := jobService.UpdateJobStatus(context.Background(), &dto.UpdateJobStatusRequest{
			ID: testJobID, UserID: testRecruiterID, Status: models.JobStatusRejected,
		})
		assert.ErrorIs(t, err, services.ErrForbidden)
		assert.Nil(t, job)
	})

	t.Run("Job not found", func(t *testing.T) {
		mockJobRepo.EXPECT().GetByID(gomock.Any(), idReq).Return(nil, storage.ErrNotFound).Times(1)

		job, err := jobService.UpdateJobStatus(context.Background(), &dto.UpdateJobStatusRequest{
			ID: testJobID, UserID: testRecruiterID, Status: models.JobStatusRejected,
		})
		assert.ErrorIs(t, err, services.ErrNotFound)
		assert.Nil(t, job)
	})
}

func TestJobService_SearchJobs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockJobRepo := mock_storage.NewMockJobRepository(ctrl)
	mockCompanyRepo := mock_storage.NewMockCompanyRepository(ctrl)
	jobService := services.NewJobService(mockJobRepo, mockCompanyRepo)

	now := time.Now()
	collection := []models.Job{
		{Title: "Go Developer", Status: models.JobStatusActive, CreatedAt: now, Company: activeCompany()},
		{Title: "Rejected Posting", Status: models.JobStatusRejected, CreatedAt: now, Company: activeCompany()},
		{Title: "Orphaned Posting", Status: models.JobStatusActive, CreatedAt: now, Company: inactiveCompany()},
	}

	t.Run("Only appliable postings are listed", func(t *testing.T) {
		mockJobRepo.EXPECT().ListAll(gomock.Any()).Return(collection, nil).Times(1)

		jobs, state, err := jobService.SearchJobs(context.Background(), &dto.SearchJobsRequest{})
		require.NoError(t, err)
		assert.Equal(t, query.NotEmpty, state)
		require.Len(t, jobs, 1)
		assert.Equal(t, "Go Developer", jobs[0].Title)
	})

	t.Run("Filters that match nothing report no-match", func(t *testing.T) {
		mockJobRepo.EXPECT().ListAll(gomock.Any()).Return(collection, nil).Times(1)

		jobs, state, err := jobService.SearchJobs(context.Background(), &dto.SearchJobsRequest{Keyword: "haskell"})
		require.NoError(t, err)
		assert.Empty(t, jobs)
		assert.Equal(t, query.NoMatch, state)
	})

	t.Run("Empty board reports no-jobs", func(t *testing.T) {
		mockJobRepo.EXPECT().ListAll(gomock.Any()).Return([]models.Job{}, nil).Times(1)

		jobs, state, err := jobService.SearchJobs(context.Background(), &dto.SearchJobsRequest{})
		require.NoError(t, err)
		assert.Empty(t, jobs)
		assert.Equal(t, query.NoJobs, state)
	})
}

func TestJobService_DeleteJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockJobRepo := mock_storage.NewMockJobRepository(ctrl)
	mockCompanyRepo := mock_storage.NewMockCompanyRepository(ctrl)
	jobService := services.NewJobService(mockJobRepo, mockCompanyRepo)

	req := &dto.DeleteJobRequest{ID: testJobID, UserID: testRecruiterID}

	t.Run("Success", func(t *testing.T) {
		mockJobRepo.EXPECT().GetByID(gomock.Any(), &dto.GetJobByIDRequest{ID: testJobID}).
			Return(jobOwnedBy(testRecruiterID, models.JobStatusActive, activeCompany()), nil).Times(1)
		mockJobRepo.EXPECT().Delete(gomock.Any(), req).Return(nil).Times(1)

		assert.NoError(t, jobService.DeleteJob(context.Background(), req))
	})

	t.Run("Not the poster", func(t *testing.T) {
		mockJobRepo.EXPECT().GetByID(gomock.Any(), &dto.GetJobByIDRequest{ID: testJobID}).
			Return(jobOwnedBy(uuid.New(), models.JobStatusActive, activeCompany()), nil).Times(1)

		assert.ErrorIs(t, jobService.DeleteJob(context.Background(), req), services.ErrForbidden)
	})
}
