package services_test

import (
	"context"
	"testing"

	mock_storage "jobboard-api/internal/mocks"
	"jobboard-api/internal/models"
	"jobboard-api/internal/services"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestCompanyService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCompanyRepo := mock_storage.NewMockCompanyRepository(ctrl)
	mockJobRepo := mock_storage.NewMockJobRepository(ctrl)
	companyService := services.NewCompanyService(mockCompanyRepo, mockJobRepo)

	req := &dto.RegisterCompanyRequest{Name: "Acme", OwnerID: testRecruiterID}

	t.Run("Success", func(t *testing.T) {
		mockCompanyRepo.EXPECT().Create(gomock.Any(), req).Return(activeCompany(), nil).Times(1)

		company, err := companyService.Register(context.Background(), req)
		require.NoError(t, err)
		assert.True(t, company.IsActive)
	})

	t.Run("Name taken", func(t *testing.T) {
		mockCompanyRepo.EXPECT().Create(gomock.Any(), req).Return(nil, storage.ErrConflict).Times(1)

		company, err := companyService.Register(context.Background(), req)
		assert.ErrorIs(t, err, services.ErrConflict)
		assert.Nil(t, company)
	})
}

func TestCompanyService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCompanyRepo := mock_storage.NewMockCompanyRepository(ctrl)
	mockJobRepo := mock_storage.NewMockJobRepository(ctrl)
	companyService := services.NewCompanyService(mockCompanyRepo, mockJobRepo)

	idReq := &dto.GetCompanyByIDRequest{ID: testCompanyID}

	t.Run("Plain detail update", func(t *testing.T) {
		req := &dto.UpdateCompanyRequest{ID: testCompanyID, UserID: testRecruiterID, Location: strPtr("Lisbon")}
		updated := activeCompany()
		updated.Location = "Lisbon"

		mockCompanyRepo.EXPECT().GetByID(gomock.Any(), idReq).Return(activeCompany(), nil).Times(1)
		mockCompanyRepo.EXPECT().Update(gomock.Any(), req).Return(updated, nil).Times(1)

		company, err := companyService.Update(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "Lisbon", company.Location)
	})

	t.Run("Bare deactivation body demotes owned jobs", func(t *testing.T) {
		// No Update expectation: {"is_active": false} alone carries nothing
		// the detail update can set, so only Deactivate may run.
		req := &dto.UpdateCompanyRequest{ID: testCompanyID, UserID: testRecruiterID, IsActive: boolPtr(false)}

		mockCompanyRepo.EXPECT().GetByID(gomock.Any(), idReq).Return(activeCompany(), nil).Times(1)
		mockCompanyRepo.EXPECT().Deactivate(gomock.Any(), idReq).Return(inactiveCompany(), nil).Times(1)

		company, err := companyService.Update(context.Background(), req)
		require.NoError(t, err)
		assert.False(t, company.IsActive)
	})

	t.Run("Deactivation alongside a detail change runs both", func(t *testing.T) {
		req := &dto.UpdateCompanyRequest{ID: testCompanyID, UserID: testRecruiterID, Location: strPtr("Porto"), IsActive: boolPtr(false)}

		mockCompanyRepo.EXPECT().GetByID(gomock.Any(), idReq).Return(activeCompany(), nil).Times(1)
		mockCompanyRepo.EXPECT().Update(gomock.Any(), req).Return(activeCompany(), nil).Times(1)
		mockCompanyRepo.EXPECT().Deactivate(gomock.Any(), idReq).Return(inactiveCompany(), nil).Times(1)

		company, err := companyService.Update(context.Background(), req)
		require.NoError(t, err)
		assert.False(t, company.IsActive)
	})

	t.Run("Deactivating an already inactive company skips the cascade", func(t *testing.T) {
		req := &dto.UpdateCompanyRequest{ID: testCompanyID, UserID: testRecruiterID, IsActive: boolPtr(false)}

		mockCompanyRepo.EXPECT().GetByID(gomock.Any(), idReq).Return(inactiveCompany(), nil).Times(1)

		company, err := companyService.Update(context.Background(), req)
		require.NoError(t, err)
		assert.False(t, company.IsActive)
	})

	t.Run("Reactivation does not touch jobs", func(t *testing.T) {
		// No Deactivate expectation: demoted postings stay rejected until the
		// recruiter reactivates each one.
		req := &dto.UpdateCompanyRequest{ID: testCompanyID, UserID: testRecruiterID, IsActive: boolPtr(true)}

		mockCompanyRepo.EXPECT().GetByID(gomock.Any(), idReq).Return(inactiveCompany(), nil).Times(1)
		mockCompanyRepo.EXPECT().Update(gomock.Any(), req).Return(activeCompany(), nil).Times(1)

		company, err := companyService.Update(context.Background(), req)
		require.NoError(t, err)
		assert.True(t, company.IsActive)
	})

	t.Run("Not the owner", func(t *testing.T) {
		req := &dto.UpdateCompanyRequest{ID: testCompanyID, UserID: uuid.New(), Location: strPtr("Porto")}

		mockCompanyRepo.EXPECT().GetByID(gomock.Any(), idReq).Return(activeCompany(), nil).Times(1)

		company, err := companyService.Update(context.Background(), req)
		assert.ErrorIs(t, err, services.ErrForbidden)
		assert.Nil(t, company)
	})
}

func TestCompanyService_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCompanyRepo := mock_storage.NewMockCompanyRepository(ctrl)
	mockJobRepo := mock_storage.NewMockJobRepository(ctrl)
	companyService := services.NewCompanyService(mockCompanyRepo, mockJobRepo)

	idReq := &dto.GetCompanyByIDRequest{ID: testCompanyID}
	jobsReq := &dto.ListJobsByCompanyRequest{CompanyID: testCompanyID}

	t.Run("Detail read attaches the company's postings", func(t *testing.T) {
		company := activeCompany()
		postings := []models.Job{
			*jobOwnedBy(testRecruiterID, models.JobStatusActive, company),
			*jobOwnedBy(testRecruiterID, models.JobStatusRejected, company),
		}

		mockCompanyRepo.EXPECT().GetByID(gomock.Any(), idReq).Return(company, nil).Times(1)
		mockJobRepo.EXPECT().ListByCompany(gomock.Any(), jobsReq).Return(postings, nil).Times(1)

		got, err := companyService.GetCompanyByID(context.Background(), idReq)
		require.NoError(t, err)
		assert.Len(t, got.Jobs, 2)
	})

	t.Run("Company not found", func(t *testing.T) {
		mockCompanyRepo.EXPECT().GetByID(gomock.Any(), idReq).Return(nil, storage.ErrNotFound).Times(1)

		got, err := companyService.GetCompanyByID(context.Background(), idReq)
		assert.ErrorIs(t, err, services.ErrNotFound)
		assert.Nil(t, got)
	})
}

func strPtr(s string) *string { return &s }
