package routes_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jobboard-api/internal/api/handlers"
	"jobboard-api/internal/api/routes"
	"jobboard-api/internal/models"
	"jobboard-api/internal/services"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockJobHandler is a mock implementation of JobHandlerInterface
type MockJobHandler struct {
	mock.Mock
}

func (m *MockJobHandler) Search(c *gin.Context)       { m.Called(c) }
func (m *MockJobHandler) GetByID(c *gin.Context)      { m.Called(c) }
func (m *MockJobHandler) GetAdminJobs(c *gin.Context) { m.Called(c) }
func (m *MockJobHandler) Post(c *gin.Context)         { m.Called(c) }
func (m *MockJobHandler) Update(c *gin.Context)       { m.Called(c) }
func (m *MockJobHandler) UpdateStatus(c *gin.Context) { m.Called(c) }
func (m *MockJobHandler) Delete(c *gin.Context)       { m.Called(c) }

var _ handlers.JobHandlerInterface = (*MockJobHandler)(nil)

// MockJobRepo is a mock type for the storage.JobRepository interface
type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, req *dto.PostJobRequest) (*models.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobRepo) GetByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobRepo) ListAll(ctx context.Context) ([]models.Job, error) {
	args := m.Called(ctx)
	if jobs, ok := args.Get(0).([]models.Job); ok {
		return jobs, args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return nil, errors.New("mock return value type mismatch for []models.Job")
}

func (m *MockJobRepo) ListByCreator(ctx context.Context, req *dto.ListAdminJobsRequest) ([]models.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Job), args.Error(1)
}

func (m *MockJobRepo) ListByCompany(ctx context.Context, req *dto.ListJobsByCompanyRequest) ([]models.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Job), args.Error(1)
}

func (m *MockJobRepo) Update(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobRepo) SetStatus(ctx context.Context, id *dto.GetJobByIDRequest, status models.JobStatus) (*models.Job, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobRepo) Delete(ctx context.Context, req *dto.DeleteJobRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

var _ storage.JobRepository = (*MockJobRepo)(nil)

// MockCompanyRepo is a mock type for the storage.CompanyRepository interface
type MockCompanyRepo struct {
	mock.Mock
}

func (m *MockCompanyRepo) Create(ctx context.Context, req *dto.RegisterCompanyRequest) (*models.Company, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Company), args.Error(1)
}

func (m *MockCompanyRepo) GetByID(ctx context.Context, req *dto.GetCompanyByIDRequest) (*models.Company, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Company), args.Error(1)
}

func (m *MockCompanyRepo) ListByOwner(ctx context.Context, req *dto.ListCompaniesByOwnerRequest) ([]models.Company, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Company), args.Error(1)
}

func (m *MockCompanyRepo) Update(ctx context.Context, req *dto.UpdateCompanyRequest) (*models.Company, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Company), args.Error(1)
}

func (m *MockCompanyRepo) Deactivate(ctx context.Context, id *dto.GetCompanyByIDRequest) (*models.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Company), args.Error(1)
}

var _ storage.CompanyRepository = (*MockCompanyRepo)(nil)

// envelope mirrors the response shape handlers emit, for decoding in asserts.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Payload json.RawMessage `json:"payload"`
}

func setupJobRouter() (*gin.Engine, *MockJobRepo) {
	gin.SetMode(gin.TestMode)
	mockJobs := new(MockJobRepo)
	mockCompanies := new(MockCompanyRepo)
	service := services.NewJobService(mockJobs, mockCompanies)
	handler := handlers.NewJobHandler(service, validator.New())
	router := gin.New()
	router.GET("/job/get", handler.Search)
	return router, mockJobs
}

func listedJob(title string, salary float64, createdAt time.Time) models.Job {
	companyID := uuid.New()
	return models.Job{
		ID:        uuid.New(),
		Title:     title,
		Location:  "Lisbon",
		Salary:    salary,
		Status:    models.JobStatusActive,
		CompanyID: companyID,
		CreatedBy: uuid.New(),
		CreatedAt: createdAt,
		Company:   &models.Company{ID: companyID, Name: "Acme", IsActive: true},
	}
}

func TestRegisterJobRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockHandler := new(MockJobHandler)
	router := gin.New()
	testGroup := router.Group("/api/v1")
	passthrough := func(c *gin.Context) { c.Next() }

	routes.RegisterJobRoutes(testGroup, mockHandler, passthrough, passthrough)

	expectedRoutes := []struct {
		Method string
		Path   string
	}{
		{http.MethodGet, "/api/v1/job/get"},
		{http.MethodGet, "/api/v1/job/get/:id"},
		{http.MethodGet, "/api/v1/job/getadminjobs"},
		{http.MethodPost, "/api/v1/job/post"},
		{http.MethodPut, "/api/v1/job/update/:id"},
		{http.MethodPatch, "/api/v1/job/status/:id/update"},
		{http.MethodDelete, "/api/v1/job/delete/:id"},
	}

	registeredMap := make(map[string]bool)
	for _, routeInfo := range router.Routes() {
		registeredMap[routeInfo.Method+" "+routeInfo.Path] = true
	}

	assert.Len(t, router.Routes(), len(expectedRoutes))
	for _, expected := range expectedRoutes {
		assert.True(t, registeredMap[expected.Method+" "+expected.Path],
			"Expected route %s %s to be registered", expected.Method, expected.Path)
	}
}

func TestJobHandler_Search(t *testing.T) {
	t.Run("Success - matching jobs with no message", func(t *testing.T) {
		router, mockJobs := setupJobRouter()
		now := time.Now()
		board := []models.Job{
			listedJob("Backend Engineer", 24, now),
			listedJob("Product Designer", 18, now.Add(-time.Hour)),
		}
		mockJobs.On("ListAll", mock.Anything).Return(board, nil).Once()

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodGet, "/job/get?keyword=engineer", nil)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var resp envelope
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Empty(t, resp.Message)

		var jobs []models.Job
		assert.NoError(t, json.Unmarshal(resp.Payload, &jobs))
		assert.Len(t, jobs, 1)
		assert.Equal(t, "Backend Engineer", jobs[0].Title)

		mockJobs.AssertExpectations(t)
	})

	t.Run("Empty board reports no jobs available", func(t *testing.T) {
		router, mockJobs := setupJobRouter()
		mockJobs.On("ListAll", mock.Anything).Return([]models.Job{}, nil).Once()

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodGet, "/job/get", nil)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var resp envelope
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "No jobs available", resp.Message)

		mockJobs.AssertExpectations(t)
	})

	t.Run("Filters that match nothing report no match", func(t *testing.T) {
		router, mockJobs := setupJobRouter()
		board := []models.Job{listedJob("Backend Engineer", 24, time.Now())}
		mockJobs.On("ListAll", mock.Anything).Return(board, nil).Once()

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodGet, "/job/get?keyword=astronaut", nil)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var resp envelope
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "No jobs match your filters", resp.Message)

		mockJobs.AssertExpectations(t)
	})

	t.Run("Sort validation failure", func(t *testing.T) {
		router, _ := setupJobRouter()

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodGet, "/job/get?sort=alphabetical", nil)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		var resp envelope
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
	})

	t.Run("Repository failure", func(t *testing.T) {
		router, mockJobs := setupJobRouter()
		mockJobs.On("ListAll", mock.Anything).Return(nil, errors.New("connection reset")).Once()

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodGet, "/job/get", nil)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)

		var resp envelope
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.False(t, resp.Success)

		mockJobs.AssertExpectations(t)
	})
}
