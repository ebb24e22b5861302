package handlers

import (
	"net/http"

	"jobboard-api/internal/api/middleware"
	"jobboard-api/internal/query"
	"jobboard-api/internal/services"
	"jobboard-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// JobHandler holds the service dependency for job operations
type JobHandler struct {
	service   services.JobService
	validator *validator.Validate
}

// NewJobHandler creates a new JobHandler with the given service
func NewJobHandler(service services.JobService, validate *validator.Validate) *JobHandler {
	return &JobHandler{service: service, validator: validate}
}

// Search godoc
// @Summary      Browse job postings
// @Description  Returns the filtered, sorted listing. Keywords are conjunctive
// @Description  substrings over title, description, location and company name;
// @Description  facet values are disjunctive; sort is one of newest,
// @Description  salary-high, salary-low.
// @Tags         job
// @Produce      json
// @Param        keyword query string false "Listing page search input"
// @Param        query   query string false "Global search input"
// @Param        facets  query string false "Selected facet values joined with ' OR '"
// @Param        sort    query string false "newest | salary-high | salary-low"
// @Success      200  {object}  Envelope{payload=[]models.Job} "Jobs"
// @Router       /job/get [get]
func (h *JobHandler) Search(c *gin.Context) {
	var req dto.SearchJobsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid query parameters: "+err.Error())
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	jobs, state, err := h.service.SearchJobs(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve jobs")
		return
	}

	// An empty listing is still a success; the message tells the client which
	// empty state to render.
	message := ""
	switch state {
	case query.NoJobs:
		message = "No jobs available"
	case query.NoMatch:
		message = "No jobs match your filters"
	}
	respond(c, http.StatusOK, message, jobs)
}

// GetByID godoc
// @Summary      Get a job by ID
// @Tags         job
// @Produce      json
// @Param        id path string true "Job ID" Format(uuid)
// @Success      200  {object}  Envelope{payload=models.Job} "Job"
// @Failure      404  {object}  Envelope "Job not found"
// @Router       /job/get/{id} [get]
func (h *JobHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid job ID")
		return
	}

	job, err := h.service.GetJobByID(c.Request.Context(), &dto.GetJobByIDRequest{ID: id})
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve job")
		return
	}
	respond(c, http.StatusOK, "", job)
}

// GetAdminJobs godoc
// @Summary      List the recruiter's postings
// @Description  Every posting created by the authenticated recruiter,
// @Description  including rejected ones.
// @Tags         job
// @Produce      json
// @Success      200  {object}  Envelope{payload=[]models.Job} "Jobs"
// @Router       /job/getadminjobs [get]
func (h *JobHandler) GetAdminJobs(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	jobs, err := h.service.ListAdminJobs(c.Request.Context(), &dto.ListAdminJobsRequest{CreatedBy: userID})
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve jobs")
		return
	}
	respond(c, http.StatusOK, "", jobs)
}

// Post godoc
// @Summary      Post a new job
// @Description  Creates an active posting under one of the recruiter's
// @Description  companies. The company must be active.
// @Tags         job
// @Accept       json
// @Produce      json
// @Param        job body dto.PostJobRequest true "Posting to create"
// @Success      201  {object}  Envelope{payload=models.Job} "New job created successfully"
// @Failure      403  {object}  Envelope "Not the company owner"
// @Failure      409  {object}  Envelope "Company is deactivated"
// @Router       /job/post [post]
func (h *JobHandler) Post(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req dto.PostJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	req.CreatedBy = userID
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	job, err := h.service.PostJob(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Failed to post job")
		return
	}
	respond(c, http.StatusCreated, "New job created successfully", job)
}

// Update godoc
// @Summary      Edit a posting
// @Description  Applies only the fields present in the body. Status changes go
// @Description  through the status endpoint.
// @Tags         job
// @Accept       json
// @Produce      json
// @Param        id  path string               true "Job ID" Format(uuid)
// @Param        job body dto.UpdateJobRequest true "Fields to change"
// @Success      200  {object}  Envelope{payload=models.Job} "Job updated successfully"
// @Failure      403  {object}  Envelope "Not the poster"
// @Failure      404  {object}  Envelope "Job not found"
// @Router       /job/update/{id} [put]
func (h *JobHandler) Update(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid job ID")
		return
	}

	var req dto.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	req.ID = id
	req.UserID = userID
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	job, err := h.service.UpdateJob(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Failed to update job")
		return
	}
	respond(c, http.StatusOK, "Job updated successfully", job)
}

// UpdateStatus godoc
// @Summary      Toggle a posting between active and rejected
// @Description  Moving back to active is refused while the owning company is
// @Description  deactivated; the posting is left unchanged in that case.
// @Tags         job
// @Accept       json
// @Produce      json
// @Param        id     path string                     true "Job ID" Format(uuid)
// @Param        status body dto.UpdateJobStatusRequest true "Target status"
// @Success      200  {object}  Envelope{payload=models.Job} "Status updated"
// @Failure      409  {object}  Envelope "Company is deactivated"
// @Router       /job/status/{id}/update [patch]
func (h *JobHandler) UpdateStatus(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid job ID")
		return
	}

	var req dto.UpdateJobStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	req.ID = id
	req.UserID = userID
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	job, err := h.service.UpdateJobStatus(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Failed to update job status")
		return
	}
	respond(c, http.StatusOK, "Job marked as "+string(req.Status), job)
}

// Delete godoc
// @Summary      Delete a posting
// @Tags         job
// @Produce      json
// @Param        id path string true "Job ID" Format(uuid)
// @Success      200  {object}  Envelope "Job deleted successfully"
// @Failure      403  {object}  Envelope "Not the poster"
// @Failure      404  {object}  Envelope "Job not found"
// @Router       /job/delete/{id} [delete]
func (h *JobHandler) Delete(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid job ID")
		return
	}

	if err := h.service.DeleteJob(c.Request.Context(), &dto.DeleteJobRequest{ID: id, UserID: userID}); err != nil {
		respondServiceError(c, err, "Failed to delete job")
		return
	}
	respond(c, http.StatusOK, "Job deleted successfully", nil)
}
