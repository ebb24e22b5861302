package handlers

import (
	"net/http"

	"jobboard-api/internal/api/middleware"
	"jobboard-api/internal/services"
	"jobboard-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ApplicationHandler holds the service dependency for application operations
type ApplicationHandler struct {
	service   services.ApplicationService
	validator *validator.Validate
}

// NewApplicationHandler creates a new ApplicationHandler with the given service
func NewApplicationHandler(service services.ApplicationService, validate *validator.Validate) *ApplicationHandler {
	return &ApplicationHandler{service: service, validator: validate}
}

// Apply godoc
// @Summary      Apply to a job
// @Description  Creates a pending application for the authenticated candidate.
// @Description  A second apply to the same job is rejected without a write.
// @Tags         application
// @Produce      json
// @Param        jobId path string true "Job ID" Format(uuid)
// @Success      201  {object}  Envelope{payload=models.Job} "Applied successfully"
// @Failure      409  {object}  Envelope "Already applied or job not accepting applications"
// @Router       /application/apply/{jobId} [get]
func (h *ApplicationHandler) Apply(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	jobID, err := uuid.Parse(c.Param("jobId"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid job ID")
		return
	}

	job, err := h.service.Apply(c.Request.Context(), &dto.ApplyRequest{JobID: jobID, ApplicantID: userID})
	if err != nil {
		respondServiceError(c, err, "Failed to apply")
		return
	}
	respond(c, http.StatusCreated, "Applied successfully", job)
}

// ListApplicants godoc
// @Summary      List a posting's applicants
// @Description  Every application for the posting with applicant details,
// @Description  newest first. Only the posting's recruiter may call this.
// @Tags         application
// @Produce      json
// @Param        jobId path string true "Job ID" Format(uuid)
// @Success      200  {object}  Envelope{payload=[]models.Application} "Applicants"
// @Failure      403  {object}  Envelope "Not the poster"
// @Router       /application/{jobId}/applicants [get]
func (h *ApplicationHandler) ListApplicants(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	jobID, err := uuid.Parse(c.Param("jobId"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid job ID")
		return
	}

	apps, err := h.service.ListApplicants(c.Request.Context(), &dto.ListApplicantsRequest{JobID: jobID, UserID: userID})
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve applicants")
		return
	}
	respond(c, http.StatusOK, "", apps)
}

// ListMine godoc
// @Summary      List the candidate's applications
// @Description  The authenticated user's applications with the job and company
// @Description  joined, newest first.
// @Tags         application
// @Produce      json
// @Success      200  {object}  Envelope{payload=[]models.Application} "Applications"
// @Router       /application/user/applications [get]
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	apps, err := h.service.ListUserApplications(c.Request.Context(), &dto.ListUserApplicationsRequest{ApplicantID: userID})
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve applications")
		return
	}
	respond(c, http.StatusOK, "", apps)
}

// UpdateStatus godoc
// @Summary      Move an application along the workflow
// @Description  pending may become shortlisted or rejected; shortlisted may
// @Description  become rejected; rejected is terminal. Repeating the current
// @Description  status is a no-op.
// @Tags         application
// @Accept       json
// @Produce      json
// @Param        id     path string                             true "Application ID" Format(uuid)
// @Param        status body dto.UpdateApplicationStatusRequest true "Target status"
// @Success      200  {object}  Envelope{payload=models.Application} "Status updated"
// @Failure      409  {object}  Envelope "Invalid status change"
// @Router       /application/status/{id}/update [post]
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid application ID")
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	req.ApplicationID = id
	req.UserID = userID
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	app, err := h.service.UpdateApplicationStatus(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Failed to update application status")
		return
	}
	respond(c, http.StatusOK, "Application marked as "+string(req.Status), app)
}

// SendInvite godoc
// @Summary      Email an interview invite
// @Description  Sends the invite to the applicant. A successful send always
// @Description  leaves the application shortlisted; a failed send changes
// @Description  nothing.
// @Tags         application
// @Accept       json
// @Produce      json
// @Param        id     path string                true "Application ID" Format(uuid)
// @Param        invite body dto.SendInviteRequest true "Invite subject and message"
// @Success      200  {object}  Envelope{payload=models.Application} "Invite sent"
// @Failure      403  {object}  Envelope "Not the poster"
// @Failure      500  {object}  Envelope "Send failed"
// @Router       /application/email/{id}/send [post]
func (h *ApplicationHandler) SendInvite(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid application ID")
		return
	}

	var req dto.SendInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	req.ApplicationID = id
	req.UserID = userID
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	app, err := h.service.SendInvite(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Failed to send invite")
		return
	}
	respond(c, http.StatusOK, "Invite sent and applicant shortlisted", app)
}

// ExportApplicants godoc
// @Summary      Export a posting's applicants as CSV
// @Description  Spreadsheet-ready CSV (UTF-8 with BOM) named after the job
// @Description  title and today's date.
// @Tags         application
// @Produce      text/csv
// @Param        jobId path string true "Job ID" Format(uuid)
// @Success      200  {string}  string "CSV file"
// @Failure      403  {object}  Envelope "Not the poster"
// @Router       /application/{jobId}/applicants/export [get]
func (h *ApplicationHandler) ExportApplicants(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	jobID, err := uuid.Parse(c.Param("jobId"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid job ID")
		return
	}

	out, err := h.service.ExportApplicants(c.Request.Context(), &dto.ExportApplicantsRequest{JobID: jobID, UserID: userID})
	if err != nil {
		respondServiceError(c, err, "Failed to export applicants")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+out.Filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", out.Data)
}
