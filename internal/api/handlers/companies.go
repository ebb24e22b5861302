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

// CompanyHandler holds the service dependency for company operations
type CompanyHandler struct {
	service   services.CompanyService
	validator *validator.Validate
}

// NewCompanyHandler creates a new CompanyHandler with the given service
func NewCompanyHandler(service services.CompanyService, validate *validator.Validate) *CompanyHandler {
	return &CompanyHandler{service: service, validator: validate}
}

// Register godoc
// @Summary      Register a company
// @Description  Creates a company shell owned by the authenticated recruiter.
// @Tags         company
// @Accept       json
// @Produce      json
// @Param        company body dto.RegisterCompanyRequest true "Company name"
// @Success      201  {object}  Envelope{payload=models.Company} "Company registered successfully"
// @Failure      409  {object}  Envelope "Conflict - Name already taken"
// @Router       /company/register [post]
func (h *CompanyHandler) Register(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req dto.RegisterCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	req.OwnerID = userID
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	company, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Failed to register company")
		return
	}
	respond(c, http.StatusCreated, "Company registered successfully", company)
}

// ListMine godoc
// @Summary      List the recruiter's companies
// @Description  Every company owned by the authenticated recruiter, with the
// @Description  derived posting count.
// @Tags         company
// @Produce      json
// @Success      200  {object}  Envelope{payload=[]models.Company} "Companies"
// @Router       /company/get [get]
func (h *CompanyHandler) ListMine(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	companies, err := h.service.ListCompaniesByOwner(c.Request.Context(), &dto.ListCompaniesByOwnerRequest{OwnerID: userID})
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve companies")
		return
	}
	respond(c, http.StatusOK, "", companies)
}

// GetByID godoc
// @Summary      Get a company by ID
// @Tags         company
// @Produce      json
// @Param        id path string true "Company ID" Format(uuid)
// @Success      200  {object}  Envelope{payload=models.Company} "Company"
// @Failure      404  {object}  Envelope "Company not found"
// @Router       /company/get/{id} [get]
func (h *CompanyHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid company ID")
		return
	}

	company, err := h.service.GetCompanyByID(c.Request.Context(), &dto.GetCompanyByIDRequest{ID: id})
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve company")
		return
	}
	respond(c, http.StatusOK, "", company)
}

// Update godoc
// @Summary      Update a company
// @Description  Applies only the fields present in the body. Setting
// @Description  is_active to false also demotes every owned active posting.
// @Tags         company
// @Accept       json
// @Produce      json
// @Param        id      path string                   true "Company ID" Format(uuid)
// @Param        company body dto.UpdateCompanyRequest true "Fields to change"
// @Success      200  {object}  Envelope{payload=models.Company} "Company updated successfully"
// @Failure      403  {object}  Envelope "Not the owner"
// @Failure      404  {object}  Envelope "Company not found"
// @Router       /company/update/{id} [put]
func (h *CompanyHandler) Update(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid company ID")
		return
	}

	var req dto.UpdateCompanyRequest
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

	company, err := h.service.Update(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Failed to update company")
		return
	}
	respond(c, http.StatusOK, "Company updated successfully", company)
}
