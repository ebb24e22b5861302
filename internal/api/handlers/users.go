package handlers

import (
	"log"
	"net/http"

	"jobboard-api/internal/api/middleware"
	"jobboard-api/internal/services"
	"jobboard-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const refreshTokenCookie = "refresh_token"

// UserHandler holds the service dependency for account operations
type UserHandler struct {
	service   services.UserService
	validator *validator.Validate
}

// NewUserHandler creates a new UserHandler with the given service
func NewUserHandler(service services.UserService, validate *validator.Validate) *UserHandler {
	return &UserHandler{service: service, validator: validate}
}

// Register godoc
// @Summary      Register a new account
// @Description  Creates a student or recruiter account.
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        user body      dto.RegisterUserRequest true  "Account to create"
// @Success      201  {object}  Envelope{payload=dto.UserResponse} "Account created successfully"
// @Failure      400  {object}  Envelope "Bad Request - Invalid input"
// @Failure      409  {object}  Envelope "Conflict - Email already registered"
// @Failure      500  {object}  Envelope "Internal Server Error"
// @Router       /user/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	user, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Failed to create account")
		return
	}
	respond(c, http.StatusCreated, "Account created successfully", MapUserModelToUserResponse(user))
}

// Login godoc
// @Summary      Log in
// @Description  Verifies credentials and returns a token pair. The access
// @Description  token is also set as a cookie for browser clients.
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        credentials body dto.LoginRequest true "Login credentials"
// @Success      200  {object}  Envelope "Logged in"
// @Failure      401  {object}  Envelope "Invalid email or password"
// @Router       /user/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	user, pair, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Failed to log in")
		return
	}

	c.SetCookie("token", pair.AccessToken, 24*60*60, "/", "", false, true)
	c.SetCookie(refreshTokenCookie, pair.RefreshToken, 7*24*60*60, "/", "", false, true)
	respond(c, http.StatusOK, "Welcome back "+user.FullName, gin.H{
		"user":          MapUserModelToUserResponse(user),
		"token":         pair.AccessToken,
		"refresh_token": pair.RefreshToken,
	})
}

// Refresh godoc
// @Summary      Refresh the session
// @Description  Exchanges a refresh token for a new token pair. The presented
// @Description  token is revoked.
// @Tags         user
// @Accept       json
// @Produce      json
// @Success      200  {object}  Envelope "New token pair"
// @Failure      401  {object}  Envelope "Session expired"
// @Router       /user/refresh [post]
func (h *UserHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	// The body is optional: browser clients keep the token in a cookie and
	// may post an empty object, so the bind error is not load-bearing.
	_ = c.ShouldBindJSON(&req)
	if req.RefreshToken == "" {
		if cookie, err := c.Cookie(refreshTokenCookie); err == nil {
			req.RefreshToken = cookie
		}
	}
	if req.RefreshToken == "" {
		respondError(c, http.StatusBadRequest, "Refresh token required")
		return
	}

	pair, err := h.service.Refresh(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Failed to refresh session")
		return
	}

	c.SetCookie("token", pair.AccessToken, 24*60*60, "/", "", false, true)
	c.SetCookie(refreshTokenCookie, pair.RefreshToken, 7*24*60*60, "/", "", false, true)
	respond(c, http.StatusOK, "", gin.H{
		"token":         pair.AccessToken,
		"refresh_token": pair.RefreshToken,
	})
}

// Logout godoc
// @Summary      Log out
// @Description  Revokes the session's refresh token and clears cookies.
// @Tags         user
// @Produce      json
// @Success      200  {object}  Envelope "Logged out successfully"
// @Router       /user/logout [get]
func (h *UserHandler) Logout(c *gin.Context) {
	req := dto.LogoutRequest{}
	if userID, err := middleware.GetUserIDFromContext(c); err == nil {
		req.UserID = userID
	}
	if cookie, err := c.Cookie(refreshTokenCookie); err == nil {
		req.RefreshToken = cookie
	}

	if err := h.service.Logout(c.Request.Context(), &req); err != nil {
		log.Printf("Error logging out user %s: %v", req.UserID, err)
	}
	c.SetCookie("token", "", -1, "/", "", false, true)
	c.SetCookie(refreshTokenCookie, "", -1, "/", "", false, true)
	respond(c, http.StatusOK, "Logged out successfully", nil)
}

// UpdateProfile godoc
// @Summary      Update account and profile fields
// @Description  Applies only the fields present in the body.
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        profile body dto.UpdateProfileRequest true "Fields to change"
// @Success      200  {object}  Envelope{payload=dto.UserResponse} "Profile updated successfully"
// @Failure      400  {object}  Envelope "Bad Request - Invalid input"
// @Failure      401  {object}  Envelope "Unauthorized"
// @Router       /user/profile/update [post]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	req.UserID = userID
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	user, err := h.service.UpdateProfile(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Failed to update profile")
		return
	}
	respond(c, http.StatusOK, "Profile updated successfully", MapUserModelToUserResponse(user))
}

// UpdateExperiences godoc
// @Summary      Replace the profile's experience list
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        experiences body dto.UpdateExperienceRequest true "Full experience list"
// @Success      200  {object}  Envelope{payload=dto.UserResponse} "Experience updated successfully"
// @Router       /user/profile/experience/update [post]
func (h *UserHandler) UpdateExperiences(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req dto.UpdateExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	req.UserID = userID
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	user, err := h.service.UpdateExperiences(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Failed to update experience")
		return
	}
	respond(c, http.StatusOK, "Experience updated successfully", MapUserModelToUserResponse(user))
}

// UpdateEducations godoc
// @Summary      Replace the profile's education list
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        educations body dto.UpdateEducationRequest true "Full education list"
// @Success      200  {object}  Envelope{payload=dto.UserResponse} "Education updated successfully"
// @Router       /user/profile/education/update [post]
func (h *UserHandler) UpdateEducations(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req dto.UpdateEducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	req.UserID = userID
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	user, err := h.service.UpdateEducations(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Failed to update education")
		return
	}
	respond(c, http.StatusOK, "Education updated successfully", MapUserModelToUserResponse(user))
}

// UpdateCertifications godoc
// @Summary      Replace the profile's certification list
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        certifications body dto.UpdateCertificationsRequest true "Full certification list"
// @Success      200  {object}  Envelope{payload=dto.UserResponse} "Certifications updated successfully"
// @Router       /user/profile/certifications/update [post]
func (h *UserHandler) UpdateCertifications(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req dto.UpdateCertificationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	req.UserID = userID
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	user, err := h.service.UpdateCertifications(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Failed to update certifications")
		return
	}
	respond(c, http.StatusOK, "Certifications updated successfully", MapUserModelToUserResponse(user))
}
