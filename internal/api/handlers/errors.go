package handlers

import (
	"errors"
	"net/http"

	"jobboard-api/internal/services"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps service sentinel errors to HTTP codes with a
// user-visible message; anything unmapped becomes a generic 500.
func respondServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		respondError(c, http.StatusNotFound, "Resource not found")
	case errors.Is(err, services.ErrForbidden):
		respondError(c, http.StatusForbidden, "You do not have access to this resource")
	case errors.Is(err, services.ErrAlreadyApplied):
		respondError(c, http.StatusConflict, "You have already applied to this job")
	case errors.Is(err, services.ErrConflict):
		respondError(c, http.StatusConflict, "Resource already exists")
	case errors.Is(err, services.ErrCompanyInactive):
		respondError(c, http.StatusConflict, "Company is deactivated")
	case errors.Is(err, services.ErrInvalidTransition):
		respondError(c, http.StatusConflict, "Invalid status change")
	case errors.Is(err, services.ErrInvalidState):
		respondError(c, http.StatusConflict, "This job is not accepting applications")
	case errors.Is(err, services.ErrValidation):
		respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, services.ErrSessionExpired):
		respondError(c, http.StatusUnauthorized, "Session expired, please log in again")
	default:
		respondError(c, http.StatusInternalServerError, fallback)
	}
}
