package routes

import (
	"jobboard-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterApplicationRoutes registers all routes related to applications
func RegisterApplicationRoutes(rg *gin.RouterGroup, applicationHandler handlers.ApplicationHandlerInterface, authMiddleware, recruiterOnly gin.HandlerFunc) {
	application := rg.Group("/application")
	application.Use(authMiddleware)
	{
		application.GET("/apply/:jobId", applicationHandler.Apply)
		application.GET("/user/applications", applicationHandler.ListMine)
	}

	recruiter := rg.Group("/application")
	recruiter.Use(authMiddleware, recruiterOnly)
	{
		recruiter.GET("/:jobId/applicants", applicationHandler.ListApplicants)
		recruiter.GET("/:jobId/applicants/export", applicationHandler.ExportApplicants)
		recruiter.POST("/status/:id/update", applicationHandler.UpdateStatus)
		recruiter.POST("/email/:id/send", applicationHandler.SendInvite)
	}
}
