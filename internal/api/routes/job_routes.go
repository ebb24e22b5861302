package routes

import (
	"jobboard-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterJobRoutes registers all routes related to job postings
func RegisterJobRoutes(rg *gin.RouterGroup, jobHandler handlers.JobHandlerInterface, authMiddleware, recruiterOnly gin.HandlerFunc) {
	job := rg.Group("/job")
	{
		// Public browsing: the listing and job detail pages work logged out.
		job.GET("/get", jobHandler.Search)
		job.GET("/get/:id", jobHandler.GetByID)
	}

	admin := rg.Group("/job")
	admin.Use(authMiddleware, recruiterOnly)
	{
		admin.GET("/getadminjobs", jobHandler.GetAdminJobs)
		admin.POST("/post", jobHandler.Post)
		admin.PUT("/update/:id", jobHandler.Update)
		admin.PATCH("/status/:id/update", jobHandler.UpdateStatus)
		admin.DELETE("/delete/:id", jobHandler.Delete)
	}
}
