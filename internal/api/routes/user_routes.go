package routes

import (
	"jobboard-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers all routes related to accounts and sessions
func RegisterUserRoutes(rg *gin.RouterGroup, userHandler handlers.UserHandlerInterface, authMiddleware gin.HandlerFunc) {
	user := rg.Group("/user")
	{
		user.POST("/register", userHandler.Register)
		user.POST("/login", userHandler.Login)
		user.POST("/refresh", userHandler.Refresh)
		user.GET("/logout", userHandler.Logout)
	}

	profile := user.Group("/profile")
	profile.Use(authMiddleware)
	{
		profile.POST("/update", userHandler.UpdateProfile)
		profile.POST("/experience/update", userHandler.UpdateExperiences)
		profile.POST("/education/update", userHandler.UpdateEducations)
		profile.POST("/certifications/update", userHandler.UpdateCertifications)
	}
}
