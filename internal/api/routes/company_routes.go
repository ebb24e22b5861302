package routes

import (
	"jobboard-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterCompanyRoutes registers all routes related to companies
func RegisterCompanyRoutes(rg *gin.RouterGroup, companyHandler handlers.CompanyHandlerInterface, authMiddleware, recruiterOnly gin.HandlerFunc) {
	company := rg.Group("/company")
	company.Use(authMiddleware, recruiterOnly)
	{
		company.POST("/register", companyHandler.Register)
		company.GET("/get", companyHandler.ListMine)
		company.GET("/get/:id", companyHandler.GetByID)
		company.PUT("/update/:id", companyHandler.Update)
	}
}
