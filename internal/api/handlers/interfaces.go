package handlers

import "github.com/gin-gonic/gin"

// UserHandlerInterface defines the methods needed by the user routes.
type UserHandlerInterface interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
	Refresh(c *gin.Context)
	Logout(c *gin.Context)
	UpdateProfile(c *gin.Context)
	UpdateExperiences(c *gin.Context)
	UpdateEducations(c *gin.Context)
	UpdateCertifications(c *gin.Context)
}

// CompanyHandlerInterface defines the methods needed by the company routes.
type CompanyHandlerInterface interface {
	Register(c *gin.Context)
	ListMine(c *gin.Context)
	GetByID(c *gin.Context)
	Update(c *gin.Context)
}

// JobHandlerInterface defines the methods needed by the job routes.
type JobHandlerInterface interface {
	Search(c *gin.Context)
	GetByID(c *gin.Context)
	GetAdminJobs(c *gin.Context)
	Post(c *gin.Context)
	Update(c *gin.Context)
	UpdateStatus(c *gin.Context)
	Delete(c *gin.Context)
}

// ApplicationHandlerInterface defines the methods needed by the application routes.
type ApplicationHandlerInterface interface {
	Apply(c *gin.Context)
	ListApplicants(c *gin.Context)
	ListMine(c *gin.Context)
	UpdateStatus(c *gin.Context)
	SendInvite(c *gin.Context)
	ExportApplicants(c *gin.Context)
}

// Ensure handlers implement the interfaces (compile-time check)
var (
	_ UserHandlerInterface        = (*UserHandler)(nil)
	_ CompanyHandlerInterface     = (*CompanyHandler)(nil)
	_ JobHandlerInterface         = (*JobHandler)(nil)
	_ ApplicationHandlerInterface = (*ApplicationHandler)(nil)
)
