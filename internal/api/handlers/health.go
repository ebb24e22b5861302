package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheck reports liveness. Load balancers poll this before routing
// traffic to the instance.
//
//	@Summary		Health check
//	@Description	Check if the API is up and able to serve traffic
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	Envelope	"Service is up"
//	@Router			/health [get]
func HealthCheck(c *gin.Context) {
	respond(c, http.StatusOK, "", gin.H{
		"service": "jobboard-api",
		"status":  "ok",
	})
}
