package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/magrebiali/FixMySheet-Backend/config"
)

// RegisterHealthRoutes registers the health check endpoint.
func RegisterHealthRoutes(r *gin.Engine) {
	r.GET("/", handleHealth)
}

func handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": config.ServiceName + " running"})
}
