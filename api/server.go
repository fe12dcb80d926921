package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/magrebiali/FixMySheet-Backend/config"
)

// NewRouter constructs a Gin engine with registered routes.
func NewRouter() *gin.Engine {
	r := gin.New()
	// Minimal middleware: recovery plus open CORS so the frontend can call
	// the API from anywhere.
	r.Use(gin.Recovery())
	r.Use(cors.Default())
	r.MaxMultipartMemory = config.MaxUploadBytes

	// Register resource routers
	RegisterHealthRoutes(r)
	RegisterReconcileRoutes(r)
	RegisterDedupeRoutes(r)
	return r
}
