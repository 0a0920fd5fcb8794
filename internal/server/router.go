package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mediscan-kh/mediscan/internal/auth"
)

// NewRouter builds the HTTP router with auth enforced on everything except
// the health probe.
func (s *Server) NewRouter(jwtSecret string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		MaxAge:       12 * time.Hour,
	}))

	router.GET("/health", s.Health)

	protected := router.Group("/")
	protected.Use(auth.Middleware(jwtSecret, s.logger))
	protected.POST("/upload", s.UploadFile)
	protected.GET("/upload/status/:id", s.GetAnalysisStatus)
	protected.GET("/upload/remaining", s.GetRemainingUploads)
	protected.GET("/uploads", s.ListMyUploads)

	admin := protected.Group("/admin")
	admin.Use(auth.RequireAdmin())
	admin.GET("/images", s.ListImages)
	admin.GET("/images/export", s.ExportImages)

	return router
}
