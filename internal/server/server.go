// Package server wires the public HTTP surface: upload ingestion, status
// polling, quota, and administrative listings.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mediscan-kh/mediscan/constants"
	"github.com/mediscan-kh/mediscan/internal/common"
	"github.com/mediscan-kh/mediscan/internal/entity"
	"github.com/mediscan-kh/mediscan/internal/export"
	"github.com/mediscan-kh/mediscan/internal/repository"
	"github.com/mediscan-kh/mediscan/internal/uploads"
)

// Server holds the handler dependencies behind the router.
type Server struct {
	uploads *uploads.Service
	export  *export.Service
	images  repository.ImageRepository
	ping    func(context.Context) error
	logger  *slog.Logger
}

func New(
	uploadsSvc *uploads.Service,
	exportSvc *export.Service,
	images repository.ImageRepository,
	ping func(context.Context) error,
	logger *slog.Logger,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		uploads: uploadsSvc,
		export:  exportSvc,
		images:  images,
		ping:    ping,
		logger:  logger,
	}
}

func (s *Server) respondError(c *gin.Context, err error) {
	status := common.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", c.Request.URL.Path, "error", err)
	}
	c.JSON(status, gin.H{"error": common.PublicMessage(err)})
}

type imageResponse struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
	Analysis    string `json:"analysis,omitempty"`
	CreatedAt   string `json:"created_at"`
}

func toImageResponse(img *entity.Image) imageResponse {
	return imageResponse{
		ID:          img.ID.String(),
		URL:         img.URL,
		Description: img.Description,
		Status:      statusString(img.Status),
		Analysis:    img.Analysis,
		CreatedAt:   img.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func statusString(s constants.RecordStatus) string {
	return strings.ToLower(string(s))
}
