package server

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mediscan-kh/mediscan/constants"
	"github.com/mediscan-kh/mediscan/internal/auth"
	"github.com/mediscan-kh/mediscan/internal/common"
	"github.com/mediscan-kh/mediscan/internal/uploads"
)

// UploadFile accepts a multipart image upload and kicks off analysis.
func (s *Server) UploadFile(c *gin.Context) {
	claims, ok := auth.FromContext(c)
	if !ok {
		s.respondError(c, common.ErrUnauthorized)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		s.respondError(c, common.NoFileError())
		return
	}
	if fileHeader.Size > constants.MaxUploadBytes {
		s.respondError(c, common.ValidationError("file exceeds the 4 MiB upload limit"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		s.respondError(c, common.WrapError(err, "open uploaded file"))
		return
	}
	defer file.Close()

	// read one byte past the limit so an understated header still trips the gate
	raw, err := io.ReadAll(io.LimitReader(file, constants.MaxUploadBytes+1))
	if err != nil {
		s.respondError(c, common.WrapError(err, "read uploaded file"))
		return
	}

	img, err := s.uploads.Upload(c.Request.Context(), uploads.UploadRequest{
		Bytes:       raw,
		MimeType:    fileHeader.Header.Get("Content-Type"),
		Filename:    fileHeader.Filename,
		Description: c.PostForm("description"),
		UserID:      claims.UserID,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toImageResponse(img))
}

// GetAnalysisStatus is the polling endpoint for one analysis record.
func (s *Server) GetAnalysisStatus(c *gin.Context) {
	claims, ok := auth.FromContext(c)
	if !ok {
		s.respondError(c, common.ErrUnauthorized)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		s.respondError(c, common.ValidationError("invalid record id"))
		return
	}

	img, err := s.uploads.Status(c.Request.Context(), id)
	if err != nil {
		s.respondError(c, err)
		return
	}
	if img.UserID != claims.UserID && !claims.IsAdmin() {
		// hide other users' records entirely
		s.respondError(c, common.ErrNotFound)
		return
	}

	resp := gin.H{
		"id":     img.ID.String(),
		"status": statusString(img.Status),
	}
	switch img.Status {
	case constants.RecordStatusCompleted:
		resp["analysis"] = img.Analysis
	case constants.RecordStatusFailed:
		resp["failure_reason"] = img.FailureReason
	}
	c.JSON(http.StatusOK, resp)
}

// GetRemainingUploads reports the caller's quota state.
func (s *Server) GetRemainingUploads(c *gin.Context) {
	claims, ok := auth.FromContext(c)
	if !ok {
		s.respondError(c, common.ErrUnauthorized)
		return
	}
	rem, err := s.uploads.RemainingUploads(c.Request.Context(), claims.UserID)
	if err != nil {
		s.respondError(c, err)
		return
	}
	if rem.Unlimited {
		c.JSON(http.StatusOK, gin.H{
			"remaining":  nil,
			"total":      nil,
			"unlimited":  true,
			"is_premium": rem.IsPremium,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"remaining":  rem.Remaining,
		"total":      rem.Total,
		"unlimited":  false,
		"is_premium": rem.IsPremium,
	})
}

// ListMyUploads returns the caller's own records, newest first.
func (s *Server) ListMyUploads(c *gin.Context) {
	claims, ok := auth.FromContext(c)
	if !ok {
		s.respondError(c, common.ErrUnauthorized)
		return
	}
	rows, err := s.uploads.ListByOwner(c.Request.Context(), claims.UserID)
	if err != nil {
		s.respondError(c, err)
		return
	}
	out := make([]imageResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, toImageResponse(row))
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}
