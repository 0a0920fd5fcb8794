package server

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mediscan-kh/mediscan/constants"
	"github.com/mediscan-kh/mediscan/internal/common"
	"github.com/mediscan-kh/mediscan/internal/entity"
	"github.com/mediscan-kh/mediscan/internal/repository"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

type adminImageResponse struct {
	imageResponse
	Owner struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
	} `json:"owner"`
}

func toAdminImageResponse(row *entity.ImageWithOwner) adminImageResponse {
	resp := adminImageResponse{imageResponse: toImageResponse(&row.Image)}
	resp.Owner.ID = row.Owner.ID.String()
	resp.Owner.Username = row.Owner.Username
	resp.Owner.Email = row.Owner.Email
	return resp
}

// ListImages is the admin listing with filters and pagination.
func (s *Server) ListImages(c *gin.Context) {
	req, err := parseListRequest(c)
	if err != nil {
		s.respondError(c, err)
		return
	}

	rows, total, err := s.images.List(c.Request.Context(), req)
	if err != nil {
		s.respondError(c, err)
		return
	}

	out := make([]adminImageResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, toAdminImageResponse(row))
	}
	totalPages := (total + req.Limit - 1) / req.Limit
	c.JSON(http.StatusOK, gin.H{
		"data": out,
		"pagination": gin.H{
			"total":       total,
			"page":        req.Page,
			"limit":       req.Limit,
			"total_pages": totalPages,
		},
	})
}

// ExportImages streams the filtered listing as an XLSX workbook.
func (s *Server) ExportImages(c *gin.Context) {
	req, err := parseListRequest(c)
	if err != nil {
		s.respondError(c, err)
		return
	}

	data, err := s.export.ExportImagesXLSX(c.Request.Context(), req)
	if err != nil {
		s.respondError(c, err)
		return
	}

	filename := fmt.Sprintf("analyses-%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		data,
	)
}

func parseListRequest(c *gin.Context) (repository.ListImagesRequest, error) {
	var req repository.ListImagesRequest

	if v := c.Query("user_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return req, common.ValidationError("invalid user_id filter")
		}
		req.UserID = &id
	}
	if v := c.Query("status"); v != "" {
		status := constants.RecordStatus(strings.ToUpper(v))
		valid := false
		for _, s := range constants.RecordStatuses() {
			if s == string(status) {
				valid = true
				break
			}
		}
		if !valid {
			return req, common.ValidationError("invalid status filter")
		}
		req.Status = &status
	}
	if v := c.Query("from"); v != "" {
		t, err := parseTimeFilter(v)
		if err != nil {
			return req, common.ValidationError("invalid from filter")
		}
		req.From = &t
	}
	if v := c.Query("to"); v != "" {
		t, err := parseTimeFilter(v)
		if err != nil {
			return req, common.ValidationError("invalid to filter")
		}
		req.To = &t
	}

	req.Page = 1
	if v := c.Query("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return req, common.ValidationError("invalid page")
		}
		req.Page = n
	}
	req.Limit = defaultPageLimit
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > maxPageLimit {
			return req, common.ValidationError("invalid limit")
		}
		req.Limit = n
	}

	switch v := c.Query("sort_by"); v {
	case "", "created_at", "status":
		req.SortBy = v
	default:
		return req, common.ValidationError("invalid sort_by")
	}
	switch v := c.Query("sort_order"); v {
	case "", "asc", "desc":
		req.SortOrder = v
	default:
		return req, common.ValidationError("invalid sort_order")
	}
	return req, nil
}

func parseTimeFilter(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", v)
}
