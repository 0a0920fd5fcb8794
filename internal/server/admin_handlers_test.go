package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/mediscan-kh/mediscan/constants"
	"github.com/mediscan-kh/mediscan/internal/common"
)

func listContext(t *testing.T, query string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/admin/images"+query, nil)
	return c
}

func TestParseListRequest_Defaults(t *testing.T) {
	req, err := parseListRequest(listContext(t, ""))
	require.NoError(t, err)
	require.Equal(t, 1, req.Page)
	require.Equal(t, defaultPageLimit, req.Limit)
	require.Nil(t, req.UserID)
	require.Nil(t, req.Status)
	require.Nil(t, req.From)
	require.Nil(t, req.To)
}

func TestParseListRequest_Filters(t *testing.T) {
	id := uuid.New()
	req, err := parseListRequest(listContext(t,
		"?user_id="+id.String()+"&status=completed&from=2026-01-01&to=2026-02-01&page=3&limit=50&sort_by=status&sort_order=asc"))
	require.NoError(t, err)

	require.NotNil(t, req.UserID)
	require.Equal(t, id, *req.UserID)
	require.NotNil(t, req.Status)
	require.Equal(t, constants.RecordStatusCompleted, *req.Status)
	require.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), *req.From)
	require.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), *req.To)
	require.Equal(t, 3, req.Page)
	require.Equal(t, 50, req.Limit)
	require.Equal(t, "status", req.SortBy)
	require.Equal(t, "asc", req.SortOrder)
}

func TestParseListRequest_AcceptsRFC3339Timestamps(t *testing.T) {
	req, err := parseListRequest(listContext(t, "?from=2026-01-01T10%3A30%3A00Z"))
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 1, 1, 10, 30, 0, 0, time.UTC), *req.From)
}

func TestParseListRequest_Rejections(t *testing.T) {
	cases := []string{
		"?user_id=not-a-uuid",
		"?status=pending",
		"?from=yesterday",
		"?to=01/02/2026",
		"?page=0",
		"?page=abc",
		"?limit=0",
		"?limit=1000",
		"?sort_by=email",
		"?sort_order=sideways",
	}
	for _, query := range cases {
		_, err := parseListRequest(listContext(t, query))
		require.ErrorIs(t, err, common.ErrValidation, "query %q", query)
	}
}

