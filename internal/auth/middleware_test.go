package auth

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/mediscan-kh/mediscan/constants"
)

const testSecret = "test-secret"

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Middleware(testSecret, testLogger()))
	router.GET("/whoami", func(c *gin.Context) {
		claims, ok := FromContext(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"user_id": claims.UserID.String(), "role": string(claims.Role)})
	})

	admin := router.Group("/admin")
	admin.Use(RequireAdmin())
	admin.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return router
}

func doRequest(router *gin.Engine, target, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestMiddleware_MissingHeader(t *testing.T) {
	w := doRequest(newAuthRouter(t), "/whoami", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMiddleware_MalformedHeader(t *testing.T) {
	router := newAuthRouter(t)
	for _, header := range []string{"Basic abc", "Bearer", "Bearer  ", "token-without-scheme"} {
		w := doRequest(router, "/whoami", header)
		require.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestMiddleware_InvalidSignature(t *testing.T) {
	token := signToken(t, "wrong-secret", jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	w := doRequest(newAuthRouter(t), "/whoami", "Bearer "+token)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMiddleware_ExpiredToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	w := doRequest(newAuthRouter(t), "/whoami", "Bearer "+token)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMiddleware_NonUUIDSubject(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "not-a-uuid",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	w := doRequest(newAuthRouter(t), "/whoami", "Bearer "+token)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMiddleware_ValidToken(t *testing.T) {
	userID := uuid.New()
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":  userID.String(),
		"role": "user",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	w := doRequest(newAuthRouter(t), "/whoami", "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), userID.String())
	require.Contains(t, w.Body.String(), `"role":"user"`)
}

func TestMiddleware_UnknownRoleDefaultsToUser(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":  uuid.New().String(),
		"role": "superadmin",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	w := doRequest(newAuthRouter(t), "/whoami", "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"role":"user"`)
}

func TestRequireAdmin(t *testing.T) {
	router := newAuthRouter(t)

	userToken := signToken(t, testSecret, jwt.MapClaims{
		"sub":  uuid.New().String(),
		"role": string(constants.RoleUser),
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	w := doRequest(router, "/admin/ping", "Bearer "+userToken)
	require.Equal(t, http.StatusForbidden, w.Code)

	adminToken := signToken(t, testSecret, jwt.MapClaims{
		"sub":  uuid.New().String(),
		"role": string(constants.RoleAdmin),
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	w = doRequest(router, "/admin/ping", "Bearer "+adminToken)
	require.Equal(t, http.StatusNoContent, w.Code)
}
