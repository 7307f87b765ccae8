package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"prepository/internal/pkg/jwt"
)

func newAuthTestRouter(secret []byte) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/me", JWTAuth(secret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetString(ContextUserIDKey),
			"email":   c.GetString(ContextUserEmailKey),
		})
	})
	return router
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	router := newAuthTestRouter([]byte("secret"))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/me", nil))
	require.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestJWTAuth_MalformedHeader(t *testing.T) {
	router := newAuthTestRouter([]byte("secret"))
	for _, header := range []string{"Bearer", "Bearer ", "Token abc", "abc"} {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", header)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		require.Equal(t, http.StatusUnauthorized, resp.Code, "header %q", header)
	}
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	router := newAuthTestRouter([]byte("secret"))

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	require.Equal(t, http.StatusUnauthorized, resp.Code)

	expired, err := jwt.GenerateToken("u1", "a@b.com", []byte("secret"), -time.Minute)
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	require.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestJWTAuth_ValidTokenAttachesIdentity(t *testing.T) {
	secret := []byte("secret")
	router := newAuthTestRouter(secret)

	token, err := jwt.GenerateToken("u1", "a@b.com", secret, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)
	require.Contains(t, resp.Body.String(), `"user_id":"u1"`)
	require.Contains(t, resp.Body.String(), `"email":"a@b.com"`)
}
