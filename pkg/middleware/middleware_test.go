package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"skinai/pkg/utils"
)

func newEngine(issuer *utils.TokenIssuer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TraceIDMiddleware(zap.NewNop()), CORSMiddleware())
	r.GET("/me", JWTAuthMiddleware(issuer), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":    c.GetString("user_id"),
			"session_id": c.GetString("session_id"),
		})
	})
	return r
}

func TestJWTAuthMiddleware(t *testing.T) {
	issuer := utils.NewTokenIssuer("secret", time.Hour)
	r := newEngine(issuer)
	userID := uuid.New()
	token, claims, err := issuer.CreateToken(userID)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), userID.String())
	assert.Contains(t, rec.Body.String(), claims.SessionID)
	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
}

func TestJWTAuthMiddlewareRejects(t *testing.T) {
	r := newEngine(utils.NewTokenIssuer("secret", time.Hour))

	for _, header := range []string{"", "Token abc", "Bearer abc"} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		req.Header.Set("X-Trace-ID", "trace-1")
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, header)
		assert.Contains(t, rec.Body.String(), `"trace_id":"trace-1"`)
	}
}

func TestCORSPreflight(t *testing.T) {
	r := newEngine(utils.NewTokenIssuer("secret", time.Hour))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/me", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
