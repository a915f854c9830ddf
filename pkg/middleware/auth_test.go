package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/khaoyai-getaway/content-service/internal/tokens"
)

func adminRouter(secret string) *gin.Engine {
	r := gin.New()
	r.PUT("/guarded", AdminAuthMiddleware(secret), func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	return r
}

func TestAdminAuthMiddleware_NoSecretDisablesGuard(t *testing.T) {
	r := adminRouter("")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/guarded", nil))
	require.Equal(t, http.StatusOK, w.Code)
}

func TestAdminAuthMiddleware_RejectsMissingHeader(t *testing.T) {
	r := adminRouter("sekrit-sekrit-sekrit-sekrit-12345")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/guarded", nil))
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminAuthMiddleware_RejectsBadToken(t *testing.T) {
	r := adminRouter("sekrit-sekrit-sekrit-sekrit-12345")
	req := httptest.NewRequest(http.MethodPut, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminAuthMiddleware_AcceptsValidToken(t *testing.T) {
	secret := "sekrit-sekrit-sekrit-sekrit-12345"
	tok, err := tokens.GenerateAdminToken(secret, time.Minute)
	require.NoError(t, err)

	r := adminRouter(secret)
	req := httptest.NewRequest(http.MethodPut, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}
