package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedRouter(auth *AuthManager, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/secret", auth.Middleware(role), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"subject": currentUserID(c)})
	})
	return router
}

func TestAuthManager_TokenRoundTrip(t *testing.T) {
	auth := NewAuthManager("test-secret", time.Hour)

	token, err := auth.IssueToken("user-42", RoleUser)
	require.NoError(t, err)

	claims, err := auth.parseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.Subject)
	assert.Equal(t, RoleUser, claims.Role)
}

func TestAuthMiddleware_RejectsMissingToken(t *testing.T) {
	auth := NewAuthManager("test-secret", time.Hour)
	router := protectedRouter(auth, RoleUser)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secret", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RejectsWrongSecret(t *testing.T) {
	other := NewAuthManager("other-secret", time.Hour)
	token, err := other.IssueToken("user-42", RoleUser)
	require.NoError(t, err)

	auth := NewAuthManager("test-secret", time.Hour)
	router := protectedRouter(auth, RoleUser)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secret", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RejectsWrongRole(t *testing.T) {
	auth := NewAuthManager("test-secret", time.Hour)
	token, err := auth.IssueToken("user-42", RoleUser)
	require.NoError(t, err)

	router := protectedRouter(auth, RoleAdmin)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secret", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthMiddleware_SetsSubject(t *testing.T) {
	auth := NewAuthManager("test-secret", time.Hour)
	token, err := auth.IssueToken("user-42", RoleUser)
	require.NoError(t, err)

	router := protectedRouter(auth, RoleUser)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secret", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "user-42")
}

func TestAuthMiddleware_RejectsExpiredToken(t *testing.T) {
	auth := NewAuthManager("test-secret", -time.Minute)
	token, err := auth.IssueToken("user-42", RoleUser)
	require.NoError(t, err)

	router := protectedRouter(auth, RoleUser)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secret", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
