package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/apexarena/backend/pkg/token"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-test-secret"

func protectedRouter(role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/secure", RequireRole(testSecret, role), func(c *gin.Context) {
		claims, err := CurrentPrincipal(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": claims.UserID, "role": claims.Role})
	})
	return r
}

func doGet(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireRoleMissingHeader(t *testing.T) {
	w := doGet(protectedRouter(token.RoleCaptain), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authorization header is required")
}

func TestRequireRoleBadHeaderFormat(t *testing.T) {
	w := doGet(protectedRouter(token.RoleCaptain), "Token abc")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Bearer")
}

func TestRequireRoleInvalidToken(t *testing.T) {
	w := doGet(protectedRouter(token.RoleCaptain), "Bearer not-a-real-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRoleExpiredToken(t *testing.T) {
	signed, err := token.Generate(1, "a@b.c", "CSE", token.RoleCaptain, testSecret, -time.Minute)
	require.NoError(t, err)

	w := doGet(protectedRouter(token.RoleCaptain), "Bearer "+signed)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token has expired")
}

func TestRequireRoleWrongRole(t *testing.T) {
	signed, err := token.Generate(1, "a@b.c", "CSE", token.RolePlayer, testSecret, time.Hour)
	require.NoError(t, err)

	w := doGet(protectedRouter(token.RoleCaptain), "Bearer "+signed)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Insufficient permissions")
}

func TestRequireRolePassesClaimsThrough(t *testing.T) {
	signed, err := token.Generate(99, "a@b.c", "CSE", token.RoleAdmin, testSecret, time.Hour)
	require.NoError(t, err)

	w := doGet(protectedRouter(token.RoleAdmin), "Bearer "+signed)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":99`)
	assert.Contains(t, w.Body.String(), `"role":"admin"`)
}
