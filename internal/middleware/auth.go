package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/apexarena/backend/pkg/token"
	"github.com/gin-gonic/gin"
)

const (
	// PrincipalKey is the gin context key holding the decoded token claims.
	PrincipalKey = "auth_principal"
)

// RequireRole is the single bearer-token middleware shared by the admin,
// captain and player portals. It verifies the Authorization header against
// the shared secret and rejects tokens whose role claim is not exactly the
// expected role.
func RequireRole(jwtSecret, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || strings.ToLower(bearerToken[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization header format. Expected: Bearer <token>"})
			return
		}

		claims, err := token.Validate(bearerToken[1], jwtSecret)
		if err != nil {
			if errors.Is(err, token.ErrExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has expired"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token: " + err.Error()})
			return
		}

		if claims.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions for this resource"})
			return
		}

		c.Set(PrincipalKey, claims)
		c.Next()
	}
}

// CurrentPrincipal extracts the decoded claims placed by RequireRole.
func CurrentPrincipal(c *gin.Context) (*token.Claims, error) {
	value, exists := c.Get(PrincipalKey)
	if !exists {
		return nil, errors.New("principal not found in context")
	}
	claims, ok := value.(*token.Claims)
	if !ok {
		return nil, fmt.Errorf("principal has unexpected type: %T", value)
	}
	return claims, nil
}
