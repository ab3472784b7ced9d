package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/mohammaduzzal/bistro-boss-server/models"
	"go.uber.org/zap"
)

const claimsKey = "claims"

// TokenVerifier validates an identity token and returns its claims.
type TokenVerifier interface {
	Verify(tokenStr string) (jwt.MapClaims, error)
}

// RoleDirectory resolves the current account for an email claim. Returns
// (nil, nil) when no account exists.
type RoleDirectory interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// AuthMiddleware gates routes on token validity and, where required, on the
// account's live admin role.
type AuthMiddleware struct {
	Tokens TokenVerifier
	Users  RoleDirectory
}

func NewAuthMiddleware(tokens TokenVerifier, users RoleDirectory) *AuthMiddleware {
	return &AuthMiddleware{Tokens: tokens, Users: users}
}

// RequireAuth rejects requests without a valid bearer token and attaches the
// decoded claims to the request context.
func (am *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "forbidden access"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "forbidden access"})
			return
		}

		claims, err := am.Tokens.Verify(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "forbidden access"})
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth. The role is re-checked against
// the account directory on every request, so a revoked admin is blocked
// immediately even though their token is still valid.
func (am *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := ClaimedEmail(c)

		user, err := am.Users.FindByEmail(c.Request.Context(), email)
		if err != nil {
			zap.L().Error("Failed to look up account for admin check",
				zap.String("email", email),
				zap.Error(err),
			)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "failed to verify role"})
			return
		}
		if !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}
		c.Next()
	}
}

// Claims returns the decoded token claims attached by RequireAuth.
func Claims(c *gin.Context) jwt.MapClaims {
	if value, exists := c.Get(claimsKey); exists {
		if claims, ok := value.(jwt.MapClaims); ok {
			return claims
		}
	}
	return jwt.MapClaims{}
}

// ClaimedEmail returns the email claim from the verified token.
func ClaimedEmail(c *gin.Context) string {
	if email, ok := Claims(c)["email"].(string); ok {
		return email
	}
	return ""
}
