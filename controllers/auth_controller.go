package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TokenIssuer signs an identity token for a claims payload.
type TokenIssuer interface {
	Issue(claims map[string]interface{}) (string, error)
}

type AuthController struct {
	Tokens TokenIssuer
}

func NewAuthController(tokens TokenIssuer) *AuthController {
	return &AuthController{Tokens: tokens}
}

// IssueToken signs whatever claims object the client sends. The email is
// trusted at issuance; authorization is re-checked against the account
// directory on every guarded request.
func (ac *AuthController) IssueToken(c *gin.Context) {
	var claims map[string]interface{}
	if err := c.ShouldBindJSON(&claims); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload"})
		return
	}

	token, err := ac.Tokens.Issue(claims)
	if err != nil {
		zap.L().Error("Failed to issue token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
