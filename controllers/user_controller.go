package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mohammaduzzal/bistro-boss-server/middleware"
	"github.com/mohammaduzzal/bistro-boss-server/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// UserDirectory is the account store consumed by the user endpoints.
type UserDirectory interface {
	FindAll(ctx context.Context) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) (models.InsertResult, error)
	PromoteToAdmin(ctx context.Context, id primitive.ObjectID) (models.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (models.DeleteResult, error)
}

type UserController struct {
	Users UserDirectory
}

func NewUserController(users UserDirectory) *UserController {
	return &UserController{Users: users}
}

// GetUsers lists every account. Admin only.
func (uc *UserController) GetUsers(c *gin.Context) {
	users, err := uc.Users.FindAll(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to list users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to list users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetAdminStatus reports whether the given email is an admin. Callers may
// only query their own email.
func (uc *UserController) GetAdminStatus(c *gin.Context) {
	email := c.Param("email")
	if email != middleware.ClaimedEmail(c) {
		c.JSON(http.StatusForbidden, gin.H{"message": "unauthorized access"})
		return
	}

	user, err := uc.Users.FindByEmail(c.Request.Context(), email)
	if err != nil {
		zap.L().Error("Failed to look up user", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to look up user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"admin": user.IsAdmin()})
}

// CreateUser registers an account. Registration is idempotent per email:
// a second request for the same email reports the existing record instead
// of inserting a duplicate.
func (uc *UserController) CreateUser(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload"})
		return
	}

	existing, err := uc.Users.FindByEmail(c.Request.Context(), user.Email)
	if err != nil {
		zap.L().Error("Failed to check existing user", zap.String("email", user.Email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create user"})
		return
	}
	if existing != nil {
		c.JSON(http.StatusOK, gin.H{"message": "user already exists", "insertedId": nil})
		return
	}

	result, err := uc.Users.Create(c.Request.Context(), &user)
	if err != nil {
		zap.L().Error("Failed to create user", zap.String("email", user.Email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create user"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// PromoteToAdmin elevates an account's role. Admin only.
func (uc *UserController) PromoteToAdmin(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid user id"})
		return
	}

	result, err := uc.Users.PromoteToAdmin(c.Request.Context(), id)
	if err != nil {
		zap.L().Error("Failed to promote user", zap.String("id", id.Hex()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to update user"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// DeleteUser removes an account. Admin only.
func (uc *UserController) DeleteUser(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid user id"})
		return
	}

	result, err := uc.Users.Delete(c.Request.Context(), id)
	if err != nil {
		zap.L().Error("Failed to delete user", zap.String("id", id.Hex()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to delete user"})
		return
	}
	c.JSON(http.StatusOK, result)
}
