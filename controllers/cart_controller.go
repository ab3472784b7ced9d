package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mohammaduzzal/bistro-boss-server/models"
	"github.com/mohammaduzzal/bistro-boss-server/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type CartController struct {
	Repo *repository.CartRepository
}

func NewCartController(repo *repository.CartRepository) *CartController {
	return &CartController{Repo: repo}
}

// GetCart lists the pending cart items for the email in the query string.
func (cc *CartController) GetCart(c *gin.Context) {
	email := c.Query("email")

	items, err := cc.Repo.FindByEmail(c.Request.Context(), email)
	if err != nil {
		zap.L().Error("Failed to list cart items", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to list cart items"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (cc *CartController) AddCartItem(c *gin.Context) {
	var item models.CartItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload"})
		return
	}

	result, err := cc.Repo.Create(c.Request.Context(), &item)
	if err != nil {
		zap.L().Error("Failed to add cart item", zap.String("email", item.Email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to add cart item"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// DeleteCartItem removes a single cart line. Deleting an id that is already
// gone is a no-op acknowledged with deletedCount 0.
func (cc *CartController) DeleteCartItem(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid cart item id"})
		return
	}

	result, err := cc.Repo.Delete(c.Request.Context(), id)
	if err != nil {
		zap.L().Error("Failed to delete cart item", zap.String("id", id.Hex()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to delete cart item"})
		return
	}
	c.JSON(http.StatusOK, result)
}
