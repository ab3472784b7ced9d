package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mohammaduzzal/bistro-boss-server/models"
	"github.com/mohammaduzzal/bistro-boss-server/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const menuCacheKey = "cache:menu"

type MenuController struct {
	Repo     *repository.MenuRepository
	Redis    *redis.Client
	CacheTTL time.Duration
}

func NewMenuController(repo *repository.MenuRepository, redisClient *redis.Client, cacheTTL time.Duration) *MenuController {
	return &MenuController{Repo: repo, Redis: redisClient, CacheTTL: cacheTTL}
}

// GetMenu returns the full catalog, served from the Redis cache when warm.
func (mc *MenuController) GetMenu(c *gin.Context) {
	ctx := c.Request.Context()

	if cached := mc.readCache(ctx); cached != nil {
		c.JSON(http.StatusOK, cached)
		return
	}

	items, err := mc.Repo.FindAll(ctx)
	if err != nil {
		zap.L().Error("Failed to list menu", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to list menu"})
		return
	}

	mc.writeCache(ctx, items)
	c.JSON(http.StatusOK, items)
}

func (mc *MenuController) GetMenuItem(c *gin.Context) {
	item, err := mc.Repo.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		zap.L().Error("Failed to look up menu item", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to look up menu item"})
		return
	}
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "menu item not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// CreateMenuItem adds a catalog entry. Admin only.
func (mc *MenuController) CreateMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload"})
		return
	}

	result, err := mc.Repo.Create(c.Request.Context(), &item)
	if err != nil {
		zap.L().Error("Failed to create menu item", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create menu item"})
		return
	}

	mc.invalidateCache(c.Request.Context())
	c.JSON(http.StatusOK, result)
}

func (mc *MenuController) UpdateMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload"})
		return
	}

	result, err := mc.Repo.Update(c.Request.Context(), c.Param("id"), &item)
	if err != nil {
		zap.L().Error("Failed to update menu item", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to update menu item"})
		return
	}

	mc.invalidateCache(c.Request.Context())
	c.JSON(http.StatusOK, result)
}

// DeleteMenuItem removes a catalog entry. Admin only.
func (mc *MenuController) DeleteMenuItem(c *gin.Context) {
	result, err := mc.Repo.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		zap.L().Error("Failed to delete menu item", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to delete menu item"})
		return
	}

	mc.invalidateCache(c.Request.Context())
	c.JSON(http.StatusOK, result)
}

func (mc *MenuController) readCache(ctx context.Context) []models.MenuItem {
	if mc.Redis == nil {
		return nil
	}

	data, err := mc.Redis.Get(ctx, menuCacheKey).Result()
	if err != nil {
		if err != redis.Nil {
			zap.L().Warn("Menu cache read failed", zap.Error(err))
		}
		return nil
	}

	var items []models.MenuItem
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return nil
	}
	return items
}

func (mc *MenuController) writeCache(ctx context.Context, items []models.MenuItem) {
	if mc.Redis == nil {
		return
	}

	data, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err := mc.Redis.Set(ctx, menuCacheKey, data, mc.CacheTTL).Err(); err != nil {
		zap.L().Warn("Menu cache write failed", zap.Error(err))
	}
}

func (mc *MenuController) invalidateCache(ctx context.Context) {
	if mc.Redis == nil {
		return
	}
	if err := mc.Redis.Del(ctx, menuCacheKey).Err(); err != nil {
		zap.L().Warn("Menu cache invalidation failed", zap.Error(err))
	}
}
