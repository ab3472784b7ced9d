package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mohammaduzzal/bistro-boss-server/models"
	"go.uber.org/zap"
)

// StatsProvider aggregates the payment ledger for the admin dashboards.
type StatsProvider interface {
	AdminStats(ctx context.Context) (*models.AdminStats, error)
	OrderStats(ctx context.Context) ([]models.CategoryStat, error)
}

type StatsController struct {
	Stats StatsProvider
}

func NewStatsController(stats StatsProvider) *StatsController {
	return &StatsController{Stats: stats}
}

// GetAdminStats returns account, menu, and order counts with total revenue.
// Admin only.
func (sc *StatsController) GetAdminStats(c *gin.Context) {
	stats, err := sc.Stats.AdminStats(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to compute admin stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to compute stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetOrderStats returns per-category order counts and revenue. Admin only.
func (sc *StatsController) GetOrderStats(c *gin.Context) {
	stats, err := sc.Stats.OrderStats(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to compute order stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to compute stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
