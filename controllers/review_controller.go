package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mohammaduzzal/bistro-boss-server/repository"
	"go.uber.org/zap"
)

type ReviewController struct {
	Repo *repository.ReviewRepository
}

func NewReviewController(repo *repository.ReviewRepository) *ReviewController {
	return &ReviewController{Repo: repo}
}

func (rc *ReviewController) GetReviews(c *gin.Context) {
	reviews, err := rc.Repo.FindAll(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to list reviews", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to list reviews"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}
