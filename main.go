package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/mohammaduzzal/bistro-boss-server/controllers"
	"github.com/mohammaduzzal/bistro-boss-server/database"
	"github.com/mohammaduzzal/bistro-boss-server/events"
	"github.com/mohammaduzzal/bistro-boss-server/logger"
	"github.com/mohammaduzzal/bistro-boss-server/middleware"
	"github.com/mohammaduzzal/bistro-boss-server/repository"
	"github.com/mohammaduzzal/bistro-boss-server/routes"
	"github.com/mohammaduzzal/bistro-boss-server/services"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// Load .env file (optional, falls back to system env)
	_ = godotenv.Load()

	logger.Initialize(os.Getenv("APP_ENV"))
	defer zap.L().Sync()

	cfg, err := LoadConfig()
	if err != nil {
		zap.L().Fatal("Failed to load configuration", zap.Error(err))
	}

	db, err := database.Connect(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		zap.L().Fatal("Failed to connect to MongoDB", zap.Error(err))
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			zap.L().Warn("Invalid REDIS_URL, menu cache disabled", zap.Error(err))
		} else {
			redisClient = redis.NewClient(opts)
			if err := redisClient.Ping(context.Background()).Err(); err != nil {
				zap.L().Warn("Failed to connect to Redis, menu cache disabled", zap.Error(err))
				redisClient = nil
			}
		}
	}

	var producer *events.Producer
	if len(cfg.KafkaBrokers) > 0 {
		producer = events.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	cartRepo := repository.NewCartRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	// Services
	tokenService := services.NewTokenService(cfg.JWTSecret)
	stripeService := services.NewStripeService(cfg.StripeSecretKey)
	statsService := services.NewStatsService(userRepo, menuRepo, paymentRepo)

	var publisher services.EventPublisher
	if producer != nil {
		publisher = producer
	}
	checkoutService := services.NewCheckoutService(paymentRepo, cartRepo, publisher)

	auth := middleware.NewAuthMiddleware(tokenService, userRepo)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(zap.L()))
	r.Use(middleware.Metrics())

	// Request timeout; store and provider calls already in flight run to
	// completion, their results are discarded.
	r.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	routes.Register(r, auth, routes.Controllers{
		Auth:    controllers.NewAuthController(tokenService),
		Users:   controllers.NewUserController(userRepo),
		Menu:    controllers.NewMenuController(menuRepo, redisClient, cfg.MenuCacheTTL),
		Reviews: controllers.NewReviewController(reviewRepo),
		Carts:   controllers.NewCartController(cartRepo),
		Payment: controllers.NewPaymentController(stripeService, checkoutService, paymentRepo),
		Stats:   controllers.NewStatsController(statsService),
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		zap.L().Info("Bistro service starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("Server shutdown failed", zap.Error(err))
	}

	if producer != nil {
		producer.Close()
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
	if err := db.Close(); err != nil {
		zap.L().Error("MongoDB disconnect failed", zap.Error(err))
	}
}
