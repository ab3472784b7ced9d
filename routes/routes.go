package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mohammaduzzal/bistro-boss-server/controllers"
	"github.com/mohammaduzzal/bistro-boss-server/middleware"
	"golang.org/x/time/rate"
)

// Controllers bundles every handler group the router mounts.
type Controllers struct {
	Auth    *controllers.AuthController
	Users   *controllers.UserController
	Menu    *controllers.MenuController
	Reviews *controllers.ReviewController
	Carts   *controllers.CartController
	Payment *controllers.PaymentController
	Stats   *controllers.StatsController
}

// Register mounts all application routes. Guarded routes pass through
// RequireAuth and, where noted, RequireAdmin.
func Register(r *gin.Engine, auth *middleware.AuthMiddleware, c Controllers) {
	r.GET("/", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "boss is buying")
	})

	r.POST("/jwt", middleware.RateLimitMiddleware(rate.Every(time.Minute/100), 50), c.Auth.IssueToken)

	users := r.Group("/users")
	{
		users.GET("", auth.RequireAuth(), auth.RequireAdmin(), c.Users.GetUsers)
		users.POST("", c.Users.CreateUser)
		users.GET("/admin/:email", auth.RequireAuth(), c.Users.GetAdminStatus)
		users.PATCH("/admin/:id", auth.RequireAuth(), auth.RequireAdmin(), c.Users.PromoteToAdmin)
		users.DELETE("/:id", auth.RequireAuth(), auth.RequireAdmin(), c.Users.DeleteUser)
	}

	menu := r.Group("/menu")
	{
		menu.GET("", c.Menu.GetMenu)
		menu.GET("/:id", c.Menu.GetMenuItem)
		menu.POST("", auth.RequireAuth(), auth.RequireAdmin(), c.Menu.CreateMenuItem)
		menu.PATCH("/:id", c.Menu.UpdateMenuItem)
		menu.DELETE("/:id", auth.RequireAuth(), auth.RequireAdmin(), c.Menu.DeleteMenuItem)
	}

	r.GET("/reviews", c.Reviews.GetReviews)

	carts := r.Group("/carts")
	{
		carts.GET("", c.Carts.GetCart)
		carts.POST("", c.Carts.AddCartItem)
		carts.DELETE("/:id", c.Carts.DeleteCartItem)
	}

	r.POST("/create-payment-intent", c.Payment.CreatePaymentIntent)
	r.GET("/payments/:email", auth.RequireAuth(), c.Payment.GetPayments)
	r.POST("/payments", c.Payment.RecordPayment)

	r.GET("/admin-stats", auth.RequireAuth(), auth.RequireAdmin(), c.Stats.GetAdminStats)
	r.GET("/order-stats", auth.RequireAuth(), auth.RequireAdmin(), c.Stats.GetOrderStats)
}
