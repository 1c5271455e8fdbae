package routes

import (
	"github.com/Shivam1-ai/chai-order-ai/configs"
	"github.com/Shivam1-ai/chai-order-ai/controllers"
	"github.com/Shivam1-ai/chai-order-ai/middlewares"
	"github.com/Shivam1-ai/chai-order-ai/repository"
	"github.com/Shivam1-ai/chai-order-ai/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, log *zap.SugaredLogger) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	trackRepo := repository.NewTrackingRepository(db)

	// Services
	authSvc := services.NewAuthService(db, userRepo, cfg.JWTSecret, cfg.JWTTTL)
	catalogSvc := services.NewCatalogService(restRepo)
	cartSvc := services.NewCartService(db, cartRepo, restRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, trackRepo, log,
		cfg.DeliveryFee, cfg.EstimatedMinutes)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	restCtrl := controllers.NewRestaurantController(catalogSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
		aAuth.GET("/me/addresses", authCtrl.ListAddresses)
		aAuth.POST("/me/addresses", authCtrl.AddAddress)
		aAuth.PATCH("/me/addresses/:id", authCtrl.UpdateAddress)
		aAuth.DELETE("/me/addresses/:id", authCtrl.DeleteAddress)
		aAuth.PATCH("/me/addresses/:id/default", authCtrl.SetDefaultAddress)
	}

	// Catalog (public)
	r.GET("/restaurants", restCtrl.List)
	r.GET("/restaurants/:id", restCtrl.Detail)

	// Cart + orders (user)
	u := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		u.GET("/cart", cartCtrl.Get)
		u.POST("/cart/items", cartCtrl.Add)
		u.PATCH("/cart/items/qty", cartCtrl.UpdateQty)
		u.DELETE("/cart/items", cartCtrl.RemoveItem)
		u.DELETE("/cart", cartCtrl.Clear)

		u.POST("/checkout", orderCtrl.Checkout)
		u.GET("/orders", orderCtrl.ListForMe)
		u.GET("/orders/:id", orderCtrl.Detail)
		u.GET("/orders/:id/tracking", orderCtrl.Tracking)
	}

	// Ops (restaurant/courier side)
	ops := r.Group("/ops", middlewares.AuthMiddleware(cfg.JWTSecret, "ops"))
	{
		ops.POST("/orders/:id/tracking", orderCtrl.AppendTracking)
	}
}
