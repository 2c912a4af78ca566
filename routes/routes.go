package routes

import (
	"net/http"

	"furniture-shop/config"
	"furniture-shop/controllers"
	"furniture-shop/handler"
	"furniture-shop/middleware"
	"furniture-shop/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type Services struct {
	Auth     *services.AuthService
	Users    *services.UserService
	Products *services.ProductService
	Carts    *services.CartService
	Checkout *services.CheckoutService
	Orders   *services.OrderService
}

func SetupRoutes(router *gin.Engine, cfg *config.Config, svc Services, logger *zap.Logger) {
	authCtrl := controllers.NewAuthController(svc.Auth)
	profileCtrl := controllers.NewProfileController(svc.Users)
	productCtrl := controllers.NewProductController(svc.Products)
	categoryCtrl := controllers.NewCategoryController(svc.Products)
	cartCtrl := controllers.NewCartController(svc.Carts)
	transactionCtrl := controllers.NewTransactionController(svc.Checkout)
	historyCtrl := controllers.NewHistoryController(svc.Orders)
	orderCtrl := controllers.NewOrderController(svc.Orders)

	authRequired := middleware.AuthMiddleware(cfg.JWTSecret)
	cartSession := middleware.CartSession(cfg.CartTTL, cfg.IsProduction())

	router.GET("/", gin.WrapF(handler.Handler))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)
	router.GET("/categories", categoryCtrl.GetCategories)
	router.GET("/seater-types", categoryCtrl.GetSeaterTypes)
	router.GET("/products", productCtrl.GetAllProducts)
	router.GET("/products/featured", productCtrl.GetFeaturedProducts)
	router.GET("/products/:id", productCtrl.GetProductByID)

	cart := router.Group("/cart")
	cart.Use(cartSession)
	{
		cart.GET("", cartCtrl.GetCart)
		cart.DELETE("", cartCtrl.ClearCart)
		cart.POST("/items", cartCtrl.AddToCart)
		cart.PATCH("/items/:productId", cartCtrl.UpdateCartItem)
		cart.DELETE("/items/:productId", cartCtrl.RemoveCartItem)
	}

	router.POST("/checkout", authRequired, cartSession, transactionCtrl.Checkout)

	auth := router.Group("/")
	auth.Use(authRequired)
	{
		auth.GET("/auth/profile", profileCtrl.GetProfile)
		auth.PATCH("/auth/profile", profileCtrl.UpdateProfile)
		auth.POST("/auth/change-password", authCtrl.ChangePassword)
		auth.GET("/orders", historyCtrl.GetHistory)
		auth.GET("/orders/:id", historyCtrl.GetOrderDetail)
	}

	admin := router.Group("/admin")
	admin.Use(authRequired, middleware.AdminMiddleware(svc.Users, logger))
	{
		admin.POST("/products", productCtrl.CreateProduct)
		admin.PATCH("/products/:id", productCtrl.UpdateProduct)
		admin.DELETE("/products/:id", productCtrl.DeleteProduct)
		admin.POST("/products/:id/image", productCtrl.UploadProductImage)

		admin.GET("/orders", orderCtrl.GetAllOrders)
		admin.GET("/orders/:id", orderCtrl.GetOrderByID)
		admin.PATCH("/orders/:id/status", orderCtrl.UpdateOrderStatus)
	}

	router.Static("/uploads", cfg.UploadDir)
}
