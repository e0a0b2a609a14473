package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires the storefront and back-office surfaces onto one engine.
// Read-only catalogue endpoints stay public so the landing page works
// without a session.
func NewRouter(auth *AuthManager, authHandler *AuthHandler, storefront *StorefrontHandler, admin *AdminHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")

	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/products", storefront.ListProducts)
	api.GET("/flash-sale", storefront.FlashSale)

	user := api.Group("", auth.Middleware(RoleUser))
	{
		user.GET("/profile", storefront.Profile)
		user.POST("/orders", storefront.CreateOrder)
		user.GET("/orders", storefront.ListOrders)
		user.GET("/coupons", storefront.ListCoupons)
		user.GET("/referrals", storefront.ListReferrals)
	}

	api.POST("/admin/login", authHandler.AdminLogin)

	adminGroup := api.Group("/admin", auth.Middleware(RoleAdmin))
	{
		adminGroup.GET("/config", admin.GetConfig)
		adminGroup.PUT("/config", admin.UpdateConfig)

		adminGroup.GET("/orders", admin.ListOrders)
		adminGroup.POST("/orders", admin.AddOrder)
		adminGroup.POST("/orders/:id/mark-paid", admin.MarkPaid)
		adminGroup.POST("/orders/:id/split", admin.SplitOrder)
		adminGroup.POST("/orders/:id/assign", admin.AssignOrder)
		adminGroup.POST("/orders/:id/complete", admin.CompleteOrder)
		adminGroup.POST("/orders/:id/cancel", admin.CancelOrder)

		adminGroup.GET("/products", admin.ListProducts)
		adminGroup.POST("/products", admin.CreateProduct)
		adminGroup.PUT("/products/:id", admin.UpdateProduct)
		adminGroup.DELETE("/products/:id", admin.DeleteProduct)

		adminGroup.GET("/users", admin.ListUsers)
		adminGroup.GET("/users/:id", admin.GetUser)

		adminGroup.GET("/coupons", admin.ListCoupons)
		adminGroup.POST("/coupons", admin.GrantCoupon)

		adminGroup.GET("/dashboard", admin.Dashboard)
	}

	return router
}
