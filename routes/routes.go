package routes

import (
	"github.com/Rune905/Beauty-Bloom/controllers"
	"github.com/Rune905/Beauty-Bloom/middleware"
	"github.com/Rune905/Beauty-Bloom/services"

	"github.com/gin-gonic/gin"
)

// Controllers bundles the controller set the router wires up.
type Controllers struct {
	Products      *controllers.ProductController
	AdminProducts *controllers.AdminProductController
	Categories    *controllers.CategoryController
	Brands        *controllers.BrandController
	Auth          *controllers.AuthController
	Orders        *controllers.OrderController
	Admin         *controllers.AdminController
}

// Register mounts the public storefront API, the authenticated user
// endpoints and the admin API onto the engine.
func Register(r *gin.Engine, ctrl Controllers, tokens *services.TokenService, uploadDir string) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Uploaded images and their thumbnails are served straight off disk.
	r.Static("/uploads", uploadDir)

	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.Use(middleware.AuthRateLimiter())
	{
		auth.POST("/register", ctrl.Auth.Register)
		auth.POST("/login", ctrl.Auth.Login)
	}

	products := api.Group("/products")
	{
		products.GET("/read", ctrl.Products.GetProducts)
		products.GET("/featured", ctrl.Products.GetFeatured)
		products.GET("/hot_deals", ctrl.Products.GetHotDeals)
		products.GET("/read_one", ctrl.Products.GetProduct)
	}

	api.GET("/categories/read", ctrl.Categories.GetCategories)
	api.GET("/brands/read", ctrl.Brands.GetBrands)

	authed := api.Group("")
	authed.Use(middleware.RequireAuth(tokens))
	{
		authed.GET("/profile", ctrl.Auth.Profile)
		authed.PUT("/profile", ctrl.Auth.UpdateProfile)
		authed.GET("/orders", ctrl.Orders.GetUserOrders)
	}

	admin := api.Group("/admin")
	{
		admin.POST("/auth/login", middleware.AuthRateLimiter(), ctrl.Auth.AdminLogin)

		protected := admin.Group("")
		protected.Use(middleware.RequireAdmin(tokens))
		{
			protected.GET("/dashboard_stats", ctrl.Admin.DashboardStats)
			protected.POST("/upload_image", ctrl.Admin.UploadImage)

			protected.GET("/products", ctrl.AdminProducts.List)
			protected.GET("/products/read_one", ctrl.AdminProducts.GetOne)
			protected.POST("/products", ctrl.AdminProducts.Create)
			protected.PUT("/products", ctrl.AdminProducts.Update)
			protected.PUT("/products/image", ctrl.AdminProducts.SetImage)
			protected.DELETE("/products", ctrl.AdminProducts.Delete)

			protected.GET("/categories", ctrl.Categories.AdminList)
			protected.GET("/categories/read_one", ctrl.Categories.GetOne)
			protected.POST("/categories", ctrl.Categories.Create)
			protected.PUT("/categories", ctrl.Categories.Update)
			protected.DELETE("/categories", ctrl.Categories.Delete)

			protected.GET("/brands", ctrl.Brands.AdminList)
			protected.POST("/brands", ctrl.Brands.Create)
			protected.PUT("/brands", ctrl.Brands.Update)
			protected.DELETE("/brands", ctrl.Brands.Delete)

			protected.GET("/orders", ctrl.Orders.AdminList)
			protected.GET("/orders/:id", ctrl.Orders.AdminDetails)
			protected.PUT("/orders/:id/status", ctrl.Orders.UpdateStatus)
		}
	}
}
