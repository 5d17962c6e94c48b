package routes

import (
	"html/template"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/shopora/shopora-admin-golang/internal/handlers"
	"github.com/shopora/shopora-admin-golang/internal/middleware"
	"github.com/shopora/shopora-admin-golang/web"
)

// CORSMiddleware allows the admin frontend origin to call the API with
// credentials. The origin is configurable for deployments.
func CORSMiddleware() gin.HandlerFunc {
	origin := os.Getenv("CORS_ORIGIN")
	if origin == "" {
		origin = "http://localhost:3000"
	}

	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		// Preflight requests get an empty 204.
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.Default()

	router.SetHTMLTemplate(template.Must(template.ParseFS(web.Templates, "templates/*.html")))

	// CORS first, then the access gate: every request is logged and
	// admin-prefixed paths are checked before any handler runs.
	router.Use(CORSMiddleware())
	router.Use(middleware.AccessGate(h.Log))

	// --- Server-rendered pages ---
	router.GET("/dashboard", h.DashboardPage)
	router.GET("/auth/login", h.LoginPage)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong!"})
		})

		// --- Auth ---
		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/admin/create", h.CreateAdmin)
			authGroup.POST("/login", h.Login)
		}

		// --- Dashboard aggregation ---
		dashboard := v1.Group("/dashboard")
		{
			dashboard.GET("/stats", h.GetDashboardStats)
			dashboard.GET("/recent-orders", h.GetRecentOrders)
		}

		// --- Catalog (public reads) ---
		products := v1.Group("/products")
		{
			products.GET("", h.GetProducts)
			products.GET("/featured", h.GetFeaturedProducts)
			products.GET("/search", h.SearchProducts)
			products.GET("/top-selling", h.GetTopSellingProducts)
			products.GET("/slug/:slug", h.GetProductBySlug)
			products.GET("/slug/:slug/reviews", h.GetProductReviews)
		}
		v1.GET("/brands", h.GetBrands)
		v1.GET("/categories", h.GetCategories)

		// --- Admin-only (the access gate enforces the ADMIN role claim
		// for everything under /api/v1/admin) ---
		admin := v1.Group("/admin")
		{
			admin.GET("/orders", h.GetOrders)
			admin.GET("/orders/:id", h.GetOrder)
			admin.PATCH("/orders/:id/status", h.UpdateOrderStatus)

			admin.GET("/products/low-stock", h.GetLowStockProducts)
			admin.POST("/products", h.CreateProduct)
			admin.POST("/brands", h.CreateBrand)
			admin.POST("/categories", h.CreateCategory)

			admin.GET("/users", h.GetUsersByRole)
		}
	}

	return router
}
