package routes

import (
	"net/http"
	"time"

	"camerastore/handlers"
	"camerastore/middleware"
	"camerastore/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterCatalogRoutes registers the public storefront endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/products", hb.Products.ListProducts)
		api.GET("/products/:id", hb.Products.GetProduct)
		api.GET("/booking/form", hb.Bookings.GetForm)
		api.POST("/bookings", hb.Bookings.SubmitBooking)
	}
}

// RegisterAuthRoutes registers login, logout and the current-session lookup.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	auth := r.Group("/api/auth")
	{
		auth.POST("/login", hb.Users.Login)

		// Protected routes (Require Authentication)
		protected := auth.Group("")
		protected.Use(middleware.RequireSession(hb.Sessions))
		protected.POST("/logout", hb.Users.Logout)
		protected.GET("/me", hb.Users.Me)
	}
}

// RegisterAdminRoutes sets up the back-office endpoints, all behind a session.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.RequireSession(hb.Sessions))
		adminGroup.GET("/dashboard", hb.Admin.Dashboard)

		adminGroup.POST("/products", hb.Products.CreateProduct)
		adminGroup.PUT("/products/:id", hb.Products.UpdateProduct)
		adminGroup.DELETE("/products/:id", hb.Products.DeleteProduct)

		adminGroup.GET("/bookings", hb.Bookings.ListBookings)
		adminGroup.PATCH("/bookings/:id/status", hb.Bookings.UpdateStatus)
		adminGroup.DELETE("/bookings/:id", hb.Bookings.DeleteBooking)

		adminGroup.GET("/users", hb.Users.ListUsers)
		adminGroup.POST("/users", hb.Users.CreateUser)
		adminGroup.DELETE("/users/:id", hb.Users.DeleteUser)

		adminGroup.POST("/uploads/signature", hb.Storage.SignUpload)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, allowedOrigins []string) {
	r.Use(cors.New(corsConfig(allowedOrigins)))

	RegisterHealthRoute(r)
	RegisterCatalogRoutes(r, hb)
	RegisterAuthRoutes(r, hb)
	RegisterAdminRoutes(r, hb)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, utils.ErrorResponse{Message: utils.T(c, utils.MsgNotFound)})
	})
}

func corsConfig(allowedOrigins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type", "Accept-Language"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range allowedOrigins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	if len(allowedOrigins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = allowedOrigins
	return cfg
}
