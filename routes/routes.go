package routes

import (
	"time"

	"tidify/handlers"
	"tidify/middleware"
	"tidify/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/me", hb.GetMeHandler)
		api.POST("/logout", hb.LogoutHandler)
	}
}

// RegisterWorkerRoutes registers worker discovery and profile endpoints.
// Browsing workers requires a signed-in account.
func RegisterWorkerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/workers")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("", hb.ListWorkersHandler)
		api.GET("/:username", hb.GetWorkerHandler)
		api.GET("/:username/availability", hb.WorkerAvailabilityHandler)

		// The profile dashboard is for workers; customers have none.
		profile := api.Group("/me/profile")
		profile.Use(middleware.RequireRoles(models.RoleWorker, models.RoleAdmin))
		profile.GET("", hb.GetMyWorkerProfileHandler)
		profile.PUT("", hb.SaveWorkerProfileHandler)
	}
}

// RegisterBookingRoutes sets up the booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.CreateBookingHandler)
		api.GET("", hb.ListBookingsHandler)
		api.DELETE("/:id", hb.CancelBookingHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireRoles(models.RoleAdmin))
		adminGroup.GET("/users", hb.AdminUsersHandler)
		adminGroup.GET("/workers", hb.AdminWorkersHandler)
		adminGroup.GET("/bookings", hb.AdminBookingsHandler)
	}
}

// RegisterHealthRoutes registers the health-check and stats endpoints.
func RegisterHealthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
	r.GET("/api/stats", hb.StatsHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterWorkerRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
