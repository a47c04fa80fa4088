// File: tidify/handlers/bundle.go
package handlers

import (
	userRepoPkg "tidify/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct. The user
// repository rides along so route registration can build the auth
// middleware from the same backing store.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// Health / stats
	HealthHandler gin.HandlerFunc
	StatsHandler  gin.HandlerFunc

	// Account endpoints
	RegisterUserHandler     gin.HandlerFunc
	AuthenticateUserHandler gin.HandlerFunc
	GetMeHandler            gin.HandlerFunc
	LogoutHandler           gin.HandlerFunc

	// Worker endpoints
	ListWorkersHandler        gin.HandlerFunc
	GetWorkerHandler          gin.HandlerFunc
	WorkerAvailabilityHandler gin.HandlerFunc
	GetMyWorkerProfileHandler gin.HandlerFunc
	SaveWorkerProfileHandler  gin.HandlerFunc

	// Booking endpoints
	CreateBookingHandler gin.HandlerFunc
	ListBookingsHandler  gin.HandlerFunc
	CancelBookingHandler gin.HandlerFunc

	// Admin endpoints
	AdminUsersHandler    gin.HandlerFunc
	AdminWorkersHandler  gin.HandlerFunc
	AdminBookingsHandler gin.HandlerFunc
}
