package handlers

import (
	"net/http"

	"tidify/models"
	"tidify/services/booking"
	"tidify/services/user"
	"tidify/services/worker"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler exposes full table dumps for operators.
type AdminHandler struct {
	Users    user.UserService
	Workers  worker.WorkerService
	Bookings booking.BookingService
}

// UsersHandler dumps every account with credential material stripped.
func (h *AdminHandler) UsersHandler(c *gin.Context) {
	logger := getLogger(c)

	users, err := h.Users.GetAllUsers(c.Request.Context())
	if err != nil {
		logger.Error("Failed to dump users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list users"})
		return
	}
	out := make([]models.PublicUser, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public())
	}
	c.JSON(http.StatusOK, out)
}

// WorkersHandler dumps every worker profile.
func (h *AdminHandler) WorkersHandler(c *gin.Context) {
	logger := getLogger(c)

	workers, err := h.Workers.ListWorkers(c.Request.Context(), models.WorkerFilters{})
	if err != nil {
		logger.Error("Failed to dump workers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list workers"})
		return
	}
	c.JSON(http.StatusOK, workers)
}

// BookingsHandler dumps every booking, cancelled included.
func (h *AdminHandler) BookingsHandler(c *gin.Context) {
	logger := getLogger(c)

	rows, err := h.Bookings.ListFor(c.Request.Context(), identityFromContext(c))
	if err != nil {
		logger.Error("Failed to dump bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list bookings"})
		return
	}
	c.JSON(http.StatusOK, rows)
}
