package handlers

import (
	"net/http"

	"tidify/services/booking"
	"tidify/services/user"
	"tidify/services/worker"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StatsHandler reports the table counts shown on the landing page.
func StatsHandler(users user.UserService, workers worker.WorkerService, bookings booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)
		ctx := c.Request.Context()

		userCount, err := users.Count(ctx)
		if err != nil {
			logger.Error("Failed to count users", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
			return
		}
		workerCount, err := workers.Count(ctx)
		if err != nil {
			logger.Error("Failed to count workers", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
			return
		}
		bookingCount, err := bookings.Count(ctx)
		if err != nil {
			logger.Error("Failed to count bookings", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"users":    userCount,
			"workers":  workerCount,
			"bookings": bookingCount,
		})
	}
}
