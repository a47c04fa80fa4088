package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"tidify/models"
	"tidify/services/booking"
	"tidify/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes scheduling endpoints.
type BookingHandler struct {
	Service booking.BookingService
	Users   user.UserService
}

// identityFromContext rebuilds the authenticated identity placed in the
// context by the auth middleware.
func identityFromContext(c *gin.Context) *models.User {
	return &models.User{
		Username: c.GetString("username"),
		Role:     c.GetString("role"),
	}
}

// AvailabilityHandler lists the open start times for a worker on a date.
// Duration is in minutes and defaults to one hour.
func (h *BookingHandler) AvailabilityHandler(c *gin.Context) {
	logger := getLogger(c)

	workerUsername := c.Param("username")
	date := c.Query("date")
	duration, err := strconv.Atoi(c.DefaultQuery("duration", "60"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "duration must be an integer number of minutes"})
		return
	}

	slots, err := h.Service.AvailableSlots(c.Request.Context(), workerUsername, date, duration)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrWorkerNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, booking.ErrInvalidDuration), errors.Is(err, booking.ErrInvalidDate):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to compute availability", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute availability"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"worker":   workerUsername,
		"date":     date,
		"duration": duration,
		"slots":    slots,
	})
}

// CreateHandler books a worker for the authenticated user.
func (h *BookingHandler) CreateHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	// The confirmation email needs the full account row, not just the
	// identity claims.
	customer, err := h.Users.GetByUsername(c.Request.Context(), c.GetString("username"))
	if err != nil {
		logger.Error("Failed to resolve booking customer", zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication error"})
		return
	}

	b, emailSent, err := h.Service.Create(c.Request.Context(), customer, req)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrWorkerNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, booking.ErrInvalidDuration),
			errors.Is(err, booking.ErrInvalidDate),
			errors.Is(err, booking.ErrInvalidStart):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, booking.ErrSlotUnavailable):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create booking", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		}
		return
	}

	message := "Booking created successfully."
	if !emailSent {
		message += " (Email not sent; check SMTP settings.)"
	}
	c.JSON(http.StatusCreated, gin.H{
		"booking":    b,
		"message":    message,
		"email_sent": emailSent,
	})
}

// ListHandler returns the requester's bookings, role-filtered and sorted.
func (h *BookingHandler) ListHandler(c *gin.Context) {
	logger := getLogger(c)

	rows, err := h.Service.ListFor(c.Request.Context(), identityFromContext(c))
	if err != nil {
		logger.Error("Failed to list bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list bookings"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// CancelHandler cancels a booking on behalf of its customer, its worker,
// or an admin.
func (h *BookingHandler) CancelHandler(c *gin.Context) {
	logger := getLogger(c)

	b, err := h.Service.Cancel(c.Request.Context(), c.Param("id"), identityFromContext(c))
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, booking.ErrNotAllowed):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to cancel booking", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel booking"})
		}
		return
	}
	c.JSON(http.StatusOK, b)
}
