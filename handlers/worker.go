package handlers

import (
	"errors"
	"net/http"

	"tidify/models"
	"tidify/services/worker"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WorkerHandler exposes worker profile endpoints.
type WorkerHandler struct {
	Service worker.WorkerService
}

// ListHandler lists worker profiles, optionally narrowed by city and skill
// query filters.
func (h *WorkerHandler) ListHandler(c *gin.Context) {
	logger := getLogger(c)

	filters := models.WorkerFilters{
		City:  c.Query("city"),
		Skill: c.Query("skill"),
	}
	workers, err := h.Service.ListWorkers(c.Request.Context(), filters)
	if err != nil {
		logger.Error("Failed to list workers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list workers"})
		return
	}
	c.JSON(http.StatusOK, workers)
}

// GetHandler returns a single worker's profile.
func (h *WorkerHandler) GetHandler(c *gin.Context) {
	logger := getLogger(c)

	w, err := h.Service.GetWorker(c.Request.Context(), c.Param("username"))
	if err != nil {
		if errors.Is(err, worker.ErrWorkerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to fetch worker", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve worker"})
		return
	}
	c.JSON(http.StatusOK, w)
}

// GetMyProfileHandler returns the caller's worker profile, or a default
// prefill when none has been saved.
func (h *WorkerHandler) GetMyProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	username := c.GetString("username")
	profile, err := h.Service.GetProfile(c.Request.Context(), username)
	if err != nil {
		logger.Error("Failed to fetch worker profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// SaveProfileHandler validates and upserts the caller's worker profile.
func (h *WorkerHandler) SaveProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.WorkerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	username := c.GetString("username")
	profile, err := h.Service.SaveProfile(c.Request.Context(), username, req)
	if err != nil {
		var valErr worker.ProfileValidationError
		if errors.As(err, &valErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": valErr.Reason})
			return
		}
		logger.Error("Failed to save worker profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}
