package handlers

import (
	"net/http"

	"tidify/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the last observed dependency health. The server is
// useless without its datastore, so that failure downgrades the status.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()

	code := http.StatusOK
	overall := "ok"
	if !status.Datastore {
		code = http.StatusServiceUnavailable
		overall = "degraded"
	}
	c.JSON(code, gin.H{
		"status":     overall,
		"datastore":  status.Datastore,
		"redis":      status.Redis,
		"checked_at": status.CheckedAt,
	})
}
