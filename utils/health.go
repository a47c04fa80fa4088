// File: tidify/utils/health.go
package utils

import (
	"context"
	"sync"
	"time"
)

// Pinger reports connectivity to a backing service.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthStatus is the last observed connectivity of the server's
// dependencies.
type HealthStatus struct {
	Datastore bool      `json:"datastore"`
	Redis     bool      `json:"redis"`
	CheckedAt time.Time `json:"checked_at"`
}

var (
	healthMu     sync.RWMutex
	healthStatus HealthStatus
)

// GetHealthStatus returns a snapshot of the most recent probe.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return healthStatus
}

// StartHealthMonitor probes the datastore and the auth cache on a fixed
// interval and records the result for the health endpoint. It performs one
// synchronous probe before returning, then runs until ctx is cancelled.
func StartHealthMonitor(ctx context.Context, datastore Pinger, interval time.Duration) {
	probe := func() {
		probeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		status := HealthStatus{CheckedAt: time.Now().UTC()}
		if datastore != nil {
			if err := datastore.Ping(probeCtx); err != nil {
				GetLogger().Sugar().Warnf("Datastore health check failed: %v", err)
			} else {
				status.Datastore = true
			}
		}
		if client := GetAuthCacheClient(); client != nil {
			if err := client.Ping(probeCtx).Err(); err != nil {
				GetLogger().Sugar().Warnf("Redis health check failed: %v", err)
			} else {
				status.Redis = true
			}
		}

		healthMu.Lock()
		healthStatus = status
		healthMu.Unlock()
	}

	probe()
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				probe()
			}
		}
	}()
}
