package monitoring

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/maze4080/emotionsense/internal/clients"
)

const HEALTHCHECK_TIMER = 15

// MonitorBackendHealth probes the emotion backend on a fixed interval and
// publishes the verdict through healthy. The worker consults the flag
// before each remote call.
func MonitorBackendHealth(ctx context.Context, client *clients.EmotionClient, healthy *atomic.Bool) {
	ticker := time.NewTicker(time.Second * HEALTHCHECK_TIMER)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			isHealthy := client.HealthCheck()
			healthy.Store(isHealthy)
			if !isHealthy {
				slog.Warn("[HealthCheck] Emotion backend is unhealthy")
			}
		}
	}
}
