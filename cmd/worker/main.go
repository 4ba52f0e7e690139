package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/maze4080/emotionsense/config"
	"github.com/maze4080/emotionsense/internal/clients"
	"github.com/maze4080/emotionsense/internal/clients/kafka_client"
	"github.com/maze4080/emotionsense/internal/consumers"
	"github.com/maze4080/emotionsense/internal/logging"
	"github.com/maze4080/emotionsense/internal/monitoring"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("[Main] Failed to load configuration",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	kafkaCfg := kafka_client.FromConfig(cfg)
	for {
		err := kafka_client.InitProducer(kafkaCfg)
		if err == nil {
			break
		}

		slog.Warn("Kafka init failed, retrying...", slog.String("error", err.Error()))
		select {
		case <-ctx.Done():
			slog.Error("[Main] Shutdown requested before Kafka became available")
			return
		case <-time.After(5 * time.Second):
		}
	}
	defer kafka_client.CloseProducer()

	consumer, err := kafka_client.NewConsumer(kafkaCfg, kafka_client.KAFKA_TOPIC_ANALYSIS_REQUESTS)
	if err != nil {
		slog.Error("[Main] Failed to create consumer",
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer consumer.Close()

	client := clients.NewEmotionClient(cfg)

	var cache *clients.ValkeyClient
	if cfg.ValkeyInitAddress != "" {
		cache = clients.InitValkey(cfg)
		defer clients.CloseValkey()
	} else {
		slog.Info("[Main] No Valkey address configured, running without result cache")
	}

	healthy := &atomic.Bool{}
	healthy.Store(true)
	go monitoring.MonitorBackendHealth(ctx, client, healthy)

	consumers.NewAnalysisConsumer(client, cache, healthy).Start(ctx, consumer)
}
