package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/maze4080/emotionsense/config"
	"github.com/maze4080/emotionsense/internal/clients"
	"github.com/maze4080/emotionsense/internal/logging"
	"github.com/maze4080/emotionsense/internal/sentiment"
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

	text := strings.TrimSpace(strings.Join(os.Args[1:], " "))
	if text == "" {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			slog.Error("[Main] Failed to read stdin",
				slog.String("error", err.Error()))
			os.Exit(1)
		}
		text = strings.TrimSpace(string(raw))
	}

	client := clients.NewEmotionClient(cfg)

	result, err := client.Analyze(context.Background(), sentiment.CleanText(text))
	if err != nil {
		slog.Error("[Main] Analysis failed",
			slog.String("kind", failureKind(err)),
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		slog.Error("[Main] Failed to encode result",
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func failureKind(err error) string {
	switch {
	case errors.Is(err, clients.ErrTimedOut):
		return "timed_out"
	case errors.Is(err, clients.ErrConnectionFailed):
		return "connection_failed"
	case errors.Is(err, clients.ErrRequestRejected):
		return "request_rejected"
	case errors.Is(err, clients.ErrMalformedResponse):
		return "malformed_response"
	case errors.Is(err, clients.ErrUnexpectedSchema):
		return "unexpected_schema"
	default:
		return "unknown_failure"
	}
}
