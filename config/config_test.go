package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maze4080/emotionsense/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "https://sn-watson-emotion.labs.skills.network/v1/watson.runtime.nlp.v1/NlpService/EmotionPredict", cfg.EmotionEndpoint)
	assert.Equal(t, "emotion_aggregated-workflow_lang_en_stock", cfg.EmotionModelID)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 24*time.Hour, cfg.CacheTTL)
	assert.Empty(t, cfg.ValkeyInitAddress)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("EMOTION_ENDPOINT", "http://localhost:9999/predict")
	t.Setenv("EMOTION_REQUEST_TIMEOUT", "2s")
	t.Setenv("KAFKA_BROKER", "kafka:9092")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999/predict", cfg.EmotionEndpoint)
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "kafka:9092", cfg.KafkaBroker)
}
