package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds everything the adapter and worker need from the
// environment. Defaults match the known production backend so a bare
// deployment works without any env file.
type Config struct {
	EmotionEndpoint string        `envconfig:"EMOTION_ENDPOINT" default:"https://sn-watson-emotion.labs.skills.network/v1/watson.runtime.nlp.v1/NlpService/EmotionPredict"`
	EmotionModelID  string        `envconfig:"EMOTION_MODEL_ID" default:"emotion_aggregated-workflow_lang_en_stock"`
	RequestTimeout  time.Duration `envconfig:"EMOTION_REQUEST_TIMEOUT" default:"10s"`

	KafkaBroker  string `envconfig:"KAFKA_BROKER" default:"localhost:29092"`
	KafkaGroupID string `envconfig:"KAFKA_CONSUMER_GROUP_ID" default:"emotionsense-consumer-group"`

	ValkeyInitAddress string        `envconfig:"VALKEY_INIT_ADDRESS"`
	ValkeyPassword    string        `envconfig:"VALKEY_PASSWORD"`
	ValkeyTLS         bool          `envconfig:"VALKEY_TLS"`
	CacheTTL          time.Duration `envconfig:"EMOTION_CACHE_TTL" default:"24h"`
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
