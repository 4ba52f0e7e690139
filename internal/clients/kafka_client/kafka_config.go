package kafka_client

import "github.com/maze4080/emotionsense/config"

type KafkaConfig struct {
	Broker  string
	GroupID string
}

func FromConfig(cfg config.Config) KafkaConfig {
	return KafkaConfig{
		Broker:  cfg.KafkaBroker,
		GroupID: cfg.KafkaGroupID,
	}
}
