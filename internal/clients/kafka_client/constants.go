package kafka_client

import "time"

const (
	KAFKA_TOPIC_ANALYSIS_REQUESTS = "emotion-analysis-requests" // texts waiting for classification
	KAFKA_TOPIC_ANALYSIS_RESULTS  = "emotion-analysis-results"  // scored texts with dominant emotion
)

const (
	MAX_RETRIES = 5
	RETRY_DELAY = 2 * time.Second
)
