package consumers

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"

	"github.com/maze4080/emotionsense/internal/clients"
	"github.com/maze4080/emotionsense/internal/clients/kafka_client"
	"github.com/maze4080/emotionsense/internal/models"
	"github.com/maze4080/emotionsense/internal/sentiment"
	"github.com/maze4080/emotionsense/internal/utils"
)

type publishFunc func(topic string, key string, payload any) error

type offsetCommitter interface {
	Commit(msg *kafka.Message) error
}

// pendingResult keeps the source message next to its result so the
// offset is only committed once the result has actually been published.
type pendingResult struct {
	result models.AnalysisResult
	msg    *kafka.Message
}

// AnalysisConsumer reads analysis requests off Kafka, runs them through
// the emotion backend (or the cache) and publishes scored results in
// batches. Offsets commit after the batch publish succeeds, so an
// unpublished result is redelivered instead of lost.
type AnalysisConsumer struct {
	client  *clients.EmotionClient
	cache   *clients.ValkeyClient
	healthy *atomic.Bool

	publish           publishFunc
	publishRetryDelay time.Duration

	resultBuffer *utils.BatchBuffer[pendingResult]
}

func NewAnalysisConsumer(client *clients.EmotionClient, cache *clients.ValkeyClient, healthy *atomic.Bool) *AnalysisConsumer {
	return &AnalysisConsumer{
		client:            client,
		cache:             cache,
		healthy:           healthy,
		publish:           kafka_client.PublishToKafka,
		publishRetryDelay: 2 * time.Second,
		resultBuffer:      utils.NewBatchBuffer[pendingResult](),
	}
}

func (ac *AnalysisConsumer) Start(ctx context.Context, consumer *kafka.Consumer) {
	iterator := kafka_client.NewMessageIterator(ctx, consumer)
	committer := kafka_client.NewCommitHandler(ctx, consumer)

	for {
		select {
		case <-ctx.Done():
			slog.Warn("[AnalysisConsumer] Consumer shutting down...")
			ac.publishResults(committer)
			return
		default:
			msg, err := iterator.Next()
			if err != nil {
				utils.HandleConsumerError(err)
				continue
			}

			var request models.AnalysisRequest
			if err := utils.DeserializeFromJSON(msg.Value, &request); err != nil {
				utils.HandleConsumerError(err)
				continue
			}

			result, ok := ac.handleRequest(ctx, request)
			if !ok {
				continue
			}

			ac.resultBuffer.Add(pendingResult{result: result, msg: msg})

			if ac.resultBuffer.Size() >= utils.BATCH_SIZE {
				ac.publishResults(committer)
			}
		}
	}
}

// handleRequest scores one request. Returns false when the request could
// not be scored so the offset stays uncommitted and the message is
// redelivered.
func (ac *AnalysisConsumer) handleRequest(ctx context.Context, request models.AnalysisRequest) (models.AnalysisResult, bool) {
	text := sentiment.CleanText(request.Text)
	polarity, polarityLabel := sentiment.LocalPolarity(text)

	result, cached := ac.cachedResult(ctx, text)
	if !cached {
		ac.waitUntilHealthy(ctx)
		if ctx.Err() != nil {
			return models.AnalysisResult{}, false
		}

		var err error
		result, err = ac.client.Analyze(ctx, text)
		if err != nil {
			slog.Error("[AnalysisConsumer] Failed to score request",
				slog.String("request_id", request.RequestID),
				slog.String("error", err.Error()))
			return models.AnalysisResult{}, false
		}

		if ac.cache != nil {
			_ = ac.cache.SetCachedResult(ctx, text, result)
		}
	}

	return models.AnalysisResult{
		AnalysisRequest: request,
		EmotionResult:   result,
		LocalPolarity:   polarity,
		LocalLabel:      polarityLabel,
		Timestamp:       time.Now().UTC(),
	}, true
}

func (ac *AnalysisConsumer) cachedResult(ctx context.Context, text string) (models.EmotionResult, bool) {
	if ac.cache == nil {
		return models.EmotionResult{}, false
	}

	result, ok := ac.cache.GetCachedResult(ctx, text)
	if ok {
		slog.Debug("[AnalysisConsumer] Cache hit",
			slog.String("dominant_emotion", result.DominantEmotion))
	}
	return result, ok
}

// waitUntilHealthy blocks while the backend health gate is down.
func (ac *AnalysisConsumer) waitUntilHealthy(ctx context.Context) {
	for !ac.healthy.Load() {
		slog.Warn("[AnalysisConsumer] Emotion backend unhealthy, waiting...")
		select {
		case <-ctx.Done():
			return
		case <-time.After(5 * time.Second):
		}
	}
}

// publishResults drains the buffer, publishes the batch, and only then
// commits the offsets of the messages it carried. A batch that cannot be
// published is dropped with its offsets uncommitted, so the requests come
// back on redelivery.
func (ac *AnalysisConsumer) publishResults(committer offsetCommitter) {
	if ac.resultBuffer.Size() == 0 {
		return
	}
	ac.resultBuffer.LogBatchProcessing("analysis_results")

	pending := ac.resultBuffer.GetAndClear()

	batch := make([]models.AnalysisResult, 0, len(pending))
	for _, p := range pending {
		batch = append(batch, p.result)
	}

	var err error
	for i := 0; i < 3; i++ {
		err = ac.publish(kafka_client.KAFKA_TOPIC_ANALYSIS_RESULTS, batch[0].RequestID, batch)
		if err == nil {
			break
		}
		slog.Warn("[AnalysisConsumer] Batch publishing failed",
			slog.Int("attempt", i+1),
			slog.String("error", err.Error()))
		time.Sleep(ac.publishRetryDelay)
	}
	if err != nil {
		slog.Error("[AnalysisConsumer] Dropping batch, offsets stay uncommitted for redelivery",
			slog.Int("batch_size", len(batch)),
			slog.String("error", err.Error()))
		return
	}

	for _, p := range pending {
		if err := committer.Commit(p.msg); err != nil {
			slog.Warn("[AnalysisConsumer] Failed to commit offset",
				slog.String("error", err.Error()))
		}
	}
}
