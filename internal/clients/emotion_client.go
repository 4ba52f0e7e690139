package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/maze4080/emotionsense/config"
	"github.com/maze4080/emotionsense/internal/models"
)

// EmotionClient is the adapter around the remote emotion-classification
// service. One Analyze call is one outbound POST; there are no retries
// and no state shared between calls, so concurrent use is safe.
type EmotionClient struct {
	httpClient *http.Client
	endpoint   string
	modelID    string
}

func NewEmotionClient(cfg config.Config) *EmotionClient {
	slog.Info("[EmotionClient] Initializing client",
		slog.String("endpoint", cfg.EmotionEndpoint),
		slog.String("model_id", cfg.EmotionModelID),
		slog.Duration("timeout", cfg.RequestTimeout))

	return &EmotionClient{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		endpoint: cfg.EmotionEndpoint,
		modelID:  cfg.EmotionModelID,
	}
}

type emotionRequest struct {
	RawDocument rawDocument `json:"raw_document"`
}

type rawDocument struct {
	Text string `json:"text"`
}

// emotionResponse mirrors the backend body. Every level is a pointer so
// schema drift surfaces as a named missing key instead of a zero value.
type emotionResponse struct {
	Document *struct {
		Emotion *struct {
			Predictions []struct {
				Emotion *models.EmotionScores `json:"emotion"`
			} `json:"predictions"`
		} `json:"emotion"`
	} `json:"document"`
}

// Analyze sends text to the backend and returns the five scores plus the
// dominant label. Failures come back as one of the kinds in errors.go.
func (c *EmotionClient) Analyze(ctx context.Context, text string) (models.EmotionResult, error) {
	var result models.EmotionResult
	start := time.Now()

	body, err := json.Marshal(emotionRequest{RawDocument: rawDocument{Text: text}})
	if err != nil {
		slog.Error("[EmotionClient] Failed to marshal request",
			slog.String("error", err.Error()))
		return result, fmt.Errorf("%w: marshal request: %v", ErrUnknownFailure, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		slog.Error("[EmotionClient] Failed to build request",
			slog.String("error", err.Error()))
		return result, fmt.Errorf("%w: build request: %v", ErrUnknownFailure, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("grpc-metadata-mm-model-id", c.modelID)
	req.Header.Set("User-Agent", USER_AGENT)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		kind := classifyTransportError(err)
		slog.Error("[EmotionClient] Request failed",
			slog.String("kind", kind.Error()),
			slog.String("error", err.Error()),
			slog.Duration("elapsed", time.Since(start)))
		return result, fmt.Errorf("%w: %v", kind, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		slog.Error("[EmotionClient] Failed to read response",
			slog.String("error", err.Error()))
		return result, fmt.Errorf("%w: read response: %v", ErrUnknownFailure, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.Error("[EmotionClient] Backend rejected request",
			slog.Int("status", resp.StatusCode),
			getPreview(respBody))
		return result, &RequestRejectedError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var parsed emotionResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		slog.Error("[EmotionClient] Failed to unmarshal response",
			slog.String("error", err.Error()),
			getPreview(respBody))
		return result, &MalformedResponseError{Cause: err}
	}

	scores, err := extractScores(parsed, respBody)
	if err != nil {
		return result, err
	}

	result = models.EmotionResult{
		EmotionScores:   *scores,
		DominantEmotion: scores.Dominant(),
	}

	slog.Info("[EmotionClient] Analysis successful",
		slog.String("dominant_emotion", result.DominantEmotion),
		slog.Duration("elapsed", time.Since(start)))

	return result, nil
}

// HealthCheck probes the backend with a minimal document. Any response
// short of a 5xx counts as healthy; the service answering at all is the
// signal we care about.
func (c *EmotionClient) HealthCheck() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	body, _ := json.Marshal(emotionRequest{RawDocument: rawDocument{Text: "ping"}})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return false
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("grpc-metadata-mm-model-id", c.modelID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode < 500
}

func extractScores(parsed emotionResponse, respBody []byte) (*models.EmotionScores, error) {
	missing := ""
	switch {
	case parsed.Document == nil:
		missing = "document"
	case parsed.Document.Emotion == nil:
		missing = "emotion"
	case len(parsed.Document.Emotion.Predictions) == 0:
		missing = "predictions"
	case parsed.Document.Emotion.Predictions[0].Emotion == nil:
		missing = "predictions[0].emotion"
	}

	if missing != "" {
		slog.Error("[EmotionClient] Unexpected response schema",
			slog.String("missing_key", missing),
			getPreview(respBody))
		return nil, &SchemaError{MissingKey: missing, Body: string(respBody)}
	}

	return parsed.Document.Emotion.Predictions[0].Emotion, nil
}

func classifyTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimedOut
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ErrTimedOut
	}
	return ErrConnectionFailed
}

func getPreview(respBody []byte) slog.Attr {
	raw := string(respBody)
	if len(raw) > 120 {
		raw = raw[:120]
	}
	return slog.String("raw_response", raw)
}
