package clients

import (
	"context"
	"crypto/sha256"
	"crypto/tls"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/maze4080/emotionsense/config"
	"github.com/maze4080/emotionsense/internal/models"
)

var (
	valkeyInstance *ValkeyClient
	valkeyOnce     sync.Once
)

// ValkeyClient caches emotion results keyed by a hash of the input text.
// Entries expire after the configured TTL; the cache is best-effort and
// every miss or cache error just falls through to the backend.
type ValkeyClient struct {
	Client valkey.Client
	ttl    time.Duration
}

func InitValkey(cfg config.Config) *ValkeyClient {
	valkeyOnce.Do(func() {
		opts := valkey.ClientOption{
			InitAddress: []string{
				cfg.ValkeyInitAddress,
			},
			Password:         cfg.ValkeyPassword,
			ConnWriteTimeout: 5 * time.Second,
			SelectDB:         0,
		}

		if cfg.ValkeyTLS {
			opts.TLSConfig = &tls.Config{InsecureSkipVerify: false}
		}

		client, err := valkey.NewClient(opts)
		if err != nil {
			panic(fmt.Errorf("[ValkeyClient] failed to create Valkey: %w", err))
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
		defer cancel()

		c := client.Do(ctx, client.B().Ping().Build())
		if c.Error() != nil {
			panic(fmt.Errorf("[ValkeyClient] failed to ping Valkey: %w", c.Error()))
		}

		slog.Info("[ValkeyClient] Successfully connected to valkey")

		valkeyInstance = &ValkeyClient{Client: client, ttl: cfg.CacheTTL}
	})
	return valkeyInstance
}

func CloseValkey() {
	if valkeyInstance != nil {
		valkeyInstance.Client.Close()
	}
}

// ResultCacheKey derives the cache key for a piece of analyzed text.
func ResultCacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return VALKEY_RESULT_KEY_PREFIX + hex.EncodeToString(sum[:])
}

// GetCachedResult returns the cached result for text, or false on a miss
// or any cache failure.
func (vc *ValkeyClient) GetCachedResult(ctx context.Context, text string) (models.EmotionResult, bool) {
	var result models.EmotionResult

	key := ResultCacheKey(text)
	res := vc.Client.Do(ctx, vc.Client.B().Get().Key(key).Build())
	if res.Error() != nil {
		if !valkey.IsValkeyNil(res.Error()) {
			slog.Warn("[ValkeyClient] Cache lookup failed",
				slog.String("error", res.Error().Error()))
		}
		return result, false
	}

	raw, err := res.AsBytes()
	if err != nil {
		return result, false
	}

	if err := json.Unmarshal(raw, &result); err != nil {
		slog.Warn("[ValkeyClient] Failed to decode cached result, dropping entry",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return result, false
	}

	return result, true
}

// SetCachedResult stores a result under the text's key with the cache TTL.
func (vc *ValkeyClient) SetCachedResult(ctx context.Context, text string, result models.EmotionResult) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return err
	}

	key := ResultCacheKey(text)
	cmd := vc.Client.B().Set().Key(key).Value(string(raw)).
		Ex(vc.ttl).Build()

	if res := vc.Client.Do(ctx, cmd); res.Error() != nil {
		slog.Warn("[ValkeyClient] Failed to cache result",
			slog.String("key", key),
			slog.String("error", res.Error().Error()))
		return res.Error()
	}

	return nil
}
