package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-exchanger/internal/logger"
	"github.com/sbilibin2017/gw-exchanger/internal/metrics"
	"github.com/sbilibin2017/gw-exchanger/internal/models"
	"github.com/segmentio/kafka-go"
)

// ErrNoConversionPath is returned when no sequence of rates connects the
// requested currencies. An unknown currency resolves to the same error.
var ErrNoConversionPath = errors.New("no conversion path")

// SheetResolver resolves the best rate for a pair under a given rate sheet.
type SheetResolver interface {
	GetExchangeRatePath(ctx context.Context, sheet, from, to string) ([]string, float64, bool)
}

// RateCache memoizes resolved rates keyed by sheet fingerprint and pair.
type RateCache interface {
	GetResolvedRate(ctx context.Context, fingerprint, from, to string) (float64, error)
	SetResolvedRate(ctx context.Context, fingerprint, from, to string, rate float64) error
}

// KafkaWriter is the Kafka producer abstraction used for resolution events.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// ResolveService orchestrates a resolution: cache lookup first, then a
// fresh parse-and-search through the resolver, then a best-effort cache
// fill and event publish. Cache and Kafka failures never fail the request.
type ResolveService struct {
	resolver    SheetResolver
	cache       RateCache
	kafkaWriter KafkaWriter
	metrics     *metrics.ResolverMetrics
}

// NewResolveService creates a ResolveService. cache, kafkaWriter and m may
// be nil; the corresponding step is skipped.
func NewResolveService(resolver SheetResolver, cache RateCache, kafkaWriter KafkaWriter, m *metrics.ResolverMetrics) *ResolveService {
	return &ResolveService{
		resolver:    resolver,
		cache:       cache,
		kafkaWriter: kafkaWriter,
		metrics:     m,
	}
}

// Resolve returns the best conversion for the pair under the given sheet.
func (svc *ResolveService) Resolve(ctx context.Context, sheet, from, to string) (*models.Resolution, error) {
	start := time.Now()
	defer func() {
		if svc.metrics != nil {
			svc.metrics.ResolveDuration.Observe(time.Since(start).Seconds())
		}
	}()

	fingerprint := sheetFingerprint(sheet)

	if svc.cache != nil {
		rate, err := svc.cache.GetResolvedRate(ctx, fingerprint, from, to)
		if err == nil {
			svc.countCache("hit")
			svc.countResolution("resolved")
			svc.publishResolution(ctx, models.ResolutionEvent{
				EventID:      uuid.NewString(),
				Timestamp:    time.Now().Unix(),
				FromCurrency: from,
				ToCurrency:   to,
				Rate:         rate,
				Cached:       true,
			})
			// The cache stores only the scalar; the path is not retained.
			return &models.Resolution{Rate: rate}, nil
		}
		svc.countCache("miss")
	}

	path, rate, ok := svc.resolver.GetExchangeRatePath(ctx, sheet, from, to)
	if !ok {
		svc.countResolution("no_path")
		return nil, ErrNoConversionPath
	}

	if svc.cache != nil {
		if err := svc.cache.SetResolvedRate(ctx, fingerprint, from, to, rate); err != nil {
			logger.Log.Errorw("failed to cache resolved rate", "from", from, "to", to, "err", err)
		}
	}

	svc.publishResolution(ctx, models.ResolutionEvent{
		EventID:      uuid.NewString(),
		Timestamp:    time.Now().Unix(),
		FromCurrency: from,
		ToCurrency:   to,
		Rate:         rate,
		Path:         path,
	})

	svc.countResolution("resolved")
	return &models.Resolution{Rate: rate, Path: path}, nil
}

// publishResolution publishes a resolution event to Kafka.
func (svc *ResolveService) publishResolution(ctx context.Context, event models.ResolutionEvent) {
	if svc.kafkaWriter == nil {
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal resolution event", "event_id", event.EventID, "err", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish resolution event", "event_id", event.EventID, "err", err)
		return
	}

	logger.Log.Infow("resolution event published",
		"event_id", event.EventID,
		"from", event.FromCurrency,
		"to", event.ToCurrency,
		"rate", event.Rate,
	)
}

func (svc *ResolveService) countResolution(outcome string) {
	if svc.metrics != nil {
		svc.metrics.ResolutionsTotal.WithLabelValues(outcome).Inc()
	}
}

func (svc *ResolveService) countCache(result string) {
	if svc.metrics != nil {
		svc.metrics.CacheLookupsTotal.WithLabelValues(result).Inc()
	}
}

// sheetFingerprint identifies the exact sheet text for cache keying.
func sheetFingerprint(sheet string) string {
	sum := sha256.Sum256([]byte(sheet))
	return hex.EncodeToString(sum[:16])
}
