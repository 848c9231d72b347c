package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-exchanger/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveService_Resolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	sheet := "USD:EUR:0.7,EUR:GBP:1.2"

	tests := []struct {
		name      string
		mockSetup func() *ResolveService
		want      *models.Resolution
		wantErr   error
	}{
		{
			name: "cache_hit_skips_resolver",
			mockSetup: func() *ResolveService {
				cache := NewMockRateCache(ctrl)
				cache.EXPECT().
					GetResolvedRate(ctx, gomock.Any(), "USD", "EUR").
					Return(0.7, nil)

				return NewResolveService(NewMockSheetResolver(ctrl), cache, nil, nil)
			},
			want: &models.Resolution{Rate: 0.7},
		},
		{
			name: "cache_miss_resolves_and_fills_cache",
			mockSetup: func() *ResolveService {
				resolver := NewMockSheetResolver(ctrl)
				cache := NewMockRateCache(ctrl)

				cache.EXPECT().
					GetResolvedRate(ctx, gomock.Any(), "USD", "EUR").
					Return(0.0, errors.New("cache miss"))
				resolver.EXPECT().
					GetExchangeRatePath(ctx, sheet, "USD", "EUR").
					Return([]string{"USD", "EUR"}, 0.7, true)
				cache.EXPECT().
					SetResolvedRate(ctx, gomock.Any(), "USD", "EUR", 0.7).
					Return(nil)

				return NewResolveService(resolver, cache, nil, nil)
			},
			want: &models.Resolution{Rate: 0.7, Path: []string{"USD", "EUR"}},
		},
		{
			name: "cache_fill_failure_does_not_fail_request",
			mockSetup: func() *ResolveService {
				resolver := NewMockSheetResolver(ctrl)
				cache := NewMockRateCache(ctrl)

				cache.EXPECT().
					GetResolvedRate(ctx, gomock.Any(), "USD", "EUR").
					Return(0.0, errors.New("cache miss"))
				resolver.EXPECT().
					GetExchangeRatePath(ctx, sheet, "USD", "EUR").
					Return([]string{"USD", "EUR"}, 0.7, true)
				cache.EXPECT().
					SetResolvedRate(ctx, gomock.Any(), "USD", "EUR", 0.7).
					Return(errors.New("redis down"))

				return NewResolveService(resolver, cache, nil, nil)
			},
			want: &models.Resolution{Rate: 0.7, Path: []string{"USD", "EUR"}},
		},
		{
			name: "no_conversion_path",
			mockSetup: func() *ResolveService {
				resolver := NewMockSheetResolver(ctrl)
				resolver.EXPECT().
					GetExchangeRatePath(ctx, sheet, "USD", "EUR").
					Return(nil, 0.0, false)

				return NewResolveService(resolver, nil, nil, nil)
			},
			wantErr: ErrNoConversionPath,
		},
		{
			name: "no_cache_no_kafka",
			mockSetup: func() *ResolveService {
				resolver := NewMockSheetResolver(ctrl)
				resolver.EXPECT().
					GetExchangeRatePath(ctx, sheet, "USD", "EUR").
					Return([]string{"USD", "EUR"}, 0.7, true)

				return NewResolveService(resolver, nil, nil, nil)
			},
			want: &models.Resolution{Rate: 0.7, Path: []string{"USD", "EUR"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := tt.mockSetup()
			got, err := svc.Resolve(ctx, sheet, "USD", "EUR")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveService_Resolve_PublishesEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	sheet := "USD:EUR:0.7"

	resolver := NewMockSheetResolver(ctrl)
	writer := NewMockKafkaWriter(ctrl)

	resolver.EXPECT().
		GetExchangeRatePath(ctx, sheet, "USD", "EUR").
		Return([]string{"USD", "EUR"}, 0.7, true)

	var published kafka.Message
	writer.EXPECT().
		WriteMessages(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			require.Len(t, msgs, 1)
			published = msgs[0]
			return nil
		})

	svc := NewResolveService(resolver, nil, writer, nil)

	res, err := svc.Resolve(ctx, sheet, "USD", "EUR")
	require.NoError(t, err)
	assert.Equal(t, 0.7, res.Rate)

	var event models.ResolutionEvent
	require.NoError(t, json.Unmarshal(published.Value, &event))
	assert.Equal(t, string(published.Key), event.EventID)
	assert.Equal(t, "USD", event.FromCurrency)
	assert.Equal(t, "EUR", event.ToCurrency)
	assert.Equal(t, 0.7, event.Rate)
	assert.Equal(t, []string{"USD", "EUR"}, event.Path)
	assert.False(t, event.Cached)
}

func TestResolveService_Resolve_CacheHitPublishesCachedEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	sheet := "USD:EUR:0.7"

	cache := NewMockRateCache(ctrl)
	writer := NewMockKafkaWriter(ctrl)

	cache.EXPECT().
		GetResolvedRate(ctx, gomock.Any(), "USD", "EUR").
		Return(0.7, nil)

	var published kafka.Message
	writer.EXPECT().
		WriteMessages(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			require.Len(t, msgs, 1)
			published = msgs[0]
			return nil
		})

	svc := NewResolveService(NewMockSheetResolver(ctrl), cache, writer, nil)

	res, err := svc.Resolve(ctx, sheet, "USD", "EUR")
	require.NoError(t, err)
	assert.Equal(t, 0.7, res.Rate)

	var event models.ResolutionEvent
	require.NoError(t, json.Unmarshal(published.Value, &event))
	assert.True(t, event.Cached)
	assert.Equal(t, 0.7, event.Rate)
	assert.Empty(t, event.Path)
}

func TestResolveService_Resolve_PublishFailureDoesNotFailRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	sheet := "USD:EUR:0.7"

	resolver := NewMockSheetResolver(ctrl)
	writer := NewMockKafkaWriter(ctrl)

	resolver.EXPECT().
		GetExchangeRatePath(ctx, sheet, "USD", "EUR").
		Return([]string{"USD", "EUR"}, 0.7, true)
	writer.EXPECT().
		WriteMessages(ctx, gomock.Any()).
		Return(errors.New("broker unavailable"))

	svc := NewResolveService(resolver, nil, writer, nil)

	res, err := svc.Resolve(ctx, sheet, "USD", "EUR")
	require.NoError(t, err)
	assert.Equal(t, 0.7, res.Rate)
}
