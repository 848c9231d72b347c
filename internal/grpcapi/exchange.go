package grpcapi

import (
	"context"

	pb "github.com/sbilibin2017/proto-exchange/exchange"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/sbilibin2017/gw-exchanger/internal/logger"
)

// RateSource resolves rates over the configured rate sheet.
type RateSource interface {
	GetExchangeRate(ctx context.Context, sheet, from, to string) (float64, bool)
	GetExchangeRates(ctx context.Context, sheet, base string) map[string]float64
}

// ExchangeServer serves the ExchangeService gRPC API over a configured
// rate sheet and base currency.
type ExchangeServer struct {
	pb.UnimplementedExchangeServiceServer

	source RateSource
	sheet  string
	base   string
}

// NewExchangeServer creates an ExchangeServer.
func NewExchangeServer(source RateSource, sheet, base string) *ExchangeServer {
	return &ExchangeServer{
		source: source,
		sheet:  sheet,
		base:   base,
	}
}

// GetExchangeRates returns the best rate from the base currency to every
// reachable currency.
func (s *ExchangeServer) GetExchangeRates(ctx context.Context, _ *pb.Empty) (*pb.ExchangeRatesResponse, error) {
	rates := s.source.GetExchangeRates(ctx, s.sheet, s.base)

	out := make(map[string]float32, len(rates))
	for code, rate := range rates {
		out[code] = float32(rate)
	}

	return &pb.ExchangeRatesResponse{Rates: out}, nil
}

// GetExchangeRateForCurrency returns the best rate for a single pair, or
// NotFound when no conversion path connects the currencies.
func (s *ExchangeServer) GetExchangeRateForCurrency(ctx context.Context, req *pb.CurrencyRequest) (*pb.ExchangeRateResponse, error) {
	if req.GetFromCurrency() == "" || req.GetToCurrency() == "" {
		return nil, status.Error(codes.InvalidArgument, "from_currency and to_currency are required")
	}

	rate, ok := s.source.GetExchangeRate(ctx, s.sheet, req.GetFromCurrency(), req.GetToCurrency())
	if !ok {
		return nil, status.Errorf(codes.NotFound, "no conversion path from %s to %s", req.GetFromCurrency(), req.GetToCurrency())
	}

	logger.Log.Debugw("exchange rate served",
		"from", req.GetFromCurrency(),
		"to", req.GetToCurrency(),
		"rate", rate,
	)

	return &pb.ExchangeRateResponse{
		FromCurrency: req.GetFromCurrency(),
		ToCurrency:   req.GetToCurrency(),
		Rate:         float32(rate),
	}, nil
}
