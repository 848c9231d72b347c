package facades

import (
	"context"

	"github.com/sbilibin2017/gw-exchanger/internal/logger"
	"github.com/sbilibin2017/gw-exchanger/internal/rates"
)

// RatesFacade composes the rate-sheet parser, the rate graph and the
// best-rate resolver into single-call operations. A fresh graph is built
// from the sheet on every call and discarded afterwards, so the facade
// holds no state and is safe for concurrent use.
type RatesFacade struct {
	maxPairs int
}

// NewRatesFacade creates a facade. maxPairs bounds the number of pairs
// accepted from any one sheet; 0 means unlimited.
func NewRatesFacade(maxPairs int) *RatesFacade {
	return &RatesFacade{maxPairs: maxPairs}
}

// GetExchangeRate returns the best conversion rate from one currency to
// another under the given rate sheet. The bool is false when no conversion
// path exists, which covers unknown currencies as well; callers cannot
// distinguish the two.
func (f *RatesFacade) GetExchangeRate(ctx context.Context, sheet, from, to string) (float64, bool) {
	store := rates.NewStore()
	accepted := rates.ParseInto(store, sheet, f.maxPairs)

	rate, ok := rates.BestRate(store, from, to)

	logger.Log.Debugw("resolved exchange rate",
		"from", from,
		"to", to,
		"pairs_accepted", accepted,
		"rate", rate,
		"found", ok,
	)

	return rate, ok
}

// GetExchangeRatePath is the path variant of GetExchangeRate: it also
// returns the currency sequence achieving the best rate.
func (f *RatesFacade) GetExchangeRatePath(ctx context.Context, sheet, from, to string) ([]string, float64, bool) {
	store := rates.NewStore()
	rates.ParseInto(store, sheet, f.maxPairs)
	return rates.BestPath(store, from, to)
}

// GetExchangeRates resolves the best rate from base to every currency in
// the sheet. Currencies unreachable from base are omitted.
func (f *RatesFacade) GetExchangeRates(ctx context.Context, sheet, base string) map[string]float64 {
	store := rates.NewStore()
	rates.ParseInto(store, sheet, f.maxPairs)

	out := make(map[string]float64)
	for _, code := range store.Currencies() {
		if rate, ok := rates.BestRate(store, base, code); ok {
			out[code] = rate
		}
	}
	return out
}
