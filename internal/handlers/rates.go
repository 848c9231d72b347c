package handlers

import (
	"context"
	"encoding/json"
	"net/http"
)

// RatesReader defines the interface that the rates service must implement.
type RatesReader interface {
	GetExchangeRates(ctx context.Context, sheet, base string) map[string]float64
}

// ExchangeRatesResponse represents the full set of rates from the base currency
// swagger:model ExchangeRatesResponse
type ExchangeRatesResponse struct {
	// Base currency code
	// default: USD
	BaseCurrency string `json:"base_currency"`

	// Best rate from the base currency to each reachable currency
	Rates map[string]float64 `json:"rates"`
}

// ExchangeRatesErrorResponse represents an error response for the rates listing
// swagger:model ExchangeRatesErrorResponse
type ExchangeRatesErrorResponse struct {
	// Error message
	// default: unauthorized
	Error string `json:"error"`
}

// NewGetExchangeRatesHandler returns an HTTP handler listing exchange rates
// from the configured base currency over the configured rate sheet.
// @Summary Get exchange rates
// @Description Returns the best conversion rate from the base currency to every reachable currency
// @Tags exchange
// @Produce json
// @Success 200 {object} handlers.ExchangeRatesResponse "Exchange rates"
// @Failure 401 {object} handlers.ExchangeRatesErrorResponse "Unauthorized"
// @Router /exchange/rates [get]
// @Security BearerAuth
func NewGetExchangeRatesHandler(svc RatesReader, sheet, base string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rates := svc.GetExchangeRates(r.Context(), sheet, base)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ExchangeRatesResponse{
			BaseCurrency: base,
			Rates:        rates,
		})
	}
}
