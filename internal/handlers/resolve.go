package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-exchanger/internal/logger"
	"github.com/sbilibin2017/gw-exchanger/internal/models"
	"github.com/sbilibin2017/gw-exchanger/internal/services"
)

// Resolver defines the interface that the resolution service must implement.
type Resolver interface {
	Resolve(ctx context.Context, sheet, from, to string) (*models.Resolution, error)
}

// ResolveRequest represents the JSON body for a rate resolution
// swagger:model ResolveRequest
type ResolveRequest struct {
	// Rate sheet in FROM:TO:RATE,FROM:TO:RATE format
	// required: true
	// default: AUD:CAD:0.7,CAD:GBP:1.2
	Rates string `json:"rates"`

	// Source currency code
	// required: true
	// default: AUD
	FromCurrency string `json:"from_currency"`

	// Target currency code
	// required: true
	// default: GBP
	ToCurrency string `json:"to_currency"`
}

// ResolveResponse represents a successful resolution response
// swagger:model ResolveResponse
type ResolveResponse struct {
	// Best conversion rate found
	// default: 0.84
	Rate float64 `json:"rate"`

	// Currency path realizing the rate, when freshly computed
	Path []string `json:"path,omitempty"`
}

// ResolveErrorResponse represents an error response for resolution
// swagger:model ResolveErrorResponse
type ResolveErrorResponse struct {
	// Error message
	// default: no conversion path
	Error string `json:"error"`
}

// NewResolveHandler returns an HTTP handler for rate resolution.
// @Summary Resolve an exchange rate
// @Description Parses the submitted rate sheet and returns the best conversion rate between the two currencies, with the currency path when available
// @Tags resolve
// @Accept json
// @Produce json
// @Param resolveRequest body handlers.ResolveRequest true "Rate resolution request"
// @Success 200 {object} handlers.ResolveResponse "Best rate found"
// @Failure 400 {object} handlers.ResolveErrorResponse "Invalid request body"
// @Failure 404 {object} handlers.ResolveErrorResponse "No conversion path between the currencies"
// @Failure 401 {object} handlers.ResolveErrorResponse "Unauthorized"
// @Router /resolve [post]
// @Security BearerAuth
func NewResolveHandler(svc Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ResolveRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ResolveErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		if req.FromCurrency == "" || req.ToCurrency == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ResolveErrorResponse{
				Error: "from_currency and to_currency are required",
			})
			return
		}

		res, err := svc.Resolve(r.Context(), req.Rates, req.FromCurrency, req.ToCurrency)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNoConversionPath):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ResolveErrorResponse{
					Error: "no conversion path",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ResolveErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ResolveResponse{
			Rate: res.Rate,
			Path: res.Path,
		})
	}
}
