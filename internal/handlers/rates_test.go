package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetExchangeRatesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sheet := "USD:EUR:0.9,EUR:GBP:0.85"

	mockSvc := NewMockRatesReader(ctrl)
	mockSvc.EXPECT().
		GetExchangeRates(gomock.Any(), sheet, "USD").
		Return(map[string]float64{
			"USD": 1,
			"EUR": 0.9,
			"GBP": 0.765,
		})

	handler := NewGetExchangeRatesHandler(mockSvc, sheet, "USD")

	req := httptest.NewRequest(http.MethodGet, "/exchange/rates", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp ExchangeRatesResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "USD", resp.BaseCurrency)
	assert.Equal(t, map[string]float64{"USD": 1, "EUR": 0.9, "GBP": 0.765}, resp.Rates)
}

func TestGetExchangeRatesHandler_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockRatesReader(ctrl)
	mockSvc.EXPECT().
		GetExchangeRates(gomock.Any(), "", "USD").
		Return(map[string]float64{"USD": 1})

	handler := NewGetExchangeRatesHandler(mockSvc, "", "USD")

	req := httptest.NewRequest(http.MethodGet, "/exchange/rates", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp ExchangeRatesResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, map[string]float64{"USD": 1}, resp.Rates)
}
