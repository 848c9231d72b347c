package models

// Resolution is the outcome of one rate-resolution request.
type Resolution struct {
	Rate float64  `json:"rate"`
	Path []string `json:"path"`
}

// ResolutionEvent is published to Kafka for every successful resolution.
type ResolutionEvent struct {
	EventID      string   `json:"event_id"`
	Timestamp    int64    `json:"timestamp"`
	FromCurrency string   `json:"from_currency"`
	ToCurrency   string   `json:"to_currency"`
	Rate         float64  `json:"rate"`
	Path         []string `json:"path"`
	Cached       bool     `json:"cached"`
}
