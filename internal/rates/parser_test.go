package rates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInto(t *testing.T) {
	tests := []struct {
		name         string
		sheet        string
		maxPairs     int
		wantAccepted int
		wantEdges    int
	}{
		{
			name:         "single pair",
			sheet:        "USD:EUR:0.9",
			wantAccepted: 1,
			wantEdges:    2,
		},
		{
			name:         "multiple pairs",
			sheet:        "USD:EUR:0.9,EUR:GBP:0.85,USD:JPY:147",
			wantAccepted: 3,
			wantEdges:    6,
		},
		{
			name:         "empty sheet",
			sheet:        "",
			wantAccepted: 0,
			wantEdges:    0,
		},
		{
			name:         "whitespace around segments and fields",
			sheet:        " USD : EUR : 0.9 , EUR:GBP:0.85 ",
			wantAccepted: 2,
			wantEdges:    4,
		},
		{
			name:         "empty segments skipped",
			sheet:        ",USD:EUR:0.9,,",
			wantAccepted: 1,
			wantEdges:    2,
		},
		{
			name:         "wrong field count skipped",
			sheet:        "USD:EUR,USD:EUR:0.9:extra,EUR:GBP:0.85",
			wantAccepted: 1,
			wantEdges:    2,
		},
		{
			name:         "non numeric rate skipped",
			sheet:        "USD:EUR:abc,EUR:GBP:0.85",
			wantAccepted: 1,
			wantEdges:    2,
		},
		{
			name:         "non positive rates skipped",
			sheet:        "USD:EUR:0,USD:GBP:-1,EUR:GBP:0.85",
			wantAccepted: 1,
			wantEdges:    2,
		},
		{
			name:         "empty tokens skipped",
			sheet:        ":EUR:0.9,USD::0.9,USD:EUR:",
			wantAccepted: 0,
			wantEdges:    0,
		},
		{
			name:         "max pairs bounds accepted",
			sheet:        "USD:EUR:0.9,EUR:GBP:0.85,USD:JPY:147",
			maxPairs:     2,
			wantAccepted: 2,
			wantEdges:    4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore()
			accepted := ParseInto(store, tt.sheet, tt.maxPairs)
			assert.Equal(t, tt.wantAccepted, accepted)
			assert.Equal(t, tt.wantEdges, store.EdgeCount())
		})
	}
}

func TestParseInto_DuplicatePairLastWriteWins(t *testing.T) {
	store := NewStore()
	accepted := ParseInto(store, "USD:EUR:0.8,USD:EUR:0.9", 0)
	assert.Equal(t, 2, accepted)

	rate, ok := store.DirectRate("USD", "EUR")
	require.True(t, ok)
	assert.Equal(t, 0.9, rate)
}
