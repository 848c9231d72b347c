package rates

import (
	"strconv"
	"strings"

	"github.com/sbilibin2017/gw-exchanger/internal/logger"
)

// ParseInto parses a rate sheet in FROM:TO:RATE,FROM:TO:RATE format into
// the store and returns the number of pairs accepted. Malformed segments
// and non-positive rates are skipped, never fatal. maxPairs bounds the
// number of accepted pairs; 0 means unlimited.
func ParseInto(store *Store, sheet string, maxPairs int) int {
	accepted := 0

	for _, segment := range strings.Split(sheet, ",") {
		if maxPairs > 0 && accepted >= maxPairs {
			logger.Log.Warnw("rate sheet truncated", "max_pairs", maxPairs)
			break
		}

		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}

		fields := strings.Split(segment, ":")
		if len(fields) != 3 {
			logger.Log.Debugw("skipping malformed rate segment", "segment", segment)
			continue
		}

		from := strings.TrimSpace(fields[0])
		to := strings.TrimSpace(fields[1])
		rateText := strings.TrimSpace(fields[2])
		if from == "" || to == "" || rateText == "" {
			logger.Log.Debugw("skipping rate segment with empty field", "segment", segment)
			continue
		}

		rate, err := strconv.ParseFloat(rateText, 64)
		if err != nil {
			logger.Log.Debugw("skipping rate segment with bad number", "segment", segment, "err", err)
			continue
		}

		if err := store.AddRate(from, to, rate); err != nil {
			logger.Log.Debugw("skipping rate segment", "segment", segment, "err", err)
			continue
		}
		accepted++
	}

	return accepted
}
