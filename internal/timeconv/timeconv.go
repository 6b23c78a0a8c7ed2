// Package timeconv computes the dual epoch representations sluice adapters
// attach to parsed timestamps: a naive value interpreted against a local
// wall clock, and a timezone-aware value available only for UTC input.
package timeconv

import (
	"fmt"
	"strings"
	"time"
)

// layout matches RFC 5424 TIMESTAMP: fractional seconds are optional
// (1 to 6 digits on the wire) and the offset is Z or ±HH:MM.
const layout = "2006-01-02T15:04:05.999999Z07:00"

// Epochs converts an RFC 5424 timestamp string into epoch seconds.
//
// The naive value interprets the timestamp's wall-clock fields in loc,
// ignoring the embedded offset (loc nil means time.Local). The UTC value is
// populated only when the offset is literally Z or +00:00; otherwise it is
// nil. A leap second (:60) is folded into the following second.
func Epochs(ts string, loc *time.Location) (naive int64, utc *int64, err error) {
	if loc == nil {
		loc = time.Local
	}

	// RFC 5424 permits second 60 for leap seconds; time.Parse does not.
	var leap int64
	if len(ts) >= 19 && ts[17:19] == "60" {
		ts = ts[:17] + "59" + ts[19:]
		leap = 1
	}

	t, err := time.Parse(layout, ts)
	if err != nil {
		return 0, nil, fmt.Errorf("timestamp %q: %w", ts, err)
	}

	naive = time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, loc).Unix() + leap

	if strings.HasSuffix(ts, "Z") || strings.HasSuffix(ts, "+00:00") {
		u := t.Unix() + leap
		utc = &u
	}
	return naive, utc, nil
}
