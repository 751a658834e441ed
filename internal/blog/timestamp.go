// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package blog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Timestamp is a point in time as sent by the backend.
//
// The backend serializes local date-times either as ISO-8601 strings (with or
// without a zone) or as arrays [year, month, day, hour, minute, second, nanos].
// Both decode here; zone-less values are read in the local time zone. A null
// or absent value decodes to the zero time.
type Timestamp struct {
	time.Time
}

// isoLayouts are tried in order for string timestamps.
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// UnmarshalJSON implements [json.Unmarshaler].
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case bytes.Equal(data, []byte("null")):
		ts.Time = time.Time{}
		return nil

	case len(data) > 0 && data[0] == '[':
		var parts []int
		if err := json.Unmarshal(data, &parts); err != nil {
			return fmt.Errorf("timestamp: %w", err)
		}
		if len(parts) < 3 {
			return fmt.Errorf("timestamp: array needs at least year, month, day, got %d parts", len(parts))
		}
		for len(parts) < 7 {
			parts = append(parts, 0)
		}
		ts.Time = time.Date(parts[0], time.Month(parts[1]), parts[2], parts[3], parts[4], parts[5], parts[6], time.Local)
		return nil

	case len(data) > 0 && data[0] == '"':
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("timestamp: %w", err)
		}
		if raw == "" {
			ts.Time = time.Time{}
			return nil
		}
		for _, layout := range isoLayouts {
			if parsed, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
				ts.Time = parsed
				return nil
			}
		}
		return fmt.Errorf("timestamp: unrecognized format %q", raw)

	default:
		millis, err := strconv.ParseInt(string(data), 10, 64)
		if err != nil {
			return fmt.Errorf("timestamp: unrecognized value %s", data)
		}
		ts.Time = time.UnixMilli(millis)
		return nil
	}
}

// MarshalJSON implements [json.Marshaler]; the zero time encodes as null.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(ts.Format(time.RFC3339Nano))
}

// Relative formats t relative to now the way the feed shows it:
// "just now", "N minutes ago", "N hours ago", "N days ago", "N weeks ago"
// (under four weeks), then an absolute "Jan 2, 2006". The zero time yields "".
func Relative(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}

	const (
		day  = 24 * time.Hour
		week = 7 * day
	)

	diff := now.Sub(t)
	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return plural(int(diff/time.Minute), "minute")
	case diff < day:
		return plural(int(diff/time.Hour), "hour")
	case diff < week:
		return plural(int(diff/day), "day")
	case diff < 4*week:
		return plural(int(diff/week), "week")
	default:
		return t.Format("Jan 2, 2006")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit + " ago"
	}
	return strconv.Itoa(n) + " " + unit + "s ago"
}
