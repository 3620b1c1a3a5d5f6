package timex

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// epochMillisThreshold separates epoch seconds from epoch milliseconds.
// 1e11 seconds is far in the future, 1e11 milliseconds is early 1973.
const epochMillisThreshold = 1e11

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Time is a timestamp decoded from whatever the server sent: an RFC3339
// string, a few looser layouts, or a number of epoch seconds/milliseconds.
// null, "" and absent values leave the zero time.
type Time struct {
	time.Time
}

// MarshalJSON writes RFC3339 with nanoseconds, or null for the zero time.
func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.UTC().Format(time.RFC3339Nano))
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Time) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		parsed, err := ParseTime(s)
		if err != nil {
			return err
		}
		t.Time = parsed
		return nil
	}

	n, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return fmt.Errorf("invalid timestamp %s: %w", string(b), err)
	}
	t.Time = FromEpoch(n)
	return nil
}

// ParseTime parses s with the supported layouts. Numeric strings are
// treated as epoch values.
func ParseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed.UTC(), nil
		}
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return FromEpoch(n), nil
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
}

// FromEpoch converts epoch seconds or milliseconds to UTC time.
func FromEpoch(n float64) time.Time {
	if n >= epochMillisThreshold || n <= -epochMillisThreshold {
		return time.UnixMilli(int64(n)).UTC()
	}
	sec := int64(n)
	nsec := int64((n - float64(sec)) * float64(time.Second))
	return time.Unix(sec, nsec).UTC()
}
