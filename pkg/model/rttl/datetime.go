package rttl

import (
	"strings"
	"time"
)

// ParseAPIDatetime converts a timestamp value from an API payload into a
// *time.Time. ISO-8601 strings are accepted, a trailing Z is normalized to
// an explicit UTC offset, already-parsed values pass through unchanged and
// nil/empty input yields nil.
func ParseAPIDatetime(v interface{}) (*time.Time, error) {
	if v == nil {
		return nil, nil
	}

	switch t := v.(type) {
	case time.Time:
		return &t, nil
	case *time.Time:
		return t, nil
	case string:
		if t == "" {
			return nil, nil
		}
		s := t
		if strings.HasSuffix(s, "Z") {
			s = strings.TrimSuffix(s, "Z") + "+00:00"
		}
		for _, layout := range []string{
			"2006-01-02T15:04:05.999999999Z07:00",
			"2006-01-02T15:04:05Z07:00",
			"2006-01-02T15:04:05.999999999",
			"2006-01-02T15:04:05",
			"2006-01-02",
		} {
			if parsed, err := time.Parse(layout, s); err == nil {
				return &parsed, nil
			}
		}
		return nil, &ValidationError{
			Field:   "datetime",
			Message: "{" + t + "} is not an ISO-8601 timestamp",
		}
	}

	return nil, &ValidationError{Field: "datetime", Message: "unsupported value type"}
}
