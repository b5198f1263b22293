package dto

import "time"

var dateLayouts = []string{"2006-01-02", time.RFC3339, time.RFC3339Nano}

// ParseDate accepts a calendar date or an RFC3339 timestamp.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func coerceDate(s string) time.Time {
	t, _ := ParseDate(s)
	return t
}

func coerceDatePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, ok := ParseDate(s)
	if !ok {
		return nil
	}
	return &t
}
