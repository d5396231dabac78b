package core

import (
	"fmt"
	"strings"
	"time"
)

// primaryLayouts are the unambiguous formats tried first, in order.
// Slash-separated dates are month-first here; day-first is only a fallback.
var primaryLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"1/2/2006",
	"2006/1/2",
	"Jan 2, 2006",
	"January 2, 2006",
	"2-Jan-2006",
}

// YearMonth resolves a free-text date string to a zero-padded "YYYY-MM"
// bucket key.
//
// The primary pass tries the unambiguous layouts above. If all fail and the
// input is of the form A/B/C, the string is reinterpreted as day/month/year
// and retried; "31/01/2024" fails the month-first layout but resolves to
// "2024-01" through the fallback. Empty or unresolvable input returns
// ok=false and callers map that to the MonthUnknown sentinel.
func YearMonth(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	for _, layout := range primaryLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return formatYearMonth(t), true
		}
	}
	// Fallback: three slash-separated tokens read as day/month/year.
	if parts := strings.Split(s, "/"); len(parts) == 3 {
		if t, err := time.Parse("2/1/2006", s); err == nil {
			return formatYearMonth(t), true
		}
	}
	return "", false
}

func formatYearMonth(t time.Time) string {
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}

// IsYearMonth reports whether s is a well-formed "YYYY-MM" key. The date
// filter only applies to months in this shape; the MonthUnknown sentinel and
// anything malformed fall outside every date range.
func IsYearMonth(s string) bool {
	if len(s) != 7 || s[4] != '-' {
		return false
	}
	for i, r := range s {
		if i == 4 {
			continue
		}
		if r < '0' || r > '9' {
			return false
		}
	}
	mm := (int(s[5]-'0') * 10) + int(s[6]-'0')
	return mm >= 1 && mm <= 12
}
