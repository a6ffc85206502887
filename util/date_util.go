package util

import (
	"strings"
	"time"
)

var (
	isoLayout     = "2006-01-02"
	displayLayout = "Jan 2, 2006"
)

// FormatDate renders t as YYYY-MM-DD, the layout every provider accepts.
func FormatDate(t time.Time) string {
	return t.Format(isoLayout)
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(isoLayout, strings.TrimSpace(s))
}

// HumanDate turns "2025-01-30" into "Jan 30, 2025". Unparseable input is
// returned trimmed but otherwise unchanged.
func HumanDate(s string) string {
	t, err := ParseDate(s)
	if err != nil {
		return strings.TrimSpace(s)
	}
	return t.Format(displayLayout)
}
