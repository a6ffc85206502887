package util

import (
	"fmt"
	"math"
)

func formatToTwo(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// FormatMoney renders v as "$1,234.56".
func FormatMoney(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return sign + "$" + groupThousands(formatToTwo(v))
}

// FormatSignedPercent renders v as "+1.35%" or "-0.42%".
func FormatSignedPercent(v float64) string {
	if v >= 0 {
		return "+" + formatToTwo(v) + "%"
	}
	return formatToTwo(v) + "%"
}

// FormatLargeNumber renders an absolute amount with a T/B/M suffix.
func FormatLargeNumber(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1e12:
		return fmt.Sprintf("$%.2fT", v/1e12)
	case abs >= 1e9:
		return fmt.Sprintf("$%.2fB", v/1e9)
	case abs >= 1e6:
		return fmt.Sprintf("$%.2fM", v/1e6)
	default:
		return FormatMoney(v)
	}
}

func groupThousands(s string) string {
	intPart, frac := s, ""
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			intPart, frac = s[:i], s[i:]
			break
		}
	}
	if len(intPart) <= 3 {
		return s
	}

	out := make([]byte, 0, len(intPart)+len(intPart)/3)
	lead := len(intPart) % 3
	if lead > 0 {
		out = append(out, intPart[:lead]...)
	}
	for i := lead; i < len(intPart); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, intPart[i:i+3]...)
	}
	return string(out) + frac
}
