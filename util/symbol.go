package util

import "strings"

// NormalizeSymbol is the canonical form used for cache keys and provider calls.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}
