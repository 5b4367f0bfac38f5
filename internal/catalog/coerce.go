package catalog

import (
	"encoding/json"
	"strconv"
	"strings"
)

// sentinel strings the AI emits for unreadable price cells
var numericSentinels = map[string]struct{}{
	"":     {},
	"-":    {},
	"n/a":  {},
	"na":   {},
	"nd":   {},
	"null": {},
}

// CoerceFloat converts arbitrary extracted values to a float64. It is a
// total function: malformed AI output yields def, never a panic or error.
// Strings may carry currency symbols, spaces, thousands separators and
// locale decimal commas ("1.234,56 €" -> 1234.56).
func CoerceFloat(v any, def float64) float64 {
	switch n := v.(type) {
	case nil:
		return def
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		if f, err := n.Float64(); err == nil {
			return f
		}
		return def
	case bool:
		return def
	case string:
		return coerceString(n, def)
	default:
		return def
	}
}

func coerceString(s string, def float64) float64 {
	s = strings.TrimSpace(strings.ToLower(s))
	if _, sentinel := numericSentinels[s]; sentinel {
		return def
	}

	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '€', '$', '£', ' ', ' ', '%':
			return -1
		}
		return r
	}, s)

	// "1.234,56" -> "1234.56"; "12,50" -> "12.50"
	if strings.Contains(cleaned, ",") {
		if strings.Contains(cleaned, ".") {
			cleaned = strings.ReplaceAll(cleaned, ".", "")
		}
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	}

	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return def
	}
	return f
}

// CoerceString returns the trimmed string form of v, or "" for non-strings.
func CoerceString(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}
