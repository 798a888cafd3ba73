package normalization

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// AsString trims and returns the string representation of value when possible.
func AsString(value any) string {
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

// AsInt coerces the numeric value kinds produced by JSON decoding into an int.
func AsInt(value any) int {
	switch typed := value.(type) {
	case float64:
		return int(typed)
	case float32:
		return int(typed)
	case int:
		return typed
	case int32:
		return int(typed)
	case int64:
		return int(typed)
	case string:
		if parsed, err := strconv.Atoi(strings.TrimSpace(typed)); err == nil {
			return parsed
		}
	}
	return 0
}

// AsDecimal coerces currency-like values into a decimal. The upstream API is
// inconsistent about whether money arrives as a number or a numeric string, so
// both are accepted; anything unparseable collapses to zero.
func AsDecimal(value any) decimal.Decimal {
	switch typed := value.(type) {
	case float64:
		return decimal.NewFromFloat(typed)
	case float32:
		return decimal.NewFromFloat32(typed)
	case int:
		return decimal.NewFromInt(int64(typed))
	case int64:
		return decimal.NewFromInt(typed)
	case string:
		if trimmed := strings.TrimSpace(typed); trimmed != "" {
			if parsed, err := decimal.NewFromString(trimmed); err == nil {
				return parsed
			}
		}
	}
	return decimal.Zero
}

// AsBool coerces boolean-ish values (true, "true", 1) into a bool.
func AsBool(value any) bool {
	switch typed := value.(type) {
	case bool:
		return typed
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(typed))
		return err == nil && parsed
	case float64:
		return typed != 0
	case int:
		return typed != 0
	}
	return false
}

// AsSlice normalizes different collection types into a []any.
func AsSlice(value any) []any {
	switch typed := value.(type) {
	case []any:
		return typed
	case []map[string]any:
		items := make([]any, 0, len(typed))
		for _, entry := range typed {
			items = append(items, entry)
		}
		return items
	default:
		return nil
	}
}

// AsMap returns the value as a map when it is one.
func AsMap(value any) map[string]any {
	if typed, ok := value.(map[string]any); ok {
		return typed
	}
	return nil
}

// MapFromPayload unwraps common envelope structures (e.g. {"data": {...}})
// into a plain map for normalization routines.
func MapFromPayload(value any) map[string]any {
	typed, ok := value.(map[string]any)
	if !ok {
		return nil
	}
	if data, ok := typed["data"].(map[string]any); ok {
		return data
	}
	return typed
}

// SliceFromPayload unwraps list envelopes ({"data": [...]}, {"results": [...]})
// into a slice of records, tolerating a bare top-level array as well.
func SliceFromPayload(value any) []any {
	if items := AsSlice(value); items != nil {
		return items
	}
	typed, ok := value.(map[string]any)
	if !ok {
		return nil
	}
	for _, key := range []string{"data", "results", "items", "bookings"} {
		if items := AsSlice(typed[key]); items != nil {
			return items
		}
	}
	return nil
}
