package domain

import (
	"strconv"
	"strings"
)

// The upstream API persists each category as a differently-shaped resource,
// so a given canonical field may live under several names depending on where
// the record came from. ResolveValue walks an ordered alias list and returns
// the first present value; it never panics, and absent or malformed input
// degrades to "not found" rather than an error.
//
// Aliases support one level of nesting using dot notation ("user.email").
func ResolveValue(record map[string]any, aliases []string) (any, bool) {
	if len(record) == 0 {
		return nil, false
	}
	for _, alias := range aliases {
		key := strings.TrimSpace(alias)
		if key == "" {
			continue
		}
		var value any
		if parent, child, nested := strings.Cut(key, "."); nested {
			inner, ok := record[parent].(map[string]any)
			if !ok {
				continue
			}
			value = inner[child]
		} else {
			value = record[key]
		}
		if present(value) {
			return value, true
		}
	}
	return nil, false
}

// ResolveString resolves the alias chain to a display string, returning the
// ValueMissing sentinel when no alias matched.
func ResolveString(record map[string]any, aliases []string) string {
	value, ok := ResolveValue(record, aliases)
	if !ok {
		return ValueMissing
	}
	if s := stringify(value); s != "" {
		return s
	}
	return ValueMissing
}

func present(value any) bool {
	switch typed := value.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(typed) != ""
	}
	return true
}

func stringify(value any) string {
	switch typed := value.(type) {
	case string:
		return strings.TrimSpace(typed)
	case float64:
		// JSON numbers decode as float64; render integral values without
		// the trailing ".0" so identifiers survive round-tripping.
		if typed == float64(int64(typed)) {
			return strconv.FormatInt(int64(typed), 10)
		}
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(typed)
	case int:
		return strconv.Itoa(typed)
	case int64:
		return strconv.FormatInt(typed, 10)
	}
	return ""
}
