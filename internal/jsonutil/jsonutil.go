// Package jsonutil provides shared helpers for tolerant JSON parsing:
// extracting values from loosely-shaped objects whose key spelling and
// value types vary between server variants.
package jsonutil

import (
	"encoding/json"
	"fmt"
)

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v interface{}, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// GetString safely extracts a string value from a map[string]interface{}.
// Returns the value if it's a string, otherwise returns empty string.
func GetString(m map[string]interface{}, key string) string {
	if val, ok := m[key].(string); ok {
		return val
	}
	return ""
}

// FirstString returns the first non-empty string found under any of the
// given keys, trying them in order. Scalar non-string values are
// stringified, so a numeric id still yields a usable value.
func FirstString(m map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		val, ok := m[key]
		if !ok {
			continue
		}
		if s := ToString(val); s != "" {
			return s
		}
	}
	return ""
}

// GetArray safely extracts an array value from a map[string]interface{}.
// Returns nil when the key is absent or holds a non-array value.
func GetArray(m map[string]interface{}, key string) []interface{} {
	if val, ok := m[key].([]interface{}); ok {
		return val
	}
	return nil
}

// ToString converts an interface{} value to a string representation.
// Handles string, float64 (formatted as integer for whole numbers), and
// bool; nil, objects, and arrays convert to the empty string.
func ToString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		if val == float64(int64(val)) {
			return fmt.Sprintf("%.0f", val)
		}
		return fmt.Sprintf("%g", val)
	case bool:
		return fmt.Sprintf("%t", val)
	case nil, map[string]interface{}, []interface{}:
		return ""
	default:
		return fmt.Sprintf("%v", val)
	}
}
