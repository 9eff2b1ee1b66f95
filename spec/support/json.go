package support

import (
	"encoding/json"
	"strconv"
	"strings"
)

// JSONResult wraps parsed JSON output for structured assertions.
type JSONResult struct {
	// Data holds the parsed JSON data
	Data any
	// ParseErr is set if JSON parsing failed
	ParseErr error
}

// ParseJSON parses a JSON string and returns a JSONResult for assertions.
func ParseJSON(s string) *JSONResult {
	r := &JSONResult{}
	r.ParseErr = json.Unmarshal([]byte(s), &r.Data)
	return r
}

// Valid returns true if the JSON was parsed successfully.
func (r *JSONResult) Valid() bool {
	return r.ParseErr == nil
}

// Get retrieves a value using dot notation where numeric segments index
// arrays, e.g. "features.0.name" or "totals.passed".
// Returns nil if the path doesn't exist.
func (r *JSONResult) Get(path string) any {
	if r.ParseErr != nil {
		return nil
	}
	current := r.Data
	if path == "" {
		return current
	}
	for _, part := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			current = node[part]
		case []any:
			i, err := strconv.Atoi(part)
			if err != nil || i < 0 || i >= len(node) {
				return nil
			}
			current = node[i]
		default:
			return nil
		}
	}
	return current
}

// GetString returns the value at path formatted as a string. Numbers are
// formatted without a trailing ".0" so table cells compare naturally.
func (r *JSONResult) GetString(path string) string {
	switch v := r.Get(path).(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

// ArrayLen returns the length of an array at the given path.
// Returns -1 if not found or not an array.
func (r *JSONResult) ArrayLen(path string) int {
	arr, ok := r.Get(path).([]any)
	if !ok {
		return -1
	}
	return len(arr)
}
