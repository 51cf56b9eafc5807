package util

import (
	"fmt"
	"strconv"
)

// MustAnyToInt coerces a decoded JSON value (string, float64, int) to
// an int, returning 0 when it cannot.
func MustAnyToInt(v interface{}) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	}
	str := fmt.Sprintf("%v", v)
	if i, err := strconv.Atoi(str); err == nil {
		return i
	}
	return 0
}

// AnyToString coerces a decoded JSON value to its string form, with ""
// for nil.
func AnyToString(v interface{}) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// AnyToBool coerces a decoded JSON value to a bool, false when absent
// or unparsable.
func AnyToBool(v interface{}) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		parsed, err := strconv.ParseBool(b)
		return err == nil && parsed
	}
	return false
}
