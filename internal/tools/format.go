package tools

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// str renders a JSON value the way it should read in tool text: nil is
// empty, whole numbers have no decimals and lists are comma separated.
func str(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case bool:
		return strconv.FormatBool(val)
	case []any:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = str(item)
		}
		return strings.Join(parts, ",")
	case []string:
		return strings.Join(val, ",")
	default:
		return fmt.Sprint(val)
	}
}

// orZero returns 0 for nil, zero and empty values.
func orZero(v any) any {
	switch val := v.(type) {
	case nil:
		return 0
	case string:
		if val == "" {
			return 0
		}
	case float64:
		if val == 0 {
			return 0
		}
	case bool:
		if !val {
			return 0
		}
	}
	return v
}

// orDefault returns fallback when s is empty.
func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func padEnd(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

func padStart(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return strings.Repeat(" ", width-n) + s
	}
	return s
}
