package utils

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ParseInt converts val to int and reports whether the conversion succeeded.
// Strings are trimmed and may carry leading zeros ("0025").
func ParseInt(val any) (int, bool) {
	switch v := val.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case int32:
		return int(v), true
	case int16:
		return int(v), true
	case int8:
		return int(v), true
	case uint:
		return int(v), true
	case uint64:
		return int(v), true
	case uint32:
		return int(v), true
	case uint16:
		return int(v), true
	case uint8:
		return int(v), true
	case float64:
		return int(v), true
	case float32:
		return int(v), true
	case json.Number:
		i, err := strconv.Atoi(v.String())
		if err != nil {
			f, ferr := v.Float64()
			return int(f), ferr == nil
		}
		return i, true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(v))
		return i, err == nil
	case []byte:
		i, err := strconv.Atoi(strings.TrimSpace(string(v)))
		return i, err == nil
	case nil:
		return 0, false
	default:
		i, err := strconv.Atoi(fmt.Sprintf("%v", v))
		return i, err == nil
	}
}

// ToInt converts val to int, yielding 0 when it cannot be converted.
func ToInt(val any) int {
	i, _ := ParseInt(val)
	return i
}

// ToString converts various types to string.
func ToString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToBool converts various types to bool.
// Numbers are true when equal to 1; strings when "1" or "true" in any case.
func ToBool(val any) bool {
	switch v := val.(type) {
	case bool:
		return v
	case int, int64, int32, int16, int8, uint, uint64, uint32, uint16, uint8:
		return ToInt(v) == 1
	case string:
		s := strings.TrimSpace(v)
		return s == "1" || strings.EqualFold(s, "true")
	case []byte:
		return ToBool(string(v))
	default:
		return false
	}
}
