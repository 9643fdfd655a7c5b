// Package normalize holds the best-effort value normalizers applied by the
// document builders. None of them fail; each reports whether the input was
// recognized so callers can tell a confident match from a passthrough.
package normalize

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Country uppercases a country code. No length or charset check is made.
func Country(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Email trims and lowercases an address.
func Email(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Phone trims a phone number. Formatting is left to the server.
func Phone(phone string) string {
	return strings.TrimSpace(phone)
}

// CustomerNumber renders v as a string regardless of its numeric or string
// type. Nil and blank input yield "" and false.
func CustomerNumber(v any) (string, bool) {
	s := Stringify(v)
	return s, s != ""
}

// StrictCustomerNumber is CustomerNumber restricted to ASCII digits. The
// boolean is false for blank input and for any non-digit character; the
// stringified value is returned either way.
func StrictCustomerNumber(v any) (string, bool) {
	s := Stringify(v)
	return s, IsDigits(s)
}

// IsDigits reports whether s is non-empty and consists of ASCII digits only.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Stringify converts scalar input to its string form. Integral floats are
// rendered without a fractional part.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case uint:
		return strconv.FormatUint(uint64(t), 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float64:
		if t == math.Trunc(t) && math.Abs(t) < 1e15 {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return Stringify(float64(t))
	case fmt.Stringer:
		return strings.TrimSpace(t.String())
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}

// CustomFieldValue coerces string input for free-form custom fields:
// "true", "TRUE" and "1" become true; "false", "FALSE" and "0" become
// false; an integer string without a "." becomes an int. Anything else is
// returned unchanged.
func CustomFieldValue(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	switch s {
	case "true", "TRUE", "1":
		return true
	case "false", "FALSE", "0":
		return false
	}
	if strings.Contains(s, ".") {
		return s
	}
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return n
	}
	return s
}
