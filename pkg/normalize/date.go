package normalize

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

const (
	// DateLayout is the wire format for calendar dates.
	DateLayout = "2006-01-02"
	// DateTimeLayout is the wire format for timestamps such as remind dates.
	DateTimeLayout = "2006-01-02T15:04:05"
)

var (
	isoDate     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	isoDateTime = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}$`)
)

// Date coerces v to YYYY-MM-DD. It accepts time.Time, *time.Time and
// strings. Strings already in the target layout are kept; others are parsed
// best-effort. When parsing fails the trimmed input is returned unchanged
// and the boolean is false.
func Date(v any) (string, bool) {
	return coerceTime(v, DateLayout, isoDate)
}

// DateTime coerces v to YYYY-MM-DDTHH:MM:SS with the same best-effort
// contract as Date.
func DateTime(v any) (string, bool) {
	return coerceTime(v, DateTimeLayout, isoDateTime)
}

func coerceTime(v any, layout string, canonical *regexp.Regexp) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case time.Time:
		return t.Format(layout), true
	case *time.Time:
		if t == nil {
			return "", false
		}
		return t.Format(layout), true
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return "", false
		}
		if canonical.MatchString(s) {
			return s, true
		}
		parsed, err := dateparse.ParseAny(s)
		if err != nil {
			return s, false
		}
		return parsed.Format(layout), true
	default:
		return fmt.Sprint(v), false
	}
}

// IsDate reports whether s is already in YYYY-MM-DD form.
func IsDate(s string) bool {
	return isoDate.MatchString(s)
}
