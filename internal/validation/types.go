package validation

import (
	"encoding/json"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ID is a positive integer identifier as sent by clients. JSON numbers and
// numeric strings are both accepted, so path parameters and bodies share it.
type ID int64

func (id ID) Int64() int64 { return int64(id) }

func (id *ID) UnmarshalJSON(b []byte) error {
	raw := string(b)
	if raw == "null" {
		return nil
	}
	s := raw
	if strings.HasPrefix(s, `"`) {
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return &json.UnmarshalTypeError{Value: raw, Type: reflect.TypeOf(int64(0))}
	}
	*id = ID(n)
	return nil
}

var (
	clockRe = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)
	dateRe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// ParseClock converts an H:MM or HH:MM string into minutes after midnight.
func ParseClock(s string) (int, bool) {
	if !clockRe.MatchString(s) {
		return 0, false
	}
	h, m, _ := strings.Cut(s, ":")
	hours, _ := strconv.Atoi(h)
	minutes, _ := strconv.Atoi(m)
	return hours*60 + minutes, true
}

// IsDate reports whether s is a real calendar date written as YYYY-MM-DD.
func IsDate(s string) bool {
	if !dateRe.MatchString(s) {
		return false
	}
	_, err := time.Parse(time.DateOnly, s)
	return err == nil
}
