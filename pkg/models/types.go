package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"gorm.io/datatypes"
)

// Flag keeps the raw value of a legacy boolean-ish column. The admin panel
// has written booleans, integers and strings into the same columns over the
// years, so the raw value is preserved and interpreted by the caller.
type Flag struct {
	raw   any
	valid bool
}

// NewFlag builds a flag from a raw value; nil yields a NULL flag.
func NewFlag(raw any) Flag {
	if raw == nil {
		return Flag{}
	}
	return Flag{raw: raw, valid: true}
}

func (f *Flag) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*f = Flag{}
	case []byte:
		*f = Flag{raw: string(v), valid: true}
	case string, bool, int64, float64:
		*f = Flag{raw: v, valid: true}
	case int:
		*f = Flag{raw: int64(v), valid: true}
	case int32:
		*f = Flag{raw: int64(v), valid: true}
	case float32:
		*f = Flag{raw: float64(v), valid: true}
	default:
		return fmt.Errorf("models: cannot scan %T into Flag", value)
	}
	return nil
}

func (f Flag) Value() (driver.Value, error) {
	if !f.valid {
		return nil, nil
	}
	return f.raw, nil
}

// Raw returns the stored value, nil for NULL.
func (f Flag) Raw() any {
	if !f.valid {
		return nil
	}
	return f.raw
}

func (f Flag) IsNull() bool { return !f.valid }

// Coerce interprets the flag leniently: NULL and "" are unknown, numbers are
// true when non zero, and true/1/yes or false/0/no strings map accordingly.
// Anything else is unknown.
func (f Flag) Coerce() *bool {
	return CoerceBool(f.Raw())
}

// Bool returns the coerced value or def when unknown.
func (f Flag) Bool(def bool) bool {
	if b := f.Coerce(); b != nil {
		return *b
	}
	return def
}

func (f Flag) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Raw())
}

func (f *Flag) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = NewFlag(v)
	return nil
}

// CoerceBool implements the lenient boolean reading shared by flags and
// request parameters.
func CoerceBool(v any) *bool {
	t, f := true, false
	switch x := v.(type) {
	case nil:
		return nil
	case bool:
		return &x
	case int64:
		if x != 0 {
			return &t
		}
		return &f
	case int:
		if x != 0 {
			return &t
		}
		return &f
	case float64:
		if int64(x) != 0 {
			return &t
		}
		return &f
	case string:
		s := strings.ToLower(strings.TrimSpace(x))
		switch s {
		case "":
			return nil
		case "true", "1", "yes":
			return &t
		case "false", "0", "no":
			return &f
		}
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			if int64(n) != 0 {
				return &t
			}
			return &f
		}
		return nil
	default:
		return nil
	}
}

// DecodeJSON decodes a JSON column for output. Values that are not valid JSON
// are returned as the raw string, and empty columns as nil.
func DecodeJSON(j datatypes.JSON) any {
	s := strings.TrimSpace(string(j))
	if s == "" {
		return nil
	}
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return string(j)
	}
	return v
}

// DecodeJSONOr is DecodeJSON with a fallback for empty columns.
func DecodeJSONOr(j datatypes.JSON, def any) any {
	if v := DecodeJSON(j); v != nil {
		return v
	}
	return def
}

// DecodeJSONString decodes JSON stored in a plain text column.
func DecodeJSONString(s *string) any {
	if s == nil {
		return nil
	}
	return DecodeJSON(datatypes.JSON(*s))
}

// Str dereferences a nullable string.
func Str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// StrOr dereferences a nullable string, returning def for NULL.
func StrOr(s *string, def string) string {
	if s == nil {
		return def
	}
	return *s
}

// Float dereferences a nullable float.
func Float(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

var nonNumeric = regexp.MustCompile(`[^0-9.\-]`)

// NumericString strips everything but digits, dots and minus signs from a
// price column ("₹ 120.00" becomes "120.00"). NULL, empty and values with no
// digits at all yield nil.
func NumericString(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	clean := nonNumeric.ReplaceAllString(*s, "")
	if clean == "" {
		return nil
	}
	return &clean
}

// ParseNumber reads a float from a price-like column, false when empty or
// unparseable.
func ParseNumber(s *string) (float64, bool) {
	clean := NumericString(s)
	if clean == nil {
		return 0, false
	}
	n, err := strconv.ParseFloat(*clean, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// LegacyTime reads the timestamp formats found in text date columns. Some
// rows hold JSON encoded strings (with the quotes) written by the mobile apps.
func LegacyTime(s *string) (time.Time, bool) {
	if s == nil {
		return time.Time{}, false
	}
	v := strings.Trim(strings.TrimSpace(*s), `"`)
	if v == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{
		time.RFC3339Nano,
		"2006-01-02T15:04:05.000000Z07:00",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
		"2006-01-02",
	} {
		if t, err := time.ParseInLocation(layout, v, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
