package model

import (
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Rule checks a candidate field value. An empty return accepts the value;
// a non-empty return is the rejection message recorded for it. Rules never
// mutate the value and run in the order they were attached to the field.
type Rule func(value any) string

// Messages produced by the built-in rules. They are part of the contract
// consumed by existing form hosts; do not rephrase them.
const (
	RequiredMessage   = "不能为空"
	NumericMessage    = "必须为数字"
	AtLeastOneMessage = "请至少选择一项"
)

// Required rejects nil values and empty strings. Build appends it to the
// end of a field's rule chain when the definition is marked required, so
// user-supplied rules always run first.
func Required(value any) string {
	if value == nil {
		return RequiredMessage
	}
	if s, ok := value.(string); ok && s == "" {
		return RequiredMessage
	}
	return ""
}

// Numeric rejects values that do not coerce to a number. Coercion mirrors
// ECMAScript Number() conversion: nil and blank strings coerce to zero and
// are accepted, booleans map to 0 and 1, times convert to their epoch
// milliseconds, and strings may be decimal or exponent forms, 0x/0o/0b
// integer literals, or exactly-spelled Infinity. Everything else rejects.
func Numeric(value any) string {
	if _, ok := coerceNumber(value); !ok {
		return NumericMessage
	}
	return ""
}

// AtLeastOne rejects absent and empty collections. Values that are not
// collections reject as well since they cannot carry a selection.
func AtLeastOne(value any) string {
	if value == nil {
		return AtLeastOneMessage
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.String:
		if rv.Len() == 0 {
			return AtLeastOneMessage
		}
		return ""
	}
	return AtLeastOneMessage
}

// coerceNumber converts value to a float64 under ECMAScript Number()
// semantics. The second return is false when the conversion yields NaN.
func coerceNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case nil:
		return 0, true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return coerceFloat(float64(v))
	case float64:
		return coerceFloat(v)
	case time.Time:
		return float64(v.UnixMilli()), true
	case string:
		return coerceNumberString(v)
	default:
		return 0, false
	}
}

func coerceFloat(f float64) (float64, bool) {
	if math.IsNaN(f) {
		return f, false
	}
	return f, true
}

func coerceNumberString(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	if strings.ContainsRune(s, '_') {
		return 0, false
	}
	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1), true
	case "-Infinity":
		return math.Inf(-1), true
	}
	lower := strings.ToLower(s)
	switch lower {
	case "inf", "+inf", "-inf", "infinity", "+infinity", "-infinity", "nan", "+nan", "-nan":
		// strconv accepts these spellings, Number() does not.
		return 0, false
	}
	if len(lower) > 2 && lower[0] == '0' {
		var base int
		switch lower[1] {
		case 'x':
			base = 16
		case 'o':
			base = 8
		case 'b':
			base = 2
		}
		if base != 0 {
			n, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil {
				return 0, false
			}
			return float64(n), true
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}
