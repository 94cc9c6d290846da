package types

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RelTol is the relative tolerance used for float comparison in value
// equality and write no-op detection.
const RelTol = 1e-9

// trueWords and falseWords are the recognized boolean spellings, matched
// case-insensitively against the string form of a raw value.
var (
	trueWords  = map[string]bool{"true": true, "yes": true, "ja": true, "1": true}
	falseWords = map[string]bool{"false": true, "no": true, "nein": true, "0": true}
)

// AsInt coerces a raw scalar to int64. Floats are truncated toward zero,
// booleans map to 1 and 0, and strings are parsed as decimal integers.
func AsInt(raw any) (int64, bool) {
	switch v := raw.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return int64(v), true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		return int64(v), true
	case float32:
		return int64(v), true
	case float64:
		return int64(v), true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

// AsFloat coerces a raw scalar to float64. Booleans map to 1 and 0, and
// strings are parsed as decimal floats.
func AsFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	if n, ok := AsInt(raw); ok {
		return float64(n), true
	}
	return 0, false
}

// AsBool coerces a raw scalar to bool by matching its string form against
// the recognized true and false spellings, case-insensitively. Anything
// else is rejected.
func AsBool(raw any) (bool, bool) {
	if b, ok := raw.(bool); ok {
		return b, true
	}
	s := strings.ToLower(strings.TrimSpace(fmt.Sprint(raw)))
	if trueWords[s] {
		return true, true
	}
	if falseWords[s] {
		return false, true
	}
	return false, false
}

// IsClose reports whether two floats are equal within the given relative
// and absolute tolerances.
func IsClose(a, b, relTol, absTol float64) bool {
	if a == b {
		return true
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) || math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	diff := math.Abs(a - b)
	return diff <= relTol*math.Max(math.Abs(a), math.Abs(b)) || diff <= absTol
}

// Close reports whether two floats are equal within RelTol.
func Close(a, b float64) bool {
	return IsClose(a, b, RelTol, 0)
}

// rawEqual compares two raw scalars. Floats compare within RelTol; a float
// paired with any other numeric compares as floats; everything else
// compares by equality.
func rawEqual(a, b any) bool {
	af, aIsFloat := a.(float64)
	bf, bIsFloat := b.(float64)
	if aIsFloat && bIsFloat {
		return Close(af, bf)
	}
	if aIsFloat || bIsFloat {
		x, okA := AsFloat(a)
		y, okB := AsFloat(b)
		if okA && okB {
			return Close(x, y)
		}
		return false
	}
	return a == b
}
