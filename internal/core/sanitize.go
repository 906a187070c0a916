package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// missingMarkers are the cell values treated as "no value". The set follows
// the tokens common CSV exporters and dataframe tools write for missing data.
// Matching is exact; surrounding whitespace makes a value real text.
var missingMarkers = map[string]struct{}{
	"None":     {},
	"nan":      {},
	"NaN":      {},
	"-nan":     {},
	"-NaN":     {},
	"NULL":     {},
	"null":     {},
	"<NA>":     {},
	"NA":       {},
	"N/A":      {},
	"n/a":      {},
	"#N/A":     {},
	"#N/A N/A": {},
	"#NA":      {},
	"-1.#IND":  {},
	"-1.#QNAN": {},
	"1.#IND":   {},
	"1.#QNAN":  {},
}

// IsMissing reports whether s is one of the missing-value markers.
func IsMissing(s string) bool {
	_, ok := missingMarkers[s]
	return ok
}

// SanitizeText returns the text form of v, or "" when v is nil, NaN or a
// missing-value marker. Content is otherwise preserved; no trimming happens.
func SanitizeText(v any) string {
	var s string

	switch x := v.(type) {
	case nil:
		return ""
	case string:
		s = x
	case []byte:
		s = string(x)
	case float64:
		if math.IsNaN(x) {
			return ""
		}
		s = strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		if math.IsNaN(float64(x)) {
			return ""
		}
		s = strconv.FormatFloat(float64(x), 'f', -1, 32)
	case fmt.Stringer:
		s = x.String()
	default:
		s = fmt.Sprint(x)
	}

	if IsMissing(s) {
		return ""
	}
	return s
}

// SanitizeNumber returns v as a float64. Absent, empty, unparseable and
// non-finite input all yield 0; it never fails.
func SanitizeNumber(v any) float64 {
	switch x := v.(type) {
	case nil:
		return 0
	case float64:
		return finite(x)
	case float32:
		return finite(float64(x))
	case int:
		return float64(x)
	case int8:
		return float64(x)
	case int16:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case uint:
		return float64(x)
	case uint8:
		return float64(x)
	case uint16:
		return float64(x)
	case uint32:
		return float64(x)
	case uint64:
		return float64(x)
	case string:
		return parseNumber(x)
	case []byte:
		return parseNumber(string(x))
	case fmt.Stringer:
		return parseNumber(x.String())
	default:
		return 0
	}
}

func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" || IsMissing(s) {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return finite(f)
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
