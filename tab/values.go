package tab

import (
	"strconv"
	"strings"
)

// missingTokens are the spellings of "no value" seen across the upstream
// tables, which variously come out of pandas, R, and hand-edited sheets.
var missingTokens = map[string]bool{
	"":     true,
	"NA":   true,
	"N/A":  true,
	"n/a":  true,
	"NaN":  true,
	"nan":  true,
	"NULL": true,
	"null": true,
	"None": true,
}

// IsMissing reports whether the cell represents an absent value.
func IsMissing(cell string) bool {
	return missingTokens[cell]
}

// ParseFloat interprets a cell as a number. The second return is false when
// the cell is missing or does not parse.
func ParseFloat(cell string) (float64, bool) {
	if IsMissing(cell) {
		return 0, false
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil {
		return 0, false
	}

	return v, true
}
