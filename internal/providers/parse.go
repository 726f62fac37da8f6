package providers

import (
	"strconv"
	"strings"
)

// parseNumeric converts a raw cell value, tolerating thousands separators and
// surrounding whitespace. Unparseable values report ok=false rather than an
// error; a bad cell drops one statistic, not the row.
func parseNumeric(s string) (float64, bool) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if cleaned == "" || cleaned == "-" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func rawToFloat(raw interface{}) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case string:
		return parseNumeric(v)
	}
	return 0, false
}
