package domain

import "strconv"

// FieldSep separates fields within a single file record.
const FieldSep = "|"

func boolFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// formatNumber renders a float with the minimal number of digits that
// survives an exact round-trip through ParseFloat.
func formatNumber(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

// formatMoney renders a price with two decimals, matching the historical
// auction file format.
func formatMoney(f float64) string { return strconv.FormatFloat(f, 'f', 2, 64) }
