package allocation

import (
	"math"
	"strconv"
	"strings"
)

// HoursUnit is the suffix appended to formatted hour values.
const HoursUnit = "t"

// FormatHours renders an hour value for display, e.g. 1.25 becomes "1,25t".
// Negative values are shown as zero and the value is rounded to two
// decimals using the shortest representation, so 1 becomes "1t".
func FormatHours(hours float64) string {
	safe := math.Max(hours, 0)
	rounded := math.Round(safe*100) / 100
	str := strconv.FormatFloat(rounded, 'f', -1, 64)
	return strings.Replace(str, ".", ",", 1) + HoursUnit
}

// FormatSignedHours renders an hour value with a leading sign, as used in
// breakdown lines such as "+4,5t" or "-0,5t". The magnitude is formatted
// with FormatHours.
func FormatSignedHours(sign string, hours float64) string {
	return sign + FormatHours(hours)
}
