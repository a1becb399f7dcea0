package grocery

import "strings"

const (
	asNeededText     = "as needed"
	segmentSeparator = " + "
	displayPlaces    = 2
)

// FormatCombined 將各單位累計合併為顯示字串
// 空累計回傳 "as needed"；各單位依字母順序以 " + " 連接
func FormatCombined(totals Totals) string {
	if len(totals) == 0 {
		return asNeededText
	}

	segments := make([]string, 0, len(totals))
	for _, unit := range totals.Units() {
		segments = append(segments, formatSegment(unit, totals[unit]))
	}
	return strings.Join(segments, segmentSeparator)
}

// formatSegment 格式化單一單位
func formatSegment(unit Unit, qty Quantity) string {
	if !qty.Known {
		if unit.IsDefault() {
			return asNeededText
		}
		return asNeededText + " " + unit.Label()
	}

	// Round 之後 String() 會去掉多餘的零與小數點
	number := qty.Amount.Round(displayPlaces).String()
	if unit.IsDefault() {
		return number
	}
	return number + " " + unit.Label()
}
