package chart

import "strings"

// Block glyphs from empty to full, used for terminal sparklines.
var sparkGlyphs = []rune("▁▂▃▄▅▆▇█")

// Sparkline renders values as one row of block glyphs, newest on the left
// to match the collection order. Zero width, no values, or an all-zero
// series degrade to "" — chart rendering is never a failure.
func Sparkline(values []int, width int) string {
	if width <= 0 || len(values) == 0 {
		return ""
	}
	if len(values) > width {
		values = values[:width]
	}
	max := 0
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	if max <= 0 {
		return ""
	}
	var b strings.Builder
	for _, v := range values {
		if v < 0 {
			v = 0
		}
		// Scale into 0..7; any non-zero value shows at least the
		// smallest glyph.
		idx := v * (len(sparkGlyphs) - 1) / max
		if v > 0 && idx == 0 {
			idx = 1
		}
		b.WriteRune(sparkGlyphs[idx])
	}
	return b.String()
}
