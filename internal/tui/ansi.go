package tui

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// fitLine hard-limits a styled line to width cells, terminating ANSI
// styling so truncation never bleeds into the next line.
func fitLine(line string, width int) string {
	if width <= 0 {
		return ""
	}
	line = strings.ReplaceAll(line, "\n", " ")
	line = strings.ReplaceAll(line, "\r", " ")
	if xansi.StringWidth(line) <= width {
		return line
	}
	return xansi.Cut(line, 0, width) + "\x1b[0m"
}
