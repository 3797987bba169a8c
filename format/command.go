// Copyright © 2021-2026 The Gomon Project.

package format

import (
	"strings"
)

// Command renders a NUL separated command line with spaces between its arguments,
// truncated to width runes when width is positive. Invalid UTF-8 is replaced.
func Command(cmdline string, width int) string {
	s := strings.TrimSpace(strings.ReplaceAll(strings.TrimRight(cmdline, "\000"), "\000", " "))
	s = strings.ToValidUTF8(s, "\uFFFD")
	if width > 0 {
		if r := []rune(s); len(r) > width {
			return string(r[:width-1]) + "…"
		}
	}
	return s
}
