// Copyright © 2021-2026 The Gomon Project.

// Package format renders process and system metrics for display.
package format

import (
	"fmt"
)

// ElapsedTime formats seconds as HH:MM:SS. Hours grow beyond two digits as needed.
func ElapsedTime(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, seconds/60%60, seconds%60)
}

// Percent formats a fraction as a percentage with one decimal place.
func Percent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}
