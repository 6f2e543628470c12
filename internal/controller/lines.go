package controller

import (
	"strconv"
	"strings"
)

// FormatLines renders ascending line numbers as compact ranges: "5, 10-12".
func FormatLines(lines []int) string {
	if len(lines) == 0 {
		return "-"
	}

	var b strings.Builder

	start := lines[0]
	prev := lines[0]

	flush := func() {
		if b.Len() > 0 {
			b.WriteString(", ")
		}

		b.WriteString(strconv.Itoa(start))

		if prev != start {
			b.WriteString("-")
			b.WriteString(strconv.Itoa(prev))
		}
	}

	for _, line := range lines[1:] {
		if line == prev+1 {
			prev = line
			continue
		}

		flush()

		start = line
		prev = line
	}

	flush()

	return b.String()
}
