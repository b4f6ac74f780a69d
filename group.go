package inspectx

import (
	"math"
	"strings"
)

// entry is one rendered container element plus its color-stripped display
// width. Only the grouping algorithm consumes entries.
type entry struct {
	text  string
	width int
}

// separatorSpace accounts for ", " between grouped entries.
const separatorSpace = 2

// groupEntries lays short sequence entries into aligned columns. indentLvl is
// the current indentation in display cells, numeric selects right alignment.
// A nil result means grouping does not apply and the caller must fall back to
// the ungrouped layout.
func groupEntries(entries []entry, indentLvl int, numeric bool) []string {
	n := len(entries)
	totalLength := 0
	maxLength := 0
	for _, e := range entries {
		totalLength += e.width + separatorSpace
		if e.width > maxLength {
			maxLength = e.width
		}
	}
	actualMax := maxLength + separatorSpace

	// The average-fill ratio is real-valued; integer division would floor
	// borderline ratios like 5.6 below the threshold.
	if actualMax*3+indentLvl >= breakLength || (totalLength <= 5*actualMax && maxLength > 6) {
		return nil
	}

	// Heuristic column count: wide entries bias toward fewer columns so the
	// block stays roughly 2.5 times wider than tall.
	const approxCharHeights = 2.5
	averageBias := math.Sqrt(float64(actualMax) - float64(totalLength)/float64(n))
	biasedMax := math.Max(float64(actualMax)-3-averageBias, 1)
	columns := min(
		int(math.Round(math.Sqrt(approxCharHeights*biasedMax*float64(n))/biasedMax)),
		(breakLength-indentLvl)/actualMax,
		15,
	)
	if columns <= 1 {
		return nil
	}

	colWidths := make([]int, columns)
	for i := 0; i < columns; i++ {
		lineWidth := 0
		for j := i; j < n; j += columns {
			if entries[j].width > lineWidth {
				lineWidth = entries[j].width
			}
		}
		colWidths[i] = lineWidth + separatorSpace
	}

	lines := make([]string, 0, (n+columns-1)/columns)
	for i := 0; i < n; i += columns {
		last := min(i+columns, n)
		var sb strings.Builder
		j := i
		for ; j < last-1; j++ {
			cell := entries[j].text + ", "
			if numeric {
				sb.WriteString(padDisplayStart(cell, entries[j].width+separatorSpace, colWidths[j-i]))
			} else {
				sb.WriteString(padDisplayEnd(cell, entries[j].width+separatorSpace, colWidths[j-i]))
			}
		}
		if numeric {
			sb.WriteString(padDisplayStart(entries[j].text, entries[j].width, colWidths[j-i]-separatorSpace))
		} else {
			sb.WriteString(entries[j].text)
		}
		lines = append(lines, sb.String())
	}
	return lines
}

// padDisplayStart right-aligns text whose display width is w into target
// cells; ANSI sequences inside text do not count toward the width.
func padDisplayStart(text string, w, target int) string {
	if w >= target {
		return text
	}
	return strings.Repeat(" ", target-w) + text
}

func padDisplayEnd(text string, w, target int) string {
	if w >= target {
		return text
	}
	return text + strings.Repeat(" ", target-w)
}
