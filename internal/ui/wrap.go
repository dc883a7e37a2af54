package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// DisplayLines counts the lines text occupies when soft-wrapped at width,
// including wrapped continuation lines. Empty text occupies one line.
func DisplayLines(text string, width int) int {
	if width <= 0 {
		return 1
	}
	total := 0
	for _, line := range strings.Split(text, "\n") {
		total += wrappedLines(line, width)
	}
	return max(total, 1)
}

// wrappedLines word-wraps a single hard line. Words wider than the line are
// broken at the width boundary.
func wrappedLines(line string, width int) int {
	lines, col := 1, 0
	for _, word := range strings.SplitAfter(line, " ") {
		if word == "" {
			continue
		}
		w := uniseg.StringWidth(word)
		if col+uniseg.StringWidth(strings.TrimRight(word, " ")) <= width {
			col += w
			continue
		}
		if col > 0 {
			lines++
			col = 0
		}
		for w > width {
			lines++
			w -= width
		}
		col = w
	}
	return lines
}

// ButtonWidth is the shared width of the button column: the widest label
// plus padding, so every row lines up.
func ButtonWidth() int {
	widest := 0
	for _, label := range []string{LabelEncode, LabelDecode, LabelDelete} {
		widest = max(widest, runewidth.StringWidth(label))
	}
	return widest + ButtonPadding
}
