// Package ui provides constants for layout calculations and configuration.
package ui

import "time"

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// MinTerminalWidth is the narrowest terminal the layout is computed for
	MinTerminalWidth = 40

	// MinTerminalHeight is the shortest terminal the layout is computed for
	MinTerminalHeight = 8

	// ButtonPadding is added to the widest button label (1 left + 1 right)
	ButtonPadding = 2

	// ColumnGap separates the text column from the button column
	ColumnGap = 1

	// RowGap is the number of blank lines between rows in the list
	RowGap = 1

	// MinRowHeight is the height of a row: one line per stacked button
	MinRowHeight = 3

	// MinTextWidth keeps the text column usable on narrow terminals
	MinTextWidth = 10

	// DefaultWrapWidth is the default width for text wrapping when the terminal width is unknown
	DefaultWrapWidth = 80
)

// Textarea limits
const (
	// RowCharLimit is the character limit of a row's text input (0 = unlimited)
	RowCharLimit = 0

	// RowPlaceholder is shown in empty rows
	RowPlaceholder = "Type a message..."
)

// Button labels
const (
	LabelEncode = "Encode"
	LabelDecode = "Decode"
	LabelDelete = "Delete"
)

// DefaultFlashDuration is how long a flash message stays in the footer
const DefaultFlashDuration = 3 * time.Second
