// Package ui provides the visual components of msgcodec.
//
// # Layout
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header (1 line)                                     │
//	├──────────────────────────────────────────┬──────────┤
//	│ row text (auto-growing textarea)         │  Encode  │
//	│                                          │  Decode  │
//	│                                          │  Delete  │
//	│                                                     │
//	│ next row ...                             │  ...     │
//	├─────────────────────────────────────────────────────┤
//	│ Footer (1 line, key bindings or a flash message)    │
//	└─────────────────────────────────────────────────────┘
//
// The row list is rendered into a single string by RenderList, which also
// returns a Layout recording where each row landed. The app places that
// string in a viewport and uses the Layout for scroll-into-view and mouse
// hit testing.
//
// # Styles
//
// Styles are built from a theme.Palette with NewStyles and passed explicitly
// to View methods. When the OS theme flips, the app builds a new Styles value;
// there are no package-level style globals.
//
// # Sizing
//
// ViewContext centralizes terminal size calculations. The button column is
// ButtonWidth cells wide (widest label plus padding) and the text column gets
// the rest. RowView.AutoSize grows a row's input to DisplayLines of its
// content.
package ui
