// Package rows owns the ordered list of message rows and the focus model
// that spans them.
//
// # Sequence
//
// Rows are identified by a stable ID, never by position. InsertAfter places a
// new row directly after an existing one (or at the end), Delete removes a row
// and picks a deterministic successor for focus. The sequence is never empty
// once Init has run: deleting the last row creates a fresh empty one.
//
// # Focus order
//
// Each row contributes four focus targets, in order: its text field and its
// Encode, Decode and Delete controls. FocusOrder flattens them across the
// sequence into one tab cycle. Next and Prev locate the current target in a
// freshly computed order on every call, so rows may be added or removed
// between keypresses. A target that is no longer present yields no move.
//
// # Focus tracking
//
// FocusIn marks a row focused as soon as any of its targets receives focus.
// Losing focus is debounced by the caller: after the debounce delay it calls
// SettleFocus, which clears the row's flag only if none of its targets holds
// focus at that moment. Tabbing between targets of the same row therefore
// never flickers the row's background.
package rows
