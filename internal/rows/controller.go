package rows

import (
	"slices"

	"github.com/zhubert/msgcodec/internal/logger"
	"github.com/zhubert/msgcodec/internal/theme"
)

// Controller owns the row sequence. It is not safe for concurrent use; all
// calls are expected from the UI event loop.
type Controller struct {
	rows     []*Row
	current  FocusTarget
	hasFocus bool
	palette  theme.Palette
}

// New creates an empty controller using the light palette until RecolorAll
// is called.
func New() *Controller {
	return &Controller{palette: theme.PaletteFor(theme.Light)}
}

// Init ensures the sequence holds at least one row and returns the first.
func (c *Controller) Init() *Row {
	if len(c.rows) == 0 {
		return c.InsertAfter("", "")
	}
	return c.rows[0]
}

// Rows returns the rows in sequence order. The slice is a copy; the rows are not.
func (c *Controller) Rows() []*Row {
	return slices.Clone(c.rows)
}

// Len returns the number of rows.
func (c *Controller) Len() int {
	return len(c.rows)
}

// Index returns the position of the row with the given ID, or -1.
func (c *Controller) Index(id string) int {
	return slices.IndexFunc(c.rows, func(r *Row) bool { return r.ID == id })
}

// Get returns the row with the given ID.
func (c *Controller) Get(id string) (*Row, bool) {
	if i := c.Index(id); i >= 0 {
		return c.rows[i], true
	}
	return nil, false
}

// SetText replaces the row's text. Unknown IDs are ignored.
func (c *Controller) SetText(id, text string) {
	if r, ok := c.Get(id); ok {
		r.Text = text
	}
}

// InsertAfter creates a row holding text and inserts it directly after the row
// with ID afterID, or at the end when afterID is empty or unknown. The new
// row's text field becomes the focus target.
func (c *Controller) InsertAfter(afterID, text string) *Row {
	r := newRow(text)
	r.Background = c.palette.Background(false)

	at := len(c.rows)
	if afterID != "" {
		if i := c.Index(afterID); i >= 0 {
			at = i + 1
		}
	}
	c.rows = slices.Insert(c.rows, at, r)

	logger.WithRow(r.ID).Debug("row inserted", "index", at, "rows", len(c.rows))
	c.FocusIn(r.Target(PartText))
	return r
}

// Delete removes the row with the given ID and returns the row that received
// focus. Unknown IDs are ignored and return false.
//
// Focus moves to the row before the deleted one, or to the new first row when
// the first row was deleted. Deleting the only row leaves a fresh empty row.
func (c *Controller) Delete(id string) (*Row, bool) {
	i := c.Index(id)
	if i < 0 {
		return nil, false
	}
	c.rows = slices.Delete(c.rows, i, i+1)
	logger.WithRow(id).Debug("row deleted", "index", i, "rows", len(c.rows))

	if c.hasFocus && c.current.RowID == id {
		c.hasFocus = false
	}

	if len(c.rows) == 0 {
		return c.InsertAfter("", ""), true
	}

	next := c.rows[0]
	if i > 0 {
		next = c.rows[i-1]
	}
	c.FocusIn(next.Target(PartText))
	return next, true
}

// FocusOrder flattens every row's focus targets, in sequence order, into a
// single tab cycle.
func (c *Controller) FocusOrder() []FocusTarget {
	order := make([]FocusTarget, 0, len(c.rows)*TargetsPerRow)
	for _, r := range c.rows {
		order = append(order, r.Targets()...)
	}
	return order
}

// Next returns the target after t in the tab cycle, wrapping at the end.
func (c *Controller) Next(t FocusTarget) (FocusTarget, bool) {
	return c.step(t, 1)
}

// Prev returns the target before t in the tab cycle, wrapping at the start.
func (c *Controller) Prev(t FocusTarget) (FocusTarget, bool) {
	return c.step(t, -1)
}

func (c *Controller) step(t FocusTarget, delta int) (FocusTarget, bool) {
	order := c.FocusOrder()
	n := len(order)
	i := slices.Index(order, t)
	if i < 0 || n == 0 {
		return FocusTarget{}, false
	}
	return order[((i+delta)%n+n)%n], true
}

// Current returns the target that holds focus.
func (c *Controller) Current() (FocusTarget, bool) {
	return c.current, c.hasFocus
}

// FocusIn records t as the focused target and marks its row focused.
func (c *Controller) FocusIn(t FocusTarget) bool {
	r, ok := c.Get(t.RowID)
	if !ok {
		return false
	}
	c.current = t
	c.hasFocus = true
	c.setFocused(r, true)
	return true
}

// SettleFocus clears the row's focused flag unless one of its targets holds
// focus. It reports whether the row changed. Unknown IDs are ignored.
func (c *Controller) SettleFocus(id string) bool {
	r, ok := c.Get(id)
	if !ok || !r.Focused {
		return false
	}
	if c.hasFocus && c.current.RowID == id {
		return false
	}
	c.setFocused(r, false)
	return true
}

// Palette returns the palette rows are colored with.
func (c *Controller) Palette() theme.Palette {
	return c.palette
}

// RecolorAll switches to palette p and reapplies every row's background
// according to its focused flag.
func (c *Controller) RecolorAll(p theme.Palette) {
	c.palette = p
	for _, r := range c.rows {
		r.Background = p.Background(r.Focused)
	}
}

func (c *Controller) setFocused(r *Row, focused bool) {
	r.Focused = focused
	r.Background = c.palette.Background(focused)
}
