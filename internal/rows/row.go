package rows

import "github.com/google/uuid"

// Part names one focusable control inside a row.
type Part int

const (
	PartText Part = iota
	PartEncode
	PartDecode
	PartDelete
)

// Parts lists a row's focus targets in tab order.
var Parts = []Part{PartText, PartEncode, PartDecode, PartDelete}

// TargetsPerRow is the number of focus targets each row contributes.
const TargetsPerRow = 4

func (p Part) String() string {
	switch p {
	case PartText:
		return "text"
	case PartEncode:
		return "encode"
	case PartDecode:
		return "decode"
	case PartDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// IsButton reports whether the part is an action control.
func (p Part) IsButton() bool {
	return p == PartEncode || p == PartDecode || p == PartDelete
}

// FocusTarget identifies a single focusable control. Values compare with ==.
type FocusTarget struct {
	RowID string
	Part  Part
}

// Row is one message entry.
type Row struct {
	ID         string
	Text       string
	Focused    bool
	Background string
}

func newRow(text string) *Row {
	return &Row{
		ID:   uuid.New().String(),
		Text: text,
	}
}

// Target returns the focus target for part p of the row.
func (r *Row) Target(p Part) FocusTarget {
	return FocusTarget{RowID: r.ID, Part: p}
}

// Targets returns the row's focus targets in tab order.
func (r *Row) Targets() []FocusTarget {
	targets := make([]FocusTarget, len(Parts))
	for i, p := range Parts {
		targets[i] = r.Target(p)
	}
	return targets
}
