package common

// CursorShape is the pointer affordance shown over the viewport.
type CursorShape int

const (
	// CursorDefault is the platform arrow.
	CursorDefault CursorShape = iota
	// CursorPointer is the hand shown over something that can be selected.
	CursorPointer
)

func (c CursorShape) String() string {
	if c == CursorPointer {
		return "pointer"
	}
	return "default"
}
