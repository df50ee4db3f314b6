package cursor

import "fmt"

// Direction is the direction a range extends in.
type Direction uint8

const (
	// Forward ranges have head >= anchor.
	Forward Direction = iota
	// Backward ranges have head < anchor.
	Backward
)

// String returns a string representation of the direction.
func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Range represents a single selection.
// Range is an immutable value type.
type Range struct {
	Anchor int // Where the selection started
	Head   int // The moving end
}

// NewRange creates a range from anchor to head.
func NewRange(anchor, head int) Range {
	return Range{Anchor: anchor, Head: head}
}

// Point creates an empty range (a bare cursor) at pos.
func Point(pos int) Range {
	return Range{Anchor: pos, Head: pos}
}

// Direction returns the direction of the range.
func (r Range) Direction() Direction {
	if r.Head < r.Anchor {
		return Backward
	}
	return Forward
}

// WithDirection returns the range flipped if needed to extend in d.
func (r Range) WithDirection(d Direction) Range {
	if r.Direction() == d || r.IsEmpty() {
		return r
	}
	return r.Flip()
}

// From returns the lower bound of the range.
func (r Range) From() int {
	return min(r.Anchor, r.Head)
}

// To returns the upper bound of the range.
func (r Range) To() int {
	return max(r.Anchor, r.Head)
}

// Len returns the number of characters covered.
func (r Range) Len() int {
	return r.To() - r.From()
}

// IsEmpty returns true if the range has no extent.
func (r Range) IsEmpty() bool {
	return r.Anchor == r.Head
}

// Cursor returns the block cursor position: the last selected character
// for non-empty forward ranges, otherwise the head.
func (r Range) Cursor() int {
	if r.Head > r.Anchor {
		return r.Head - 1
	}
	return r.Head
}

// Extend returns a range with the anchor fixed and the head moved to pos.
func (r Range) Extend(pos int) Range {
	return Range{Anchor: r.Anchor, Head: pos}
}

// MoveTo returns an empty range at pos.
func (r Range) MoveTo(pos int) Range {
	return Point(pos)
}

// Shift returns the range moved by delta.
func (r Range) Shift(delta int) Range {
	return Range{Anchor: r.Anchor + delta, Head: r.Head + delta}
}

// Flip returns the range with anchor and head swapped.
func (r Range) Flip() Range {
	return Range{Anchor: r.Head, Head: r.Anchor}
}

// Collapse returns an empty range at the head.
func (r Range) Collapse() Range {
	return Point(r.Head)
}

// CollapseToFrom returns an empty range at the lower bound.
func (r Range) CollapseToFrom() Range {
	return Point(r.From())
}

// Contains returns true if pos lies in [From, To).
func (r Range) Contains(pos int) bool {
	return pos >= r.From() && pos < r.To()
}

// ContainsRange returns true if other lies entirely within r.
func (r Range) ContainsRange(other Range) bool {
	return other.From() >= r.From() && other.To() <= r.To()
}

// Overlaps returns true if the ranges share at least one character.
func (r Range) Overlaps(other Range) bool {
	return r.From() < other.To() && other.From() < r.To()
}

// Merge returns a forward range covering both ranges.
func (r Range) Merge(other Range) Range {
	return Range{Anchor: min(r.From(), other.From()), Head: max(r.To(), other.To())}
}

// Clamp restricts both ends of the range to [0, maxPos].
func (r Range) Clamp(maxPos int) Range {
	return Range{Anchor: clamp(r.Anchor, maxPos), Head: clamp(r.Head, maxPos)}
}

func clamp(pos, maxPos int) int {
	if pos < 0 {
		return 0
	}
	if pos > maxPos {
		return maxPos
	}
	return pos
}

// String returns a string representation of the range.
func (r Range) String() string {
	if r.IsEmpty() {
		return fmt.Sprintf("Cursor(%d)", r.Head)
	}
	dir := "→"
	if r.Direction() == Backward {
		dir = "←"
	}
	return fmt.Sprintf("Range(%d%s%d)", r.Anchor, dir, r.Head)
}
