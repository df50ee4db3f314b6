package cursor

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrEmptySelection is returned when building a selection from no ranges.
var ErrEmptySelection = errors.New("selection must contain at least one range")

// Selection is an ordered, non-empty sequence of ranges with one primary
// range. Selection is an immutable value type; all methods return copies.
type Selection struct {
	ranges  []Range
	primary int
}

// NewSelection creates a selection with a single range.
func NewSelection(r Range) Selection {
	return Selection{ranges: []Range{r}}
}

// NewMulti creates a selection from ranges, keeping their order.
// The primary index is clamped into range.
func NewMulti(ranges []Range, primary int) (Selection, error) {
	if len(ranges) == 0 {
		return Selection{}, ErrEmptySelection
	}
	rs := make([]Range, len(ranges))
	copy(rs, ranges)
	return Selection{ranges: rs, primary: clamp(primary, len(rs)-1)}, nil
}

// Len returns the number of ranges.
func (s Selection) Len() int {
	return len(s.ranges)
}

// Ranges returns a copy of the ranges in order.
func (s Selection) Ranges() []Range {
	out := make([]Range, len(s.ranges))
	copy(out, s.ranges)
	return out
}

// Get returns the range at index i.
func (s Selection) Get(i int) (Range, bool) {
	if i < 0 || i >= len(s.ranges) {
		return Range{}, false
	}
	return s.ranges[i], true
}

// PrimaryIndex returns the index of the primary range.
func (s Selection) PrimaryIndex() int {
	return s.primary
}

// Primary returns the primary range.
func (s Selection) Primary() Range {
	if len(s.ranges) == 0 {
		return Range{}
	}
	return s.ranges[s.primary]
}

// WithPrimary returns a copy with the primary range replaced.
func (s Selection) WithPrimary(r Range) Selection {
	if len(s.ranges) == 0 {
		return NewSelection(r)
	}
	out := s.clone()
	out.ranges[out.primary] = r
	return out
}

// Transform maps every range through f. The result has exactly one range
// per input range, in the same order, with the same primary index.
func (s Selection) Transform(f func(Range) Range) Selection {
	out := s.clone()
	for i, r := range s.ranges {
		out.ranges[i] = f(r)
	}
	return out
}

// TransformErr is like Transform but stops at the first error. On error
// the receiver is returned unchanged alongside the error.
func (s Selection) TransformErr(f func(Range) (Range, error)) (Selection, error) {
	out := s.clone()
	for i, r := range s.ranges {
		nr, err := f(r)
		if err != nil {
			return s, err
		}
		out.ranges[i] = nr
	}
	return out, nil
}

// Changed reports whether any range differs from the corresponding range
// in other. Selections of different lengths are always changed.
func (s Selection) Changed(other Selection) bool {
	if len(s.ranges) != len(other.ranges) {
		return true
	}
	for i, r := range s.ranges {
		if r != other.ranges[i] {
			return true
		}
	}
	return false
}

// Equals returns true if both selections have the same ranges and primary.
func (s Selection) Equals(other Selection) bool {
	return s.primary == other.primary && !s.Changed(other)
}

// Clamp clamps every range to [0, maxPos].
func (s Selection) Clamp(maxPos int) Selection {
	return s.Transform(func(r Range) Range { return r.Clamp(maxPos) })
}

// Normalize sorts ranges by position and merges overlapping ones. Empty
// ranges at the same position collapse into one. The primary index follows
// the range it pointed at. Unlike Transform, Normalize may change the number
// of ranges.
func (s Selection) Normalize() Selection {
	if len(s.ranges) <= 1 {
		return s.clone()
	}

	type indexed struct {
		r   Range
		idx int
	}
	items := make([]indexed, len(s.ranges))
	for i, r := range s.ranges {
		items[i] = indexed{r: r, idx: i}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].r.From() < items[j].r.From()
	})

	merged := []Range{items[0].r}
	primary := 0
	for _, it := range items[1:] {
		last := &merged[len(merged)-1]
		if it.r.From() < last.To() || (it.r.From() == last.From() && it.r.IsEmpty() && last.IsEmpty()) {
			*last = last.Merge(it.r).WithDirection(last.Direction())
		} else {
			merged = append(merged, it.r)
		}
		if it.idx == s.primary {
			primary = len(merged) - 1
		}
	}
	if items[0].idx == s.primary {
		primary = 0
	}
	return Selection{ranges: merged, primary: primary}
}

// String returns a string representation of the selection.
func (s Selection) String() string {
	parts := make([]string, len(s.ranges))
	for i, r := range s.ranges {
		parts[i] = r.String()
		if i == s.primary {
			parts[i] = "*" + parts[i]
		}
	}
	return fmt.Sprintf("Selection[%s]", strings.Join(parts, " "))
}

func (s Selection) clone() Selection {
	rs := make([]Range, len(s.ranges))
	copy(rs, s.ranges)
	return Selection{ranges: rs, primary: s.primary}
}
