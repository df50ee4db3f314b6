package cursor

import "sort"

// Deletion describes a removed span [From, To) of character indices.
type Deletion struct {
	From, To int
}

// Len returns the number of removed characters.
func (d Deletion) Len() int {
	return d.To - d.From
}

// CoalesceDeletions sorts spans and merges overlapping or touching ones.
// Empty spans are dropped.
func CoalesceDeletions(spans []Deletion) []Deletion {
	out := make([]Deletion, 0, len(spans))
	for _, d := range spans {
		if d.To > d.From {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].From < out[j].From })

	merged := out[:0]
	for _, d := range out {
		if n := len(merged); n > 0 && d.From <= merged[n-1].To {
			merged[n-1].To = max(merged[n-1].To, d.To)
			continue
		}
		merged = append(merged, d)
	}
	return merged
}

// MapPosition maps pos through a set of coalesced deletions.
// Positions inside a deleted span move to its start.
func MapPosition(pos int, spans []Deletion) int {
	shift := 0
	for _, d := range spans {
		if pos <= d.From {
			break
		}
		if pos < d.To {
			return d.From - shift
		}
		shift += d.Len()
	}
	return pos - shift
}

// AdjustForDeletions maps both ends of every range through the deletions.
// The number and order of ranges is preserved; ranges that collapse become
// empty and may coincide, so callers usually follow with Normalize.
func (s Selection) AdjustForDeletions(spans []Deletion) Selection {
	spans = CoalesceDeletions(spans)
	return s.Transform(func(r Range) Range {
		return Range{Anchor: MapPosition(r.Anchor, spans), Head: MapPosition(r.Head, spans)}
	})
}

// AdjustForInsertion shifts ranges at or after pos by n characters.
func (s Selection) AdjustForInsertion(pos, n int) Selection {
	shift := func(p int) int {
		if p >= pos {
			return p + n
		}
		return p
	}
	return s.Transform(func(r Range) Range {
		return Range{Anchor: shift(r.Anchor), Head: shift(r.Head)}
	})
}
