// Package syntax defines the query interface text objects use to consult a
// parsed syntax tree, plus a language registry and a Go provider.
//
// A Tree answers three questions about a snapshot of a document:
//
//   - TextObjects: which named syntactic objects (function, class,
//     parameter, comment, test, entry) contain a position
//   - Pairs: every delimiter pair the parser recognised (brackets and
//     quoted literals), ignoring delimiters inside comments and strings
//   - MatchingBracket: the partner of the delimiter nearest a position
//
// All positions are character indices into the text the tree was parsed
// from. Trees are immutable and safe for concurrent use.
package syntax

import "sort"

// Object names understood by TextObjects.
const (
	ObjectClass     = "class"
	ObjectFunction  = "function"
	ObjectParameter = "parameter"
	ObjectComment   = "comment"
	ObjectTest      = "test"
	ObjectEntry     = "entry"
)

// ObjectNames lists every object name in display order.
var ObjectNames = []string{
	ObjectClass, ObjectFunction, ObjectParameter, ObjectComment, ObjectTest, ObjectEntry,
}

// NodeSpan is a half-open span [From, To) of character indices.
type NodeSpan struct {
	From, To int
}

// Len returns the number of characters covered.
func (s NodeSpan) Len() int {
	return s.To - s.From
}

// Contains reports whether pos lies within the span.
func (s NodeSpan) Contains(pos int) bool {
	return pos >= s.From && pos < s.To
}

// Covers reports whether other lies entirely within s.
func (s NodeSpan) Covers(other NodeSpan) bool {
	return other.From >= s.From && other.To <= s.To
}

// Object is a syntactic object. Inside is always contained in Around.
type Object struct {
	Around NodeSpan
	Inside NodeSpan
}

// Pair is a matched delimiter pair. Open and Close are the positions of the
// delimiters themselves.
type Pair struct {
	Open, Close         int
	OpenChar, CloseChar rune
}

// Encloses reports whether the pair encloses the span [from, to), counting
// the delimiters themselves as part of the pair.
func (p Pair) Encloses(from, to int) bool {
	return p.Open <= from && p.Close >= max(to-1, from)
}

// Tree is a parsed syntax tree.
type Tree interface {
	// TextObjects returns the objects named name whose Around span
	// contains pos, innermost first.
	TextObjects(name string, pos int) []Object

	// Pairs returns every delimiter pair, ordered by opening position.
	Pairs() []Pair

	// MatchingBracket returns the partner of the delimiter at pos. When pos
	// is not on a delimiter the closing delimiter of the innermost pair
	// enclosing pos is returned.
	MatchingBracket(pos int) (int, bool)

	// Handles reports whether Pairs lists every syntactic pair opened by
	// open. Delimiters the parser does not treat as pairs, such as '<' in
	// Go, are left to plain text matching.
	Handles(open rune) bool
}

// EnclosingPairs returns the pairs of tree enclosing [from, to), innermost
// first. When open is non-zero only pairs opened by that character are
// considered.
func EnclosingPairs(tree Tree, open rune, from, to int) []Pair {
	var out []Pair
	for _, p := range tree.Pairs() {
		if open != 0 && p.OpenChar != open {
			continue
		}
		if p.Encloses(from, to) {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Close-out[i].Open < out[j].Close-out[j].Open
	})
	return out
}

// sortInnermost orders objects by Around length, shortest first. Ties
// prefer objects whose Inside contains pos.
func sortInnermost(objs []Object, pos int) {
	sort.SliceStable(objs, func(i, j int) bool {
		li, lj := objs[i].Around.Len(), objs[j].Around.Len()
		if li != lj {
			return li < lj
		}
		return objs[i].Inside.Contains(pos) && !objs[j].Inside.Contains(pos)
	})
}
