// Package cursor provides the range and selection model used by text-object
// resolution.
//
// The cursor package handles:
//
//   - Single selections with the anchor/head model via Range
//   - Ordered multi-range selections with a primary range via Selection
//   - Order-preserving transforms (Transform, TransformErr)
//   - Position mapping after deletions
//
// Range Model:
//
// A Range uses an anchor/head model where:
//   - Anchor: The position where the selection started
//   - Head: The moving end of the selection
//
// Positions are character indices. A Range covers [From(), To()). When
// Anchor == Head the range is a bare cursor. The range extends forward
// (head >= anchor) or backward (head < anchor); the direction is derived,
// never stored, so it can not disagree with the offsets.
//
// The cursor of a non-empty forward range sits on the last selected
// character (Head-1), the way a block cursor is drawn. The cursor of a
// backward or empty range is Head.
//
// Basic usage:
//
//	r := cursor.Point(10)        // cursor at 10
//	r = r.Extend(20)             // select 10..20
//	sel := cursor.NewSelection(r)
//	sel = sel.Transform(func(r cursor.Range) cursor.Range {
//	    return r.Flip()
//	})
//
// Thread Safety:
//
// Range and Selection are immutable value types and safe for concurrent
// use. Selection methods never modify the receiver.
package cursor
