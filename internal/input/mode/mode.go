package mode

import "fmt"

// Mode is an editing mode.
type Mode uint8

const (
	// Normal is the default command mode.
	Normal Mode = iota
	// Insert is text entry.
	Insert
	// Select extends selections on movement.
	Select
	// Browse is active in a directory-listing buffer.
	Browse
)

var names = [...]string{
	Normal: "normal",
	Insert: "insert",
	Select: "select",
	Browse: "browse",
}

// String returns the mode identifier.
func (m Mode) String() string {
	if int(m) < len(names) {
		return names[m]
	}
	return fmt.Sprintf("Mode(%d)", m)
}

// DisplayName returns a short label for the status line.
func (m Mode) DisplayName() string {
	switch m {
	case Insert:
		return "INS"
	case Select:
		return "SEL"
	case Browse:
		return "DIR"
	default:
		return "NOR"
	}
}

// CursorStyle returns the cursor style for this mode.
func (m Mode) CursorStyle() CursorStyle {
	if m == Insert {
		return CursorBar
	}
	return CursorBlock
}

// Parse returns the mode named s.
func Parse(s string) (Mode, error) {
	for i, n := range names {
		if n == s {
			return Mode(i), nil
		}
	}
	return Normal, fmt.Errorf("unknown mode: %s", s)
}

// CursorStyle defines the visual appearance of the cursor.
type CursorStyle uint8

const (
	// CursorBlock is a full-cell block cursor (normal mode).
	CursorBlock CursorStyle = iota

	// CursorBar is a thin vertical bar cursor (insert mode).
	CursorBar
)

// String returns a human-readable cursor style name.
func (c CursorStyle) String() string {
	switch c {
	case CursorBlock:
		return "block"
	case CursorBar:
		return "bar"
	default:
		return "unknown"
	}
}
