// Package help builds the on-screen overlay listing valid keys for a
// pending command.
package help

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Row is one key and its meaning.
type Row struct {
	Key         string
	Description string
}

// Info is a titled list of rows.
type Info struct {
	Title string
	Rows  []Row
}

// New creates an Info from key/description pairs.
func New(title string, pairs ...[2]string) Info {
	rows := make([]Row, len(pairs))
	for i, p := range pairs {
		rows[i] = Row{Key: p[0], Description: p[1]}
	}
	return Info{Title: title, Rows: rows}
}

// KeyWidth returns the display width of the widest key.
func (i Info) KeyWidth() int {
	w := 0
	for _, r := range i.Rows {
		w = max(w, runewidth.StringWidth(r.Key))
	}
	return w
}

// Width returns the display width of the widest rendered line.
func (i Info) Width() int {
	w := runewidth.StringWidth(i.Title)
	kw := i.KeyWidth()
	for _, r := range i.Rows {
		w = max(w, kw+2+runewidth.StringWidth(r.Description))
	}
	return w
}

// Lines renders the title followed by one line per row with descriptions
// aligned in a column.
func (i Info) Lines() []string {
	kw := i.KeyWidth()
	lines := make([]string, 0, len(i.Rows)+1)
	lines = append(lines, i.Title)
	for _, r := range i.Rows {
		lines = append(lines, runewidth.FillRight(r.Key, kw)+"  "+r.Description)
	}
	return lines
}

// String renders the overlay as newline-joined lines.
func (i Info) String() string {
	return strings.Join(i.Lines(), "\n")
}

// Truncate returns Lines clipped to width columns.
func (i Info) Truncate(width int) []string {
	lines := i.Lines()
	for n, l := range lines {
		if runewidth.StringWidth(l) > width {
			lines[n] = runewidth.Truncate(l, width, "\u2026")
		}
	}
	return lines
}

// TextObject returns the overlay shown while a text-object request waits
// for its object code.
func TextObject(around bool) Info {
	title := "Match inside"
	if around {
		title = "Match around"
	}
	return New(title,
		[2]string{"w", "Word"},
		[2]string{"W", "WORD"},
		[2]string{"p", "Paragraph"},
		[2]string{"t", "Type definition (tree-sitter)"},
		[2]string{"f", "Function (tree-sitter)"},
		[2]string{"a", "Argument/parameter (tree-sitter)"},
		[2]string{"c", "Comment (tree-sitter)"},
		[2]string{"T", "Test (tree-sitter)"},
		[2]string{"e", "Data structure entry (tree-sitter)"},
		[2]string{"m", "Closest surrounding pair (tree-sitter)"},
		[2]string{"g", "Change"},
		[2]string{" ", "... or any character acting as a pair"},
	)
}
