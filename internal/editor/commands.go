package editor

import (
	"context"
	"errors"
	"sort"

	"github.com/dshills/textobj/internal/dirlist"
	"github.com/dshills/textobj/internal/textobject"
)

// SelectTextObjectAround waits for an object code and selects around it.
func (e *Editor) SelectTextObjectAround(count int) {
	e.await(Request{Span: textobject.Around, Op: OpSelect, Count: count})
}

// SelectTextObjectInner waits for an object code and selects inside it.
func (e *Editor) SelectTextObjectInner(count int) {
	e.await(Request{Span: textobject.Inside, Op: OpSelect, Count: count})
}

// ChangeTextObjectAround waits for an object code and changes around it.
func (e *Editor) ChangeTextObjectAround(count int) {
	e.await(Request{Span: textobject.Around, Op: OpChange, Count: count})
}

// ChangeTextObjectInner waits for an object code and changes inside it.
func (e *Editor) ChangeTextObjectInner(count int) {
	e.await(Request{Span: textobject.Inside, Op: OpChange, Count: count})
}

// DeleteTextObjectAround waits for an object code and deletes around it.
func (e *Editor) DeleteTextObjectAround(count int) {
	e.await(Request{Span: textobject.Around, Op: OpDelete, Count: count})
}

// DeleteTextObjectInner waits for an object code and deletes inside it.
func (e *Editor) DeleteTextObjectInner(count int) {
	e.await(Request{Span: textobject.Inside, Op: OpDelete, Count: count})
}

// YankTextObjectAround waits for an object code and yanks around it.
func (e *Editor) YankTextObjectAround(count int) {
	e.await(Request{Span: textobject.Around, Op: OpYank, Count: count})
}

// YankTextObjectInner waits for an object code and yanks inside it.
func (e *Editor) YankTextObjectInner(count int) {
	e.await(Request{Span: textobject.Inside, Op: OpYank, Count: count})
}

// Command is a named editor command. count is at least 1.
type Command func(e *Editor, count int)

func textObjectCommand(span textobject.Span, op Operation) Command {
	return func(e *Editor, count int) {
		e.await(Request{Span: span, Op: op, Count: count})
	}
}

func wordCommand(edge wordEdge, long bool, op Operation) Command {
	return func(e *Editor, count int) {
		e.extendWord(edge, long, count)
		e.dispatch(op, e.Selection())
	}
}

func motionCommand(m motion) Command {
	return func(e *Editor, count int) {
		e.move(m, count)
	}
}

var commands = map[string]Command{
	"select_textobject_around": textObjectCommand(textobject.Around, OpSelect),
	"select_textobject_inner":  textObjectCommand(textobject.Inside, OpSelect),
	"change_textobject_around": textObjectCommand(textobject.Around, OpChange),
	"change_textobject_inner":  textObjectCommand(textobject.Inside, OpChange),
	"delete_textobject_around": textObjectCommand(textobject.Around, OpDelete),
	"delete_textobject_inner":  textObjectCommand(textobject.Inside, OpDelete),
	"yank_textobject_around":   textObjectCommand(textobject.Around, OpYank),
	"yank_textobject_inner":    textObjectCommand(textobject.Inside, OpYank),

	"goto_matching_pair": func(e *Editor, _ int) { e.GotoMatchingPair() },

	"change_to_end_of_word":            wordCommand(edgeEnd, false, OpChange),
	"change_to_end_of_long_word":       wordCommand(edgeEnd, true, OpChange),
	"change_to_beginning_of_word":      wordCommand(edgeBeginning, false, OpChange),
	"change_to_beginning_of_long_word": wordCommand(edgeBeginning, true, OpChange),
	"delete_to_end_of_word":            wordCommand(edgeEnd, false, OpDelete),
	"delete_to_end_of_long_word":       wordCommand(edgeEnd, true, OpDelete),
	"delete_to_beginning_of_word":      wordCommand(edgeBeginning, false, OpDelete),
	"delete_to_beginning_of_long_word": wordCommand(edgeBeginning, true, OpDelete),
	"select_to_start_of_word":          wordCommand(edgeNextStart, false, OpSelect),
	"select_to_start_of_long_word":     wordCommand(edgeNextStart, true, OpSelect),
	"select_to_end_of_word":            wordCommand(edgeEnd, false, OpSelect),
	"select_to_end_of_long_word":       wordCommand(edgeEnd, true, OpSelect),
	"select_to_beginning_of_word":      wordCommand(edgeBeginning, false, OpSelect),
	"select_to_beginning_of_long_word": wordCommand(edgeBeginning, true, OpSelect),
	"yank_to_end_of_word":              wordCommand(edgeEnd, false, OpYank),
	"yank_to_end_of_long_word":         wordCommand(edgeEnd, true, OpYank),
	"yank_to_beginning_of_word":        wordCommand(edgeBeginning, false, OpYank),
	"yank_to_beginning_of_long_word":   wordCommand(edgeBeginning, true, OpYank),

	"change_line":           (*Editor).ChangeLine,
	"delete_line":           (*Editor).DeleteLine,
	"yank_line":             (*Editor).YankLine,
	"change_to_end_of_line": func(e *Editor, _ int) { e.ChangeToEndOfLine() },
	"delete_to_end_of_line": func(e *Editor, _ int) { e.DeleteToEndOfLine() },

	"move_char_left":  motionCommand(moveLeft),
	"move_char_right": motionCommand(moveRight),
	"move_line_up":    motionCommand(moveUp),
	"move_line_down":  motionCommand(moveDown),
	"normal_mode":     func(e *Editor, _ int) { e.NormalMode() },

	"netrw":            func(e *Editor, _ int) { e.report(e.Browse()) },
	"open_netrw":       func(e *Editor, _ int) { e.report(e.OpenEntry(context.Background())) },
	"netrw_parent_dir": func(e *Editor, _ int) { e.report(e.ParentDir()) },
}

// report shows err on the status line. Unreadable directories are only
// logged, by the lister, and errors already on the status line are left
// as shown.
func (e *Editor) report(err error) {
	var shown shownError
	switch {
	case err == nil:
	case errors.Is(err, dirlist.ErrUnreadable):
	case errors.As(err, &shown):
	default:
		e.SetError(err.Error())
	}
}

// shownError marks an error that has already been put on the status line.
type shownError struct {
	error
}

func (e shownError) Unwrap() error {
	return e.error
}

// Lookup returns the command registered under name.
func Lookup(name string) (Command, bool) {
	c, ok := commands[name]
	return c, ok
}

// Names returns every command name, sorted.
func Names() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Execute runs the command registered under name.
func (e *Editor) Execute(name string, count int) bool {
	c, ok := Lookup(name)
	if !ok {
		e.logger.Debug("unknown command %q", name)
		return false
	}
	c(e, max(count, 1))
	return true
}
