// Package term is an interactive terminal front end for the editor.
//
// It draws the focused document with its selection, a status line and the
// help overlay of a pending text-object request, and routes key presses:
// first to a pending request, then through the keymap matcher to an
// editor command. In insert mode unbound printable keys are inserted.
package term
