// Package input routes key events to an editor session.
//
// A key first goes to a text-object request waiting for its object code.
// Otherwise it is fed to the keymap matcher for the current mode, and a
// completed binding runs the named editor command with the typed count.
// In insert mode keys that complete no binding are inserted as text.
//
//	h := input.NewHandler(ed, registry)
//	if err := h.Feed("mi("); err != nil {
//		return err
//	}
package input
