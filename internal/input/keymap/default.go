package keymap

import "github.com/dshills/textobj/internal/input/mode"

// textObjectKeys binds the text-object commands shared by normal and
// select mode.
func textObjectKeys(km *Keymap) *Keymap {
	return km.
		Add("mi", "select_textobject_inner", "Select inside object").
		Add("ma", "select_textobject_around", "Select around object").
		Add("mm", "goto_matching_pair", "Goto matching bracket")
}

func moveKeys(km *Keymap) *Keymap {
	return km.
		Add("h", "move_char_left", "Move left").
		Add("j", "move_line_down", "Move down").
		Add("k", "move_line_up", "Move up").
		Add("l", "move_char_right", "Move right").
		Add("<Left>", "move_char_left", "Move left").
		Add("<Down>", "move_line_down", "Move down").
		Add("<Up>", "move_line_up", "Move up").
		Add("<Right>", "move_char_right", "Move right")
}

// DefaultNormalKeymap returns default normal mode bindings.
func DefaultNormalKeymap() *Keymap {
	km := moveKeys(textObjectKeys(New(mode.Normal)))
	return km.
		Add("ci", "change_textobject_inner", "Change inside object").
		Add("ca", "change_textobject_around", "Change around object").
		Add("di", "delete_textobject_inner", "Delete inside object").
		Add("da", "delete_textobject_around", "Delete around object").
		Add("yi", "yank_textobject_inner", "Yank inside object").
		Add("ya", "yank_textobject_around", "Yank around object").
		Add("cw", "change_to_end_of_word", "Change to end of word").
		Add("cW", "change_to_end_of_long_word", "Change to end of WORD").
		Add("ce", "change_to_end_of_word", "Change to end of word").
		Add("cE", "change_to_end_of_long_word", "Change to end of WORD").
		Add("cb", "change_to_beginning_of_word", "Change to beginning of word").
		Add("cB", "change_to_beginning_of_long_word", "Change to beginning of WORD").
		Add("dw", "delete_to_end_of_word", "Delete to end of word").
		Add("dW", "delete_to_end_of_long_word", "Delete to end of WORD").
		Add("de", "delete_to_end_of_word", "Delete to end of word").
		Add("dE", "delete_to_end_of_long_word", "Delete to end of WORD").
		Add("db", "delete_to_beginning_of_word", "Delete to beginning of word").
		Add("dB", "delete_to_beginning_of_long_word", "Delete to beginning of WORD").
		Add("ye", "yank_to_end_of_word", "Yank to end of word").
		Add("yE", "yank_to_end_of_long_word", "Yank to end of WORD").
		Add("yb", "yank_to_beginning_of_word", "Yank to beginning of word").
		Add("yB", "yank_to_beginning_of_long_word", "Yank to beginning of WORD").
		Add("w", "select_to_start_of_word", "Select to next word start").
		Add("W", "select_to_start_of_long_word", "Select to next WORD start").
		Add("e", "select_to_end_of_word", "Select to end of word").
		Add("E", "select_to_end_of_long_word", "Select to end of WORD").
		Add("b", "select_to_beginning_of_word", "Select to beginning of word").
		Add("B", "select_to_beginning_of_long_word", "Select to beginning of WORD").
		Add("cc", "change_line", "Change line").
		Add("dd", "delete_line", "Delete line").
		Add("yy", "yank_line", "Yank line").
		Add("C", "change_to_end_of_line", "Change to end of line").
		Add("D", "delete_to_end_of_line", "Delete to end of line").
		Add("-", "netrw", "Browse directory")
}

// DefaultSelectKeymap returns default select mode bindings.
func DefaultSelectKeymap() *Keymap {
	return moveKeys(textObjectKeys(New(mode.Select))).
		Add("<Esc>", "normal_mode", "Normal mode")
}

// DefaultInsertKeymap returns default insert mode bindings.
func DefaultInsertKeymap() *Keymap {
	return New(mode.Insert).
		Add("<Esc>", "normal_mode", "Normal mode")
}

// DefaultBrowseKeymap returns default directory listing bindings.
func DefaultBrowseKeymap() *Keymap {
	return New(mode.Browse).
		Add("j", "move_line_down", "Next entry").
		Add("k", "move_line_up", "Previous entry").
		Add("<Down>", "move_line_down", "Next entry").
		Add("<Up>", "move_line_up", "Previous entry").
		Add("<Enter>", "open_netrw", "Open entry").
		Add("-", "netrw_parent_dir", "Parent directory")
}

// Defaults returns the default keymaps of every mode.
func Defaults() []*Keymap {
	return []*Keymap{
		DefaultNormalKeymap(),
		DefaultInsertKeymap(),
		DefaultSelectKeymap(),
		DefaultBrowseKeymap(),
	}
}

// LoadDefaults registers the default keymaps into r.
func LoadDefaults(r *Registry) error {
	for _, km := range Defaults() {
		if err := r.Register(km); err != nil {
			return err
		}
	}
	return nil
}
