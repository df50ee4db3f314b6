package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/dshills/textobj/internal/editor"
	"github.com/dshills/textobj/internal/engine/document"
	"github.com/dshills/textobj/internal/input"
	"github.com/dshills/textobj/internal/register"
)

// Output formats of resolve.
const (
	formatText   = "text"
	formatRanges = "ranges"
	formatBuffer = "buffer"
	formatJSON   = "json"
)

type resolveOptions struct {
	at       []string
	keys     string
	lang     string
	format   string
	register string
	diffBase string
}

func newResolveCmd(a *app) *cobra.Command {
	opts := &resolveOptions{}
	cmd := &cobra.Command{
		Use:   "resolve [file]",
		Short: "Run a key sequence over a file and print the resulting selection",
		Long: `Resolve opens a file, or standard input when no file or "-" is given,
places the cursors given with --at, feeds the keys given with --keys
through the normal-mode keymap and prints the result.`,
		Example: `  textobj resolve main.go --at 12:9 --keys 'mi('
  textobj resolve notes.txt --at 0 --at 2:1 --keys 'dap' --format buffer
  echo 'say "hi" now' | textobj resolve --at 6 --keys 'ma"' --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runResolve(cmd, args, opts)
		},
	}

	f := cmd.Flags()
	f.StringArrayVar(&opts.at, "at", nil, "cursor or range: OFFSET, LINE:COL or ANCHOR..HEAD (repeatable; first is primary)")
	f.StringVarP(&opts.keys, "keys", "k", "", "key sequence, e.g. 'mi(' or '2da{'")
	f.StringVar(&opts.lang, "lang", "", "language of standard input, e.g. go")
	f.StringVarP(&opts.format, "format", "f", formatText, "output format (text|ranges|buffer|json)")
	f.StringVarP(&opts.register, "register", "r", "", "register for delete, change and yank")
	f.StringVar(&opts.diffBase, "diff-base", "", "file holding the diff baseline")
	return cmd
}

func (a *app) runResolve(cmd *cobra.Command, args []string, opts *resolveOptions) error {
	switch opts.format {
	case formatText, formatRanges, formatBuffer, formatJSON:
	default:
		return fmt.Errorf("unknown format %q", opts.format)
	}

	ed := a.newEditor()
	doc, err := a.openInput(cmd, ed, args, opts.lang)
	if err != nil {
		return err
	}
	if opts.diffBase != "" {
		base, err := os.ReadFile(opts.diffBase)
		if err != nil {
			return err
		}
		doc.SetDiffBase(string(base))
	}

	sel, err := parseSelection(doc.Text(), opts.at)
	if err != nil {
		return err
	}
	ed.SetSelection(sel)

	if opts.register != "" {
		r, size := utf8.DecodeRuneInString(opts.register)
		if size != len(opts.register) {
			return fmt.Errorf("register must be a single character, got %q", opts.register)
		}
		if err := ed.SelectRegister(r); err != nil {
			return err
		}
	}

	h := input.NewHandler(ed, a.keys)
	if err := h.Feed(opts.keys); err != nil {
		return err
	}
	if !h.Idle() {
		return fmt.Errorf("incomplete key sequence %q (waiting on %s)", opts.keys, h.PendingKeys())
	}

	if st, ok := ed.Status(); ok {
		if st.Severity == editor.SeverityError {
			return errors.New(st.Message)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), st.Message)
	}
	return writeResult(cmd.OutOrStdout(), ed, opts)
}

// openInput opens the named file or reads standard input.
func (a *app) openInput(cmd *cobra.Command, ed *editor.Editor, args []string, lang string) (*document.Document, error) {
	if len(args) == 1 && args[0] != "-" {
		return ed.OpenFile(cmd.Context(), args[0])
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("reading standard input: %w", err)
	}
	var docOpts []document.Option
	if lang != "" {
		l, ok := a.syntax.Language(lang)
		if !ok {
			return nil, fmt.Errorf("unknown language %q", lang)
		}
		docOpts = append(docOpts, document.WithLanguage(l))
	}
	return ed.OpenBuffer(string(data), docOpts...), nil
}

func writeResult(w io.Writer, ed *editor.Editor, opts *resolveOptions) error {
	t := ed.Current().Text()
	sel := ed.Selection()

	switch opts.format {
	case formatBuffer:
		_, err := io.WriteString(w, t.String())
		return err
	case formatRanges:
		for _, r := range sel.Ranges() {
			if _, err := fmt.Fprintf(w, "%d..%d\n", r.Anchor, r.Head); err != nil {
				return err
			}
		}
		return nil
	case formatJSON:
		out, err := resultJSON(ed, opts.register)
		if err != nil {
			return err
		}
		_, err = w.Write(pretty.Pretty(out))
		return err
	default:
		for _, r := range sel.Ranges() {
			if _, err := fmt.Fprintln(w, t.Slice(r.From(), r.To())); err != nil {
				return err
			}
		}
		return nil
	}
}

// resultJSON renders the editor state after a resolve:
//
//	{"mode": "select", "primary": 0,
//	 "ranges": [{"anchor": 1, "head": 4, "line": 1, "column": 2, "text": "foo"}],
//	 "register": {"name": "\"", "values": ["foo"]},
//	 "status": "..."}
func resultJSON(ed *editor.Editor, reg string) ([]byte, error) {
	t := ed.Current().Text()
	sel := ed.Selection()

	out := []byte(`{}`)
	var err error
	set := func(path string, v any) {
		if err != nil {
			return
		}
		out, err = sjson.SetBytes(out, path, v)
	}
	set("mode", ed.Mode().String())
	set("primary", sel.PrimaryIndex())
	set("ranges", []any{})
	for i, r := range sel.Ranges() {
		line, col := lineCol(t, r.Head)
		prefix := fmt.Sprintf("ranges.%d.", i)
		set(prefix+"anchor", r.Anchor)
		set(prefix+"head", r.Head)
		set(prefix+"line", line)
		set(prefix+"column", col)
		set(prefix+"text", t.Slice(r.From(), r.To()))
	}

	name := register.Unnamed
	if reg != "" {
		name, _ = utf8.DecodeRuneInString(reg)
	}
	if values, ok := ed.Registers().Get(name); ok {
		set("register.name", string(name))
		set("register.values", values)
	}
	if st, ok := ed.Status(); ok {
		set("status", st.Message)
	}
	return out, err
}
