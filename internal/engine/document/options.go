package document

import "github.com/dshills/textobj/internal/syntax"

// Option configures a Document during creation.
type Option func(*Document)

// WithContent sets the initial content.
func WithContent(content string) Option {
	return func(d *Document) {
		d.initContent = content
	}
}

// WithPath associates the document with a file path.
func WithPath(path string) Option {
	return func(d *Document) {
		d.path = path
	}
}

// WithSyntax sets the registry used to detect the language and parse trees.
func WithSyntax(r *syntax.Registry) Option {
	return func(d *Document) {
		d.registry = r
	}
}

// WithLanguage sets the language explicitly, overriding detection.
func WithLanguage(lang *syntax.LangConfig) Option {
	return func(d *Document) {
		d.lang = lang
	}
}

// WithDiffBase enables the diff handle against baseline.
func WithDiffBase(baseline string) Option {
	return func(d *Document) {
		b := baseline
		d.initBase = &b
	}
}

// WithScratch marks the document as disposable, such as a directory listing.
func WithScratch() Option {
	return func(d *Document) {
		d.scratch = true
	}
}
