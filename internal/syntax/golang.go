package syntax

import (
	"go/ast"
	"go/parser"
	"go/scanner"
	"go/token"
	"sort"
	"strings"
	"unicode/utf8"
)

// goTree is a Tree over Go source built with go/parser and go/scanner.
type goTree struct {
	objects map[string][]Object
	pairs   []Pair
}

// ParseGo parses Go source. Delimiter pairs are always available; text
// objects need at least a valid package clause.
func ParseGo(src string) Tree {
	idx := newCharIndex(src)
	t := &goTree{
		objects: make(map[string][]Object),
		pairs:   scanGoPairs(src, idx),
	}

	fset := token.NewFileSet()
	f, _ := parser.ParseFile(fset, "", src, parser.ParseComments|parser.AllErrors)
	if f != nil && f.Package.IsValid() {
		c := &goCollector{fset: fset, idx: idx, objects: t.objects}
		c.collect(f)
	}
	return t
}

func (t *goTree) TextObjects(name string, pos int) []Object {
	var out []Object
	for _, o := range t.objects[name] {
		if o.Around.Contains(pos) {
			out = append(out, o)
		}
	}
	sortInnermost(out, pos)
	return out
}

func (t *goTree) Pairs() []Pair {
	return t.pairs
}

func (t *goTree) Handles(open rune) bool {
	switch open {
	case '(', '[', '{', '"', '\'', '`':
		return true
	}
	return false
}

func (t *goTree) MatchingBracket(pos int) (int, bool) {
	var best *Pair
	for i := range t.pairs {
		p := &t.pairs[i]
		switch pos {
		case p.Open:
			return p.Close, true
		case p.Close:
			return p.Open, true
		}
		if p.Open < pos && pos < p.Close && (best == nil || p.Close-p.Open < best.Close-best.Open) {
			best = p
		}
	}
	if best == nil {
		return 0, false
	}
	return best.Close, true
}

// charIndex maps byte offsets to character indices. Bytes inside a
// multi-byte character map to that character.
type charIndex []int

func newCharIndex(src string) charIndex {
	idx := make(charIndex, len(src)+1)
	n := 0
	for i := 0; i < len(src); {
		_, size := utf8.DecodeRuneInString(src[i:])
		for b := i; b < i+size; b++ {
			idx[b] = n
		}
		i += size
		n++
	}
	idx[len(src)] = n
	return idx
}

func (idx charIndex) at(off int) int {
	if off < 0 {
		return 0
	}
	if off >= len(idx) {
		return idx[len(idx)-1]
	}
	return idx[off]
}

var goClosers = map[token.Token]rune{
	token.RPAREN: '(',
	token.RBRACK: '[',
	token.RBRACE: '{',
}

// scanGoPairs tokenizes src and matches brackets and quoted literals.
// Comments are skipped by the scanner so delimiters inside them never pair.
func scanGoPairs(src string, idx charIndex) []Pair {
	fset := token.NewFileSet()
	file := fset.AddFile("", fset.Base(), len(src))

	var s scanner.Scanner
	s.Init(file, []byte(src), nil, 0)

	var (
		open  []Pair
		pairs []Pair
	)
	for {
		pos, tok, lit := s.Scan()
		if tok == token.EOF {
			break
		}
		off := file.Offset(pos)
		switch tok {
		case token.LPAREN, token.LBRACK, token.LBRACE:
			open = append(open, Pair{Open: idx.at(off), OpenChar: rune(src[off])})
		case token.RPAREN, token.RBRACK, token.RBRACE:
			want := goClosers[tok]
			for j := len(open) - 1; j >= 0; j-- {
				if open[j].OpenChar == want {
					p := open[j]
					p.Close = idx.at(off)
					p.CloseChar = rune(src[off])
					pairs = append(pairs, p)
					open = open[:j]
					break
				}
			}
		case token.STRING, token.CHAR:
			if p, ok := quotedPair(src, off, lit, idx); ok {
				pairs = append(pairs, p)
			}
		}
	}

	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Open < pairs[j].Open })
	return pairs
}

func quotedPair(src string, off int, lit string, idx charIndex) (Pair, bool) {
	if len(lit) < 2 {
		return Pair{}, false
	}
	q := lit[0]
	end := -1
	if q == '`' {
		// Raw string literals have carriage returns stripped from lit.
		if i := strings.IndexByte(src[off+1:], '`'); i >= 0 {
			end = off + 1 + i
		}
	} else if lit[len(lit)-1] == q {
		end = off + len(lit) - 1
	}
	if end < 0 {
		return Pair{}, false
	}
	return Pair{Open: idx.at(off), Close: idx.at(end), OpenChar: rune(q), CloseChar: rune(q)}, true
}

// goCollector walks a Go AST and records text objects.
type goCollector struct {
	fset    *token.FileSet
	idx     charIndex
	objects map[string][]Object
}

func (c *goCollector) collect(f *ast.File) {
	ast.Inspect(f, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.FuncDecl:
			c.function(n, n.Body)
			if n.Recv == nil && isTestFunc(n.Name.Name) {
				if around, ok := c.span(n); ok {
					c.add(ObjectTest, around, c.bodyInside(n.Body, around))
				}
			}
		case *ast.FuncLit:
			c.function(n, n.Body)
		case *ast.FuncType:
			for _, fl := range []*ast.FieldList{n.TypeParams, n.Params, n.Results} {
				if fl != nil {
					c.list(ObjectParameter, fieldNodes(fl.List))
				}
			}
		case *ast.CallExpr:
			c.list(ObjectParameter, exprNodes(n.Args))
		case *ast.CompositeLit:
			c.list(ObjectEntry, exprNodes(n.Elts))
		case *ast.GenDecl:
			if n.Tok == token.TYPE {
				c.typeDecl(n)
			}
		}
		return true
	})

	for _, g := range f.Comments {
		around, ok := c.span(g)
		if !ok {
			continue
		}
		for _, cm := range g.List {
			if inside, ok := c.span(cm); ok {
				c.add(ObjectComment, around, inside)
			}
		}
	}
}

func (c *goCollector) pos(p token.Pos) (int, bool) {
	if !p.IsValid() {
		return 0, false
	}
	return c.idx.at(c.fset.Position(p).Offset), true
}

func (c *goCollector) span(n ast.Node) (NodeSpan, bool) {
	from, ok1 := c.pos(n.Pos())
	to, ok2 := c.pos(n.End())
	if !ok1 || !ok2 || to < from {
		return NodeSpan{}, false
	}
	return NodeSpan{From: from, To: to}, true
}

func (c *goCollector) add(name string, around, inside NodeSpan) {
	if !around.Covers(inside) {
		inside = around
	}
	c.objects[name] = append(c.objects[name], Object{Around: around, Inside: inside})
}

func (c *goCollector) function(n ast.Node, body *ast.BlockStmt) {
	around, ok := c.span(n)
	if !ok {
		return
	}
	c.add(ObjectFunction, around, c.bodyInside(body, around))
}

// bodyInside returns the interior of a block, or fallback when the block is
// missing or incomplete.
func (c *goCollector) bodyInside(body *ast.BlockStmt, fallback NodeSpan) NodeSpan {
	if body == nil {
		return fallback
	}
	return c.between(body.Lbrace, body.Rbrace, fallback)
}

// between returns the span strictly between two delimiter positions.
func (c *goCollector) between(open, close token.Pos, fallback NodeSpan) NodeSpan {
	o, ok1 := c.pos(open)
	cl, ok2 := c.pos(close)
	if !ok1 || !ok2 || cl <= o {
		return fallback
	}
	return NodeSpan{From: o + 1, To: cl}
}

func (c *goCollector) typeDecl(d *ast.GenDecl) {
	declSpan, ok := c.span(d)
	if !ok {
		return
	}
	for _, s := range d.Specs {
		ts, ok := s.(*ast.TypeSpec)
		if !ok {
			continue
		}
		around := declSpan
		if d.Lparen.IsValid() {
			if around, ok = c.span(ts); !ok {
				continue
			}
		}
		inside, ok := c.span(ts.Type)
		if !ok {
			inside = around
		}
		switch t := ts.Type.(type) {
		case *ast.StructType:
			if t.Fields != nil {
				inside = c.between(t.Fields.Opening, t.Fields.Closing, inside)
			}
		case *ast.InterfaceType:
			if t.Methods != nil {
				inside = c.between(t.Methods.Opening, t.Methods.Closing, inside)
			}
		}
		c.add(ObjectClass, around, inside)
	}
}

// list records one object per element. Around extends to the start of the
// next element, or back to the end of the previous one for the last.
func (c *goCollector) list(name string, items []ast.Node) {
	spans := make([]NodeSpan, 0, len(items))
	for _, it := range items {
		s, ok := c.span(it)
		if !ok {
			return
		}
		spans = append(spans, s)
	}
	for i, inside := range spans {
		around := inside
		switch {
		case i+1 < len(spans):
			around.To = spans[i+1].From
		case i > 0:
			around.From = spans[i-1].To
		}
		c.add(name, around, inside)
	}
}

func fieldNodes(fields []*ast.Field) []ast.Node {
	out := make([]ast.Node, len(fields))
	for i, f := range fields {
		out[i] = f
	}
	return out
}

func exprNodes(exprs []ast.Expr) []ast.Node {
	out := make([]ast.Node, len(exprs))
	for i, e := range exprs {
		out[i] = e
	}
	return out
}

func isTestFunc(name string) bool {
	for _, prefix := range []string{"Test", "Benchmark", "Fuzz", "Example"} {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}
