package textobject

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/dshills/textobj/internal/diff"
	"github.com/dshills/textobj/internal/engine/cursor"
	"github.com/dshills/textobj/internal/engine/text"
	"github.com/dshills/textobj/internal/syntax"
)

func plain(s string) Context {
	return Context{Text: text.New(s)}
}

func resolve(t *testing.T, ctx Context, code rune, span Span, r cursor.Range) cursor.Range {
	t.Helper()
	out, err := Resolve(ctx, Parse(code), span, 1, r)
	require.NoError(t, err)
	return out
}

func slice(ctx Context, r cursor.Range) string {
	return ctx.Text.Slice(r.From(), r.To())
}

func TestParse(t *testing.T) {
	tests := []struct {
		ch   rune
		want Kind
	}{
		{'w', Kind{Tag: TagWord}},
		{'W', Kind{Tag: TagBigWord}},
		{'p', Kind{Tag: TagParagraph}},
		{'t', Kind{Tag: TagSyntaxNode, Name: "class"}},
		{'f', Kind{Tag: TagSyntaxNode, Name: "function"}},
		{'a', Kind{Tag: TagSyntaxNode, Name: "parameter"}},
		{'c', Kind{Tag: TagSyntaxNode, Name: "comment"}},
		{'T', Kind{Tag: TagSyntaxNode, Name: "test"}},
		{'e', Kind{Tag: TagSyntaxNode, Name: "entry"}},
		{'m', Kind{Tag: TagClosestPair}},
		{'g', Kind{Tag: TagChangedHunk}},
		{'(', Kind{Tag: TagLiteralPair, Char: '('}},
		{'"', Kind{Tag: TagLiteralPair, Char: '"'}},
		{'«', Kind{Tag: TagLiteralPair, Char: '«'}},
		{'x', Kind{Tag: TagNone}},
		{'7', Kind{Tag: TagNone}},
	}
	for _, tt := range tests {
		if got := Parse(tt.ch); got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.ch, got, tt.want)
		}
	}
}

func TestEveryTagHasResolver(t *testing.T) {
	for tag := TagNone; tag < tagCount; tag++ {
		if resolvers[tag] == nil {
			t.Errorf("no resolver for %v", tag)
		}
	}
}

func TestUnassignedCodeIsNoop(t *testing.T) {
	ctx := plain("hello world")
	r := cursor.NewRange(1, 3)
	assert.Equal(t, r, resolve(t, ctx, 'x', Around, r))
}

func TestClosestPairEndToEnd(t *testing.T) {
	ctx := plain("(foo (bar) baz)")
	r := cursor.Point(7)

	inside := resolve(t, ctx, 'm', Inside, r)
	assert.Equal(t, "bar", slice(ctx, inside))

	around := resolve(t, ctx, 'm', Around, r)
	assert.Equal(t, "(bar)", slice(ctx, around))
}

func TestClosestPairWithTree(t *testing.T) {
	src := "package p\n\nvar v = f(\"(\", g(x))\n"
	tree := syntax.ParseGo(src)
	lang := syntax.GoLanguage()
	ctx := Context{Text: text.New(src), Tree: tree, Lang: &lang}

	x := len([]rune(src[:strings.Index(src, "x))")]))
	assert.Equal(t, "(x)", slice(ctx, resolve(t, ctx, 'm', Around, cursor.Point(x))))

	out, err := Resolve(ctx, Parse('m'), Around, 2, cursor.Point(x))
	require.NoError(t, err)
	assert.Equal(t, `("(", g(x))`, slice(ctx, out))
}

func TestLiteralPair(t *testing.T) {
	ctx := plain("call(a, [b, c], d)")
	b := strings.Index("call(a, [b, c], d)", "b")

	assert.Equal(t, "b, c", slice(ctx, resolve(t, ctx, '[', Inside, cursor.Point(b))))
	assert.Equal(t, "[b, c]", slice(ctx, resolve(t, ctx, ']', Around, cursor.Point(b))))
	assert.Equal(t, "a, [b, c], d", slice(ctx, resolve(t, ctx, '(', Inside, cursor.Point(b))))

	r := cursor.Point(b)
	assert.Equal(t, r, resolve(t, ctx, '{', Inside, r), "absent pair leaves range unchanged")
}

func TestLiteralPairKeepsDirection(t *testing.T) {
	ctx := plain("(abc)")
	out := resolve(t, ctx, '(', Inside, cursor.NewRange(3, 2))
	assert.Equal(t, cursor.NewRange(4, 1), out)
}

func TestQuotePairIsLineScoped(t *testing.T) {
	src := "x = \"a\"\ny = \"b c\" + \"d\"\n"
	ctx := plain(src)
	b := strings.Index(src, "b c")

	assert.Equal(t, "b c", slice(ctx, resolve(t, ctx, '"', Inside, cursor.Point(b))))
	assert.Equal(t, `"b c"`, slice(ctx, resolve(t, ctx, '"', Around, cursor.Point(b))))

	d := strings.Index(src, "d\"")
	assert.Equal(t, "d", slice(ctx, resolve(t, ctx, '"', Inside, cursor.Point(d))))
}

func TestQuoteSingleOccurrenceIsNoop(t *testing.T) {
	src := "first \"line\"\nonly \" one\n"
	ctx := plain(src)
	r := cursor.Point(strings.Index(src, "one"))

	assert.Equal(t, r, resolve(t, ctx, '"', Inside, r))
}

func TestSyntaxNodeRequiresTreeAndLanguage(t *testing.T) {
	src := "package p\n\nfunc f() {\n\treturn\n}\n"
	tree := syntax.ParseGo(src)
	lang := syntax.GoLanguage()
	pos := strings.Index(src, "return")
	r := cursor.Point(pos)

	for _, ctx := range []Context{
		{Text: text.New(src)},
		{Text: text.New(src), Tree: tree},
		{Text: text.New(src), Lang: &lang},
		{Text: text.New(src), Tree: tree, Lang: &syntax.LangConfig{Name: "go", TextObjects: []string{"class"}}},
	} {
		assert.Equal(t, r, resolve(t, ctx, 'f', Around, r))
	}

	ctx := Context{Text: text.New(src), Tree: tree, Lang: &lang}
	assert.Equal(t, "func f() {\n\treturn\n}", slice(ctx, resolve(t, ctx, 'f', Around, r)))
	assert.Equal(t, "\n\treturn\n", slice(ctx, resolve(t, ctx, 'f', Inside, r)))
}

func TestSyntaxNodeCount(t *testing.T) {
	src := "package p\n\nfunc outer() {\n\tf := func() {\n\t\treturn\n\t}\n\t_ = f\n}\n"
	tree := syntax.ParseGo(src)
	lang := syntax.GoLanguage()
	ctx := Context{Text: text.New(src), Tree: tree, Lang: &lang}
	r := cursor.Point(strings.Index(src, "return"))

	inner, err := Resolve(ctx, Parse('f'), Around, 1, r)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(slice(ctx, inner), "func() {"))

	outer, err := Resolve(ctx, Parse('f'), Around, 2, r)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(slice(ctx, outer), "func outer()"))

	clamped, err := Resolve(ctx, Parse('f'), Around, 9, r)
	require.NoError(t, err)
	assert.Equal(t, outer, clamped)
}

func TestHunk(t *testing.T) {
	src := "a\nB\nC\nd\n"
	ctx := Context{Text: text.New(src), Diff: diff.NewHandle("a\nb\nc\nd\n", src)}

	r := cursor.Point(strings.Index(src, "C"))
	out := resolve(t, ctx, 'g', Inside, r)
	assert.Equal(t, "B\nC\n", slice(ctx, out))

	unchanged := cursor.Point(0)
	assert.Equal(t, unchanged, resolve(t, ctx, 'g', Around, unchanged))

	back := resolve(t, ctx, 'g', Around, cursor.NewRange(5, 4))
	assert.Equal(t, cursor.Backward, back.Direction())
}

func TestHunkWithoutDiff(t *testing.T) {
	ctx := plain("a\nb\n")
	r := cursor.Point(2)

	out, err := Resolve(ctx, Parse('g'), Inside, 1, r)
	require.ErrorIs(t, err, ErrDiffUnavailable)
	assert.Equal(t, "Diff is not available in current buffer", err.Error())
	assert.Equal(t, r, out)
}

func TestNilTextIsNoop(t *testing.T) {
	r := cursor.Point(3)
	out, err := Resolve(Context{}, Parse('w'), Around, 1, r)
	require.NoError(t, err)
	assert.Equal(t, r, out)
}

// genText draws short texts rich in delimiters, words and blank lines.
func genText(t *rapid.T) string {
	alphabet := []rune("ab_ .,()[]{}\"'\n\n  ")
	n := rapid.IntRange(1, 40).Draw(t, "len")
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteRune(alphabet[rapid.IntRange(0, len(alphabet)-1).Draw(t, "ch")])
	}
	return sb.String()
}

func TestInsideWithinAround(t *testing.T) {
	codes := []rune("wWpm()[]{}\"'")
	rapid.Check(t, func(t *rapid.T) {
		src := genText(t)
		ctx := plain(src)
		n := ctx.Text.Len()
		anchor := rapid.IntRange(0, n).Draw(t, "anchor")
		head := rapid.IntRange(0, n).Draw(t, "head")
		r := cursor.NewRange(anchor, head)
		code := codes[rapid.IntRange(0, len(codes)-1).Draw(t, "code")]
		count := rapid.IntRange(1, 3).Draw(t, "count")

		in, err := Resolve(ctx, Parse(code), Inside, count, r)
		if err != nil {
			t.Fatal(err)
		}
		around, err := Resolve(ctx, Parse(code), Around, count, r)
		if err != nil {
			t.Fatal(err)
		}
		// Only compare when both resolved to an object.
		if in == r || around == r {
			return
		}
		if !around.ContainsRange(in) {
			t.Fatalf("%q code %q count %d on %v: inside %v not within around %v", src, code, count, r, in, around)
		}
	})
}

func TestWordAroundNeverShrinks(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		src := genText(t)
		ctx := plain(src)
		pos := rapid.IntRange(0, ctx.Text.Len()).Draw(t, "pos")
		code := rapid.SampledFrom([]rune{'w', 'W'}).Draw(t, "code")

		first, _ := Resolve(ctx, Parse(code), Around, 1, cursor.Point(pos))
		second, _ := Resolve(ctx, Parse(code), Around, 1, first)
		if !second.ContainsRange(first) {
			t.Fatalf("%q: second %v does not contain first %v", src, second, first)
		}
	})
}
