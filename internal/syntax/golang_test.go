package syntax

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const goSample = `package sample

// Point is a point.
// It has two fields.
type Point struct {
	X, Y int
}

func add(a int, b int) int {
	return a + b
}

func TestAdd(t *testing.T) {
	p := Point{X: 1, Y: 2}
	_ = add(p.X, p.Y) // "(not a pair"
	s := "(x)"
	_ = s
}
`

func pos(t *testing.T, src, marker string) int {
	t.Helper()
	i := strings.Index(src, marker)
	require.GreaterOrEqual(t, i, 0, "marker %q not found", marker)
	return len([]rune(src[:i]))
}

func text(src string, s NodeSpan) string {
	return string([]rune(src)[s.From:s.To])
}

func TestParseGoFunction(t *testing.T) {
	tree := ParseGo(goSample)

	objs := tree.TextObjects(ObjectFunction, pos(t, goSample, "a + b"))
	require.Len(t, objs, 1)
	assert.True(t, strings.HasPrefix(text(goSample, objs[0].Around), "func add("))
	assert.Equal(t, "\n\treturn a + b\n", text(goSample, objs[0].Inside))
}

func TestParseGoTest(t *testing.T) {
	tree := ParseGo(goSample)

	assert.Empty(t, tree.TextObjects(ObjectTest, pos(t, goSample, "a + b")))
	objs := tree.TextObjects(ObjectTest, pos(t, goSample, "p := Point"))
	require.Len(t, objs, 1)
	assert.True(t, strings.HasPrefix(text(goSample, objs[0].Around), "func TestAdd"))
}

func TestParseGoClass(t *testing.T) {
	tree := ParseGo(goSample)

	objs := tree.TextObjects(ObjectClass, pos(t, goSample, "X, Y int"))
	require.Len(t, objs, 1)
	assert.Equal(t, "type Point struct {\n\tX, Y int\n}", text(goSample, objs[0].Around))
	assert.Equal(t, "\n\tX, Y int\n", text(goSample, objs[0].Inside))
}

func TestParseGoParameter(t *testing.T) {
	tree := ParseGo(goSample)

	objs := tree.TextObjects(ObjectParameter, pos(t, goSample, "a int,"))
	require.NotEmpty(t, objs)
	assert.Equal(t, "a int", text(goSample, objs[0].Inside))
	assert.Equal(t, "a int, ", text(goSample, objs[0].Around))

	objs = tree.TextObjects(ObjectParameter, pos(t, goSample, "b int)"))
	require.NotEmpty(t, objs)
	assert.Equal(t, "b int", text(goSample, objs[0].Inside))
	assert.Equal(t, ", b int", text(goSample, objs[0].Around))
}

func TestParseGoEntry(t *testing.T) {
	tree := ParseGo(goSample)

	objs := tree.TextObjects(ObjectEntry, pos(t, goSample, "Y: 2"))
	require.Len(t, objs, 1)
	assert.Equal(t, "Y: 2", text(goSample, objs[0].Inside))
	assert.Equal(t, ", Y: 2", text(goSample, objs[0].Around))
}

func TestParseGoComment(t *testing.T) {
	tree := ParseGo(goSample)

	objs := tree.TextObjects(ObjectComment, pos(t, goSample, "It has"))
	require.NotEmpty(t, objs)
	assert.Equal(t, "// It has two fields.", text(goSample, objs[0].Inside))
	assert.Equal(t, "// Point is a point.\n// It has two fields.", text(goSample, objs[0].Around))
}

func TestParseGoPairsSkipComments(t *testing.T) {
	tree := ParseGo(goSample)

	commentParen := pos(t, goSample, `(not a pair`)
	for _, p := range tree.Pairs() {
		assert.NotEqual(t, commentParen, p.Open, "bracket inside a comment must not pair")
	}

	str := pos(t, goSample, `"(x)"`)
	var found bool
	for _, p := range tree.Pairs() {
		if p.Open == str {
			found = true
			assert.Equal(t, '"', p.OpenChar)
			assert.Equal(t, str+4, p.Close)
		}
		assert.NotEqual(t, str+1, p.Open, "bracket inside a string must not pair")
	}
	assert.True(t, found, "string literal should form a quote pair")
}

func TestMatchingBracket(t *testing.T) {
	src := "package p\n\nvar x = f(g[1], «2»)\n"
	tree := ParseGo(src)

	open := pos(t, src, "(g")
	closing := pos(t, src, ")\n")

	got, ok := tree.MatchingBracket(open)
	require.True(t, ok)
	assert.Equal(t, closing, got)

	back, ok := tree.MatchingBracket(got)
	require.True(t, ok)
	assert.Equal(t, open, back)

	// Inside the brackets jumps to the innermost closer.
	got, ok = tree.MatchingBracket(pos(t, src, "1]"))
	require.True(t, ok)
	assert.Equal(t, pos(t, src, "]"), got)

	_, ok = tree.MatchingBracket(0)
	assert.False(t, ok)
}

func TestParseGoWithoutPackageClause(t *testing.T) {
	src := "x := (a [b])"
	tree := ParseGo(src)

	assert.Empty(t, tree.TextObjects(ObjectFunction, 3))
	assert.Len(t, tree.Pairs(), 2)
}

func TestEnclosingPairs(t *testing.T) {
	src := "package p\nvar v = ((a))\n"
	tree := ParseGo(src)

	a := pos(t, src, "a")
	pairs := EnclosingPairs(tree, '(', a, a+1)
	require.Len(t, pairs, 2)
	assert.Less(t, pairs[0].Close-pairs[0].Open, pairs[1].Close-pairs[1].Open)

	assert.Empty(t, EnclosingPairs(tree, '[', a, a+1))
}

func TestCharIndexMultibyte(t *testing.T) {
	idx := newCharIndex("a\u00e9\u00abb")
	assert.Equal(t, charIndex{0, 1, 1, 2, 2, 3, 4}, idx)
}
