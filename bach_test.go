package bach_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tawesoft/bach"
)

func TestParseStringPlainAttributes(t *testing.T) {
	doc, err := bach.ParseString(`point x="1" y="2" z="3"`+"\n", nil)
	require.NoError(t, err)
	require.Equal(t, "point", doc.Label)
	require.Equal(t, []string{"1"}, doc.Attributes["x"])
	require.Equal(t, []string{"2"}, doc.Attributes["y"])
	require.Equal(t, []string{"3"}, doc.Attributes["z"])
}

func TestParseStringNestedSubdocuments(t *testing.T) {
	doc, err := bach.ParseString(`list (quote "hello" (author "A"))`+"\n", nil)
	require.NoError(t, err)
	require.Equal(t, "list", doc.Label)
	require.Len(t, doc.Children, 1)
	quote, ok := doc.Children[0].(*bach.Document)
	require.True(t, ok)
	require.Equal(t, "quote", quote.Label)
}

func TestParseStringShorthands(t *testing.T) {
	shorthands := []bach.Shorthand{
		{Symbol: '.', Expansion: "class", CollectionType: bach.CollectionSet},
		{Symbol: '#', Expansion: "id", CollectionType: bach.CollectionNone},
	}
	doc, err := bach.ParseString("document .cls #the-id", shorthands)
	require.NoError(t, err)
	require.Equal(t, []string{"cls"}, doc.Attributes["class"])
	require.Equal(t, []string{"the-id"}, doc.Attributes["id"])
}

func TestParseRejectsDuplicateShorthandSymbol(t *testing.T) {
	shorthands := []bach.Shorthand{
		{Symbol: '.', Expansion: "class"},
		{Symbol: '.', Expansion: "style"},
	}
	_, err := bach.ParseString("document .cls", shorthands)
	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate")
}

func TestParseRejectsShorthandSymbolCollidingWithCoreSet(t *testing.T) {
	shorthands := []bach.Shorthand{
		{Symbol: '=', Expansion: "broken"},
	}
	_, err := bach.ParseString("document x=\"1\"", shorthands)
	require.Error(t, err)
	require.Contains(t, err.Error(), "collides")
}

func TestParseWithLimitsRejectsOversizedLabel(t *testing.T) {
	label := strings.Repeat("a", 200)
	limits := bach.DefaultLimits()
	limits.MaxLabelLength = 10
	_, err := bach.ParseString(label+"\n", nil, bach.WithLimits(limits))
	require.Error(t, err)
	var le *bach.LimitError
	require.ErrorAs(t, err, &le)
}

func TestParseMissingClosingParenIsSyntaxError(t *testing.T) {
	_, err := bach.ParseString("doc (sub", nil)
	require.Error(t, err)
	var se bach.ParseError
	require.ErrorAs(t, err, &se)
	require.Contains(t, se.Hint(), "closing parenthesis")
}

func TestExplainIncludesReasonAndHint(t *testing.T) {
	_, err := bach.ParseString("doc (sub", nil)
	require.Error(t, err)
	var pe bach.ParseError
	require.ErrorAs(t, err, &pe)
	out := bach.Explain(pe)
	require.Contains(t, out, pe.Reason())
	require.Contains(t, out, "closing parenthesis")
}
