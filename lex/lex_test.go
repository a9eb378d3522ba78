package lex_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tawesoft/bach/grammar"
	"github.com/tawesoft/bach/grammar/compiler"
	"github.com/tawesoft/bach/grammar/loader"
	"github.com/tawesoft/bach/lex"
)

func loadPatchedTable(t *testing.T, symbols []rune) *grammar.Table {
	t.Helper()
	blob, err := compiler.Compile(grammar.Source)
	require.NoError(t, err)
	table, err := loader.Load(blob)
	require.NoError(t, err)
	return loader.Patch(table, symbols)
}

func parse(t *testing.T, source string, symbols []rune, shorthands []lex.Shorthand) (*lex.Document, error) {
	t.Helper()
	table := loadPatchedTable(t, symbols)
	var tokens []lex.Token
	err := lex.Run(table, lex.NewStringSource(source), lex.DefaultLimits(), func(tok lex.Token) error {
		tokens = append(tokens, tok)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lex.Build(tokens, shorthands, lex.DefaultLimits())
}

func TestPlainAttributes(t *testing.T) {
	doc, err := parse(t, "point x=\"1\" y=\"2\" z=\"3\"\n", nil, nil)
	require.NoError(t, err)
	require.Equal(t, "point", doc.Label)
	require.Equal(t, []string{"1"}, doc.Attributes["x"])
	require.Equal(t, []string{"2"}, doc.Attributes["y"])
	require.Equal(t, []string{"3"}, doc.Attributes["z"])
	require.Empty(t, doc.Children)
}

func TestShorthandAttributes(t *testing.T) {
	shorthands := []lex.Shorthand{
		{Symbol: '.', Expansion: "class", CollectionType: lex.CollectionSet},
		{Symbol: '#', Expansion: "id", CollectionType: lex.CollectionNone},
	}
	doc, err := parse(t, "document .cls #the-id", []rune{'.', '#'}, shorthands)
	require.NoError(t, err)
	require.Equal(t, "document", doc.Label)
	require.Equal(t, []string{"cls"}, doc.Attributes["class"])
	require.Equal(t, []string{"the-id"}, doc.Attributes["id"])
}

func TestSubdocumentsAndLiterals(t *testing.T) {
	doc, err := parse(t, `list (quote "hello" (author "A") (date "D"))`+"\n", nil, nil)
	require.NoError(t, err)
	require.Equal(t, "list", doc.Label)
	require.Len(t, doc.Children, 1)
	quote := doc.Children[0].(*lex.Document)
	require.Equal(t, "quote", quote.Label)
	require.Equal(t, "hello", quote.Children[0])
	author := quote.Children[1].(*lex.Document)
	require.Equal(t, "author", author.Label)
	require.Equal(t, "A", author.Children[0])
}

func TestEscapedClosingQuote(t *testing.T) {
	doc, err := parse(t, "doc 'a\\'b'", nil, nil)
	require.NoError(t, err)
	require.Equal(t, "doc", doc.Label)
	require.Equal(t, "a'b", doc.Children[0])
}

func TestLabelOnlyFollowedByWhitespaceSucceeds(t *testing.T) {
	doc, err := parse(t, "justalabel   \n", nil, nil)
	require.NoError(t, err)
	require.Equal(t, "justalabel", doc.Label)
	require.Empty(t, doc.Attributes)
	require.Empty(t, doc.Children)
}

func TestMissingClosingParenIsSyntaxError(t *testing.T) {
	_, err := parse(t, "doc (sub", nil, nil)
	require.Error(t, err)
	var pe lex.ParseError
	require.ErrorAs(t, err, &pe)
	require.Contains(t, pe.Hint(), "closing parenthesis")
}

func TestCommentAndBlankLinesBeforeLabel(t *testing.T) {
	doc, err := parse(t, "#comment\n\ndoc 'a'", nil, nil)
	require.NoError(t, err)
	require.Equal(t, "doc", doc.Label)
	require.Equal(t, "a", doc.Children[0])
}
