package bach

import (
	"fmt"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"github.com/tawesoft/bach/grammar"
	"github.com/tawesoft/bach/grammar/compiler"
	"github.com/tawesoft/bach/grammar/loader"
	"github.com/tawesoft/bach/lex"
)

// tracer traces with key 'bach'.
func tracer() tracing.Trace {
	return tracing.Select("bach")
}

// The public data model is entirely owned by package lex; bach just
// gives it its public name (spec.md §3).
type (
	Document       = lex.Document
	Token          = lex.Token
	Position       = lex.Position
	Shorthand      = lex.Shorthand
	CollectionType = lex.CollectionType
	Limits         = lex.Limits
	CharSource     = lex.CharSource
	ParseError     = lex.ParseError
	SyntaxError    = lex.SyntaxError
	LimitError     = lex.LimitError
	SemanticError  = lex.SemanticError
)

const (
	CollectionNone = lex.CollectionNone
	CollectionList = lex.CollectionList
	CollectionSet  = lex.CollectionSet
)

// DefaultLimits returns the spec-mandated default size limits (spec.md
// §4.4.7).
func DefaultLimits() Limits {
	return lex.DefaultLimits()
}

// NewStringSource and NewReaderSource build a CharSource over an
// in-memory string or an io.Reader, respectively.
var (
	NewStringSource = lex.NewStringSource
	NewReaderSource = lex.NewReaderSource
)

var (
	compileOnce   sync.Once
	compiledTable *grammar.Table
	compileErr    error
)

// compiledGrammar compiles and loads the embedded grammar exactly once
// per process, the way terexlang.initTokens does for its own lexer
// tables.
func compiledGrammar() (*grammar.Table, error) {
	compileOnce.Do(func() {
		blob, err := compiler.Compile(grammar.Source)
		if err != nil {
			compileErr = fmt.Errorf("bach: compiling grammar: %w", err)
			return
		}
		compiledTable, compileErr = loader.Load(blob)
		if compileErr != nil {
			compileErr = fmt.Errorf("bach: loading grammar: %w", compileErr)
		}
	})
	return compiledTable, compileErr
}

// Option configures a Parse call.
type Option func(*options)

type options struct {
	limits Limits
}

// WithLimits overrides the default size limits for one Parse call.
func WithLimits(l Limits) Option {
	return func(o *options) { o.limits = l }
}

// Parse reads source to completion and returns the resulting Document
// tree (spec.md §6). shorthands configures the shorthand-attribute
// prefixes recognised for this call; each Shorthand.Symbol must be a
// single code point outside the core special-character set, and symbols
// must not repeat.
func Parse(source CharSource, shorthands []Shorthand, opts ...Option) (*Document, error) {
	o := options{limits: DefaultLimits()}
	for _, opt := range opts {
		opt(&o)
	}

	table, err := compiledGrammar()
	if err != nil {
		return nil, err
	}

	symbols, err := validateShorthands(table, shorthands)
	if err != nil {
		return nil, err
	}
	patched := loader.Patch(table, symbols)

	var tokens []Token
	if err := lex.Run(patched, source, o.limits, func(tok Token) error {
		tokens = append(tokens, tok)
		return nil
	}); err != nil {
		return nil, err
	}
	tracer().Debugf("bach: parsed %d tokens", len(tokens))
	return lex.Build(tokens, shorthands, o.limits)
}

// ParseString is a convenience wrapper over Parse for in-memory input.
func ParseString(source string, shorthands []Shorthand, opts ...Option) (*Document, error) {
	return Parse(NewStringSource(source), shorthands, opts...)
}

func validateShorthands(table *grammar.Table, shorthands []Shorthand) ([]rune, error) {
	symbols := make([]rune, 0, len(shorthands))
	seen := make(map[rune]bool, len(shorthands))
	for _, s := range shorthands {
		if !loader.IsAllowedShorthandSymbol(table, s.Symbol) {
			return nil, fmt.Errorf("bach: shorthand symbol %q collides with a core special character", string(s.Symbol))
		}
		if seen[s.Symbol] {
			return nil, fmt.Errorf("bach: duplicate shorthand symbol %q", string(s.Symbol))
		}
		seen[s.Symbol] = true
		symbols = append(symbols, s.Symbol)
	}
	return symbols, nil
}
