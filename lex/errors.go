package lex

import (
	"fmt"

	"github.com/tawesoft/bach/grammar"
)

// ParseError is the common interface of every error a parse can fail
// with (spec.md §4.4.8): a human-readable reason, the source span it
// applies to, and an optional hint derived from parser state at the
// point of failure.
type ParseError interface {
	error
	Reason() string
	Start() Position
	End() Position
	Hint() string
}

// SyntaxError reports that no production rule matched the current
// automaton state — the input does not conform to the grammar at this
// point.
type SyntaxError struct {
	reason     string
	start, end Position
	hint       string
}

var _ ParseError = (*SyntaxError)(nil)

func newSyntaxError(reason string, start, end Position, hint string) *SyntaxError {
	return &SyntaxError{reason: reason, start: start, end: end, hint: hint}
}

func (e *SyntaxError) Error() string {
	if e.hint == "" {
		return fmt.Sprintf("%s at %s", e.reason, e.start)
	}
	return fmt.Sprintf("%s at %s (%s)", e.reason, e.start, e.hint)
}

func (e *SyntaxError) Reason() string  { return e.reason }
func (e *SyntaxError) Start() Position { return e.start }
func (e *SyntaxError) End() Position   { return e.end }
func (e *SyntaxError) Hint() string    { return e.hint }

// LimitError reports that one of the §4.4.7 size limits was exceeded.
type LimitError struct {
	limit      string
	start, end Position
}

var _ ParseError = (*LimitError)(nil)

func newLimitError(limit string, at Position) *LimitError {
	return &LimitError{limit: limit, start: at, end: at}
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("limit exceeded: %s at %s", e.limit, e.start)
}

func (e *LimitError) Reason() string  { return "limit exceeded: " + e.limit }
func (e *LimitError) Start() Position { return e.start }
func (e *LimitError) End() Position   { return e.end }
func (e *LimitError) Hint() string    { return "" }

// SemanticError reports a violation found while assembling the Document
// tree that the grammar itself cannot rule out — e.g. a collectionType
// of "none" seeing a second value for the same shorthand attribute, or a
// shorthand symbol lexeme that is not in the configured table.
type SemanticError struct {
	reason     string
	start, end Position
	hint       string
}

var _ ParseError = (*SemanticError)(nil)

func newSemanticError(reason string, start, end Position, hint string) *SemanticError {
	return &SemanticError{reason: reason, start: start, end: end, hint: hint}
}

func (e *SemanticError) Error() string {
	if e.hint == "" {
		return fmt.Sprintf("%s at %s", e.reason, e.start)
	}
	return fmt.Sprintf("%s at %s (%s)", e.reason, e.start, e.hint)
}

func (e *SemanticError) Reason() string  { return e.reason }
func (e *SemanticError) Start() Position { return e.start }
func (e *SemanticError) End() Position   { return e.end }
func (e *SemanticError) Hint() string    { return e.hint }

// hintFor implements spec.md §4.4.8's table, mapping the nonterminal left
// on top of the automaton stack at the point of failure to a remark
// about what was probably intended.
func hintFor(top grammar.Symbol) string {
	switch top.String() {
	case "LSQ", "LDQ", "LBQ":
		return "probably a missing closing quote"
	case "LSQESC", "LDQESC", "LBQESC":
		return "invalid escape sequence, only \\ and the closing quote may be escaped"
	case "LD", "ALD", "LSD", "ALSD":
		return "right side of an attribute pair must be a string literal"
	case "SD":
		return "missing closing parenthesis"
	case "S":
		return "document must start with a left-aligned label optionally preceded by blank lines or #-comments"
	default:
		return ""
	}
}
