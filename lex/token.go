package lex

import "github.com/tawesoft/bach/grammar"

// Semantic identifies the role of a captured Token (spec.md §3). It is
// the same enumeration the compiled grammar tags its captures with —
// there is exactly one vocabulary of capture meanings in this system, so
// there is exactly one type for it.
type Semantic = grammar.CaptureSemantic

// The Semantic values a Token may carry.
const (
	SemanticNone            = grammar.CaptureNone
	SemanticLabel           = grammar.CaptureLabel
	SemanticAttribute       = grammar.CaptureAttribute
	SemanticLiteral         = grammar.CaptureLiteral
	SemanticAssign          = grammar.CaptureAssign
	SemanticSubdocStart     = grammar.CaptureSubdocStart
	SemanticSubdocEnd       = grammar.CaptureSubdocEnd
	SemanticShorthandSymbol = grammar.CaptureShorthandSymbol
	SemanticShorthandAttrib = grammar.CaptureShorthandAttrib
)

// Token is one classified unit of the parse, as produced by Run (spec.md
// §3). Lexeme is the captured code points for character-bearing
// semantics, or the structural character itself for subdocStart/
// subdocEnd.
type Token struct {
	Semantic Semantic
	Lexeme   string
	Start    Position
	End      Position
}
