package lex

import (
	"github.com/emirpasic/gods/stacks/linkedliststack"
	"github.com/npillmayer/schuko/tracing"
	"github.com/tawesoft/bach/grammar"
)

// tracer traces with key 'bach.lex'.
func tracer() tracing.Trace {
	return tracing.Select("bach.lex")
}

// Run drives table across src, one character at a time, calling emit for
// every Token the grammar's capture annotations produce. It returns once
// the automaton reaches an acceptable end state (spec.md §4.3) at
// end-of-stream, or the first error — a ParseError for a grammar
// violation or limit breach, or whatever src itself returned.
func Run(table *grammar.Table, src CharSource, limits Limits, emit func(Token) error) error {
	la := newLookahead(src)
	stack := linkedliststack.New()
	stack.Push(grammar.Symbol(0)) // the start symbol always has ID 0

	var capture []rune
	var captureStart Position
	inFlightLen := 0
	captureLimit := limits.MaxInFlightLexemeLength
	captureSemantic := grammar.CaptureNone // latched at captureStart
	lastSemantic := grammar.CaptureNone

	for {
		v, ok := stack.Peek()
		if !ok {
			return nil // empty stack: an acceptable end state unconditionally
		}
		top := v.(grammar.Symbol)

		ch, eof, err := la.current()
		if err != nil {
			return err
		}
		if eof {
			if table.EndStates[top] {
				return nil
			}
			return newSyntaxError("unexpected end of input", la.position(), la.position(), hintFor(top))
		}

		laCh, laEOF, err := la.peekAhead()
		if err != nil {
			return err
		}
		rule, found := findRule(table, top, ch, laCh, laEOF)
		if !found {
			return newSyntaxError("unexpected character "+quoteRune(ch), la.position(), la.position(), hintFor(top))
		}

		start := la.position()
		if _, _, err := la.advance(); err != nil {
			return err
		}

		if rule.CaptureStart {
			capture = capture[:0]
			captureStart = start
			inFlightLen = 0
			captureSemantic = rule.CaptureSemantic
			captureLimit = categoryLimit(captureSemantic, lastSemantic, limits)
		}
		if rule.Capture {
			capture = append(capture, ch)
			inFlightLen++
			if inFlightLen > captureLimit {
				return newLimitError(limitNameFor(captureSemantic, lastSemantic), la.position())
			}
		}
		if rule.CaptureEnd {
			tok := Token{
				Semantic: captureSemantic,
				Lexeme:   string(capture),
				Start:    captureStart,
				End:      la.position(),
			}
			if err := emit(tok); err != nil {
				return err
			}
			lastSemantic = captureSemantic
		}

		stack.Pop()
		for i := rule.Len - 1; i >= 0; i-- {
			stack.Push(rule.RHS[i])
		}
	}
}

// findRule returns the first rule for top whose current/lookahead
// predicates both hold (spec.md §4.4.3 step 2: first match wins; the
// grammar is constructed so at most one ever matches).
func findRule(table *grammar.Table, top grammar.Symbol, ch rune, laCh rune, laEOF bool) (grammar.Rule, bool) {
	for _, r := range table.Rules[top] {
		if !table.Match(r.CurrentSet, r.CurrentInvert, ch, false) {
			continue
		}
		if table.Match(r.LookaheadSet, r.LookaheadInvert, laCh, laEOF) {
			return r, true
		}
	}
	return grammar.Rule{}, false
}

// categoryLimit picks the §4.4.7 size limit that applies to a capture
// about to start, given its own semantic and the semantic of the token
// emitted immediately before it. A literal capture is an attribute's
// value (the tighter MaxAttributeValueLength) exactly when it directly
// follows an assign token; otherwise it is a standalone literal child
// (MaxLiteralValueLength). Everything without a dedicated limit falls
// back to the general in-flight backstop.
func categoryLimit(semantic, lastSemantic grammar.CaptureSemantic, limits Limits) int {
	switch semantic {
	case grammar.CaptureLabel:
		return limits.MaxLabelLength
	case grammar.CaptureAttribute:
		return limits.MaxAttributeNameLength
	case grammar.CaptureShorthandAttrib:
		return limits.MaxAttributeValueLength
	case grammar.CaptureLiteral:
		if lastSemantic == grammar.CaptureAssign {
			return limits.MaxAttributeValueLength
		}
		return limits.MaxLiteralValueLength
	default:
		return limits.MaxInFlightLexemeLength
	}
}

// limitNameFor names the limit categoryLimit picked, for LimitError.
func limitNameFor(semantic, lastSemantic grammar.CaptureSemantic) string {
	switch semantic {
	case grammar.CaptureLabel:
		return "max label length"
	case grammar.CaptureAttribute:
		return "max attribute name length"
	case grammar.CaptureShorthandAttrib:
		return "max attribute value length"
	case grammar.CaptureLiteral:
		if lastSemantic == grammar.CaptureAssign {
			return "max attribute value length"
		}
		return "max literal value length"
	default:
		return "max in-flight lexeme length"
	}
}

func quoteRune(r rune) string {
	switch r {
	case '\n':
		return "'\\n'"
	case '\r':
		return "'\\r'"
	case '\t':
		return "'\\t'"
	default:
		return "'" + string(r) + "'"
	}
}
