package compiler

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tracer traces with key 'bach.compiler', matching the tracing-key-per-
// package convention used throughout this module.
func tracer() tracing.Trace {
	return tracing.Select("bach.compiler")
}

// tokKind classifies a lexed token of the grammar text format. The values
// are local to this package and have no relation to grammar.Symbol IDs.
type tokKind int

const (
	tokSection tokKind = iota
	tokString
	tokNumber
	tokIdent
	tokTilde
	tokSemi
	tokDash
	tokPlus
	tokNewline
)

func (k tokKind) String() string {
	names := [...]string{"section", "string", "number", "ident", "~", ";", "-", "+", "newline"}
	if int(k) < len(names) {
		return names[k]
	}
	return "?"
}

// line is where a token was found, 1-based.
type token struct {
	kind tokKind
	text string
	line int
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func newLexer() (*lexmachine.Lexer, error) {
	lexer := lexmachine.NewLexer()
	add := func(pattern string, kind tokKind) {
		lexer.Add([]byte(pattern), func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
			return s.Token(int(kind), string(m.Bytes), m), nil
		})
	}
	add(`\[[^\]]*\]`, tokSection)
	add(`\"([^\"\\]|\\.)*\"`, tokString)
	add(`[0-9]+`, tokNumber)
	add(`[A-Za-z_][A-Za-z_0-9]*`, tokIdent)
	add(`~`, tokTilde)
	add(`;`, tokSemi)
	add(`\-`, tokDash)
	add(`\+`, tokPlus)
	add(`\n`, tokNewline)
	lexer.Add([]byte(`#[^\n]*`), skip)
	lexer.Add([]byte(`( |\t|\r)+`), skip)
	if err := lexer.Compile(); err != nil {
		return nil, fmt.Errorf("compiler: compiling lexer DFA: %w", err)
	}
	return lexer, nil
}

// tokenize lexes an entire grammar source into a flat token stream. Newline
// tokens are preserved so the parser can regroup the stream into lines.
func tokenize(source string) ([]token, error) {
	lexer, err := newLexer()
	if err != nil {
		return nil, err
	}
	scan, err := lexer.Scanner([]byte(source))
	if err != nil {
		return nil, fmt.Errorf("compiler: creating scanner: %w", err)
	}
	var toks []token
	for {
		tok, err, eof := scan.Next()
		if eof {
			break
		}
		if err != nil {
			if ui, ok := err.(*machines.UnconsumedInput); ok {
				tracer().Errorf("compiler: unconsumed input at byte %d", ui.StartColumn)
				scan.TC = ui.FailTC
				continue
			}
			return nil, fmt.Errorf("compiler: lexing: %w", err)
		}
		lt := tok.(*lexmachine.Token)
		toks = append(toks, token{
			kind: tokKind(lt.Type),
			text: lt.Value.(string),
			line: lt.StartLine,
		})
	}
	return toks, nil
}

// splitLines groups a token stream into lines, dropping blank lines
// (those with no non-newline tokens).
func splitLines(toks []token) [][]token {
	var lines [][]token
	var cur []token
	for _, t := range toks {
		if t.kind == tokNewline {
			if len(cur) > 0 {
				lines = append(lines, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, t)
	}
	if len(cur) > 0 {
		lines = append(lines, cur)
	}
	return lines
}
