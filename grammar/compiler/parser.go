package compiler

import (
	"fmt"
	"strconv"
	"strings"
)

// ruleSpec is a production rule as written in the source, before its
// symbol/set names have been resolved to numeric IDs.
type ruleSpec struct {
	lhs string

	currentSet    string
	currentInvert bool

	rhs []string // 0-3 entries

	lookaheadSet    string
	lookaheadInvert bool

	capture      bool
	captureStart bool
	captureEnd   bool
	semantic     string

	line int
}

// termSetSpec is one [Terminal Sets] entry.
type termSetSpec struct {
	name  string
	id    uint8
	start uint8
	end   uint8
}

// grammarSource is the fully-parsed, not-yet-packed grammar text.
type grammarSource struct {
	symbols  []string
	semantic []string
	pool     string
	sets     []termSetSpec
	rules    []ruleSpec
}

// parse turns grammar source text into a grammarSource. It does not
// resolve names to IDs or validate cross-references; that is pack's job,
// once every section has been seen.
func parse(source string) (*grammarSource, error) {
	toks, err := tokenize(source)
	if err != nil {
		return nil, err
	}
	lines := splitLines(toks)

	gs := &grammarSource{}
	section := ""
	for _, line := range lines {
		if line[0].kind == tokSection {
			section = strings.Trim(line[0].text, "[]")
			continue
		}
		switch section {
		case "":
			return nil, fmt.Errorf("compiler: line %d: content before first section header", line[0].line)
		case "Production Symbols":
			if len(line) != 1 || line[0].kind != tokIdent {
				return nil, fmt.Errorf("compiler: line %d: expected a single symbol name", line[0].line)
			}
			gs.symbols = append(gs.symbols, line[0].text)
		case "Capture Semantics":
			if len(line) != 2 || line[0].kind != tokIdent || line[1].kind != tokNumber {
				return nil, fmt.Errorf("compiler: line %d: expected \"name id\"", line[0].line)
			}
			id, _ := strconv.Atoi(line[1].text)
			if id != len(gs.semantic) {
				return nil, fmt.Errorf("compiler: line %d: capture semantic %q has out-of-order id %d", line[0].line, line[0].text, id)
			}
			gs.semantic = append(gs.semantic, line[0].text)
		case "Terminals":
			if len(line) != 1 || line[0].kind != tokString {
				return nil, fmt.Errorf("compiler: line %d: expected one quoted pool string", line[0].line)
			}
			pool, err := unquote(line[0].text)
			if err != nil {
				return nil, fmt.Errorf("compiler: line %d: %w", line[0].line, err)
			}
			gs.pool = pool
		case "Terminal Sets":
			spec, err := parseTermSetLine(line)
			if err != nil {
				return nil, err
			}
			gs.sets = append(gs.sets, spec)
		case "Production Rules":
			rs, err := parseRuleLine(line)
			if err != nil {
				return nil, err
			}
			gs.rules = append(gs.rules, rs)
		case "END":
			return nil, fmt.Errorf("compiler: line %d: content after [END]", line[0].line)
		default:
			return nil, fmt.Errorf("compiler: line %d: unknown section %q", line[0].line, section)
		}
	}
	return gs, nil
}

func parseTermSetLine(line []token) (termSetSpec, error) {
	if len(line) != 4 || line[0].kind != tokIdent || line[1].kind != tokNumber ||
		line[2].kind != tokNumber || line[3].kind != tokNumber {
		return termSetSpec{}, fmt.Errorf("compiler: line %d: expected \"name id start end\"", line[0].line)
	}
	id, _ := strconv.Atoi(line[1].text)
	start, _ := strconv.Atoi(line[2].text)
	end, _ := strconv.Atoi(line[3].text)
	return termSetSpec{name: line[0].text, id: uint8(id), start: uint8(start), end: uint8(end)}, nil
}

// splitClauses breaks a token line at top-level semicolons.
func splitClauses(line []token) [][]token {
	var clauses [][]token
	var cur []token
	for _, t := range line {
		if t.kind == tokSemi {
			clauses = append(clauses, cur)
			cur = nil
			continue
		}
		cur = append(cur, t)
	}
	clauses = append(clauses, cur)
	return clauses
}

func parseRuleLine(line []token) (ruleSpec, error) {
	clauses := splitClauses(line)
	if len(clauses) != 4 {
		return ruleSpec{}, fmt.Errorf("compiler: line %d: expected 4 `;`-separated clauses, found %d", line[0].line, len(clauses))
	}
	rs := ruleSpec{line: line[0].line}

	// clause 0: LHS current[~] RHS...
	main := clauses[0]
	if len(main) < 2 || main[0].kind != tokIdent {
		return rs, fmt.Errorf("compiler: line %d: malformed rule head", rs.line)
	}
	rs.lhs = main[0].text
	i := 1
	if main[i].kind == tokTilde {
		rs.currentInvert = true
		i++
	}
	if i >= len(main) || main[i].kind != tokIdent {
		return rs, fmt.Errorf("compiler: line %d: expected a terminal set name", rs.line)
	}
	rs.currentSet = main[i].text
	i++
	rest := main[i:]
	if len(rest) == 1 && rest[0].kind == tokDash {
		// no RHS
	} else {
		for _, t := range rest {
			if t.kind != tokIdent {
				return rs, fmt.Errorf("compiler: line %d: expected a nonterminal name in RHS", rs.line)
			}
			rs.rhs = append(rs.rhs, t.text)
		}
		if len(rs.rhs) > 3 {
			return rs, fmt.Errorf("compiler: line %d: RHS has more than 3 symbols", rs.line)
		}
	}

	// clause 1: lookahead SET[~]
	la := clauses[1]
	if len(la) < 2 || la[0].kind != tokIdent || la[0].text != "lookahead" {
		return rs, fmt.Errorf("compiler: line %d: expected \"lookahead SET\"", rs.line)
	}
	j := 1
	if la[j].kind == tokTilde {
		rs.lookaheadInvert = true
		j++
	}
	if j >= len(la) || la[j].kind != tokIdent {
		return rs, fmt.Errorf("compiler: line %d: expected a lookahead set name", rs.line)
	}
	rs.lookaheadSet = la[j].text

	// clause 2: FLAGS
	flags := clauses[2]
	if len(flags) == 1 && flags[0].kind == tokDash {
		// no flags
	} else {
		expectFlag := true
		for _, t := range flags {
			if expectFlag {
				if t.kind != tokIdent {
					return rs, fmt.Errorf("compiler: line %d: malformed flags", rs.line)
				}
				switch t.text {
				case "C":
					rs.capture = true
				case "CS":
					rs.captureStart = true
				case "CE":
					rs.captureEnd = true
				default:
					return rs, fmt.Errorf("compiler: line %d: unknown flag %q", rs.line, t.text)
				}
				expectFlag = false
			} else {
				if t.kind != tokPlus {
					return rs, fmt.Errorf("compiler: line %d: expected `+` between flags", rs.line)
				}
				expectFlag = true
			}
		}
	}

	// clause 3: SEMANTIC
	sem := clauses[3]
	if len(sem) != 1 || sem[0].kind != tokIdent {
		return rs, fmt.Errorf("compiler: line %d: expected a capture semantic name", rs.line)
	}
	rs.semantic = sem[0].text

	return rs, nil
}

// unquote decodes a quoted pool string: \t \r \n \\ and \" are recognised
// escapes, any other backslash-prefixed character is taken literally
// (backslash dropped). The lexer already guarantees raw starts and ends
// with a double quote.
func unquote(raw string) (string, error) {
	if len(raw) < 2 || raw[0] != '"' || raw[len(raw)-1] != '"' {
		return "", fmt.Errorf("malformed quoted string: %s", raw)
	}
	inner := raw[1 : len(raw)-1]
	var b strings.Builder
	escape := false
	for _, c := range inner {
		if escape {
			switch c {
			case 'n':
				b.WriteRune('\n')
			case 'r':
				b.WriteRune('\r')
			case 't':
				b.WriteRune('\t')
			default:
				b.WriteRune(c)
			}
			escape = false
			continue
		}
		if c == '\\' {
			escape = true
			continue
		}
		b.WriteRune(c)
	}
	return b.String(), nil
}
