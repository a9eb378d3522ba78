package lex

import (
	"github.com/emirpasic/gods/stacks/linkedliststack"
)

// docCounts tracks the per-document limits of spec.md §4.4.7 that the
// grammar itself cannot enforce (it has no notion of "how many
// attributes has this document seen so far").
type docCounts struct {
	attributes   int
	subdocuments int
	literals     int
}

// Build consumes a Token stream (as produced by Run, with one-token
// lookahead) and assembles it into a Document tree (spec.md §4.4.5),
// applying shorthand collection rules (§4.4.6) and the remaining size
// limits (§4.4.7) along the way.
func Build(tokens []Token, shorthands []Shorthand, limits Limits) (*Document, error) {
	byRune := make(map[rune]Shorthand, len(shorthands))
	for _, s := range shorthands {
		byRune[s.Symbol] = s
	}

	root := newDocument()
	stack := linkedliststack.New()
	stack.Push(root)
	counts := map[*Document]*docCounts{root: {}}
	depth := 1

	totalSubdocs, totalLiterals := 0, 0

	peekDoc := func() *Document {
		v, _ := stack.Peek()
		return v.(*Document)
	}

	i := 0
	for i < len(tokens) {
		tok := tokens[i]
		cur := peekDoc()
		c := counts[cur]

		switch tok.Semantic {
		case SemanticNone:
			i++

		case SemanticLabel:
			if len(tok.Lexeme) > limits.MaxLabelLength {
				return nil, newLimitError("max label length", tok.Start)
			}
			cur.Label = tok.Lexeme
			i++

		case SemanticLiteral:
			if err := checkLiteral(tok, limits, c, &totalLiterals); err != nil {
				return nil, err
			}
			cur.Children = append(cur.Children, tok.Lexeme)
			i++

		case SemanticSubdocStart:
			if err := checkSubdoc(tok, limits, c, &totalSubdocs); err != nil {
				return nil, err
			}
			if depth+1 > limits.MaxNestingDepth {
				return nil, newLimitError("max subdocument nesting depth", tok.Start)
			}
			child := newDocument()
			cur.Children = append(cur.Children, child)
			stack.Push(child)
			counts[child] = &docCounts{}
			depth++
			i++

		case SemanticSubdocEnd:
			stack.Pop()
			delete(counts, cur)
			depth--
			i++

		case SemanticAttribute:
			name := tok.Lexeme
			if len(name) > limits.MaxAttributeNameLength {
				return nil, newLimitError("max attribute name length", tok.Start)
			}
			c.attributes++
			if c.attributes > limits.MaxAttributesPerDocument {
				return nil, newLimitError("max attributes per document", tok.Start)
			}
			value := ""
			if i+1 < len(tokens) && tokens[i+1].Semantic == SemanticAssign {
				if i+2 >= len(tokens) {
					return nil, newSyntaxError("attribute assignment with no value", tokens[i+1].Start, tokens[i+1].End, "")
				}
				lit := tokens[i+2]
				if len(lit.Lexeme) > limits.MaxAttributeValueLength {
					return nil, newLimitError("max attribute value length", lit.Start)
				}
				value = lit.Lexeme
				i += 3
			} else {
				i++
			}
			cur.Attributes[name] = append(cur.Attributes[name], value)

		case SemanticShorthandSymbol:
			r := []rune(tok.Lexeme)[0]
			sh, ok := byRune[r]
			if !ok {
				return nil, newSemanticError("unconfigured shorthand symbol "+tok.Lexeme, tok.Start, tok.End, "")
			}
			if i+1 >= len(tokens) || tokens[i+1].Semantic != SemanticShorthandAttrib {
				return nil, newSyntaxError("shorthand symbol with no payload", tok.Start, tok.End, "")
			}
			payload := tokens[i+1]
			if len(payload.Lexeme) > limits.MaxAttributeValueLength {
				return nil, newLimitError("max attribute value length", payload.Start)
			}
			if err := cur.addAttribute(sh.Expansion, payload.Lexeme, &sh, payload.Start); err != nil {
				return nil, err
			}
			i += 2

		case SemanticAssign, SemanticShorthandAttrib:
			// only ever consumed inline above; reaching here is a bug in
			// the grammar/engine pairing, not a user-facing parse error.
			return nil, newSyntaxError("unexpected token in stream", tok.Start, tok.End, "")

		default:
			return nil, newSyntaxError("unknown token semantic", tok.Start, tok.End, "")
		}
	}

	return root, nil
}

func checkLiteral(tok Token, limits Limits, c *docCounts, total *int) error {
	if len(tok.Lexeme) > limits.MaxLiteralValueLength {
		return newLimitError("max literal value length", tok.Start)
	}
	c.literals++
	if c.literals > limits.MaxLiteralsPerDocument {
		return newLimitError("max literals per document", tok.Start)
	}
	*total++
	if *total > limits.MaxLiteralsPerParse {
		return newLimitError("max literals per parse", tok.Start)
	}
	return nil
}

func checkSubdoc(tok Token, limits Limits, c *docCounts, total *int) error {
	c.subdocuments++
	if c.subdocuments > limits.MaxSubdocumentsPerDocument {
		return newLimitError("max subdocuments per document", tok.Start)
	}
	*total++
	if *total > limits.MaxSubdocumentsPerParse {
		return newLimitError("max subdocuments per parse", tok.Start)
	}
	return nil
}
