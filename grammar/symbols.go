package grammar

// Symbol is a nonterminal identifier. 0 is always the start symbol. The
// numeric values here are the stable IDs baked into the compiled binary
// blob (grammar.Source assigns names to these same IDs in its
// [Production Symbols] section — the two must be kept in lockstep by hand,
// the way a hand-rolled bytecode and its disassembler must agree).
type Symbol uint8

const (
	S      Symbol = iota // start: blank-line/comment prelude, then the label
	IWS                  // inline whitespace (no LF)
	WS                   // whitespace, one-or-more
	LF                   // a single linefeed
	C                    // comment body, up to (not including) LF
	LSQ                  // remainder of a 'single'-quoted literal
	LDQ                  // remainder of a "double"-quoted literal
	LBQ                  // remainder of a [bracket]-quoted literal
	LSQESC               // one escape sequence inside a 'single'-quoted literal
	LDQESC               // one escape sequence inside a "double"-quoted literal
	LBQESC               // one escape sequence inside a [bracket]-quoted literal
	D                    // document body, past the label
	LD                   // a literal, then the rest of D
	ALD                  // an assignment character, then LD
	XSCC                 // one-or-more run of non-special characters
	SDS                  // subdocument, past its opening '('
	SD                   // subdocument body, past its label
	LSD                  // literal, then the rest of SD
	ALSD                 // assignment character, then LSD
	DSH                  // shorthand-attribute payload, document scope
	SDSH                 // shorthand-attribute payload, subdocument scope

	numSymbols = iota
)

// String renders a symbol using the names from grammar.Source, for error
// hints and tracing (§4.4.8 of the spec refers to these names directly).
func (s Symbol) String() string {
	if int(s) < len(symbolNames) {
		return symbolNames[s]
	}
	return "?"
}

var symbolNames = [numSymbols]string{
	S: "S", IWS: "IWS", WS: "WS", LF: "LF", C: "C",
	LSQ: "LSQ", LDQ: "LDQ", LBQ: "LBQ",
	LSQESC: "LSQESC", LDQESC: "LDQESC", LBQESC: "LBQESC",
	D: "D", LD: "LD", ALD: "ALD", XSCC: "XSCC",
	SDS: "SDS", SD: "SD", LSD: "LSD", ALSD: "ALSD",
	DSH: "DSH", SDSH: "SDSH",
}

// CaptureSemantic tags the role of a captured substring, stable across the
// compiled binary (the low 4 bits of a rule's capture byte).
type CaptureSemantic uint8

// Capture semantic IDs. These must remain stable (spec.md §4.1): they are
// cross-referenced by the grammar binary.
const (
	CaptureNone CaptureSemantic = iota
	CaptureLabel
	CaptureAttribute
	CaptureLiteral
	CaptureAssign
	CaptureSubdocStart
	CaptureSubdocEnd
	CaptureShorthandSymbol
	CaptureShorthandAttrib
)

func (c CaptureSemantic) String() string {
	names := [...]string{
		"none", "label", "attribute", "literal", "assign",
		"subdocStart", "subdocEnd", "shorthandSymbol", "shorthandAttrib",
	}
	if int(c) < len(names) {
		return names[c]
	}
	return "?"
}

// SetID identifies a terminal character set (an index into the Table's
// terminal-set array). It is a distinct type from Symbol even though both
// are small non-negative integers, because the two ID spaces are never
// interchangeable.
type SetID uint8

// Reserved terminal-set IDs (spec.md §4.2). IDs 0-4 have fixed meaning;
// everything from 5 upward is an arbitrary pool slice assigned by
// grammar.Source.
const (
	SetEmpty SetID = 0 // the empty set: matches nothing, not even EOF
	SetEof   SetID = 1 // the singleton set containing only end-of-stream
	SetAll   SetID = 2 // every character except EOF
	SetSS    SetID = 3 // configured shorthand symbols (runtime-patched)
	SetSC    SetID = 4 // core special characters (runtime-augmented)
)

// EndOfList is the sentinel RHS nonterminal ID marking "no symbol here" in
// a packed rule record (spec.md §4.2).
const EndOfList = 255
