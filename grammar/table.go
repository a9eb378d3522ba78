package grammar

// Rule is one production, in Greibach Normal Form: it consumes exactly one
// "current" terminal, optionally checks a one-character lookahead, and
// pushes zero to three right-hand-side nonterminals (spec.md §3, §4.1).
type Rule struct {
	LHS Symbol

	CurrentSet    SetID
	CurrentInvert bool

	LookaheadSet    SetID
	LookaheadInvert bool

	RHS [3]Symbol // unused trailing entries are EndOfList
	Len int       // number of RHS symbols actually used (0-3)

	Capture         bool
	CaptureStart    bool
	CaptureEnd      bool
	CaptureSemantic CaptureSemantic
}

// Table is the fully decoded grammar: everything loader.Load produces from
// a compiled binary blob, and everything the lex/parse engine needs to
// drive a parse. It is immutable after loader.Load returns: one loaded
// Table is safe to share, read-only, across any number of concurrent
// parses (spec.md §5). Two of its sets (SetSS, SetSC) vary per caller
// configuration, so loader.Patch never mutates a Table in place — it
// returns a new Table with a fresh TerminalSets slice, leaving the
// original untouched for the next caller to patch differently.
type Table struct {
	// TerminalSets holds one entry per SetID; sets 0-4 are the reserved
	// ones, everything else is whatever grammar.Source assigned.
	TerminalSets []TerminalSet

	// Rules, grouped and ordered by LHS symbol: Rules[sym] is the ordered
	// rule list to scan for a match when sym is on top of the automaton
	// stack (spec.md §4.4.3 step 2 — first match wins, by construction of
	// the grammar at most one ever matches in a reachable configuration).
	Rules [][]Rule

	// EndStates is the set of nonterminals at which end-of-stream is an
	// acceptable place to stop (spec.md §4.3, §9 open question iii):
	// {D} and the empty stack. S alone (all-whitespace/comments, no label
	// produced) is deliberately NOT a member.
	EndStates map[Symbol]bool

	// BaselineSC is the SetSC membership as compiled, before any
	// loader.Patch call: the core special characters, with no shorthand
	// symbols added yet. BaselineSS is always empty at compile time (no
	// shorthand symbol is special until a caller configures one). A
	// Patch always starts a fresh copy from these rather than from
	// whatever the previous Patch left behind, so repeated patching
	// (e.g. once per parse, in a long-running process) never
	// accumulates stale shorthand symbols.
	BaselineSS, BaselineSC string
}

// Match evaluates one rule predicate: the SetID named by id, with its
// invert flag applied, against a character (or end-of-stream).
//
// End-of-stream is special-cased (spec.md §9, design note ii): SetEof
// itself behaves normally under inversion, but every other set — and its
// inverse — is false at end-of-stream. This is why the grammar carries
// dedicated "lookahead Eof" rules at every point a run of characters
// might end at EOF, rather than relying on "~sc" to cover that case.
func (t *Table) Match(id SetID, invert bool, ch rune, eof bool) bool {
	if id == SetEof {
		if invert {
			return !eof
		}
		return eof
	}
	if eof {
		return false
	}
	raw := t.TerminalSets[id].Contains(ch, false)
	if invert {
		return !raw
	}
	return raw
}

// TerminalSet is a runtime character-set membership test for one SetID.
// Contains reports plain membership of ch; it answers false whenever eof
// is true. The invert flag and the SetEof case are applied by
// Table.Match, not by the set itself.
type TerminalSet interface {
	Contains(ch rune, eof bool) bool
}
