package loader

import (
	"strings"

	"github.com/tawesoft/bach/grammar"
)

// Patch returns a copy of table with SetSS and SetSC rebuilt for the
// given shorthand symbols: SetSS becomes exactly those symbols, and
// SetSC becomes the baseline special characters plus those same symbols
// (a shorthand symbol must terminate an in-progress label/attribute run
// the same way any other special character does).
//
// Patch never mutates table in place — it always rebuilds from
// table.BaselineSS/BaselineSC — so the same loaded grammar.Table can be
// shared read-only across concurrently running parses that each have
// their own shorthand configuration (spec.md §5).
func Patch(table *grammar.Table, symbols []rune) *grammar.Table {
	patched := *table // shallow copy: Rules/EndStates slices are shared and read-only
	sets := make([]grammar.TerminalSet, len(table.TerminalSets))
	copy(sets, table.TerminalSets)

	var ss strings.Builder
	for _, r := range symbols {
		ss.WriteRune(r)
	}
	sets[grammar.SetSS] = grammar.NewCharSet(ss.String())

	var sc strings.Builder
	sc.WriteString(table.BaselineSC)
	sc.WriteString(ss.String())
	sets[grammar.SetSC] = grammar.NewCharSet(sc.String())

	patched.TerminalSets = sets
	return &patched
}

// IsAllowedShorthandSymbol reports whether r may be configured as a
// shorthand symbol: it must not already be one of the core special
// characters (spec.md §6).
func IsAllowedShorthandSymbol(table *grammar.Table, r rune) bool {
	return !strings.ContainsRune(table.BaselineSC, r)
}
