package iteratable

import "strings"

// CharSet is a mutable set of runes, backed by a sorted slice. It exists
// because the grammar's terminal sets (grammar.Table.TerminalSets) include
// two sets — the shorthand-symbol set and the special-character set — that
// are rebuilt per parse (loader.Patch) with the caller's configured
// shorthand symbols. Patch builds fresh CharSets for those two set IDs;
// the rules that reference the IDs are left untouched.
//
// All operations are destructive: Add/Remove mutate the receiver and
// return it, for chaining.
type CharSet struct {
	runes []rune
}

// NewCharSet creates a CharSet containing the runes of s (duplicates
// collapsed).
func NewCharSet(s string) *CharSet {
	cs := &CharSet{}
	for _, r := range s {
		cs.Add(r)
	}
	return cs
}

// Contains reports whether r is a member of the set.
func (cs *CharSet) Contains(r rune) bool {
	_, found := cs.search(r)
	return found
}

// Add inserts r into the set if not already present.
func (cs *CharSet) Add(r rune) *CharSet {
	i, found := cs.search(r)
	if found {
		return cs
	}
	cs.runes = append(cs.runes, 0)
	copy(cs.runes[i+1:], cs.runes[i:])
	cs.runes[i] = r
	return cs
}

// AddString inserts every rune of s into the set.
func (cs *CharSet) AddString(s string) *CharSet {
	for _, r := range s {
		cs.Add(r)
	}
	return cs
}

// Remove deletes r from the set, if present.
func (cs *CharSet) Remove(r rune) *CharSet {
	i, found := cs.search(r)
	if !found {
		return cs
	}
	cs.runes = append(cs.runes[:i], cs.runes[i+1:]...)
	return cs
}

// Reset empties the set and refills it from s.
func (cs *CharSet) Reset(s string) *CharSet {
	cs.runes = cs.runes[:0]
	return cs.AddString(s)
}

// Len returns the number of members.
func (cs *CharSet) Len() int {
	return len(cs.runes)
}

// String renders the set members in sorted order.
func (cs *CharSet) String() string {
	var b strings.Builder
	for _, r := range cs.runes {
		b.WriteRune(r)
	}
	return b.String()
}

func (cs *CharSet) search(r rune) (int, bool) {
	lo, hi := 0, len(cs.runes)
	for lo < hi {
		mid := (lo + hi) / 2
		if cs.runes[mid] < r {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo, lo < len(cs.runes) && cs.runes[lo] == r
}
