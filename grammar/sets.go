package grammar

import "github.com/tawesoft/bach/internal/iteratable"

// fixedSet implements TerminalSet as a constant answer, for the two sets
// whose membership can never depend on the pool or be patched: Empty
// (nothing) and All (every non-eof character). SetEof is never actually
// dispatched through a TerminalSet — Table.Match special-cases it — but
// loader still installs a fixedSet there so the slice has no hole.
type fixedSet struct {
	always bool
}

func (f fixedSet) Contains(ch rune, eof bool) bool {
	if eof {
		return false
	}
	return f.always
}

// NewFixedSet builds a TerminalSet that always answers the same way for
// any non-eof character (used for SetEmpty, SetEof's placeholder, and
// SetAll).
func NewFixedSet(always bool) TerminalSet {
	return fixedSet{always: always}
}

// charSet implements TerminalSet over an internal/iteratable.CharSet,
// used both for the fixed pool-slice sets and for the two patchable ones
// (SetSS, SetSC).
type charSet struct {
	cs *iteratable.CharSet
}

func (c charSet) Contains(ch rune, eof bool) bool {
	if eof {
		return false
	}
	return c.cs.Contains(ch)
}

// NewCharSet builds a TerminalSet containing exactly the runes of chars.
func NewCharSet(chars string) TerminalSet {
	return charSet{cs: iteratable.NewCharSet(chars)}
}

// PoolSlice extracts the [start,end) rune slice of pool that a
// [Terminal Sets] entry names.
func PoolSlice(pool string, start, end uint8) string {
	return string([]rune(pool)[start:end])
}
