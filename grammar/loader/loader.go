package loader

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/tawesoft/bach/grammar"
)

// tracer traces with key 'bach.loader'.
func tracer() tracing.Trace {
	return tracing.Select("bach.loader")
}

const header = "bach-cg1"

// Load decodes a compiled grammar blob (as produced by
// grammar/compiler.Compile) into a ready-to-use grammar.Table. The
// returned table's SetSS entry is empty and its SetSC entry holds only
// the core special characters; call Patch before using the table to
// parse anything that relies on shorthand symbols.
func Load(blob []byte) (*grammar.Table, error) {
	if len(blob) < len(header)+1 {
		return nil, fmt.Errorf("loader: blob too short (%d bytes)", len(blob))
	}
	if err := verifyChecksum(blob); err != nil {
		return nil, err
	}
	if string(blob[:len(header)]) != header {
		return nil, fmt.Errorf("loader: bad header %q, expected %q", blob[:len(header)], header)
	}
	r := &reader{buf: blob, pos: len(header)}

	numStates := int(r.byte())
	tracer().Debugf("loader: %d states", numStates)

	poolLen := int(r.byte())
	pool := string(r.bytes(poolLen))

	numSets := int(r.byte())
	setRanges := make([][2]uint8, numSets)
	for i := range setRanges {
		setRanges[i] = [2]uint8{r.byte(), r.byte()}
	}
	if r.err != nil {
		return nil, r.err
	}
	if numSets <= int(grammar.SetSC) {
		return nil, fmt.Errorf("loader: blob declares only %d terminal sets, need at least %d reserved ones", numSets, grammar.SetSC+1)
	}

	sets := make([]grammar.TerminalSet, numSets)
	sets[grammar.SetEmpty] = grammar.NewFixedSet(false)
	sets[grammar.SetEof] = grammar.NewFixedSet(false) // placeholder; Table.Match special-cases SetEof
	sets[grammar.SetAll] = grammar.NewFixedSet(true)
	sets[grammar.SetSS] = grammar.NewCharSet("") // patched per-parse
	baselineSC := grammar.PoolSlice(pool, setRanges[grammar.SetSC][0], setRanges[grammar.SetSC][1])
	sets[grammar.SetSC] = grammar.NewCharSet(baselineSC)
	for i := int(grammar.SetSC) + 1; i < numSets; i++ {
		sets[i] = grammar.NewCharSet(grammar.PoolSlice(pool, setRanges[i][0], setRanges[i][1]))
	}

	type stateSlice struct{ offset, count int }
	states := make([]stateSlice, numStates)
	for i := range states {
		states[i] = stateSlice{offset: int(r.byte()), count: int(r.byte())}
	}
	if r.err != nil {
		return nil, r.err
	}

	totalRules := 0
	for _, s := range states {
		totalRules += s.count
	}
	records := make([][6]byte, totalRules)
	for i := range records {
		for j := 0; j < 6; j++ {
			records[i][j] = r.byte()
		}
	}
	if r.err != nil {
		return nil, r.err
	}

	rules := make([][]grammar.Rule, numStates)
	for i, s := range states {
		rules[i] = make([]grammar.Rule, s.count)
		for j := 0; j < s.count; j++ {
			rec := records[s.offset+j]
			rules[i][j] = decodeRule(rec)
		}
	}

	// spec.md §4.3, §9 design note iii: acceptable end states are {D}
	// (symbol 11, per grammar.Symbol's declaration order) and the empty
	// stack. The blob does not encode end states, so the loader sets {D}
	// here from the grammar.Symbol constant; the empty stack is handled
	// by lex.Run.
	endStates := map[grammar.Symbol]bool{grammar.D: true}

	return &grammar.Table{
		TerminalSets: sets,
		Rules:        rules,
		EndStates:    endStates,
		BaselineSS:   "",
		BaselineSC:   baselineSC,
	}, nil
}

func decodeRule(rec [6]byte) grammar.Rule {
	cur, curInv := unpackID(rec[0])
	la, laInv := unpackID(rec[4])
	rhs := [3]grammar.Symbol{grammar.Symbol(rec[1]), grammar.Symbol(rec[2]), grammar.Symbol(rec[3])}
	rhsLen := 0
	for _, s := range rhs {
		if s == grammar.EndOfList {
			break
		}
		rhsLen++
	}
	c := rec[5]
	return grammar.Rule{
		CurrentSet:      grammar.SetID(cur),
		CurrentInvert:   curInv,
		LookaheadSet:    grammar.SetID(la),
		LookaheadInvert: laInv,
		RHS:             rhs,
		Len:             rhsLen,
		Capture:         c&0b1000_0000 != 0,
		CaptureStart:    c&0b0100_0000 != 0,
		CaptureEnd:      c&0b0010_0000 != 0,
		CaptureSemantic: grammar.CaptureSemantic(c & 0b0000_1111),
	}
}

func unpackID(b byte) (id byte, invert bool) {
	if b&0b1000_0000 != 0 {
		return b &^ 0b1000_0000, true
	}
	return b, false
}

func verifyChecksum(blob []byte) error {
	if len(blob) == 0 {
		return fmt.Errorf("loader: empty blob")
	}
	want := blob[len(blob)-1]
	got := 0
	for _, b := range blob[:len(blob)-1] {
		got = (got + int(b)) % 255
	}
	if byte(got) != want {
		return fmt.Errorf("loader: checksum mismatch: blob says %d, computed %d", want, got)
	}
	return nil
}

// reader is a tiny bounds-checked byte cursor over a compiled blob.
type reader struct {
	buf []byte
	pos int
	err error
}

func (r *reader) byte() byte {
	if r.err != nil {
		return 0
	}
	if r.pos >= len(r.buf) {
		r.err = fmt.Errorf("loader: unexpected end of blob at byte %d", r.pos)
		return 0
	}
	b := r.buf[r.pos]
	r.pos++
	return b
}

func (r *reader) bytes(n int) []byte {
	if r.err != nil {
		return nil
	}
	if r.pos+n > len(r.buf) {
		r.err = fmt.Errorf("loader: unexpected end of blob at byte %d (want %d more)", r.pos, n)
		return nil
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b
}
