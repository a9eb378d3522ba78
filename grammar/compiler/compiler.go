package compiler

import (
	"encoding/hex"
	"fmt"
	"sync"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/utils"
)

const header = "bach-cg1"
const endOfList = 255

var cache sync.Map // content hash (string) -> []byte

// Compile turns grammar source text (the format described in this
// package's doc comment) into the packed binary blob described by
// grammar.Source's format and spec.md §4.2.
//
// Compiling the same source text twice returns a cached result rather
// than re-parsing and re-packing it: the embedded grammar.Source is
// compiled once per process (see the root package's use of sync.Once),
// but tooling that recompiles a hand-edited grammar file repeatedly
// during development benefits from not re-running the lexer each time.
func Compile(source string) ([]byte, error) {
	key, err := structhash.Hash(source, 1)
	if err != nil {
		return nil, fmt.Errorf("compiler: hashing source: %w", err)
	}
	if cached, ok := cache.Load(key); ok {
		tracer().Debugf("compiler: cache hit for %s", key)
		return cached.([]byte), nil
	}
	gs, err := parse(source)
	if err != nil {
		return nil, err
	}
	blob, err := pack(gs)
	if err != nil {
		return nil, err
	}
	cache.Store(key, blob)
	return blob, nil
}

// EncodeHex renders a compiled blob as the ASCII-hex transport format of
// spec.md §6 (one contiguous hex string; line-wrapping, if any, is the
// caller's presentation concern).
func EncodeHex(blob []byte) string {
	return hex.EncodeToString(blob)
}

// DecodeHex parses the ASCII-hex transport format back into a binary
// blob. Whitespace (including newlines a caller may have wrapped the hex
// text at) is ignored.
func DecodeHex(text string) ([]byte, error) {
	clean := make([]byte, 0, len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch c {
		case ' ', '\t', '\r', '\n':
			continue
		}
		clean = append(clean, c)
	}
	blob, err := hex.DecodeString(string(clean))
	if err != nil {
		return nil, fmt.Errorf("compiler: decoding hex: %w", err)
	}
	return blob, nil
}

func pack(gs *grammarSource) ([]byte, error) {
	if len(gs.symbols) == 0 {
		return nil, fmt.Errorf("compiler: no [Production Symbols] declared")
	}
	if len(gs.symbols) > 127 {
		return nil, fmt.Errorf("compiler: too many production symbols (%d > 127)", len(gs.symbols))
	}
	if len(gs.pool) > 127 {
		return nil, fmt.Errorf("compiler: terminal pool too long (%d > 127)", len(gs.pool))
	}

	symbolID := make(map[string]uint8, len(gs.symbols))
	for i, name := range gs.symbols {
		symbolID[name] = uint8(i)
	}
	semanticID := make(map[string]uint8, len(gs.semantic))
	for i, name := range gs.semantic {
		semanticID[name] = uint8(i)
	}

	setID := make(map[string]uint8, len(gs.sets))
	maxSetID := uint8(0)
	for _, s := range gs.sets {
		setID[s.name] = s.id
		if s.id > maxSetID {
			maxSetID = s.id
		}
	}
	numSets := int(maxSetID) + 1
	if numSets > 127 {
		return nil, fmt.Errorf("compiler: too many terminal sets (%d > 127)", numSets)
	}
	// Ordered the way lr/tables.go orders its edge list: an arraylist.List
	// sorted via a utils.Comparator, rather than a hand-rolled sort.
	setList := arraylist.New()
	for _, s := range gs.sets {
		setList.Add(s)
	}
	setList.Sort(func(a, b interface{}) int {
		return utils.IntComparator(int(a.(termSetSpec).id), int(b.(termSetSpec).id))
	})

	setBytes := make([][2]uint8, numSets)
	seen := make([]bool, numSets)
	setList.Each(func(_ int, value interface{}) {
		s := value.(termSetSpec)
		setBytes[s.id] = [2]uint8{s.start, s.end}
		seen[s.id] = true
	})
	for i, ok := range seen {
		if !ok {
			return nil, fmt.Errorf("compiler: terminal set id %d has no [Terminal Sets] entry", i)
		}
	}

	rulesByState := make([][]ruleSpec, len(gs.symbols))
	for _, r := range gs.rules {
		id, ok := symbolID[r.lhs]
		if !ok {
			return nil, fmt.Errorf("compiler: line %d: rule for undeclared symbol %q", r.line, r.lhs)
		}
		rulesByState[id] = append(rulesByState[id], r)
	}

	var out []byte
	out = append(out, []byte(header)...)
	out = append(out, byte(len(gs.symbols)))

	out = append(out, byte(len(gs.pool)))
	out = append(out, []byte(gs.pool)...)

	out = append(out, byte(numSets))
	for _, se := range setBytes {
		out = append(out, se[0], se[1])
	}

	offsets := make([]int, len(rulesByState))
	offset := 0
	for i, rs := range rulesByState {
		if offset > 127 || len(rs) > 127 {
			return nil, fmt.Errorf("compiler: rule table offset/count overflow at state %d", i)
		}
		offsets[i] = offset
		out = append(out, byte(offset), byte(len(rs)))
		offset += len(rs)
	}

	for i, rs := range rulesByState {
		for _, r := range rs {
			rec, err := packRule(r, symbolID, setID, semanticID)
			if err != nil {
				return nil, fmt.Errorf("compiler: state %d: %w", i, err)
			}
			out = append(out, rec...)
		}
	}

	checksum := 0
	for _, b := range out {
		checksum = (checksum + int(b)) % 255
	}
	out = append(out, byte(checksum))
	return out, nil
}

func packRule(r ruleSpec, symbolID, setID, semanticID map[string]uint8) ([]byte, error) {
	cur, ok := setID[r.currentSet]
	if !ok {
		return nil, fmt.Errorf("line %d: undeclared terminal set %q", r.line, r.currentSet)
	}
	la, ok := setID[r.lookaheadSet]
	if !ok {
		return nil, fmt.Errorf("line %d: undeclared terminal set %q", r.line, r.lookaheadSet)
	}
	sem, ok := semanticID[r.semantic]
	if !ok {
		return nil, fmt.Errorf("line %d: undeclared capture semantic %q", r.line, r.semantic)
	}
	if len(r.rhs) > 3 {
		return nil, fmt.Errorf("line %d: RHS too long", r.line)
	}
	rhs := [3]byte{endOfList, endOfList, endOfList}
	for i, name := range r.rhs {
		id, ok := symbolID[name]
		if !ok {
			return nil, fmt.Errorf("line %d: undeclared nonterminal %q in RHS", r.line, name)
		}
		rhs[i] = id
	}

	rec := make([]byte, 6)
	rec[0] = invertByte(cur, r.currentInvert)
	rec[1], rec[2], rec[3] = rhs[0], rhs[1], rhs[2]
	rec[4] = invertByte(la, r.lookaheadInvert)

	var c byte
	if r.capture {
		c |= 0b1000_0000
	}
	if r.captureStart {
		c |= 0b0100_0000
	}
	if r.captureEnd {
		c |= 0b0010_0000
	}
	c |= sem
	rec[5] = c
	return rec, nil
}

func invertByte(id uint8, invert bool) byte {
	if invert {
		return id | 0b1000_0000
	}
	return id
}
