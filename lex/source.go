package lex

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// CharSource is a lazy producer of Unicode code points with an
// end-of-stream sentinel (spec.md §6). Byte decoding is the caller's
// responsibility — Next returns runes, never raw bytes.
type CharSource interface {
	// Next returns the next code point. At end of stream it returns
	// eof=true and a zero rune. A non-nil err aborts the parse
	// immediately and is surfaced to the caller unchanged (spec.md §5).
	Next() (r rune, eof bool, err error)
}

// ReaderSource adapts an io.RuneReader (e.g. bufio.NewReader(f)) into a
// CharSource.
type ReaderSource struct {
	rr io.RuneReader
}

var _ CharSource = (*ReaderSource)(nil)

// NewReaderSource wraps r, buffering it with a bufio.Reader if it does
// not already implement io.RuneReader.
func NewReaderSource(r io.Reader) *ReaderSource {
	if rr, ok := r.(io.RuneReader); ok {
		return &ReaderSource{rr: rr}
	}
	return &ReaderSource{rr: bufio.NewReader(r)}
}

// NewStringSource builds a CharSource over an in-memory string.
func NewStringSource(s string) *ReaderSource {
	return &ReaderSource{rr: strings.NewReader(s)}
}

func (rs *ReaderSource) Next() (rune, bool, error) {
	r, _, err := rs.rr.ReadRune()
	if err == io.EOF {
		return 0, true, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("lex: reading input: %w", err)
	}
	return r, false, nil
}

// charInfo is one buffered character (or the eof sentinel in its place).
type charInfo struct {
	r   rune
	eof bool
}

// lookahead wraps a CharSource with up to two characters of buffering:
// the "current" character the automaton is about to consume, and the
// one character of true lookahead past it that a grammar.Rule's
// LookaheadSet predicate is tested against.
type lookahead struct {
	src CharSource
	buf []charInfo
	pos Position
}

func newLookahead(src CharSource) *lookahead {
	return &lookahead{src: src, pos: startPosition}
}

// fill ensures at least n characters are buffered, stopping early if eof
// is reached (there is nothing further to buffer past it).
func (l *lookahead) fill(n int) error {
	for len(l.buf) < n {
		if len(l.buf) > 0 && l.buf[len(l.buf)-1].eof {
			break
		}
		r, eof, err := l.src.Next()
		if err != nil {
			return err
		}
		l.buf = append(l.buf, charInfo{r: r, eof: eof})
	}
	return nil
}

// current returns the next character to be consumed, without consuming
// it.
func (l *lookahead) current() (rune, bool, error) {
	if err := l.fill(1); err != nil {
		return 0, false, err
	}
	c := l.buf[0]
	return c.r, c.eof, nil
}

// peekAhead returns the character one past current (true LL(1)
// lookahead), without consuming anything. If current itself is eof,
// peekAhead is eof too.
func (l *lookahead) peekAhead() (rune, bool, error) {
	if err := l.fill(2); err != nil {
		return 0, false, err
	}
	if len(l.buf) < 2 {
		return 0, true, nil
	}
	c := l.buf[1]
	return c.r, c.eof, nil
}

// position reports the position of the character current would return.
func (l *lookahead) position() Position {
	return l.pos
}

// advance consumes and returns the character current would have
// returned, updating the running position.
func (l *lookahead) advance() (rune, bool, error) {
	r, eof, err := l.current()
	if err != nil {
		return 0, false, err
	}
	l.buf = l.buf[1:]
	if !eof {
		l.pos = l.pos.advance(r)
	}
	return r, eof, nil
}
