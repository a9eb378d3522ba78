/*
Package compiler turns the human-readable grammar text format (see
grammar.Source, and the section-by-section walkthrough below) into the
compact binary blob that package loader reads back into a grammar.Table.

Source format

The source is a sequence of sections, each introduced by a `[Name]` header
on its own line. Blank lines and `#`-comments (to end of line) are ignored
everywhere. Section order is fixed:

	[Production Symbols]   one nonterminal name per line, in ID order
	[Capture Semantics]     "name id" per line, in ID order
	[Terminals]             a single quoted pool string
	[Terminal Sets]         "name id start end" per line, slicing the pool
	[Production Rules]      one rule per line (see below)
	[END]                   terminates the file

A production rule line has the shape:

	LHS current[~] RHS... ; lookahead SET[~] ; FLAGS ; SEMANTIC

current/SET may be prefixed with ~ to invert the set test. RHS is zero to
three nonterminal names, or a lone `-` for zero. FLAGS is `-` or any of
CS (captureStart), C (capture), CE (captureEnd) joined with `+`. SEMANTIC
names a [Capture Semantics] entry.

Binary format

The packed blob (spec.md §4.2) is: an 8-byte header "bach-cg1"; a states
count byte; a terminals-length byte followed by that many pool bytes; a
terminal-set-count byte followed by (start, end) byte pairs in set-ID
order; one (offset, count) byte pair per state, giving each state's slice
of the rule table; the packed rule records themselves, 6 bytes each
(terminal-set ID with its invert flag in the high bit, three RHS IDs or
255 for unused, lookahead-set ID with its invert flag in the high bit, a
capture byte); and a final additive mod-255 checksum byte over everything
before it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package compiler
