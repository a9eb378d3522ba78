/*
Package lex drives a compiled grammar.Table across a character stream: a
one-character-lookahead pushdown automaton (spec.md §4.4) that emits a
lazy sequence of classified Tokens, and a builder that assembles those
tokens into a Document tree while applying shorthand-attribute expansion
and enforcing per-parse size limits.

The automaton itself (Run) and the tree assembly (Build) are deliberately
separate: Run only knows about grammar.Symbol/grammar.Rule and produces
Tokens; Build only knows about Tokens and produces a Document. Nothing
here knows about Bach source syntax directly — that knowledge lives
entirely in the compiled grammar.Table this package is handed.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lex
