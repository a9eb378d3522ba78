/*
Package grammar defines the static Grammar Table of the Bach language: the
set of nonterminal symbols, the terminal character sets they are built
from, the capture-semantic tags a rule may emit, and the production rules
themselves — all in Greibach Normal Form with one character of lookahead
(LL(1)).

The table is authored once, in the human-readable text format described by
sub-package compiler (and embedded here as Source), compiled to a compact
binary blob by compiler.Compile, and turned back into the in-memory lookup
tables the lex/parse engine drives by sub-package loader. This package only
holds the numeric IDs that both ends of that pipeline must agree on — it is
the contract, not the machinery.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import _ "embed"

// Source is the human-readable grammar-table text for the Bach language,
// in the section format consumed by package compiler. It is the single
// source of truth that compiler.Compile turns into a binary blob, and
// loader.Load turns back into a Table.
//
//go:embed bach.grammar
var Source string
