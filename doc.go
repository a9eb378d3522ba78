/*
Package bach parses the Bach document markup language: a label, its
attributes, and an ordered sequence of quoted-literal and parenthesized-
subdocument children, assembled from a character stream by a compiled
LL(1) grammar (package grammar), a compiler for that grammar's
human-readable source (grammar/compiler), a loader turning a compiled
blob back into a runtime table (grammar/loader), and the pushdown
automaton and tree builder that actually drive a parse (package lex).

Parse is the only entry point most callers need:

	doc, err := bach.ParseString(`point x="1" y="2"`, nil)

Shorthand attribute prefixes (e.g. `.` for class, `#` for id) are
supplied per call via the shorthands argument, never baked into the
grammar itself — the same compiled grammar.Table is shared read-only
across every concurrent Parse, each patched with its own shorthand
configuration (spec.md §5).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package bach
