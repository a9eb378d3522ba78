/*
Package loader decodes the binary blob produced by package compiler back
into a grammar.Table ready to drive a parse (spec.md §4.3).

Load validates the blob's header and checksum, then materializes every
terminal set and production rule. Two terminal sets — SetSS (configured
shorthand symbols) and SetSC (special characters, augmented with those
same shorthand symbols) — start out empty/baseline and are not useful
until Patch has been called with the shorthand configuration for a given
parse.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package loader
