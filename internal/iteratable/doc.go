/*
Package iteratable implements iteratable container data structures.

CharSet is a special purpose set type over runes, suitable for implementing
the terminal character sets of an LL(1) grammar. These kinds of sets are
often more straightforward to describe as set constructions and operations
than as regular expressions.

Unusually, all set operations are destructive!

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package iteratable
