package compiler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const miniSource = `
[Production Symbols]
S
D

[Capture Semantics]
none 0
label 1

[Terminals]
"ab"

[Terminal Sets]
Empty 0 0 0
Eof   1 0 0
All   2 0 0
a     3 0 1
b     4 1 2

[Production Rules]
S a D ; lookahead All ; CS+C+CE ; label
D b -  ; lookahead All ; -       ; none

[END]
`

func TestCompileProducesChecksummedBlob(t *testing.T) {
	blob, err := Compile(miniSource)
	require.NoError(t, err)
	require.Equal(t, header, string(blob[:8]))

	checksum := 0
	for _, b := range blob[:len(blob)-1] {
		checksum = (checksum + int(b)) % 255
	}
	require.Equal(t, byte(checksum), blob[len(blob)-1])
}

func TestCompileIsCached(t *testing.T) {
	a, err := Compile(miniSource)
	require.NoError(t, err)
	b, err := Compile(miniSource)
	require.NoError(t, err)
	require.Same(t, &a[0], &b[0])
}

func TestCompileRejectsUnknownSymbol(t *testing.T) {
	_, err := Compile(`
[Production Symbols]
S

[Capture Semantics]
none 0

[Terminals]
"a"

[Terminal Sets]
Empty 0 0 0
Eof   1 0 0
All   2 0 0

[Production Rules]
S All Missing ; lookahead All ; - ; none

[END]
`)
	require.Error(t, err)
}

func TestEncodeDecodeHexRoundTrip(t *testing.T) {
	blob, err := Compile(miniSource)
	require.NoError(t, err)
	text := EncodeHex(blob)
	decoded, err := DecodeHex(text)
	require.NoError(t, err)
	require.Equal(t, blob, decoded)
}

func TestDecodeHexIgnoresWhitespace(t *testing.T) {
	decoded, err := DecodeHex("ab cd\nef\t01")
	require.NoError(t, err)
	require.Equal(t, []byte{0xab, 0xcd, 0xef, 0x01}, decoded)
}

func TestUnquoteRecognisesEscapes(t *testing.T) {
	got, err := unquote(`"\t\r \n\\=\""`)
	require.NoError(t, err)
	require.Equal(t, "\t\r \n\\=\"", got)
}
