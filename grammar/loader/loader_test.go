package loader

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tawesoft/bach/grammar"
	"github.com/tawesoft/bach/grammar/compiler"
)

func TestLoadRealGrammar(t *testing.T) {
	blob, err := compiler.Compile(grammar.Source)
	require.NoError(t, err)

	table, err := Load(blob)
	require.NoError(t, err)
	require.NotEmpty(t, table.Rules)
	require.True(t, table.EndStates[grammar.D])
	require.False(t, table.EndStates[grammar.S])
}

func TestLoadRejectsBadChecksum(t *testing.T) {
	blob, err := compiler.Compile(grammar.Source)
	require.NoError(t, err)
	corrupt := append([]byte(nil), blob...)
	corrupt[len(corrupt)-1] ^= 0xFF

	_, err = Load(corrupt)
	require.Error(t, err)
}

func TestPatchDoesNotMutateOriginal(t *testing.T) {
	blob, err := compiler.Compile(grammar.Source)
	require.NoError(t, err)
	table, err := Load(blob)
	require.NoError(t, err)

	patched := Patch(table, []rune{'.', '#'})
	require.True(t, patched.TerminalSets[grammar.SetSS].Contains('.', false))
	require.False(t, table.TerminalSets[grammar.SetSS].Contains('.', false))
	require.True(t, patched.TerminalSets[grammar.SetSC].Contains('.', false))
}

func TestIsAllowedShorthandSymbol(t *testing.T) {
	blob, err := compiler.Compile(grammar.Source)
	require.NoError(t, err)
	table, err := Load(blob)
	require.NoError(t, err)

	require.True(t, IsAllowedShorthandSymbol(table, '.'))
	require.False(t, IsAllowedShorthandSymbol(table, '='))
	require.False(t, IsAllowedShorthandSymbol(table, '('))
}
