// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prompts

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// withInteractiveMode forces mode detection for the duration of a test.
func withInteractiveMode(t *testing.T, interactive bool) {
	t.Helper()
	orig := isInteractiveCheck
	isInteractiveCheck = func() bool { return interactive }
	t.Cleanup(func() { isInteractiveCheck = orig })
}

func TestMissingError(t *testing.T) {
	require := require.New(t)

	err := MissingError("praxis ledger configure", []MissingOpt{
		{Flag: "--address"},
		{Flag: "--chain-id", Env: "PRAXIS_CHAIN_ID"},
		{Flag: "--denom", Note: "fee denomination"},
	})
	require.Error(err)
	require.Contains(err.Error(), "missing required options:")
	require.Contains(err.Error(), "--address")
	require.Contains(err.Error(), "--chain-id (or PRAXIS_CHAIN_ID)")
	require.Contains(err.Error(), "--denom - fee denomination")
	require.Contains(err.Error(), "run 'praxis ledger configure --help'")
}

func TestMissingErrorEmpty(t *testing.T) {
	require.NoError(t, MissingError("praxis ledger configure", nil))
}

func TestValidatorResolveNonInteractive(t *testing.T) {
	require := require.New(t)
	withInteractiveMode(t, false)

	address := ""
	v := NewValidator("praxis ledger configure")
	v.Require(&address, MissingOpt{Flag: "--address", Prompt: "Ledger endpoint address"})

	require.True(v.HasMissing())
	err := v.Resolve(func(MissingOpt) (string, error) {
		t.Fatal("prompt must not run in non-interactive mode")
		return "", nil
	})
	require.Error(err)
	require.Contains(err.Error(), "--address")
}

func TestValidatorResolvePrompts(t *testing.T) {
	require := require.New(t)
	withInteractiveMode(t, true)

	address := ""
	chainID := ""
	v := NewValidator("praxis ledger configure")
	v.Require(&address, MissingOpt{Flag: "--address", Prompt: "Ledger endpoint address"})
	v.Require(&chainID, MissingOpt{Flag: "--chain-id", Prompt: "Chain ID"})

	answers := map[string]string{
		"Ledger endpoint address": "http://localhost:8545",
		"Chain ID":                "31337",
	}
	err := v.Resolve(func(m MissingOpt) (string, error) {
		return answers[m.Prompt], nil
	})
	require.NoError(err)
	require.Equal("http://localhost:8545", address)
	require.Equal("31337", chainID)
}

func TestValidatorSkipsProvidedValues(t *testing.T) {
	require := require.New(t)
	withInteractiveMode(t, false)

	address := "http://localhost:8545"
	v := NewValidator("praxis ledger configure")
	v.Require(&address, MissingOpt{Flag: "--address"})

	require.False(v.HasMissing())
	require.NoError(v.Resolve(nil))
}

func TestValidatorRequireWithDefaultNonInteractive(t *testing.T) {
	require := require.New(t)
	withInteractiveMode(t, false)

	denom := ""
	v := NewValidator("praxis ledger configure")
	v.RequireWithDefault(&denom, MissingOpt{Flag: "--denom", Prompt: "Fee denomination"}, "wei")

	// Non-interactive fills the default instead of failing.
	require.False(v.HasMissing())
	require.Equal("wei", denom)
}

func TestValidatorRequireWithDefaultInteractive(t *testing.T) {
	require := require.New(t)
	withInteractiveMode(t, true)

	denom := ""
	v := NewValidator("praxis ledger configure")
	v.RequireWithDefault(&denom, MissingOpt{Flag: "--denom", Prompt: "Fee denomination"}, "wei")

	require.True(v.HasMissing())
	require.Equal("wei", v.Missing()[0].Default)

	err := v.Resolve(func(m MissingOpt) (string, error) {
		return "gwei", nil
	})
	require.NoError(err)
	require.Equal("gwei", denom)
}

func TestValidatorOptional(t *testing.T) {
	require := require.New(t)

	note := ""
	v := NewValidator("praxis ledger configure")
	v.Optional(&note, "none")

	require.Equal("none", note)
	require.False(v.HasMissing())
}
