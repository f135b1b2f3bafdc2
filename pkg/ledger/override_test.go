// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package ledger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseOverride(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantPath  string
		wantValue interface{}
		wantErr   bool
	}{
		{
			name:      "int value",
			input:     "config.ledger_apis.ethereum.chain_id=1",
			wantPath:  "config.ledger_apis.ethereum.chain_id",
			wantValue: int64(1),
		},
		{
			name:      "string value",
			input:     "config.ledger_apis.ethereum.address=https://rpc.example.com",
			wantPath:  "config.ledger_apis.ethereum.address",
			wantValue: "https://rpc.example.com",
		},
		{
			name:      "bool value",
			input:     "config.ledger_apis.ethereum.poa_chain=true",
			wantPath:  "config.ledger_apis.ethereum.poa_chain",
			wantValue: true,
		},
		{
			name:      "float value",
			input:     "limits.multiplier=1.5",
			wantPath:  "limits.multiplier",
			wantValue: 1.5,
		},
		{
			name:    "no equals",
			input:   "config.chain_id",
			wantErr: true,
		},
		{
			name:    "empty path",
			input:   "=1",
			wantErr: true,
		},
		{
			name:    "empty segment",
			input:   "config..chain_id=1",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			override, err := ParseOverride(tt.input)
			if tt.wantErr {
				require.Error(err)
				return
			}
			require.NoError(err)
			require.Equal(tt.wantPath, override.DottedPath)
			require.Equal(tt.wantValue, override.Value)
		})
	}
}

func TestApplyReplacesLeaf(t *testing.T) {
	require := require.New(t)

	tree := map[string]interface{}{
		"config": map[string]interface{}{
			"ledger_apis": map[string]interface{}{
				"ethereum": map[string]interface{}{
					"chain_id": 31337,
				},
			},
		},
	}

	override := Override{DottedPath: "config.ledger_apis.ethereum.chain_id", Value: int64(1)}
	require.NoError(Apply(tree, override))

	ethereum := tree["config"].(map[string]interface{})["ledger_apis"].(map[string]interface{})["ethereum"].(map[string]interface{})
	require.Equal(int64(1), ethereum["chain_id"])
}

func TestApplyCreatesIntermediates(t *testing.T) {
	require := require.New(t)

	tree := map[string]interface{}{}
	override := Override{DottedPath: "a.b.c", Value: "v"}
	require.NoError(Apply(tree, override))

	b := tree["a"].(map[string]interface{})["b"].(map[string]interface{})
	require.Equal("v", b["c"])
}

func TestApplyRefusesNonMapTraversal(t *testing.T) {
	require := require.New(t)

	tree := map[string]interface{}{
		"config": "scalar",
	}
	override := Override{DottedPath: "config.chain_id", Value: 1}
	err := Apply(tree, override)
	require.ErrorContains(err, "not a mapping")
}

func TestApplyAllOrder(t *testing.T) {
	require := require.New(t)

	tree := map[string]interface{}{}
	overrides := []Override{
		{DottedPath: "a.b", Value: 1},
		{DottedPath: "a.b", Value: 2},
	}
	require.NoError(ApplyAll(tree, overrides))
	require.Equal(2, tree["a"].(map[string]interface{})["b"])
}

func TestApplyToFile(t *testing.T) {
	require := require.New(t)
	dir := t.TempDir()

	source := `
config:
  ledger_apis:
    ethereum:
      address: http://localhost:8545
      chain_id: 31337
`
	path := filepath.Join(dir, "agent.yaml")
	require.NoError(os.WriteFile(path, []byte(source), 0o644))

	overrides := []Override{
		{DottedPath: "config.ledger_apis.ethereum.chain_id", Value: int64(1)},
		{DottedPath: "config.ledger_apis.ethereum.poa_chain", Value: true},
	}
	outPath := filepath.Join(dir, "agent_out.yaml")
	require.NoError(ApplyToFile(path, outPath, overrides))

	data, err := os.ReadFile(outPath)
	require.NoError(err)
	tree := map[string]interface{}{}
	require.NoError(yaml.Unmarshal(data, &tree))

	ethereum := tree["config"].(map[string]interface{})["ledger_apis"].(map[string]interface{})["ethereum"].(map[string]interface{})
	require.Equal(1, ethereum["chain_id"])
	require.Equal(true, ethereum["poa_chain"])
	require.Equal("http://localhost:8545", ethereum["address"], "untouched fields survive")

	// in-place rewrite when no output path is given
	require.NoError(ApplyToFile(path, "", []Override{{DottedPath: "config.ledger_apis.ethereum.chain_id", Value: int64(5)}}))
	data, err = os.ReadFile(path)
	require.NoError(err)
	tree = map[string]interface{}{}
	require.NoError(yaml.Unmarshal(data, &tree))
	ethereum = tree["config"].(map[string]interface{})["ledger_apis"].(map[string]interface{})["ethereum"].(map[string]interface{})
	require.Equal(5, ethereum["chain_id"])
}

func TestApplyToFileMissingConfig(t *testing.T) {
	require := require.New(t)

	err := ApplyToFile(filepath.Join(t.TempDir(), "missing.yaml"), "", []Override{{DottedPath: "a.b", Value: 1}})
	require.Error(err)
}
