// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package ledger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlaceholder(t *testing.T) {
	require := require.New(t)

	require.Equal(
		"${LEDGER_ADDRESS:str:http://localhost:8545}",
		Placeholder("LEDGER_ADDRESS", TypeString, "http://localhost:8545"),
	)
	require.Equal(
		"${LEDGER_CHAIN_ID:int:31337}",
		Placeholder("LEDGER_CHAIN_ID", TypeInt, 31337),
	)
}

func TestParsePlaceholder(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantVar     string
		wantType    PlaceholderType
		wantDefault string
		wantErr     string
	}{
		{
			name:        "int placeholder",
			input:       "${LEDGER_CHAIN_ID:int:31337}",
			wantVar:     "LEDGER_CHAIN_ID",
			wantType:    TypeInt,
			wantDefault: "31337",
		},
		{
			name:        "default containing colons",
			input:       "${LEDGER_ADDRESS:str:http://localhost:8545}",
			wantVar:     "LEDGER_ADDRESS",
			wantType:    TypeString,
			wantDefault: "http://localhost:8545",
		},
		{
			name:        "bool placeholder",
			input:       "${POA:bool:false}",
			wantVar:     "POA",
			wantType:    TypeBool,
			wantDefault: "false",
		},
		{
			name:    "not a placeholder",
			input:   "plain string",
			wantErr: "not a placeholder",
		},
		{
			name:    "missing parts",
			input:   "${ONLY_VAR}",
			wantErr: "malformed placeholder",
		},
		{
			name:    "empty variable name",
			input:   "${:int:1}",
			wantErr: "empty variable name",
		},
		{
			name:    "unknown type",
			input:   "${VAR:uint:1}",
			wantErr: "unknown type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			envVar, typ, defaultValue, err := ParsePlaceholder(tt.input)
			if tt.wantErr != "" {
				require.ErrorContains(err, tt.wantErr)
				return
			}
			require.NoError(err)
			require.Equal(tt.wantVar, envVar)
			require.Equal(tt.wantType, typ)
			require.Equal(tt.wantDefault, defaultValue)
		})
	}
}

func TestResolveUsesDefault(t *testing.T) {
	require := require.New(t)

	value, err := Resolve("${PRAXIS_TEST_UNSET_CHAIN_ID:int:31337}")
	require.NoError(err)
	require.Equal(int64(31337), value)

	value, err = Resolve("${PRAXIS_TEST_UNSET_ADDR:str:http://localhost:8545}")
	require.NoError(err)
	require.Equal("http://localhost:8545", value)
}

func TestResolveEnvWins(t *testing.T) {
	require := require.New(t)

	t.Setenv("PRAXIS_TEST_CHAIN_ID", "1")
	value, err := Resolve("${PRAXIS_TEST_CHAIN_ID:int:31337}")
	require.NoError(err)
	require.Equal(int64(1), value)

	t.Setenv("PRAXIS_TEST_ADDR", "https://rpc.example.com")
	value, err = Resolve("${PRAXIS_TEST_ADDR:str:http://localhost:8545}")
	require.NoError(err)
	require.Equal("https://rpc.example.com", value)

	t.Setenv("PRAXIS_TEST_POA", "true")
	value, err = Resolve("${PRAXIS_TEST_POA:bool:false}")
	require.NoError(err)
	require.Equal(true, value)

	t.Setenv("PRAXIS_TEST_FEE", "1.5")
	value, err = Resolve("${PRAXIS_TEST_FEE:float:0.5}")
	require.NoError(err)
	require.Equal(1.5, value)
}

func TestResolveTypeErrors(t *testing.T) {
	require := require.New(t)

	t.Setenv("PRAXIS_TEST_BAD_INT", "not-a-number")
	_, err := Resolve("${PRAXIS_TEST_BAD_INT:int:31337}")
	require.ErrorContains(err, "not an int")

	_, err = Resolve("${PRAXIS_TEST_UNSET:bool:maybe}")
	require.ErrorContains(err, "not a bool")
}
