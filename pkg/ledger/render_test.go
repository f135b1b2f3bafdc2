// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package ledger

import (
	"testing"

	"github.com/praxislabs/cli/pkg/constants"
	"github.com/praxislabs/cli/pkg/models"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNewConnectionConfigPlaceholders(t *testing.T) {
	require := require.New(t)

	profile, err := DefaultProfile(models.Local)
	require.NoError(err)

	config, err := NewConnectionConfig(profile, false)
	require.NoError(err)

	ethereum := config.Config.LedgerAPIs.Ethereum
	require.Equal("${LEDGER_ADDRESS:str:http://localhost:8545}", ethereum.Address)
	require.Equal("${LEDGER_CHAIN_ID:int:31337}", ethereum.ChainID)
	require.False(ethereum.PoaChain)
	require.Equal(constants.EIP1559Strategy, ethereum.DefaultGasPriceStrategy)
}

func TestNewConnectionConfigResolved(t *testing.T) {
	require := require.New(t)

	profile, err := DefaultProfile(models.Local)
	require.NoError(err)

	// without env overrides the profile defaults come through typed
	config, err := NewConnectionConfig(profile, true)
	require.NoError(err)
	require.Equal("http://localhost:8545", config.Config.LedgerAPIs.Ethereum.Address)
	require.Equal(int64(constants.LocalChainID), config.Config.LedgerAPIs.Ethereum.ChainID)

	// the environment wins when set
	t.Setenv(constants.LedgerAddressEnvVar, "https://rpc.example.com")
	t.Setenv(constants.LedgerChainIDEnvVar, "1")
	config, err = NewConnectionConfig(profile, true)
	require.NoError(err)
	require.Equal("https://rpc.example.com", config.Config.LedgerAPIs.Ethereum.Address)
	require.Equal(int64(1), config.Config.LedgerAPIs.Ethereum.ChainID)
}

func TestNewConnectionConfigInvalidEnv(t *testing.T) {
	require := require.New(t)

	profile, err := DefaultProfile(models.Local)
	require.NoError(err)

	t.Setenv(constants.LedgerChainIDEnvVar, "not-a-number")
	_, err = NewConnectionConfig(profile, true)
	require.Error(err)
}

func TestRenderConnectionYAMLRoundTrip(t *testing.T) {
	require := require.New(t)

	profile, err := DefaultProfile(models.Testnet)
	require.NoError(err)

	data, err := RenderConnectionYAML(profile, false)
	require.NoError(err)

	tree := map[string]interface{}{}
	require.NoError(yaml.Unmarshal(data, &tree))

	config, ok := tree["config"].(map[string]interface{})
	require.True(ok)
	apis, ok := config["ledger_apis"].(map[string]interface{})
	require.True(ok)
	ethereum, ok := apis["ethereum"].(map[string]interface{})
	require.True(ok)

	require.Contains(ethereum["address"], "${LEDGER_ADDRESS:str:")
	require.Contains(ethereum["chain_id"], "${LEDGER_CHAIN_ID:int:11155111}")
	require.Equal(false, ethereum["poa_chain"])
	require.Equal(constants.EIP1559Strategy, ethereum["default_gas_price_strategy"])
}

func TestNewTestKwargs(t *testing.T) {
	require := require.New(t)

	profile, err := DefaultProfile(models.Local)
	require.NoError(err)

	kwargs, err := NewTestKwargs(profile)
	require.NoError(err)

	require.Equal("http://localhost:8545", kwargs.Address)
	require.Equal(int64(constants.LocalChainID), kwargs.ChainID)
	require.Equal("wei", kwargs.Denom)
	require.Equal(constants.EIP1559Strategy, kwargs.DefaultGasPriceStrategy)
	require.NotNil(kwargs.GasPriceStrategies.EIP1559)
	require.NotNil(kwargs.GasPriceStrategies.GasStation)
}

func TestRenderTestKwargsYAML(t *testing.T) {
	require := require.New(t)

	profile, err := DefaultProfile(models.Local)
	require.NoError(err)

	data, err := RenderTestKwargsYAML(profile)
	require.NoError(err)

	tree := map[string]interface{}{}
	require.NoError(yaml.Unmarshal(data, &tree))

	require.Equal("http://localhost:8545", tree["address"])
	require.Equal(constants.LocalChainID, tree["chain_id"])
	require.Equal("wei", tree["denom"])
	require.Equal(constants.EIP1559Strategy, tree["default_gas_price_strategy"])

	strategies, ok := tree["gas_price_strategies"].(map[string]interface{})
	require.True(ok)
	eip1559, ok := strategies[constants.EIP1559Strategy].(map[string]interface{})
	require.True(ok)
	require.Equal(constants.MaxGasFast, eip1559["max_gas_fast"])
	require.Equal(constants.FeeHistoryBlocks, eip1559["fee_history_blocks"])

	fallback, ok := eip1559["fallback_estimate"].(map[string]interface{})
	require.True(ok)
	require.Equal(constants.FallbackMaxFeePerGas, fallback["maxFeePerGas"])
	require.Equal(constants.FallbackMaxPriorityFee, fallback["maxPriorityFeePerGas"])

	gasStation, ok := strategies[constants.GasStationStrategy].(map[string]interface{})
	require.True(ok)
	require.Equal(constants.GasStationSpeed, gasStation["gas_price_strategy"])
}

func TestRenderInvalidProfileFails(t *testing.T) {
	require := require.New(t)

	profile := Profile{Name: "broken"}
	_, err := RenderConnectionYAML(profile, false)
	require.Error(err)
	_, err = RenderTestKwargsYAML(profile)
	require.Error(err)
}
