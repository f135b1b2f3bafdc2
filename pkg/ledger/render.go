// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"fmt"

	"github.com/praxislabs/cli/pkg/constants"
	"gopkg.in/yaml.v3"
)

// ConnectionConfig is the YAML block agents carry under their ledger
// connection. Address and chain id hold either interpolation
// placeholders or resolved values, so they are typed loosely.
type ConnectionConfig struct {
	Config ConnectionBlock `yaml:"config"`
}

type ConnectionBlock struct {
	LedgerAPIs LedgerAPIs `yaml:"ledger_apis"`
}

type LedgerAPIs struct {
	Ethereum EthereumAPI `yaml:"ethereum"`
}

type EthereumAPI struct {
	Address                 interface{} `yaml:"address"`
	ChainID                 interface{} `yaml:"chain_id"`
	PoaChain                bool        `yaml:"poa_chain"`
	DefaultGasPriceStrategy string      `yaml:"default_gas_price_strategy"`
}

// TestKwargs is the keyword-argument dictionary contract test
// harnesses take per network.
type TestKwargs struct {
	Address                 string             `yaml:"address"`
	ChainID                 int64              `yaml:"chain_id"`
	Denom                   string             `yaml:"denom"`
	DefaultGasPriceStrategy string             `yaml:"default_gas_price_strategy"`
	GasPriceStrategies      GasPriceStrategies `yaml:"gas_price_strategies"`
}

// NewConnectionConfig builds the connection block for a profile. With
// resolved false, address and chain id are emitted as environment
// placeholders whose defaults come from the profile; with resolved
// true, the placeholders are evaluated against the current
// environment first.
func NewConnectionConfig(profile Profile, resolved bool) (ConnectionConfig, error) {
	if err := profile.Validate(); err != nil {
		return ConnectionConfig{}, err
	}

	addressField := interface{}(Placeholder(constants.LedgerAddressEnvVar, TypeString, profile.Address))
	chainIDField := interface{}(Placeholder(constants.LedgerChainIDEnvVar, TypeInt, profile.ChainID))
	if resolved {
		address, err := Resolve(addressField.(string))
		if err != nil {
			return ConnectionConfig{}, err
		}
		chainID, err := Resolve(chainIDField.(string))
		if err != nil {
			return ConnectionConfig{}, err
		}
		addressField = address
		chainIDField = chainID
	}

	return ConnectionConfig{
		Config: ConnectionBlock{
			LedgerAPIs: LedgerAPIs{
				Ethereum: EthereumAPI{
					Address:                 addressField,
					ChainID:                 chainIDField,
					PoaChain:                profile.PoaChain,
					DefaultGasPriceStrategy: profile.DefaultGasPriceStrategy,
				},
			},
		},
	}, nil
}

// RenderConnectionYAML marshals the connection block for a profile.
func RenderConnectionYAML(profile Profile, resolved bool) ([]byte, error) {
	config, err := NewConnectionConfig(profile, resolved)
	if err != nil {
		return nil, err
	}
	data, err := yaml.Marshal(config)
	if err != nil {
		return nil, fmt.Errorf("failed rendering connection config for %s: %w", profile.Name, err)
	}
	return data, nil
}

// NewTestKwargs builds the harness kwargs for a profile.
func NewTestKwargs(profile Profile) (TestKwargs, error) {
	if err := profile.Validate(); err != nil {
		return TestKwargs{}, err
	}
	return TestKwargs{
		Address:                 profile.Address,
		ChainID:                 profile.ChainID,
		Denom:                   profile.Denom,
		DefaultGasPriceStrategy: profile.DefaultGasPriceStrategy,
		GasPriceStrategies:      profile.GasPriceStrategies,
	}, nil
}

// RenderTestKwargsYAML marshals the harness kwargs for a profile.
func RenderTestKwargsYAML(profile Profile) ([]byte, error) {
	kwargs, err := NewTestKwargs(profile)
	if err != nil {
		return nil, err
	}
	data, err := yaml.Marshal(kwargs)
	if err != nil {
		return nil, fmt.Errorf("failed rendering test kwargs for %s: %w", profile.Name, err)
	}
	return data, nil
}
