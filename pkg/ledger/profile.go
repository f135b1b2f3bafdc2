// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package ledger manages the connection settings agents and test
// harnesses use to reach a blockchain network: named profiles, the
// environment-interpolated connection YAML, the test keyword
// arguments, and dotted-path overrides.
package ledger

import (
	"fmt"
	"regexp"

	"github.com/praxislabs/cli/pkg/constants"
	"github.com/praxislabs/cli/pkg/models"
)

var profileNameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// FallbackEstimate is the static fee estimate used when the fee
// history query fails. Field names follow the JSON-RPC fee fields.
type FallbackEstimate struct {
	MaxFeePerGas         int64 `yaml:"maxFeePerGas" json:"maxFeePerGas"`
	MaxPriorityFeePerGas int64 `yaml:"maxPriorityFeePerGas" json:"maxPriorityFeePerGas"`
}

// EIP1559Strategy prices transactions from recent fee history.
type EIP1559Strategy struct {
	MaxGasFast                  int              `yaml:"max_gas_fast" json:"max_gas_fast"`
	FeeHistoryBlocks            int              `yaml:"fee_history_blocks" json:"fee_history_blocks"`
	FeeHistoryPercentile        int              `yaml:"fee_history_percentile" json:"fee_history_percentile"`
	DefaultPriorityFee          int64            `yaml:"default_priority_fee" json:"default_priority_fee"`
	FallbackEstimate            FallbackEstimate `yaml:"fallback_estimate" json:"fallback_estimate"`
	PriorityFeeIncreaseBoundary int              `yaml:"priority_fee_increase_boundary" json:"priority_fee_increase_boundary"`
}

// GasStationStrategy prices transactions from an external gas price
// oracle.
type GasStationStrategy struct {
	GasPriceAPIKey   string `yaml:"gas_price_api_key" json:"gas_price_api_key"`
	GasPriceStrategy string `yaml:"gas_price_strategy" json:"gas_price_strategy"`
}

// GasPriceStrategies holds the named strategy configurations a profile
// ships to the test harness.
type GasPriceStrategies struct {
	EIP1559    *EIP1559Strategy    `yaml:"eip1559,omitempty" json:"eip1559,omitempty"`
	GasStation *GasStationStrategy `yaml:"gas_station,omitempty" json:"gas_station,omitempty"`
}

// Names lists the strategies present, in the order they are rendered.
func (g GasPriceStrategies) Names() []string {
	names := []string{}
	if g.EIP1559 != nil {
		names = append(names, constants.EIP1559Strategy)
	}
	if g.GasStation != nil {
		names = append(names, constants.GasStationStrategy)
	}
	return names
}

// Has reports whether the named strategy is configured.
func (g GasPriceStrategies) Has(name string) bool {
	switch name {
	case constants.EIP1559Strategy:
		return g.EIP1559 != nil
	case constants.GasStationStrategy:
		return g.GasStation != nil
	}
	return false
}

// Profile is a named ledger connection configuration for one network.
type Profile struct {
	Name                    string             `yaml:"name"`
	Network                 string             `yaml:"network"`
	Address                 string             `yaml:"address"`
	ChainID                 int64              `yaml:"chain_id"`
	Denom                   string             `yaml:"denom"`
	PoaChain                bool               `yaml:"poa_chain"`
	DefaultGasPriceStrategy string             `yaml:"default_gas_price_strategy"`
	GasPriceStrategies      GasPriceStrategies `yaml:"gas_price_strategies"`
}

// DefaultGasPriceStrategies returns the strategy payloads every
// built-in profile starts with.
func DefaultGasPriceStrategies() GasPriceStrategies {
	return GasPriceStrategies{
		EIP1559: &EIP1559Strategy{
			MaxGasFast:           constants.MaxGasFast,
			FeeHistoryBlocks:     constants.FeeHistoryBlocks,
			FeeHistoryPercentile: constants.FeeHistoryPercentile,
			DefaultPriorityFee:   constants.DefaultPriorityFee,
			FallbackEstimate: FallbackEstimate{
				MaxFeePerGas:         constants.FallbackMaxFeePerGas,
				MaxPriorityFeePerGas: constants.FallbackMaxPriorityFee,
			},
			PriorityFeeIncreaseBoundary: constants.PriorityFeeIncreaseBoundary,
		},
		GasStation: &GasStationStrategy{
			GasPriceAPIKey:   "",
			GasPriceStrategy: constants.GasStationSpeed,
		},
	}
}

// DefaultProfile builds the built-in profile for a network.
func DefaultProfile(network models.Network) (Profile, error) {
	address, err := network.Endpoint()
	if err != nil {
		return Profile{}, err
	}
	chainID, err := network.ChainID()
	if err != nil {
		return Profile{}, err
	}
	return Profile{
		Name:                    network.Name(),
		Network:                 network.Name(),
		Address:                 address,
		ChainID:                 chainID,
		Denom:                   network.Denom(),
		PoaChain:                false,
		DefaultGasPriceStrategy: constants.EIP1559Strategy,
		GasPriceStrategies:      DefaultGasPriceStrategies(),
	}, nil
}

// BuiltinProfiles returns the profiles that exist without any user
// configuration, one per known network.
func BuiltinProfiles() []Profile {
	profiles := []Profile{}
	for _, network := range models.AllNetworks() {
		profile, err := DefaultProfile(network)
		if err != nil {
			continue
		}
		profiles = append(profiles, profile)
	}
	return profiles
}

// ValidateName checks a profile name candidate. Names become file
// names under the ledgers dir, so the charset stays conservative.
func ValidateName(name string) error {
	if !profileNameRegex.MatchString(name) {
		return fmt.Errorf("invalid profile name %q: lowercase letters, digits and dashes only", name)
	}
	return nil
}

// Validate checks profile consistency before it is written or
// rendered.
func (p Profile) Validate() error {
	if err := ValidateName(p.Name); err != nil {
		return err
	}
	if models.NetworkFromString(p.Network) == models.Undefined {
		return fmt.Errorf("profile %q references unknown network %q", p.Name, p.Network)
	}
	if p.Address == "" {
		return fmt.Errorf("profile %q has no ledger address", p.Name)
	}
	if p.ChainID <= 0 {
		return fmt.Errorf("profile %q has invalid chain id %d", p.Name, p.ChainID)
	}
	if p.Denom == "" {
		return fmt.Errorf("profile %q has no denom", p.Name)
	}
	if p.DefaultGasPriceStrategy != constants.EIP1559Strategy &&
		p.DefaultGasPriceStrategy != constants.GasStationStrategy {
		return fmt.Errorf(
			"profile %q has unknown default gas price strategy %q",
			p.Name,
			p.DefaultGasPriceStrategy,
		)
	}
	if !p.GasPriceStrategies.Has(p.DefaultGasPriceStrategy) {
		return fmt.Errorf(
			"profile %q selects gas price strategy %q but does not configure it",
			p.Name,
			p.DefaultGasPriceStrategy,
		)
	}
	return nil
}
