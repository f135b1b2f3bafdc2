// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package models

import (
	"fmt"
	"strings"

	"github.com/praxislabs/cli/pkg/constants"
)

type Network int64

const (
	Undefined Network = iota
	Mainnet
	Testnet
	Local
	Devnet
)

func (s Network) String() string {
	switch s {
	case Mainnet:
		return "Mainnet"
	case Testnet:
		return "Testnet"
	case Local:
		return "Local Network"
	case Devnet:
		return "Devnet"
	}
	return "Unknown Network"
}

// Name returns the lowercase short name used in profile files and flags.
func (s Network) Name() string {
	switch s {
	case Mainnet:
		return "mainnet"
	case Testnet:
		return "testnet"
	case Local:
		return "local"
	case Devnet:
		return "devnet"
	}
	return "undefined"
}

// ChainID returns the EVM chain id agents connect to on this network.
func (s Network) ChainID() (int64, error) {
	switch s {
	case Mainnet:
		return constants.MainnetChainID, nil
	case Testnet:
		return constants.TestnetChainID, nil
	case Local:
		return constants.LocalChainID, nil
	case Devnet:
		return constants.DevnetChainID, nil
	}
	return 0, fmt.Errorf("unsupported network")
}

// Endpoint returns the default ledger RPC endpoint for this network.
func (s Network) Endpoint() (string, error) {
	switch s {
	case Mainnet:
		return constants.MainnetLedgerEndpoint, nil
	case Testnet:
		return constants.TestnetLedgerEndpoint, nil
	case Local:
		return constants.LocalLedgerEndpoint, nil
	case Devnet:
		return constants.DevnetLedgerEndpoint, nil
	}
	return "", fmt.Errorf("unsupported network")
}

// Denom returns the smallest fee denomination on this network. All
// built-in networks are EVM chains, so this is always wei today.
func (s Network) Denom() string {
	return constants.DefaultDenom
}

// NetworkFromString accepts both display names and short names.
func NetworkFromString(s string) Network {
	switch strings.ToLower(s) {
	case "mainnet":
		return Mainnet
	case "testnet":
		return Testnet
	case "local", "local network":
		return Local
	case "devnet":
		return Devnet
	}
	return Undefined
}

// AllNetworks lists the networks a built-in profile exists for.
func AllNetworks() []Network {
	return []Network{Local, Devnet, Testnet, Mainnet}
}
