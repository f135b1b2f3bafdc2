// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledgercmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/praxislabs/cli/pkg/ux"
)

func newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <name>",
		Short: "Show one profile in detail",
		Long: `Show everything a connection profile pins, including the gas
price strategy payloads.

EXAMPLES:

  praxis ledger describe mychain`,
		Args:         cobra.ExactArgs(1),
		RunE:         runDescribe,
		SilenceUsage: true,
	}
}

func runDescribe(_ *cobra.Command, args []string) error {
	profile, err := app.ResolveProfile(args[0])
	if err != nil {
		return err
	}

	ux.Logger.PrintLineSeparator(profile.Name)
	ux.Logger.PrintToUser("  Network:          %s", profile.Network)
	ux.Logger.PrintToUser("  Address:          %s", profile.Address)
	ux.Logger.PrintToUser("  Chain ID:         %d", profile.ChainID)
	ux.Logger.PrintToUser("  Denom:            %s", profile.Denom)
	ux.Logger.PrintToUser("  PoA chain:        %t", profile.PoaChain)
	ux.Logger.PrintToUser("  Default strategy: %s", profile.DefaultGasPriceStrategy)
	ux.Logger.PrintToUser("  Strategies:       %s", strings.Join(profile.GasPriceStrategies.Names(), ", "))

	if s := profile.GasPriceStrategies.EIP1559; s != nil {
		ux.Logger.PrintToUser("")
		ux.Logger.PrintToUser("  eip1559:")
		ux.Logger.PrintToUser("    max_gas_fast:           %d", s.MaxGasFast)
		ux.Logger.PrintToUser("    fee_history_blocks:     %d", s.FeeHistoryBlocks)
		ux.Logger.PrintToUser("    fee_history_percentile: %d", s.FeeHistoryPercentile)
		ux.Logger.PrintToUser("    default_priority_fee:   %d", s.DefaultPriorityFee)
		ux.Logger.PrintToUser("    fallback_estimate:      maxFeePerGas=%d maxPriorityFeePerGas=%d",
			s.FallbackEstimate.MaxFeePerGas, s.FallbackEstimate.MaxPriorityFeePerGas)
	}
	if s := profile.GasPriceStrategies.GasStation; s != nil {
		ux.Logger.PrintToUser("")
		ux.Logger.PrintToUser("  gas_station:")
		apiKey := "(unset)"
		if s.GasPriceAPIKey != "" {
			apiKey = "(set)"
		}
		ux.Logger.PrintToUser("    gas_price_api_key:  %s", apiKey)
		ux.Logger.PrintToUser("    gas_price_strategy: %s", s.GasPriceStrategy)
	}
	return nil
}
