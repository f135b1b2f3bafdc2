// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledgercmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/praxislabs/cli/pkg/constants"
	"github.com/praxislabs/cli/pkg/ledger"
	"github.com/praxislabs/cli/pkg/models"
	"github.com/praxislabs/cli/pkg/prompts"
	"github.com/praxislabs/cli/pkg/ux"
)

var (
	configureNetwork  string
	configureAddress  string
	configureChainID  string
	configureDenom    string
	configureStrategy string
	configurePoa      bool
	configureForce    bool
)

func newConfigureCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "configure <name>",
		Short: "Create or update a connection profile",
		Long: `Create or update a ledger connection profile.

The profile starts from the network's built-in defaults; flags override
individual fields. Missing required fields are prompted for on a TTY
and filled with the network defaults otherwise.

Profile names become file names, so they are restricted to lowercase
letters, digits and dashes.

EXAMPLES:

  # A devnet profile with the default endpoint
  praxis ledger configure mychain --network devnet

  # A testnet profile pointing at a custom RPC node
  praxis ledger configure staging \
    --network testnet \
    --address https://rpc.internal.example.com \
    --chain-id 11155111`,
		Args:         cobra.ExactArgs(1),
		RunE:         runConfigure,
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&configureNetwork, "network", "", "network the ledger runs on (local/devnet/testnet/mainnet)")
	cmd.Flags().StringVar(&configureAddress, "address", "", "ledger RPC endpoint address")
	cmd.Flags().StringVar(&configureChainID, "chain-id", "", "chain id the endpoint must report")
	cmd.Flags().StringVar(&configureDenom, "denom", "", "fee denomination")
	cmd.Flags().StringVar(&configureStrategy, "default-gas-price-strategy", "", "gas price strategy the harness starts with")
	cmd.Flags().BoolVar(&configurePoa, "poa", false, "mark the chain as proof-of-authority")
	cmd.Flags().BoolVar(&configureForce, "force", false, "overwrite an existing profile without asking")

	return cmd
}

func runConfigure(_ *cobra.Command, args []string) error {
	name := args[0]
	if err := ledger.ValidateName(name); err != nil {
		return err
	}

	if app.ProfileExists(name) && !configureForce {
		if !prompts.IsInteractive() {
			return fmt.Errorf("profile %q already exists, pass --force to overwrite", name)
		}
		yes, err := app.Prompt.CaptureYesNo(fmt.Sprintf("Profile %q already exists. Overwrite?", name))
		if err != nil {
			return err
		}
		if !yes {
			ux.Logger.PrintToUser("Aborted")
			return nil
		}
	}

	v := prompts.NewValidator("praxis ledger configure")
	v.RequireWithDefault(&configureNetwork, prompts.MissingOpt{
		Flag:   "--network",
		Prompt: "Network (local/devnet/testnet/mainnet)",
	}, models.Devnet.Name())
	if err := v.Resolve(resolvePrompt); err != nil {
		return err
	}

	network := models.NetworkFromString(configureNetwork)
	if network == models.Undefined {
		return fmt.Errorf("unknown network %q, supported: %s", configureNetwork, strings.Join(networkNames(), ", "))
	}

	profile, err := ledger.DefaultProfile(network)
	if err != nil {
		return err
	}
	profile.Name = name

	v = prompts.NewValidator("praxis ledger configure")
	v.RequireWithDefault(&configureAddress, prompts.MissingOpt{
		Flag:   "--address",
		Env:    constants.EnvLedgerAddress,
		Prompt: "Ledger RPC endpoint address",
	}, profile.Address)
	v.RequireWithDefault(&configureChainID, prompts.MissingOpt{
		Flag:   "--chain-id",
		Env:    constants.EnvLedgerChainID,
		Prompt: "Chain id",
	}, strconv.FormatInt(profile.ChainID, 10))
	v.Optional(&configureDenom, profile.Denom)
	v.Optional(&configureStrategy, profile.DefaultGasPriceStrategy)
	if err := v.Resolve(resolvePrompt); err != nil {
		return err
	}

	chainID, err := strconv.ParseInt(configureChainID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid chain id %q: %w", configureChainID, err)
	}

	profile.Address = configureAddress
	profile.ChainID = chainID
	profile.Denom = configureDenom
	profile.PoaChain = configurePoa
	profile.DefaultGasPriceStrategy = configureStrategy

	if !profile.GasPriceStrategies.Has(profile.DefaultGasPriceStrategy) {
		return fmt.Errorf(
			"unknown gas price strategy %q, configured: %s",
			profile.DefaultGasPriceStrategy,
			strings.Join(profile.GasPriceStrategies.Names(), ", "),
		)
	}

	if err := app.WriteProfile(profile); err != nil {
		return err
	}

	ux.Logger.GreenCheckmarkToUser("Profile %q configured for %s", name, network.Name())
	ux.Logger.PrintToUser("Render its connection document with 'praxis ledger render %s'", name)
	return nil
}

// resolvePrompt asks for one missing option, falling back to the
// recorded default when the answer is empty.
func resolvePrompt(m prompts.MissingOpt) (string, error) {
	if m.Default == "" {
		return app.Prompt.CaptureString(m.Prompt)
	}
	val, err := app.Prompt.CaptureStringAllowEmpty(fmt.Sprintf("%s (default %s)", m.Prompt, m.Default))
	if err != nil {
		return "", err
	}
	if val == "" {
		return m.Default, nil
	}
	return val, nil
}

func networkNames() []string {
	names := []string{}
	for _, network := range models.AllNetworks() {
		names = append(names, network.Name())
	}
	return names
}
