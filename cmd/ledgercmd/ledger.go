// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package ledgercmd implements ledger connection profile management.
// A profile pins the endpoint, chain id and gas pricing the test
// harnesses use to reach a ledger on one network.
package ledgercmd

import (
	"github.com/spf13/cobra"

	"github.com/praxislabs/cli/pkg/application"
)

var app *application.Praxis

// NewCmd creates and returns the ledger command
func NewCmd(injectedApp *application.Praxis) *cobra.Command {
	app = injectedApp

	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Manage ledger connection profiles",
		Long: `Commands for managing ledger connection profiles.

Profiles live under ~/.praxis/ledgers/, one YAML file per profile.
Built-in profiles exist for every known network and can be shadowed by
user profiles with the same name.

EXAMPLES:

  # Configure a profile for a devnet ledger
  praxis ledger configure mychain --network devnet

  # Render the connection document agents carry
  praxis ledger render mychain

  # Render the kwargs dictionary test harnesses take
  praxis ledger render mychain --format kwargs

  # Probe every profile endpoint
  praxis ledger status

  # Pull shared profiles from the team registry
  praxis ledger sync --import`,
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}

	cmd.AddCommand(newConfigureCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newDescribeCmd())
	cmd.AddCommand(newDeleteCmd())
	cmd.AddCommand(newRenderCmd())
	cmd.AddCommand(newOverrideCmd())
	cmd.AddCommand(newStatusCmd())
	cmd.AddCommand(newSyncCmd())

	return cmd
}
