// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package enginecmd implements consensus engine management commands.
// Engine binaries are installed per version under ~/.praxis/engines/.
package enginecmd

import (
	"github.com/spf13/cobra"

	"github.com/praxislabs/cli/pkg/application"
)

var app *application.Praxis

// NewCmd creates and returns the engine command
func NewCmd(injectedApp *application.Praxis) *cobra.Command {
	app = injectedApp

	cmd := &cobra.Command{
		Use:   "engine",
		Short: "Manage consensus engine binaries",
		Long: `Commands for installing and managing consensus engine binaries.

Each version is installed to its own directory under ~/.praxis/engines/,
so multiple versions can coexist. The node command picks the installed
version to run; 'engine use' pins a default.

EXAMPLES:

  # Install the supported engine version
  praxis engine install

  # Install a specific version
  praxis engine install v0.34.19

  # List installed versions
  praxis engine list

  # Pin a default version
  praxis engine use v0.34.19`,
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}

	cmd.AddCommand(newInstallCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newUseCmd())
	cmd.AddCommand(newUninstallCmd())

	return cmd
}
