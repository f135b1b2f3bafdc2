// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package nodecmd implements the local consensus engine runtime
// commands. The engine runs detached from the CLI, with a run file
// under ~/.praxis/run/ tracking the process.
package nodecmd

import (
	"github.com/spf13/cobra"

	"github.com/praxislabs/cli/pkg/application"
)

var app *application.Praxis

// NewCmd creates and returns the node command
func NewCmd(injectedApp *application.Praxis) *cobra.Command {
	app = injectedApp

	cmd := &cobra.Command{
		Use:   "node",
		Short: "Run a local consensus engine",
		Long: `Commands for running a local consensus engine node.

The node runs in the background with output collected in
~/.praxis/logs/engine.log. Missing engine binaries are installed on
first start.

EXAMPLES:

  # Start a local node with the default engine
  praxis node start

  # Check whether the node is running
  praxis node status

  # Stop the node
  praxis node stop`,
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}

	cmd.AddCommand(newStartCmd())
	cmd.AddCommand(newStopCmd())
	cmd.AddCommand(newStatusCmd())

	return cmd
}
