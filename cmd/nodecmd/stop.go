// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package nodecmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/praxislabs/cli/pkg/binutils"
	"github.com/praxislabs/cli/pkg/ux"
)

func newStopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the running engine node",
		Long: `Stop the engine node started with 'node start'.

The process gets an interrupt first and a kill after the grace period.

EXAMPLES:

  praxis node stop`,
		Args:         cobra.NoArgs,
		RunE:         runStop,
		SilenceUsage: true,
	}
}

func runStop(_ *cobra.Command, _ []string) error {
	if err := binutils.StopEngineProcess(app); err != nil {
		if errors.Is(err, binutils.ErrEngineNotRunning) {
			ux.Logger.PrintToUser("No engine node is running.")
			return nil
		}
		return err
	}
	ux.Logger.GreenCheckmarkToUser("Engine node stopped")
	return nil
}
