// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package nodecmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/praxislabs/cli/pkg/binutils"
	"github.com/praxislabs/cli/pkg/constants"
	"github.com/praxislabs/cli/pkg/ux"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the engine node status",
		Long: `Show whether an engine node is running, and its details.

A stale run file left behind by a crashed node is reported and can be
cleaned up with 'node stop'.

EXAMPLES:

  praxis node status`,
		Args:         cobra.NoArgs,
		RunE:         runStatus,
		SilenceUsage: true,
	}
}

func runStatus(_ *cobra.Command, _ []string) error {
	running, proc, err := binutils.IsEngineRunning(app)
	if err != nil {
		return err
	}

	if !running {
		if proc != nil {
			ux.Logger.PrintToUser("Engine node is not running (stale run file for pid %d).", proc.Pid)
			ux.Logger.PrintToUser("Run 'praxis node stop' to clean it up.")
			return nil
		}
		ux.Logger.PrintToUser("No engine node is running.")
		ux.Logger.PrintToUser("Use 'praxis node start' to start one.")
		return nil
	}

	rpcState := "not responding"
	if binutils.EngineRPCReachable(constants.EngineRPCURL) {
		rpcState = "reachable"
	}

	uptime := time.Since(proc.StartedAt).Round(time.Second)
	ux.Logger.PrintToUser("Engine node is running")
	ux.Logger.PrintToUser("  Version: %s", proc.Version)
	ux.Logger.PrintToUser("  PID:     %d", proc.Pid)
	ux.Logger.PrintToUser("  Uptime:  %s", uptime)
	ux.Logger.PrintToUser("  RPC:     %s (%s)", rpcState, constants.EngineRPCURL)
	ux.Logger.PrintToUser("  Logs:    %s", proc.LogFile)
	return nil
}
