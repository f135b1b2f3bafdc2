// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package enginecmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/praxislabs/cli/pkg/constants"
	"github.com/praxislabs/cli/pkg/ux"
)

func newUseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "use <version>",
		Short: "Pin the default engine version",
		Long: `Pin an installed engine version as the default for 'node start'.

The choice is stored in the CLI config file and can be overridden per
invocation with the PRAXIS_ENGINE_PATH environment variable.

EXAMPLES:

  praxis engine use v0.34.19`,
		Args:         cobra.ExactArgs(1),
		RunE:         runUse,
		SilenceUsage: true,
	}
}

func runUse(_ *cobra.Command, args []string) error {
	version := args[0]
	if !strings.HasPrefix(version, "v") {
		version = "v" + version
	}

	if !app.EngineIsInstalled(version) {
		return fmt.Errorf("engine version %s is not installed, run 'praxis engine install %s' first", version, version)
	}

	binaryPath := app.GetEngineBinaryPath(version)
	if err := app.Conf.SetConfigValue(constants.ConfigEnginePathKey, binaryPath); err != nil {
		return fmt.Errorf("failed to update config: %w", err)
	}

	ux.Logger.GreenCheckmarkToUser("Default engine set to %s (%s)", version, binaryPath)
	return nil
}
