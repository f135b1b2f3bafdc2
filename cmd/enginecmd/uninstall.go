// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package enginecmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/praxislabs/cli/pkg/binutils"
	"github.com/praxislabs/cli/pkg/constants"
	"github.com/praxislabs/cli/pkg/prompts"
	"github.com/praxislabs/cli/pkg/ux"
)

func newUninstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "uninstall <version>",
		Short: "Remove an installed engine version",
		Long: `Remove an installed consensus engine version from disk.

A version that is currently running cannot be removed; stop the node
first. If the removed version was the pinned default, the pin is
cleared.

EXAMPLES:

  praxis engine uninstall v0.34.19`,
		Args:         cobra.ExactArgs(1),
		RunE:         runUninstall,
		SilenceUsage: true,
	}
}

func runUninstall(_ *cobra.Command, args []string) error {
	version := args[0]
	if !strings.HasPrefix(version, "v") {
		version = "v" + version
	}

	if !app.EngineIsInstalled(version) {
		return fmt.Errorf("engine version %s is not installed", version)
	}

	running, proc, err := binutils.IsEngineRunning(app)
	if err != nil {
		return err
	}
	if running && proc.Version == version {
		return fmt.Errorf("engine version %s is currently running with pid %d, run 'praxis node stop' first", version, proc.Pid)
	}

	if prompts.IsInteractive() {
		yes, err := app.Prompt.CaptureNoYes(fmt.Sprintf("Remove engine version %s?", version))
		if err != nil {
			return err
		}
		if !yes {
			ux.Logger.PrintToUser("Aborted")
			return nil
		}
	}

	installDir := app.GetEngineInstallDir(version)
	if err := os.RemoveAll(installDir); err != nil {
		return fmt.Errorf("failed removing %s: %w", installDir, err)
	}

	// clear the pin when it pointed at the removed version
	if app.Conf.GetConfigStringValue(constants.ConfigEnginePathKey) == app.GetEngineBinaryPath(version) {
		if err := app.Conf.SetConfigValue(constants.ConfigEnginePathKey, ""); err != nil {
			return fmt.Errorf("failed to update config: %w", err)
		}
		ux.Logger.PrintToUser("Cleared the default engine pin, it pointed at the removed version")
	}

	ux.Logger.GreenCheckmarkToUser("Engine version %s removed", version)
	return nil
}
