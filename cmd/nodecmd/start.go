// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package nodecmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/praxislabs/cli/pkg/binutils"
	"github.com/praxislabs/cli/pkg/dependencies"
	"github.com/praxislabs/cli/pkg/ux"
)

func newStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start [version]",
		Short: "Start a local consensus engine node",
		Long: `Start a consensus engine node in the background.

Which binary runs is decided in order: the PRAXIS_ENGINE_PATH
environment variable, the version pinned with 'engine use', a binary
next to the CLI, the system PATH, and finally the supported release,
which is installed automatically when nothing else is found.

Passing a version argument installs and runs that version instead.

EXAMPLES:

  # Start with the default engine
  praxis node start

  # Start a specific version
  praxis node start v0.34.19`,
		Args:         cobra.MaximumNArgs(1),
		RunE:         runStart,
		SilenceUsage: true,
	}
}

func runStart(_ *cobra.Command, args []string) error {
	var (
		binaryPath string
		version    string
		err        error
	)

	if len(args) > 0 {
		version = args[0]
		if !strings.HasPrefix(version, "v") {
			version = "v" + version
		}
		binaryPath, err = binutils.SetupEngine(app, version)
		if err != nil {
			return err
		}
	} else if binaryPath = binutils.FindEngineBinary(app); binaryPath != "" {
		version = versionForBinary(binaryPath)
	} else {
		version, err = dependencies.ResolveEngineVersion(app)
		if err != nil {
			return err
		}
		binaryPath, err = binutils.SetupEngine(app, version)
		if err != nil {
			return err
		}
	}

	if err := binutils.StartEngineProcess(app, version, binaryPath); err != nil {
		return err
	}

	ux.Logger.GreenCheckmarkToUser("Engine node started (%s)", version)
	ux.Logger.PrintToUser("Logs: %s", app.GetEngineLogPath())
	ux.Logger.PrintToUser("Use 'praxis node status' to check on it, 'praxis node stop' to stop it.")
	return nil
}

// versionForBinary labels a binary found outside the CLI's own install
// tree as external; installed binaries are labeled by their version
// directory.
func versionForBinary(binaryPath string) string {
	enginesDir := app.GetEnginesDir()
	if strings.HasPrefix(binaryPath, enginesDir+string(os.PathSeparator)) {
		return filepath.Base(filepath.Dir(binaryPath))
	}
	return "external"
}
