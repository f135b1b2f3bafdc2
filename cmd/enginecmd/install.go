// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package enginecmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/praxislabs/cli/pkg/binutils"
	"github.com/praxislabs/cli/pkg/constants"
	"github.com/praxislabs/cli/pkg/dependencies"
	"github.com/praxislabs/cli/pkg/prompts"
	"github.com/praxislabs/cli/pkg/ux"
)

var (
	useLatestRelease    bool
	useLatestPreRelease bool
	forceReinstall      bool
)

func newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install [version]",
		Short: "Install a consensus engine version",
		Long: `Install a consensus engine release for this machine.

The release archive for the host platform is downloaded from GitHub,
extracted, and the binary placed under ~/.praxis/engines/<version>/.

Without a version argument the supported version is installed; pass a
version or one of the flags to pick a different release.

EXAMPLES:

  # Install the supported version
  praxis engine install

  # Install a specific version
  praxis engine install v0.34.19

  # Install the latest release
  praxis engine install --latest`,
		Args:         cobra.MaximumNArgs(1),
		RunE:         runInstall,
		SilenceUsage: true,
	}

	cmd.Flags().BoolVar(&useLatestRelease, "latest", false, "install the latest engine release")
	cmd.Flags().BoolVar(&useLatestPreRelease, "pre-release", false, "install the latest engine pre-release")
	cmd.Flags().BoolVar(&forceReinstall, "force", false, "reinstall even if the version is already installed")

	return cmd
}

func runInstall(_ *cobra.Command, args []string) error {
	settings := dependencies.EngineVersionSettings{
		UseLatestReleaseVersion:    useLatestRelease,
		UseLatestPreReleaseVersion: useLatestPreRelease,
	}
	if len(args) > 0 {
		version := args[0]
		if !strings.HasPrefix(version, "v") {
			version = "v" + version
		}
		settings.UseCustomVersion = version
	}

	// a bare install defaults to the supported version when prompting
	// is not possible
	var (
		version string
		err     error
	)
	noSelection := settings.UseCustomVersion == "" && !useLatestRelease && !useLatestPreRelease
	if noSelection && !prompts.IsInteractive() {
		version, err = dependencies.ResolveEngineVersion(app)
	} else {
		version, err = dependencies.GetEngineVersion(app, settings)
	}
	if err != nil {
		return err
	}

	binaryPath, err := binutils.InstallEngine(app, version, forceReinstall)
	if err != nil {
		return err
	}

	ux.Logger.GreenCheckmarkToUser("%s %s installed at %s", constants.EngineBinaryName, version, binaryPath)
	return nil
}
