// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package updatecmd implements the CLI self-update. The same check
// runs in the background before most commands, rate-limited through
// the last-actions file.
package updatecmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/kardianos/osext"
	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"

	"github.com/praxislabs/cli/pkg/application"
	"github.com/praxislabs/cli/pkg/binutils"
	"github.com/praxislabs/cli/pkg/constants"
	"github.com/praxislabs/cli/pkg/prompts"
	"github.com/praxislabs/cli/pkg/ux"
)

var (
	// ErrUserAbortedInstallation is returned when the user declines the
	// offered update; the background check treats it as a skip.
	ErrUserAbortedInstallation = errors.New("user canceled installation")
	// ErrNoVersion is returned when the running binary carries no
	// version information to compare against.
	ErrNoVersion = errors.New("failed to find current version - aborting update check")

	app            *application.Praxis
	currentVersion string
)

// NewCmd creates and returns the update command
func NewCmd(injectedApp *application.Praxis, version string) *cobra.Command {
	app = injectedApp
	currentVersion = version

	return &cobra.Command{
		Use:   "update",
		Short: "Check for the latest CLI version and install it",
		Long: `Check GitHub for the latest Praxis CLI release and offer to
install it over the running binary.

The same check runs automatically before most commands, at most once
per day; disable it with 'praxis config update disable' or the
--skip-update-check flag.

EXAMPLES:

  praxis update`,
		Args:         cobra.NoArgs,
		RunE:         runUpdate,
		SilenceUsage: true,
	}
}

func runUpdate(cmd *cobra.Command, _ []string) error {
	err := Update(cmd, true, currentVersion)
	if errors.Is(err, ErrUserAbortedInstallation) {
		return nil
	}
	return err
}

// Update checks for a newer CLI release and installs it on
// confirmation. With isUserCalled false (the background check before a
// command) network failures are swallowed and declining records a
// 24 hour skip.
func Update(_ *cobra.Command, isUserCalled bool, version string) error {
	if version == "" {
		return ErrNoVersion
	}
	if !strings.HasPrefix(version, "v") {
		version = "v" + version
	}

	latest, err := app.Downloader.GetLatestReleaseVersion(
		binutils.GetGithubLatestReleaseURL(constants.CLIOrg, constants.CLIRepoName),
	)
	if err != nil {
		if isUserCalled {
			return fmt.Errorf("failed to check for the latest version: %w", err)
		}
		// a background check must never block the actual command
		app.Log.Warnw("failed to check for the latest CLI version", "error", err)
		return nil
	}

	if semver.Compare(latest, version) <= 0 {
		recordCheck(false)
		if isUserCalled {
			ux.Logger.PrintToUser("Praxis CLI %s is the latest version", version)
		}
		return nil
	}

	ux.Logger.PrintToUser("A new Praxis CLI version is available: %s (you are running %s)", latest, version)

	if !prompts.IsInteractive() {
		ux.Logger.PrintToUser("Run 'praxis update' to install it.")
		// don't repeat the notice on every command for a day
		recordCheck(!isUserCalled)
		return nil
	}

	yes, err := app.Prompt.CaptureYesNo("Do you want to install it now?")
	if err != nil {
		return err
	}
	if !yes {
		recordCheck(true)
		ux.Logger.PrintToUser("Skipping, you won't be asked again for 24 hours. Run 'praxis update' anytime.")
		return ErrUserAbortedInstallation
	}

	if err := installRelease(latest); err != nil {
		return err
	}
	recordCheck(false)
	return nil
}

// installRelease replaces the running binary with the given release,
// piping the official install script into sh.
func installRelease(version string) error {
	exeDir, err := osext.ExecutableFolder()
	if err != nil {
		return fmt.Errorf("failed locating the running binary: %w", err)
	}

	ux.Logger.PrintToUser("Installing Praxis CLI %s to %s...", version, exeDir)

	downloadCmd := exec.Command("curl", "-sSfL", constants.CLIInstallURL)
	installCmd := exec.Command("sh", "-s", "--", "-b", exeDir, version)

	installCmd.Stdin, err = downloadCmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("failed to setup pipe: %w", err)
	}
	installCmd.Stdout = os.Stdout
	installCmd.Stderr = os.Stderr

	if err := installCmd.Start(); err != nil {
		return fmt.Errorf("failed to start install: %w", err)
	}
	if err := downloadCmd.Run(); err != nil {
		return fmt.Errorf("failed to download install script: %w", err)
	}
	if err := installCmd.Wait(); err != nil {
		return fmt.Errorf("failed to install: %w", err)
	}

	ux.Logger.GreenCheckmarkToUser("Installed Praxis CLI %s, re-run your command to use it", version)
	return nil
}

// recordCheck stamps the last-actions file so the background check
// stays rate-limited. With skipped set, the notice is also muted for
// 24 hours.
func recordCheck(skipped bool) {
	acts, err := app.ReadLastActionsFile()
	if err != nil {
		acts = &application.LastActions{}
	}
	acts.LastUpdateCheck = time.Now()
	if skipped {
		acts.LastSkipCheck = time.Now()
	}
	app.WriteLastActionsFile(acts)
}
