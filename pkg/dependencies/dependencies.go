// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package dependencies

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"golang.org/x/mod/semver"

	"github.com/praxislabs/cli/pkg/application"
	"github.com/praxislabs/cli/pkg/binutils"
	"github.com/praxislabs/cli/pkg/constants"
	"github.com/praxislabs/cli/pkg/models"
	"github.com/praxislabs/cli/pkg/ux"
)

var ErrNoEngineVersion = errors.New("unable to resolve an engine version")

// DefaultVersionMap provides fallback version info when both the remote
// fetch and the local versions file fail.
var DefaultVersionMap = models.VersionMap{
	Engine: models.EngineVersions{
		LatestVersion:  constants.DefaultEngineVersion,
		MinimumVersion: "v0.34.0",
	},
}

// resolveVersionMap loads versions.json: remote URL first, then the
// local copy under the base dir, then the embedded default.
func resolveVersionMap(app *application.Praxis) models.VersionMap {
	versionBytes, err := app.Downloader.Download(constants.VersionsURL)
	if err != nil {
		versionBytes, err = os.ReadFile(app.GetVersionsFilePath())
		if err != nil {
			ux.Logger.PrintToUser("Using embedded engine versions (remote fetch failed)")
			return DefaultVersionMap
		}
	}

	var parsed models.VersionMap
	if err := json.Unmarshal(versionBytes, &parsed); err != nil {
		ux.Logger.PrintToUser("Using embedded engine versions (parse error)")
		return DefaultVersionMap
	}
	if parsed.Engine.LatestVersion == "" {
		return DefaultVersionMap
	}
	return parsed
}

// ResolveEngineVersion returns the engine version a plain install gets.
func ResolveEngineVersion(app *application.Praxis) (string, error) {
	versionMap := resolveVersionMap(app)
	if versionMap.Engine.LatestVersion == "" {
		return "", ErrNoEngineVersion
	}
	return versionMap.Engine.LatestVersion, nil
}

// CheckVersionIsOverMin rejects engine versions older than the pinned
// minimum. An empty minimum accepts everything.
func CheckVersionIsOverMin(app *application.Praxis, version string) error {
	versionMap := resolveVersionMap(app)
	minVersion := versionMap.Engine.MinimumVersion
	if minVersion == "" {
		return nil
	}
	if semver.Compare(version, minVersion) == -1 {
		return fmt.Errorf("minimum engine version supported is %s, current version provided is %s", minVersion, version)
	}
	return nil
}

// EngineVersionSettings collects the version-selection flags of the
// install command.
type EngineVersionSettings struct {
	UseCustomVersion           string
	UseLatestReleaseVersion    bool
	UseLatestPreReleaseVersion bool
}

// GetEngineVersion decides which engine version to install. Flags win;
// without flags the user is prompted to choose between the pinned
// version, the latest GitHub release, the latest pre-release, or a
// custom version string.
func GetEngineVersion(app *application.Praxis, settings EngineVersionSettings) (string, error) {
	if settings.UseCustomVersion != "" {
		if !semver.IsValid(settings.UseCustomVersion) {
			return "", fmt.Errorf("invalid version %q: must be a semantic version like %s", settings.UseCustomVersion, constants.DefaultEngineVersion)
		}
		if err := CheckVersionIsOverMin(app, settings.UseCustomVersion); err != nil {
			return "", err
		}
		return settings.UseCustomVersion, nil
	}

	switch {
	case settings.UseLatestReleaseVersion:
		return app.Downloader.GetLatestReleaseVersion(
			binutils.GetGithubLatestReleaseURL(constants.EngineOrg, constants.EngineRepo),
		)
	case settings.UseLatestPreReleaseVersion:
		return app.Downloader.GetLatestPreReleaseVersion(
			binutils.GetGithubReleasesURL(constants.EngineOrg, constants.EngineRepo),
		)
	}

	return promptEngineVersionChoice(app)
}

// promptEngineVersionChoice asks which engine version to install when
// no version flag was given.
func promptEngineVersionChoice(app *application.Praxis) (string, error) {
	pinnedVersion, err := ResolveEngineVersion(app)
	if err != nil {
		return "", err
	}

	pinnedOption := fmt.Sprintf("Use the supported version (%s)", pinnedVersion)
	latestReleaseOption := "Use the latest release"
	latestPreReleaseOption := "Use the latest pre-release"
	customOption := "Custom"

	choice, err := app.Prompt.CaptureList(
		"Which engine version would you like to install?",
		[]string{pinnedOption, latestReleaseOption, latestPreReleaseOption, customOption},
	)
	if err != nil {
		return "", err
	}

	switch choice {
	case pinnedOption:
		return pinnedVersion, nil
	case latestReleaseOption:
		return app.Downloader.GetLatestReleaseVersion(
			binutils.GetGithubLatestReleaseURL(constants.EngineOrg, constants.EngineRepo),
		)
	case latestPreReleaseOption:
		return app.Downloader.GetLatestPreReleaseVersion(
			binutils.GetGithubReleasesURL(constants.EngineOrg, constants.EngineRepo),
		)
	default:
		version, err := app.Prompt.CaptureVersion(
			fmt.Sprintf("Which engine version? (use format %s)", constants.DefaultEngineVersion),
		)
		if err != nil {
			return "", err
		}
		if err := CheckVersionIsOverMin(app, version); err != nil {
			return "", err
		}
		return version, nil
	}
}
