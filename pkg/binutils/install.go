// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package binutils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/praxislabs/cli/pkg/application"
	"github.com/praxislabs/cli/pkg/constants"
	"github.com/praxislabs/cli/pkg/utils"
	"github.com/praxislabs/cli/pkg/ux"
)

// SetupEngine makes sure the given engine version is installed,
// downloading it when missing, and returns the binary path.
func SetupEngine(app *application.Praxis, version string) (string, error) {
	return InstallEngine(app, version, false)
}

// InstallEngine installs the pinned consensus engine release for the
// host platform. With force set, an existing install is replaced.
func InstallEngine(app *application.Praxis, version string, force bool) (string, error) {
	return installEngine(app, version, force, NewEngineDownloader(), NewInstaller())
}

func installEngine(
	app *application.Praxis,
	version string,
	force bool,
	downloader GithubDownloader,
	installer Installer,
) (string, error) {
	binaryPath := app.GetEngineBinaryPath(version)
	if !force && utils.FileExists(binaryPath) {
		app.Log.Debugw("engine binary already installed, skipping download", "version", version)
		return binaryPath, nil
	}

	url, ext, err := downloader.GetDownloadURL(version, installer)
	if err != nil {
		return "", err
	}
	app.Log.Infow("installing engine", "version", version, "url", url)
	ux.Logger.PrintToUser("Installing %s %s...", constants.EngineBinaryName, version)

	archive, err := app.Downloader.DownloadWithProgress(url)
	if err != nil {
		return "", fmt.Errorf("failed downloading engine release: %w", err)
	}

	tmpDir, err := os.MkdirTemp("", "praxis-engine-install-*")
	if err != nil {
		return "", err
	}
	// the downloaded archive never outlives the command, even when
	// extraction fails
	defer func() { _ = os.RemoveAll(tmpDir) }()

	archivePath := filepath.Join(tmpDir, constants.EngineBinaryName+"."+ext)
	if err := os.WriteFile(archivePath, archive, constants.WriteReadReadPerms); err != nil {
		return "", err
	}

	extractDir := filepath.Join(tmpDir, "extracted")
	if err := ExtractArchive(ext, archivePath, extractDir); err != nil {
		return "", fmt.Errorf("failed extracting engine archive: %w", err)
	}

	extractedBinary, err := findBinary(extractDir, constants.EngineBinaryName)
	if err != nil {
		return "", err
	}

	installDir := app.GetEngineInstallDir(version)
	if err := os.MkdirAll(installDir, constants.DefaultPerms755); err != nil {
		return "", fmt.Errorf("failed creating engine install dir %s: %w", installDir, err)
	}
	if err := CopyFile(extractedBinary, binaryPath); err != nil {
		// no partial installs
		_ = os.RemoveAll(installDir)
		return "", fmt.Errorf("failed installing engine binary: %w", err)
	}

	app.Log.Infow("engine installed", "version", version, "path", binaryPath)
	return binaryPath, nil
}

// findBinary locates the named executable in the extracted archive,
// falling back to the first executable found.
func findBinary(dir string, name string) (string, error) {
	var foundPath string

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if info.Mode()&0o111 == 0 {
			return nil
		}
		if filepath.Base(path) == name {
			foundPath = path
			return filepath.SkipAll
		}
		return nil
	})
	if err != nil && !errors.Is(err, filepath.SkipAll) {
		return "", err
	}

	if foundPath == "" {
		err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				return nil
			}
			if info.Mode()&0o111 != 0 {
				foundPath = path
				return filepath.SkipAll
			}
			return nil
		})
		if err != nil && !errors.Is(err, filepath.SkipAll) {
			return "", err
		}
	}

	if foundPath == "" {
		return "", fmt.Errorf("no executable binary found in archive")
	}

	return foundPath, nil
}
