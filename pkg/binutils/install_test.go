// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package binutils

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/praxislabs/cli/internal/mocks"
	"github.com/praxislabs/cli/internal/testutils"
	"github.com/praxislabs/cli/pkg/constants"
	"github.com/praxislabs/cli/pkg/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testVersion = "v0.34.19"

func setupInstallTest(t *testing.T) (*require.Assertions, *mocks.Downloader, string) {
	require := testutils.SetupTest(t)

	// redirect temp dirs so leftover-archive checks see only this test
	scratch := filepath.Join(t.TempDir(), "scratch")
	require.NoError(os.MkdirAll(scratch, 0o755))
	t.Setenv("TMPDIR", scratch)

	return require, &mocks.Downloader{}, scratch
}

func leftoverTmpDirs(require *require.Assertions, scratch string) []string {
	matches, err := filepath.Glob(filepath.Join(scratch, "praxis-engine-install-*"))
	require.NoError(err)
	return matches
}

func TestInstallEngineSuccess(t *testing.T) {
	require, downloader, scratch := setupInstallTest(t)
	app := testutils.SetupTestInTempDir(t)
	app.Downloader = downloader

	archive := testutils.BuildEngineTarGz(require, constants.EngineBinaryName, []byte("#!/bin/sh\necho engine\n"))
	downloader.On("DownloadWithProgress", mock.Anything).Return(archive, nil).Once()

	binaryPath, err := installEngine(app, testVersion, false, NewEngineDownloader(), fakeInstaller{arch: "amd64", os: "linux"})
	require.NoError(err)
	require.Equal(app.GetEngineBinaryPath(testVersion), binaryPath)
	require.True(utils.IsExecutable(binaryPath))

	// the downloaded archive is removed after a successful install
	require.Empty(leftoverTmpDirs(require, scratch))
	downloader.AssertExpectations(t)
}

func TestInstallEngineIdempotent(t *testing.T) {
	require, downloader, _ := setupInstallTest(t)
	app := testutils.SetupTestInTempDir(t)
	app.Downloader = downloader

	archive := testutils.BuildEngineTarGz(require, constants.EngineBinaryName, []byte("engine"))
	downloader.On("DownloadWithProgress", mock.Anything).Return(archive, nil).Once()

	first, err := installEngine(app, testVersion, false, NewEngineDownloader(), fakeInstaller{arch: "amd64", os: "linux"})
	require.NoError(err)

	// second run reports success without downloading again
	second, err := installEngine(app, testVersion, false, NewEngineDownloader(), fakeInstaller{arch: "amd64", os: "linux"})
	require.NoError(err)
	require.Equal(first, second)
	downloader.AssertNumberOfCalls(t, "DownloadWithProgress", 1)
}

func TestInstallEngineForceReinstalls(t *testing.T) {
	require, downloader, _ := setupInstallTest(t)
	app := testutils.SetupTestInTempDir(t)
	app.Downloader = downloader

	archive := testutils.BuildEngineTarGz(require, constants.EngineBinaryName, []byte("engine"))
	downloader.On("DownloadWithProgress", mock.Anything).Return(archive, nil).Twice()

	_, err := installEngine(app, testVersion, false, NewEngineDownloader(), fakeInstaller{arch: "amd64", os: "linux"})
	require.NoError(err)
	_, err = installEngine(app, testVersion, true, NewEngineDownloader(), fakeInstaller{arch: "amd64", os: "linux"})
	require.NoError(err)
	downloader.AssertNumberOfCalls(t, "DownloadWithProgress", 2)
}

func TestInstallEngineDownloadFailure(t *testing.T) {
	require, downloader, scratch := setupInstallTest(t)
	app := testutils.SetupTestInTempDir(t)
	app.Downloader = downloader

	downloader.On("DownloadWithProgress", mock.Anything).Return(nil, fmt.Errorf("unexpected http status code: 404")).Once()

	_, err := installEngine(app, testVersion, false, NewEngineDownloader(), fakeInstaller{arch: "amd64", os: "linux"})
	require.ErrorContains(err, "failed downloading engine release")

	// no binary is installed on failure
	require.False(app.EngineIsInstalled(testVersion))
	require.Empty(leftoverTmpDirs(require, scratch))
}

func TestInstallEngineCorruptArchive(t *testing.T) {
	require, downloader, scratch := setupInstallTest(t)
	app := testutils.SetupTestInTempDir(t)
	app.Downloader = downloader

	downloader.On("DownloadWithProgress", mock.Anything).Return([]byte("definitely not a tarball"), nil).Once()

	_, err := installEngine(app, testVersion, false, NewEngineDownloader(), fakeInstaller{arch: "amd64", os: "linux"})
	require.ErrorContains(err, "failed extracting engine archive")

	// even a corrupt archive is cleaned up, and nothing is installed
	require.False(app.EngineIsInstalled(testVersion))
	require.Empty(leftoverTmpDirs(require, scratch))
}

func TestInstallEngineArchiveWithoutBinary(t *testing.T) {
	require, downloader, scratch := setupInstallTest(t)
	app := testutils.SetupTestInTempDir(t)
	app.Downloader = downloader

	// a valid archive whose only entry is not executable
	archiveDir := t.TempDir()
	require.NoError(os.WriteFile(filepath.Join(archiveDir, "README.md"), []byte("docs"), 0o644))
	archivePath := filepath.Join(t.TempDir(), "no-binary.tar.gz")
	testutils.CreateTarGz(require, archiveDir, archivePath, true)
	archive, err := os.ReadFile(archivePath)
	require.NoError(err)

	downloader.On("DownloadWithProgress", mock.Anything).Return(archive, nil).Once()

	_, err = installEngine(app, testVersion, false, NewEngineDownloader(), fakeInstaller{arch: "amd64", os: "linux"})
	require.ErrorContains(err, "no executable binary found in archive")
	require.False(app.EngineIsInstalled(testVersion))
	require.Empty(leftoverTmpDirs(require, scratch))
}
