// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package binutils

import (
	"fmt"
	"strings"

	"github.com/praxislabs/cli/pkg/constants"
)

const (
	linux  = "linux"
	darwin = "darwin"

	amd64 = "amd64"
	arm64 = "arm64"

	zipExtension = "zip"
	tarExtension = "tar.gz"
)

// GithubDownloader knows the release URL scheme of a binary hosted on
// GitHub releases.
type GithubDownloader interface {
	GetDownloadURL(version string, installer Installer) (string, string, error)
}

type engineDownloader struct{}

var _ GithubDownloader = (*engineDownloader)(nil)

func GetGithubLatestReleaseURL(org, repo string) string {
	return "https://api.github.com/repos/" + org + "/" + repo + "/releases/latest"
}

func GetGithubReleasesURL(org, repo string) string {
	return "https://api.github.com/repos/" + org + "/" + repo + "/releases"
}

func NewEngineDownloader() GithubDownloader {
	return &engineDownloader{}
}

func (engineDownloader) GetDownloadURL(version string, installer Installer) (string, string, error) {
	// NOTE: if any of the underlying URLs change (github changes, release file names, etc.) this fails
	goarch, goos := installer.GetArch()

	// anything that is not amd64 gets the arm64 archive
	arch := arm64
	if goarch == amd64 {
		arch = amd64
	}

	var engineURL string
	var ext string

	switch goos {
	case linux:
		engineURL = fmt.Sprintf(
			"https://github.com/%s/%s/releases/download/%s/%s_%s_linux_%s.tar.gz",
			constants.EngineOrg,
			constants.EngineRepo,
			version,
			constants.EngineBinaryName,
			strings.TrimPrefix(version, "v"), // release file names omit the v
			arch,
		)
		ext = tarExtension
	case darwin:
		engineURL = fmt.Sprintf(
			"https://github.com/%s/%s/releases/download/%s/%s_%s_darwin_%s.tar.gz",
			constants.EngineOrg,
			constants.EngineRepo,
			version,
			constants.EngineBinaryName,
			strings.TrimPrefix(version, "v"),
			arch,
		)
		ext = tarExtension
	default:
		return "", "", fmt.Errorf("OS not supported: %s", goos)
	}

	return engineURL, ext, nil
}
