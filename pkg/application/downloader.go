// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	ansi "github.com/k0kubun/go-ansi"
	"github.com/mattn/go-isatty"
	"github.com/praxislabs/cli/pkg/constants"
	"github.com/schollz/progressbar/v3"
)

// Downloader fetches release artifacts and GitHub release metadata.
// Commands talk to it through the app so tests can substitute a mock.
type Downloader interface {
	Download(url string) ([]byte, error)
	DownloadWithProgress(url string) ([]byte, error)
	GetLatestReleaseVersion(releaseURL string) (string, error)
	GetLatestPreReleaseVersion(releasesURL string) (string, error)
}

type downloader struct{}

func NewDownloader() Downloader {
	return &downloader{}
}

type githubRelease struct {
	TagName    string `json:"tag_name"`
	Prerelease bool   `json:"prerelease"`
}

func (downloader) Download(url string) ([]byte, error) {
	resp, err := doRequest(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

// DownloadWithProgress behaves like Download but renders a byte
// progress bar when stdout is a terminal.
func (downloader) DownloadWithProgress(url string) ([]byte, error) {
	resp, err := doRequest(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return io.ReadAll(resp.Body)
	}

	bar := progressbar.NewOptions64(
		resp.ContentLength,
		progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription("[cyan]Downloading...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionClearOnFinish(),
	)
	var buf bytes.Buffer
	if _, err := io.Copy(io.MultiWriter(&buf, bar), resp.Body); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GetLatestReleaseVersion fetches the tag of the latest published
// release from a GitHub releases/latest API URL.
func (d downloader) GetLatestReleaseVersion(releaseURL string) (string, error) {
	data, err := d.Download(releaseURL)
	if err != nil {
		return "", err
	}
	var release githubRelease
	if err := json.Unmarshal(data, &release); err != nil {
		return "", fmt.Errorf("failed parsing release info: %w", err)
	}
	if release.TagName == "" {
		return "", fmt.Errorf("no release tag found at %s", releaseURL)
	}
	return release.TagName, nil
}

// GetLatestPreReleaseVersion fetches the newest pre-release tag from a
// GitHub releases API URL, falling back to the newest release when no
// pre-release exists.
func (d downloader) GetLatestPreReleaseVersion(releasesURL string) (string, error) {
	data, err := d.Download(releasesURL)
	if err != nil {
		return "", err
	}
	var releases []githubRelease
	if err := json.Unmarshal(data, &releases); err != nil {
		return "", fmt.Errorf("failed parsing releases info: %w", err)
	}
	if len(releases) == 0 {
		return "", fmt.Errorf("no releases found at %s", releasesURL)
	}
	for _, release := range releases {
		if release.Prerelease {
			return release.TagName, nil
		}
	}
	return releases[0].TagName, nil
}

func doRequest(url string) (*http.Response, error) {
	client := http.Client{Timeout: constants.DownloadTimeout}
	request, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed creating request for %s: %w", url, err)
	}
	// avoids rate limiting on CI
	if token := os.Getenv(constants.GithubAPITokenEnvVarName); token != "" {
		request.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	}
	resp, err := client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("failed downloading %s: %w", url, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("failed downloading %s: unexpected http status code: %d", url, resp.StatusCode)
	}
	return resp, nil
}
