// Code generated manually for testing. DO NOT EDIT.

package mocks

import (
	"github.com/stretchr/testify/mock"
)

// Downloader is a mock implementation of application.Downloader
type Downloader struct {
	mock.Mock
}

func (m *Downloader) Download(url string) ([]byte, error) {
	args := m.Called(url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *Downloader) DownloadWithProgress(url string) ([]byte, error) {
	args := m.Called(url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *Downloader) GetLatestReleaseVersion(releaseURL string) (string, error) {
	args := m.Called(releaseURL)
	return args.String(0), args.Error(1)
}

func (m *Downloader) GetLatestPreReleaseVersion(releasesURL string) (string, error) {
	args := m.Called(releasesURL)
	return args.String(0), args.Error(1)
}
