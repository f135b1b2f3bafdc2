// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"os"
	"os/user"
	"path/filepath"

	"github.com/praxislabs/cli/pkg/constants"
)

// LedgerFilePath returns where the CLI persists the named user
// profile.
func LedgerFilePath(name string) (string, error) {
	usr, err := user.Current()
	if err != nil {
		return "", err
	}
	return filepath.Join(usr.HomeDir, constants.BaseDirName, constants.LedgersDir, name+constants.ProfileSuffix), nil
}

// DeleteLedgerFile removes the named user profile; a missing file is
// fine, suites call this in cleanup.
func DeleteLedgerFile(name string) error {
	path, err := LedgerFilePath(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// FileExists reports whether the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
