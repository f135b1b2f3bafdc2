// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package migrations

import (
	"os"
	"path/filepath"

	"github.com/praxislabs/cli/pkg/application"
)

const oldConnectionsDir = "connections"

// Early releases stored profiles under ~/.praxis/connections. The
// directory moved to ~/.praxis/ledgers when profiles grew beyond bare
// connection documents.
func migrateConnectionsDir(app *application.Praxis, runner *migrationRunner) error {
	oldDir := filepath.Join(app.GetBaseDir(), oldConnectionsDir)
	info, err := os.Stat(oldDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if !info.IsDir() {
		return nil
	}

	newDir := app.GetLedgersDir()
	entries, err := os.ReadDir(newDir)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	if len(entries) > 0 {
		// both directories are populated, do not clobber the new one
		return nil
	}

	runner.printMigrationMessage()
	if err := os.RemoveAll(newDir); err != nil {
		return err
	}
	return os.Rename(oldDir, newDir)
}
