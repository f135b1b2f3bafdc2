// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package migrations

import (
	"github.com/praxislabs/cli/pkg/application"
	"github.com/praxislabs/cli/pkg/ux"
)

const (
	runMessage       = "Praxis needs to update some of your existing files..."
	endMessage       = "File update completed"
	failedEndMessage = "File update failed"
)

type migrationFunc func(*application.Praxis, *migrationRunner) error

type migrationRunner struct {
	showMsg    bool
	running    bool
	migrations map[int]migrationFunc
}

// RunMigrations applies all pending file migrations, in order.
func RunMigrations(app *application.Praxis) error {
	runner := &migrationRunner{
		showMsg: true,
		running: false,
		migrations: map[int]migrationFunc{
			0: migrateConnectionsDir,
			1: migrateGasStationKeys,
		},
	}
	return runner.run(app)
}

func (m *migrationRunner) run(app *application.Praxis) error {
	// run in deterministic order
	for i := 0; i < len(m.migrations); i++ {
		if err := m.migrations[i](app, m); err != nil {
			if m.running {
				ux.Logger.PrintToUser(failedEndMessage)
			}
			return err
		}
	}
	if m.running {
		ux.Logger.PrintToUser(endMessage)
	}
	return nil
}

// printMigrationMessage prints the run notice once, before the first
// migration that actually changes something.
func (m *migrationRunner) printMigrationMessage() {
	if m.showMsg && !m.running {
		ux.Logger.PrintToUser(runMessage)
		m.running = true
	}
}
