// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"encoding/json"
	"path/filepath"
	"time"

	"github.com/praxislabs/cli/pkg/constants"
)

// LastActions records timestamps of user actions the CLI rate-limits,
// such as the daily update check.
type LastActions struct {
	// timestamp of the last time the user was asked to update
	// but said to skip
	LastSkipCheck time.Time
	// timestamp of the last time the CLI looked for a new release
	LastUpdateCheck time.Time
}

// WriteLastActionsFile writes the last-actions file. Failures are
// logged, not returned; the file is a convenience cache.
func (app *Praxis) WriteLastActionsFile(acts *LastActions) {
	data, err := json.Marshal(acts)
	if err != nil {
		app.Log.Warnw("failed marshaling last-actions", "error", err)
		return
	}
	if err := app.writeFile(filepath.Join(app.baseDir, constants.LastFileName), data); err != nil {
		app.Log.Warnw("failed writing last-actions file", "error", err)
	}
}

// ReadLastActionsFile reads the last-actions file. A missing file
// surfaces as os.ErrNotExist for the caller to treat as first run.
func (app *Praxis) ReadLastActionsFile() (*LastActions, error) {
	data, err := app.readFile(filepath.Join(app.baseDir, constants.LastFileName))
	if err != nil {
		return nil, err
	}
	var acts LastActions
	if err := json.Unmarshal(data, &acts); err != nil {
		return nil, err
	}
	return &acts, nil
}
