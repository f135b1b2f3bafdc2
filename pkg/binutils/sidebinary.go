// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package binutils

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/kardianos/osext"
	"github.com/praxislabs/cli/pkg/application"
	"github.com/praxislabs/cli/pkg/constants"
	"github.com/praxislabs/cli/pkg/utils"
)

// FindEngineBinary locates an engine binary outside the managed
// install tree, for users who bring their own build. Search order:
// explicit env/config override, next to the CLI executable, then PATH.
// An empty result means nothing was found.
func FindEngineBinary(app *application.Praxis) string {
	if path := os.Getenv(constants.EnvEnginePath); path != "" {
		if utils.IsExecutable(path) {
			return path
		}
	}
	if app.Conf != nil {
		if path := app.Conf.GetConfigStringValue(constants.ConfigEnginePathKey); path != "" {
			if utils.IsExecutable(path) {
				return path
			}
		}
	}

	// side by side with the CLI binary itself
	if folderPath, err := osext.ExecutableFolder(); err == nil {
		candidates := []string{
			filepath.Join(folderPath, constants.EngineBinaryName),
			filepath.Join(filepath.Dir(folderPath), constants.EngineBinaryName),
		}
		for _, candidate := range candidates {
			if utils.IsExecutable(candidate) {
				return candidate
			}
		}
	}

	if path, err := exec.LookPath(constants.EngineBinaryName); err == nil {
		return path
	}
	return ""
}
