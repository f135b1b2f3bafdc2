// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commands

import (
	"os/exec"

	"github.com/praxislabs/cli/pkg/constants"
)

/* #nosec G204 */
func ListEngines() (string, error) {
	cmd := exec.Command(
		CLIBinary,
		EngineCmd,
		"list",
		"--"+constants.SkipUpdateFlag,
	)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

/* #nosec G204 */
func InstallEngine(version string) (string, error) {
	cmd := exec.Command(
		CLIBinary,
		EngineCmd,
		"install",
		version,
		"--"+constants.SkipUpdateFlag,
	)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

/* #nosec G204 */
func UseEngine(version string) (string, error) {
	cmd := exec.Command(
		CLIBinary,
		EngineCmd,
		"use",
		version,
		"--"+constants.SkipUpdateFlag,
	)
	out, err := cmd.CombinedOutput()
	return string(out), err
}
