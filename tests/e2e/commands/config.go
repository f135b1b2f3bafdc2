// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commands

import (
	"os/exec"

	"github.com/praxislabs/cli/pkg/constants"
)

/* #nosec G204 */
func ConfigMetrics(setting string) (string, error) {
	cmd := exec.Command(
		CLIBinary,
		ConfigCmd,
		"metrics",
		setting,
		"--"+constants.SkipUpdateFlag,
	)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

/* #nosec G204 */
func ConfigUpdate(setting string) (string, error) {
	cmd := exec.Command(
		CLIBinary,
		ConfigCmd,
		"update",
		setting,
		"--"+constants.SkipUpdateFlag,
	)
	out, err := cmd.CombinedOutput()
	return string(out), err
}
