// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commands

import (
	"os/exec"

	"github.com/praxislabs/cli/pkg/constants"
)

/* #nosec G204 */
func ConfigureLedger(name string, network string, extraArgs ...string) (string, error) {
	args := []string{
		LedgerCmd,
		"configure",
		name,
		"--network",
		network,
		"--non-interactive",
		"--" + constants.SkipUpdateFlag,
	}
	args = append(args, extraArgs...)
	cmd := exec.Command(CLIBinary, args...)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

/* #nosec G204 */
func RenderLedger(name string, extraArgs ...string) (string, error) {
	args := []string{
		LedgerCmd,
		"render",
		name,
		"--" + constants.SkipUpdateFlag,
	}
	args = append(args, extraArgs...)
	cmd := exec.Command(CLIBinary, args...)
	out, err := cmd.Output()
	return string(out), err
}

/* #nosec G204 */
func ListLedgers() (string, error) {
	cmd := exec.Command(
		CLIBinary,
		LedgerCmd,
		"list",
		"--"+constants.SkipUpdateFlag,
	)
	out, err := cmd.Output()
	return string(out), err
}

/* #nosec G204 */
func DescribeLedger(name string) (string, error) {
	cmd := exec.Command(
		CLIBinary,
		LedgerCmd,
		"describe",
		name,
		"--"+constants.SkipUpdateFlag,
	)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

/* #nosec G204 */
func DeleteLedger(name string) (string, error) {
	cmd := exec.Command(
		CLIBinary,
		LedgerCmd,
		"delete",
		name,
		"--non-interactive",
		"--"+constants.SkipUpdateFlag,
	)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

/* #nosec G204 */
func OverrideConfig(path string, sets []string, outPath string) (string, error) {
	args := []string{
		LedgerCmd,
		"override",
		path,
		"--non-interactive",
		"--" + constants.SkipUpdateFlag,
	}
	for _, set := range sets {
		args = append(args, "--set", set)
	}
	if outPath != "" {
		args = append(args, "--output", outPath)
	}
	cmd := exec.Command(CLIBinary, args...)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

/* #nosec G204 */
func LedgerStatus(names []string, extraArgs ...string) (string, error) {
	args := []string{
		LedgerCmd,
		"status",
		"--" + constants.SkipUpdateFlag,
	}
	args = append(args, names...)
	args = append(args, extraArgs...)
	cmd := exec.Command(CLIBinary, args...)
	out, err := cmd.Output()
	return string(out), err
}
