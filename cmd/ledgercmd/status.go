// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledgercmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/praxislabs/cli/pkg/ledger"
	"github.com/praxislabs/cli/pkg/status"
)

var (
	statusJSON bool
	statusYAML bool
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status [name]...",
		Short: "Probe profile endpoints",
		Long: `Probe the endpoints of connection profiles over JSON-RPC.

Every profile is probed concurrently for reachability, reported chain
id and current block height. A probe failure never fails the run; it
shows up in the report. An endpoint reporting a chain id different
from the profile's pin is flagged as a mismatch.

Without arguments every profile is probed, built-ins included.

EXAMPLES:

  # Probe everything
  praxis ledger status

  # Probe two profiles, machine readable
  praxis ledger status mychain staging --json`,
		RunE:         runStatus,
		SilenceUsage: true,
	}

	cmd.Flags().BoolVar(&statusJSON, "json", false, "print the report as JSON")
	cmd.Flags().BoolVar(&statusYAML, "yaml", false, "print the report as YAML")

	return cmd
}

func runStatus(cmd *cobra.Command, args []string) error {
	if statusJSON && statusYAML {
		return fmt.Errorf("--json and --yaml are mutually exclusive")
	}

	var (
		profiles []ledger.Profile
		err      error
	)
	if len(args) == 0 {
		profiles, err = app.AllProfiles()
		if err != nil {
			return err
		}
	} else {
		for _, name := range args {
			profile, err := app.ResolveProfile(name)
			if err != nil {
				return err
			}
			profiles = append(profiles, profile)
		}
	}

	// live progress goes to stderr so the report stays clean on stdout
	tracker := status.NewProgressTracker(os.Stderr)
	machineReadable := statusJSON || statusYAML
	step := fmt.Sprintf("Probing %d profile(s)", len(profiles))
	if !machineReadable {
		tracker.StartStep(step)
	}

	report, err := status.NewService().CheckProfiles(cmd.Context(), profiles)
	if err != nil {
		if !machineReadable {
			tracker.FailStep(step, err)
		}
		return err
	}
	if !machineReadable {
		tracker.CompleteStep(step)
		for _, p := range report.Profiles {
			if p.ChainIDMismatch {
				tracker.PrintWarning(fmt.Sprintf(
					"%s: endpoint reports chain id %d, profile pins %d", p.Profile, p.ChainID, profileChainID(profiles, p.Profile)))
			}
		}
	}

	formatter := status.NewStatusFormatter(os.Stdout)
	switch {
	case statusJSON:
		return formatter.FormatJSON(report)
	case statusYAML:
		return formatter.FormatYAML(report)
	default:
		formatter.FormatTable(report)
		formatter.FormatSummary(report)
		return nil
	}
}

func profileChainID(profiles []ledger.Profile, name string) int64 {
	for _, profile := range profiles {
		if profile.Name == name {
			return profile.ChainID
		}
	}
	return 0
}
