// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledgercmd

import (
	"github.com/spf13/cobra"

	"github.com/praxislabs/cli/pkg/ledger"
	"github.com/praxislabs/cli/pkg/prompts"
	"github.com/praxislabs/cli/pkg/ux"
)

var (
	overrideSets   []string
	overrideOutput string
)

func newOverrideCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "override <config-file>",
		Short: "Patch a YAML config with dotted-path overrides",
		Long: `Patch a YAML configuration file with dotted-path overrides.

Each override addresses one field as 'dotted.path=value'; intermediate
mappings are created as needed. Values are typed by shape: ints,
floats and bools convert, everything else stays a string. This is the
mechanism e2e tests use to point a packaged agent config at a test
ledger.

With no --set flags on a TTY, overrides are collected interactively.

EXAMPLES:

  # Point an agent config at a local ledger, in place
  praxis ledger override agent.yaml \
    --set vendor.connections.ledger.config.ledger_apis.ethereum.address=http://localhost:8545 \
    --set vendor.connections.ledger.config.ledger_apis.ethereum.chain_id=31337

  # Leave the original untouched
  praxis ledger override agent.yaml --set some.path=value --output patched.yaml`,
		Args:         cobra.ExactArgs(1),
		RunE:         runOverride,
		SilenceUsage: true,
	}

	cmd.Flags().StringArrayVar(&overrideSets, "set", nil, "override as dotted.path=value (repeatable)")
	cmd.Flags().StringVarP(&overrideOutput, "output", "o", "", "write to a file instead of patching in place")

	return cmd
}

func runOverride(cmd *cobra.Command, args []string) error {
	path := args[0]

	sets := overrideSets
	if len(sets) == 0 {
		if !prompts.IsInteractive() {
			return prompts.MissingError(cmd.CommandPath(), []prompts.MissingOpt{{
				Flag: "--set",
				Note: "at least one dotted.path=value override",
			}})
		}
		collected, cancelled, err := prompts.CaptureListDecision(
			app.Prompt,
			"Build the override list:",
			app.Prompt.CaptureString,
			"Override (dotted.path=value)",
			"override",
			"Overrides address one field each, e.g. config.ledger_apis.ethereum.chain_id=31337",
		)
		if err != nil {
			return err
		}
		if cancelled || len(collected) == 0 {
			ux.Logger.PrintToUser("Nothing to apply")
			return nil
		}
		sets = collected
	}

	overrides := make([]ledger.Override, 0, len(sets))
	for _, s := range sets {
		override, err := ledger.ParseOverride(s)
		if err != nil {
			return err
		}
		overrides = append(overrides, override)
	}

	if err := ledger.ApplyToFile(path, overrideOutput, overrides); err != nil {
		return err
	}

	target := path
	if overrideOutput != "" {
		target = overrideOutput
	}
	ux.Logger.GreenCheckmarkToUser("Applied %d override(s) to %s", len(overrides), target)
	return nil
}
