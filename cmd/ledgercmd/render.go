// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledgercmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/praxislabs/cli/pkg/constants"
	"github.com/praxislabs/cli/pkg/ledger"
	"github.com/praxislabs/cli/pkg/ux"
)

const (
	formatDoc    = "doc"
	formatKwargs = "kwargs"
)

var (
	renderFormat   string
	renderResolved bool
	renderOutput   string
	renderSets     []string
)

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <name>",
		Short: "Render a profile as YAML",
		Long: `Render a connection profile as the YAML consumers take.

Formats:

  doc     the connection document agents carry; address and chain id
          are environment placeholders like
          ${LEDGER_ADDRESS:str:http://localhost:8545} unless
          --resolved evaluates them against the current environment
  kwargs  the keyword-argument dictionary test harnesses take, with
          the full gas price strategy payloads inlined

Overrides passed with --set patch the rendered tree before printing,
the same way e2e test configs are patched.

EXAMPLES:

  # The document with placeholders
  praxis ledger render mychain

  # Resolved against the current environment
  praxis ledger render mychain --resolved

  # Harness kwargs with a patched chain id, written to a file
  praxis ledger render mychain --format kwargs \
    --set chain_id=1963 --output kwargs.yaml`,
		Args:         cobra.ExactArgs(1),
		RunE:         runRender,
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&renderFormat, "format", formatDoc, "output format (doc|kwargs)")
	cmd.Flags().BoolVar(&renderResolved, "resolved", false, "resolve environment placeholders instead of emitting them")
	cmd.Flags().StringVarP(&renderOutput, "output", "o", "", "write to a file instead of stdout")
	cmd.Flags().StringArrayVar(&renderSets, "set", nil, "override a field by dotted path, e.g. --set config.ledger_apis.ethereum.chain_id=1963 (repeatable)")

	return cmd
}

func runRender(_ *cobra.Command, args []string) error {
	profile, err := app.ResolveProfile(args[0])
	if err != nil {
		return err
	}

	var data []byte
	switch renderFormat {
	case formatDoc:
		data, err = ledger.RenderConnectionYAML(profile, renderResolved)
	case formatKwargs:
		data, err = ledger.RenderTestKwargsYAML(profile)
	default:
		return fmt.Errorf("unknown format %q, supported: %s, %s", renderFormat, formatDoc, formatKwargs)
	}
	if err != nil {
		return err
	}

	if len(renderSets) > 0 {
		data, err = applyRenderOverrides(data, renderSets)
		if err != nil {
			return err
		}
	}

	if renderOutput == "" {
		fmt.Print(string(data))
		return nil
	}
	if err := os.WriteFile(renderOutput, data, constants.WriteReadReadPerms); err != nil {
		return fmt.Errorf("failed writing %s: %w", renderOutput, err)
	}
	ux.Logger.GreenCheckmarkToUser("Wrote %s", renderOutput)
	return nil
}

// applyRenderOverrides patches the rendered YAML tree with the --set
// overrides and re-marshals it.
func applyRenderOverrides(data []byte, sets []string) ([]byte, error) {
	overrides := make([]ledger.Override, 0, len(sets))
	for _, s := range sets {
		override, err := ledger.ParseOverride(s)
		if err != nil {
			return nil, err
		}
		overrides = append(overrides, override)
	}

	tree := map[string]interface{}{}
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, err
	}
	if err := ledger.ApplyAll(tree, overrides); err != nil {
		return nil, err
	}
	return yaml.Marshal(tree)
}
