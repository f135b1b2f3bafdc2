// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package enginecmd

import (
	"github.com/spf13/cobra"

	"github.com/praxislabs/cli/pkg/constants"
	"github.com/praxislabs/cli/pkg/ux"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List installed engine versions",
		Long: `List all installed consensus engine versions, newest first.

The default marker shows the version pinned with 'engine use'.

EXAMPLES:

  praxis engine list`,
		Aliases:      []string{"ls"},
		Args:         cobra.NoArgs,
		RunE:         runList,
		SilenceUsage: true,
	}
}

func runList(_ *cobra.Command, _ []string) error {
	versions, err := app.InstalledEngineVersions()
	if err != nil {
		return err
	}
	if len(versions) == 0 {
		ux.Logger.PrintToUser("No engine versions installed yet.")
		ux.Logger.PrintToUser("Use 'praxis engine install' to install one.")
		return nil
	}

	defaultPath := app.Conf.GetConfigStringValue(constants.ConfigEnginePathKey)

	table := ux.NewTable("Version", "Path", "Default")
	for _, version := range versions {
		binaryPath := app.GetEngineBinaryPath(version)
		marker := ""
		if defaultPath != "" && binaryPath == defaultPath {
			marker = "*"
		}
		_ = table.Append([]string{version, binaryPath, marker})
	}
	return table.Render()
}
