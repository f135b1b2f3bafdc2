// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledgercmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/praxislabs/cli/pkg/ux"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List connection profiles",
		Long: `List every connection profile, built-in and user-defined.

A user profile with the same name as a built-in shadows it.

EXAMPLES:

  praxis ledger list`,
		Aliases:      []string{"ls"},
		Args:         cobra.NoArgs,
		RunE:         runList,
		SilenceUsage: true,
	}
}

func runList(_ *cobra.Command, _ []string) error {
	profiles, err := app.AllProfiles()
	if err != nil {
		return err
	}
	userProfiles, err := app.ListProfiles()
	if err != nil {
		return err
	}
	userNames := map[string]bool{}
	for _, profile := range userProfiles {
		userNames[profile.Name] = true
	}

	table := ux.NewTable("Name", "Network", "Address", "Chain ID", "Denom", "Default Strategy", "Source")
	for _, profile := range profiles {
		source := "builtin"
		if userNames[profile.Name] {
			source = "user"
		}
		_ = table.Append([]string{
			profile.Name,
			profile.Network,
			profile.Address,
			strconv.FormatInt(profile.ChainID, 10),
			profile.Denom,
			profile.DefaultGasPriceStrategy,
			source,
		})
	}
	return table.Render()
}
