// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledgercmd

import (
	"github.com/spf13/cobra"

	"github.com/praxislabs/cli/pkg/registry"
	"github.com/praxislabs/cli/pkg/ux"
)

var (
	syncURL    string
	syncImport bool
)

func newSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Pull shared profiles from the team registry",
		Long: `Sync the shared profile registry and list what it carries.

The registry is a git repository of profile files teams share. It is
cloned under ~/.praxis/registry/ on first sync and pulled afterwards.
With --import, the registry's profiles are copied into the local
ledgers dir; existing local profiles with the same name are kept.

The remote defaults to the Praxis registry and can be changed with
--url, the PRAXIS_REGISTRY_URL environment variable, or the
registry-url config key.

EXAMPLES:

  # Sync and list what the team shares
  praxis ledger sync

  # Sync and copy new profiles into the local store
  praxis ledger sync --import`,
		Args:         cobra.NoArgs,
		RunE:         runSync,
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&syncURL, "url", "", "registry remote to track (overrides env and config)")
	cmd.Flags().BoolVar(&syncImport, "import", false, "copy registry profiles into the local store")

	return cmd
}

func runSync(_ *cobra.Command, _ []string) error {
	url := syncURL
	if url == "" {
		url = registry.ResolveURL(app.Conf)
	}

	reg := registry.New(app.GetRegistryDir(), url)
	if err := reg.Sync(); err != nil {
		return err
	}

	profiles, err := reg.Profiles()
	if err != nil {
		return err
	}
	if len(profiles) == 0 {
		ux.Logger.PrintToUser("The registry carries no profiles yet.")
		return nil
	}

	imported := 0
	table := ux.NewTable("Name", "Network", "Address", "Status")
	for _, profile := range profiles {
		state := "available"
		if app.ProfileExists(profile.Name) {
			state = "already local"
		} else if syncImport {
			if err := app.WriteProfile(profile); err != nil {
				return err
			}
			state = "imported"
			imported++
		}
		_ = table.Append([]string{profile.Name, profile.Network, profile.Address, state})
	}
	if err := table.Render(); err != nil {
		return err
	}

	if syncImport {
		ux.Logger.GreenCheckmarkToUser("Imported %d profile(s)", imported)
	} else if imported == 0 {
		ux.Logger.PrintToUser("Re-run with --import to copy these into the local store.")
	}
	return nil
}
