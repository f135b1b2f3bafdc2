// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledgercmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/praxislabs/cli/pkg/prompts"
	"github.com/praxislabs/cli/pkg/ux"
)

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a user profile",
		Long: `Delete a user-defined connection profile.

Built-in profiles cannot be deleted; deleting a user profile that
shadows a built-in brings the built-in back.

EXAMPLES:

  praxis ledger delete mychain`,
		Aliases:      []string{"rm"},
		Args:         cobra.ExactArgs(1),
		RunE:         runDelete,
		SilenceUsage: true,
	}
}

func runDelete(_ *cobra.Command, args []string) error {
	name := args[0]
	if !app.ProfileExists(name) {
		return fmt.Errorf("no user profile named %q", name)
	}

	if prompts.IsInteractive() {
		yes, err := app.Prompt.CaptureNoYes(fmt.Sprintf("Delete profile %q?", name))
		if err != nil {
			return err
		}
		if !yes {
			ux.Logger.PrintToUser("Aborted")
			return nil
		}
	}

	if err := app.DeleteProfile(name); err != nil {
		return err
	}
	ux.Logger.GreenCheckmarkToUser("Profile %q deleted", name)
	return nil
}
