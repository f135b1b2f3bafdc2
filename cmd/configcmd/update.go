// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package configcmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/praxislabs/cli/pkg/constants"
	"github.com/praxislabs/cli/pkg/ux"
)

// praxis config update command
func newUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update [enable | disable]",
		Short: "opt in or out of update check",
		Long:  "set user preference between update check or not",
		RunE:  handleUpdateSettings,
		Args:  cobra.ExactArgs(1),
	}
}

func handleUpdateSettings(_ *cobra.Command, args []string) error {
	switch args[0] {
	case constants.Enable:
		ux.Logger.PrintToUser("Thank you for opting in Praxis CLI automated update check")
		if err := saveUpdatePreferences(false); err != nil {
			return err
		}
	case constants.Disable:
		ux.Logger.PrintToUser("Praxis CLI automated update check will no longer be performed")
		if err := saveUpdatePreferences(true); err != nil {
			return err
		}
	default:
		return errors.New("invalid update argument '" + args[0] + "'")
	}
	return nil
}

func saveUpdatePreferences(skipUpdateCheck bool) error {
	return app.Conf.SetConfigValue(constants.SkipUpdateFlag, skipUpdateCheck)
}
