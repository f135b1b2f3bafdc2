// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package configcmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/praxislabs/cli/pkg/constants"
	"github.com/praxislabs/cli/pkg/ux"
)

// praxis config metrics command
func newMetricsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "metrics [enable | disable]",
		Short: "opt in or out of metrics collection",
		Long:  "set user metrics collection preferences",
		RunE:  handleMetricsSettings,
		Args:  cobra.ExactArgs(1),
	}
}

func handleMetricsSettings(_ *cobra.Command, args []string) error {
	switch args[0] {
	case constants.Enable:
		ux.Logger.PrintToUser("Thank you for opting in Praxis CLI usage metrics collection")
		if err := saveMetricsPreferences(true); err != nil {
			return err
		}
	case constants.Disable:
		ux.Logger.PrintToUser("Praxis CLI usage metrics will no longer be collected")
		if err := saveMetricsPreferences(false); err != nil {
			return err
		}
	default:
		return errors.New("invalid metrics argument '" + args[0] + "'")
	}
	return nil
}

func saveMetricsPreferences(enableMetrics bool) error {
	return app.Conf.SetConfigValue(constants.ConfigMetricsEnabledKey, enableMetrics)
}
