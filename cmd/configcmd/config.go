// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package configcmd

import (
	"github.com/spf13/cobra"

	"github.com/praxislabs/cli/pkg/application"
)

var app *application.Praxis

func NewCmd(injectedApp *application.Praxis) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Modify configuration for Praxis CLI",
		Long:  `Customize configuration for Praxis CLI`,
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}
	app = injectedApp
	// set user metrics collection preferences cmd
	cmd.AddCommand(newMetricsCmd())
	// set update check preferences cmd
	cmd.AddCommand(newUpdateCmd())

	return cmd
}
