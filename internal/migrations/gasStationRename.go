// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package migrations

import (
	"github.com/praxislabs/cli/pkg/application"
	"github.com/praxislabs/cli/pkg/constants"
	"github.com/praxislabs/cli/pkg/ledger"
)

const oldGasStationKey = "gasstation"

// Profiles written before the strategy names settled selected the gas
// station strategy as "gasstation". The payload lived under the same
// key, so files that old also lost it on load and get the defaults
// back.
func migrateGasStationKeys(app *application.Praxis, runner *migrationRunner) error {
	profiles, err := app.LedgerStore().List()
	if err != nil {
		return err
	}

	for _, profile := range profiles {
		if profile.DefaultGasPriceStrategy != oldGasStationKey {
			continue
		}

		runner.printMigrationMessage()
		profile.DefaultGasPriceStrategy = constants.GasStationStrategy
		if profile.GasPriceStrategies.GasStation == nil {
			profile.GasPriceStrategies.GasStation = ledger.DefaultGasPriceStrategies().GasStation
		}
		if err := app.WriteProfile(profile); err != nil {
			return err
		}
	}
	return nil
}
