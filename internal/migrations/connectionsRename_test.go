// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package migrations

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/praxislabs/cli/internal/testutils"
	"github.com/praxislabs/cli/pkg/ledger"
	"github.com/praxislabs/cli/pkg/models"
	"github.com/stretchr/testify/require"
)

func TestMigrateConnectionsDir(t *testing.T) {
	require := require.New(t)
	app := testutils.SetupTestInTempDir(t)
	uxBuf.Reset()

	// seed the legacy layout
	profile, err := ledger.DefaultProfile(models.Devnet)
	require.NoError(err)
	profile.Name = "legacy"
	oldDir := filepath.Join(app.GetBaseDir(), oldConnectionsDir)
	require.NoError(ledger.NewStore(oldDir).Write(profile))

	runner := &migrationRunner{
		showMsg:    true,
		migrations: map[int]migrationFunc{0: migrateConnectionsDir},
	}
	require.NoError(runner.run(app))

	_, err = os.Stat(oldDir)
	require.True(os.IsNotExist(err))

	migrated, err := app.LoadProfile("legacy")
	require.NoError(err)
	require.Equal(profile.Address, migrated.Address)
	require.Contains(uxBuf.String(), runMessage)
}

func TestMigrateConnectionsDirNothingToDo(t *testing.T) {
	require := require.New(t)
	app := testutils.SetupTestInTempDir(t)
	uxBuf.Reset()

	runner := &migrationRunner{
		showMsg:    true,
		migrations: map[int]migrationFunc{0: migrateConnectionsDir},
	}
	require.NoError(runner.run(app))
	require.Empty(uxBuf.String())
}

func TestMigrateConnectionsDirKeepsPopulatedLedgers(t *testing.T) {
	require := require.New(t)
	app := testutils.SetupTestInTempDir(t)
	uxBuf.Reset()

	oldProfile, err := ledger.DefaultProfile(models.Devnet)
	require.NoError(err)
	oldProfile.Name = "stale"
	oldDir := filepath.Join(app.GetBaseDir(), oldConnectionsDir)
	require.NoError(ledger.NewStore(oldDir).Write(oldProfile))

	newProfile, err := ledger.DefaultProfile(models.Testnet)
	require.NoError(err)
	newProfile.Name = "current"
	require.NoError(app.WriteProfile(newProfile))

	runner := &migrationRunner{
		showMsg:    true,
		migrations: map[int]migrationFunc{0: migrateConnectionsDir},
	}
	require.NoError(runner.run(app))

	// the populated ledgers dir wins, the legacy dir is left alone
	require.DirExists(oldDir)
	_, err = app.LoadProfile("current")
	require.NoError(err)
	_, err = app.LoadProfile("stale")
	require.Error(err)
	require.Empty(uxBuf.String())
}

func TestMigrateConnectionsDirIdempotent(t *testing.T) {
	require := require.New(t)
	app := testutils.SetupTestInTempDir(t)
	uxBuf.Reset()

	profile, err := ledger.DefaultProfile(models.Devnet)
	require.NoError(err)
	profile.Name = "legacy"
	oldDir := filepath.Join(app.GetBaseDir(), oldConnectionsDir)
	require.NoError(ledger.NewStore(oldDir).Write(profile))

	for i := 0; i < 2; i++ {
		runner := &migrationRunner{
			showMsg:    true,
			migrations: map[int]migrationFunc{0: migrateConnectionsDir},
		}
		require.NoError(runner.run(app))
	}

	profiles, err := app.LedgerStore().List()
	require.NoError(err)
	require.Len(profiles, 1)
	require.Equal("legacy", profiles[0].Name)
	require.NoDirExists(filepath.Join(app.GetBaseDir(), oldConnectionsDir))
}
