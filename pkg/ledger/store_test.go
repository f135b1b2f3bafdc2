// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package ledger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/praxislabs/cli/pkg/models"
	"github.com/stretchr/testify/require"
)

func TestStoreWriteLoadRoundTrip(t *testing.T) {
	require := require.New(t)
	store := NewStore(filepath.Join(t.TempDir(), "ledgers"))

	profile, err := DefaultProfile(models.Testnet)
	require.NoError(err)
	profile.Name = "staging"
	profile.Address = "https://rpc.staging.example.com"

	require.NoError(store.Write(profile))
	require.True(store.Exists("staging"))

	loaded, err := store.Load("staging")
	require.NoError(err)
	require.Equal(profile, loaded)
}

func TestStoreWriteRejectsInvalidProfile(t *testing.T) {
	require := require.New(t)
	store := NewStore(t.TempDir())

	profile, err := DefaultProfile(models.Local)
	require.NoError(err)
	profile.ChainID = 0

	require.Error(store.Write(profile))
	require.False(store.Exists(profile.Name))
}

func TestStoreLoadNotFound(t *testing.T) {
	require := require.New(t)
	store := NewStore(t.TempDir())

	_, err := store.Load("missing")
	require.ErrorContains(err, "not found")
}

func TestStoreLoadRejectsMalformedYAML(t *testing.T) {
	require := require.New(t)
	dir := t.TempDir()
	store := NewStore(dir)

	require.NoError(os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("{not yaml"), 0o644))
	_, err := store.Load("broken")
	require.Error(err)
}

func TestStoreDelete(t *testing.T) {
	require := require.New(t)
	store := NewStore(t.TempDir())

	profile, err := DefaultProfile(models.Local)
	require.NoError(err)
	profile.Name = "scratch"
	require.NoError(store.Write(profile))

	require.NoError(store.Delete("scratch"))
	require.False(store.Exists("scratch"))
	require.ErrorContains(store.Delete("scratch"), "not found")
}

func TestStoreListSorted(t *testing.T) {
	require := require.New(t)
	dir := t.TempDir()
	store := NewStore(dir)

	for _, name := range []string{"zeta", "alpha", "mid"} {
		profile, err := DefaultProfile(models.Local)
		require.NoError(err)
		profile.Name = name
		require.NoError(store.Write(profile))
	}
	// stray files are ignored
	require.NoError(os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	profiles, err := store.List()
	require.NoError(err)
	names := []string{}
	for _, profile := range profiles {
		names = append(names, profile.Name)
	}
	require.Equal([]string{"alpha", "mid", "zeta"}, names)
}

func TestStoreListEmptyDir(t *testing.T) {
	require := require.New(t)
	store := NewStore(filepath.Join(t.TempDir(), "never-created"))

	profiles, err := store.List()
	require.NoError(err)
	require.Empty(profiles)
}

func TestStoreResolveFallsBackToBuiltin(t *testing.T) {
	require := require.New(t)
	store := NewStore(t.TempDir())

	profile, err := store.Resolve("testnet")
	require.NoError(err)
	require.Equal("testnet", profile.Name)
	require.Equal(models.Testnet.Name(), profile.Network)

	_, err = store.Resolve("nonesuch")
	require.ErrorContains(err, "not found")
}

func TestStoreResolvePrefersUserProfile(t *testing.T) {
	require := require.New(t)
	store := NewStore(t.TempDir())

	custom, err := DefaultProfile(models.Testnet)
	require.NoError(err)
	custom.Address = "https://rpc.internal.example.com"
	require.NoError(store.Write(custom))

	resolved, err := store.Resolve("testnet")
	require.NoError(err)
	require.Equal("https://rpc.internal.example.com", resolved.Address)
}

func TestStoreAllShadowsBuiltins(t *testing.T) {
	require := require.New(t)
	store := NewStore(t.TempDir())

	builtinCount := len(BuiltinProfiles())

	custom, err := DefaultProfile(models.Local)
	require.NoError(err)
	custom.Address = "http://127.0.0.1:9650"
	require.NoError(store.Write(custom))

	extra, err := DefaultProfile(models.Testnet)
	require.NoError(err)
	extra.Name = "staging"
	require.NoError(store.Write(extra))

	all, err := store.All()
	require.NoError(err)
	require.Len(all, builtinCount+1)

	byName := map[string]Profile{}
	for _, profile := range all {
		byName[profile.Name] = profile
	}
	require.Equal("http://127.0.0.1:9650", byName["local"].Address, "user profile shadows built-in")
	require.Contains(byName, "staging")
	require.Contains(byName, "mainnet")
}
