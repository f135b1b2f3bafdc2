// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package binutils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/praxislabs/cli/internal/testutils"
)

// engineStub is a stand-in engine binary: init creates the home dir,
// node blocks until interrupted.
const engineStub = `#!/bin/sh
case "$1" in
  init) mkdir -p "$3"; exit 0 ;;
  node) sleep 30 ;;
esac
`

func writeEngineStub(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tendermint")
	if err := os.WriteFile(path, []byte(engineStub), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestGetEngineProcessNotRunning(t *testing.T) {
	require := testutils.SetupTest(t)
	app := testutils.SetupTestInTempDir(t)

	_, err := GetEngineProcess(app)
	require.ErrorIs(err, ErrEngineNotRunning)

	running, proc, err := IsEngineRunning(app)
	require.NoError(err)
	require.False(running)
	require.Nil(proc)
}

func TestGetEngineProcessMalformedRunFile(t *testing.T) {
	require := testutils.SetupTest(t)
	app := testutils.SetupTestInTempDir(t)

	require.NoError(os.MkdirAll(app.GetRunDir(), 0o755))
	require.NoError(os.WriteFile(app.GetRunFile(), []byte("not json"), 0o644))

	_, err := GetEngineProcess(app)
	require.ErrorContains(err, "failed unmarshalling run file")
}

func TestIsEngineRunningStalePid(t *testing.T) {
	require := testutils.SetupTest(t)
	app := testutils.SetupTestInTempDir(t)

	// a pid above the kernel default pid_max cannot be alive
	stale := EngineProcess{
		Pid:       99999999,
		LogFile:   "unused",
		Version:   "v0.34.19",
		StartedAt: time.Now().UTC(),
	}
	data, err := json.Marshal(&stale)
	require.NoError(err)
	require.NoError(os.MkdirAll(app.GetRunDir(), 0o755))
	require.NoError(os.WriteFile(app.GetRunFile(), data, 0o644))

	running, proc, err := IsEngineRunning(app)
	require.NoError(err)
	require.False(running)
	require.NotNil(proc)
	require.Equal(99999999, proc.Pid)
}

func TestEngineProcessLifecycle(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("process signalling test requires a unix shell")
	}
	require := testutils.SetupTest(t)
	app := testutils.SetupTestInTempDir(t)
	stub := writeEngineStub(t)

	require.NoError(StartEngineProcess(app, "v0.34.19", stub))

	// home dir was initialized by the stub's init subcommand
	require.DirExists(app.GetEngineHomeDir())
	require.FileExists(app.GetRunFile())

	running, proc, err := IsEngineRunning(app)
	require.NoError(err)
	require.True(running)
	require.Equal("v0.34.19", proc.Version)
	require.Equal(app.GetEngineLogPath(), proc.LogFile)

	// a second start against a live process is refused
	require.ErrorContains(StartEngineProcess(app, "v0.34.19", stub), "engine already running")

	require.NoError(StopEngineProcess(app))
	require.NoFileExists(app.GetRunFile())

	running, _, err = IsEngineRunning(app)
	require.NoError(err)
	require.False(running)
}

func TestStopEngineProcessNotRunning(t *testing.T) {
	require := testutils.SetupTest(t)
	app := testutils.SetupTestInTempDir(t)

	require.ErrorIs(StopEngineProcess(app), ErrEngineNotRunning)
}

func TestEngineRPCReachable(t *testing.T) {
	require := testutils.SetupTest(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	require.True(EngineRPCReachable(server.URL))

	server.Close()
	require.False(EngineRPCReachable(server.URL))
}
