// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package status

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/praxislabs/cli/internal/testutils"
	"github.com/praxislabs/cli/pkg/constants"
	"github.com/praxislabs/cli/pkg/ledger"
)

// newFakeRPCServer serves just enough of the JSON-RPC surface for the
// probe: eth_blockNumber and eth_chainId, both as hex quantities.
func newFakeRPCServer(t *testing.T, chainID string, blockNumber string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID     json.RawMessage `json:"id"`
			Method string          `json:"method"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		result := ""
		switch req.Method {
		case "eth_blockNumber":
			result = blockNumber
		case "eth_chainId":
			result = chainID
		default:
			http.Error(w, "unexpected method "+req.Method, http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%s,"result":"%s"}`, req.ID, result)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestCheckProfilesReachable(t *testing.T) {
	require := testutils.SetupTest(t)

	// chain id 0x539 = 1337, height 0x2a = 42
	server := newFakeRPCServer(t, "0x539", "0x2a")

	profiles := []ledger.Profile{
		{Name: "local", Network: "local", Address: server.URL, ChainID: 1337},
	}

	report, err := NewService().CheckProfiles(context.Background(), profiles)
	require.NoError(err)
	require.Len(report.Profiles, 1)

	result := report.Profiles[0]
	require.True(result.Reachable)
	require.Equal("local", result.Profile)
	require.Equal(server.URL, result.Endpoint)
	require.Equal(uint64(42), result.Height)
	require.Equal(uint64(1337), result.ChainID)
	require.False(result.ChainIDMismatch)
	require.Empty(result.LastError)
	require.Equal(1, report.ReachableCount())
}

func TestCheckProfilesChainIDMismatch(t *testing.T) {
	require := testutils.SetupTest(t)

	server := newFakeRPCServer(t, "0x539", "0x2a")

	// profile pins chain id 99 but the endpoint reports 1337
	profiles := []ledger.Profile{
		{Name: "devnet", Network: "devnet", Address: server.URL, ChainID: 99},
	}

	report, err := NewService().CheckProfiles(context.Background(), profiles)
	require.NoError(err)

	result := report.Profiles[0]
	require.True(result.Reachable)
	require.Equal(uint64(1337), result.ChainID)
	require.True(result.ChainIDMismatch)
}

func TestCheckProfilesUnreachable(t *testing.T) {
	require := testutils.SetupTest(t)

	server := newFakeRPCServer(t, "0x539", "0x2a")
	deadURL := server.URL
	server.Close()

	profiles := []ledger.Profile{
		{Name: "dead", Network: "local", Address: deadURL, ChainID: 1337},
	}

	report, err := NewService().CheckProfiles(context.Background(), profiles)
	require.NoError(err)

	result := report.Profiles[0]
	require.False(result.Reachable)
	require.NotEmpty(result.LastError)
	require.Zero(result.Height)
	require.Zero(result.ChainID)
	require.Equal(0, report.ReachableCount())
}

func TestCheckProfilesMixedResults(t *testing.T) {
	require := testutils.SetupTest(t)

	goodServer := newFakeRPCServer(t, "0x539", "0x2a")
	badServer := newFakeRPCServer(t, "0x539", "0x2a")
	deadURL := badServer.URL
	badServer.Close()

	profiles := []ledger.Profile{
		{Name: "good", Network: "local", Address: goodServer.URL, ChainID: 1337},
		{Name: "dead", Network: "devnet", Address: deadURL, ChainID: 1337},
		{Name: "wrong-chain", Network: "testnet", Address: goodServer.URL, ChainID: 7},
	}

	report, err := NewService().CheckProfiles(context.Background(), profiles)
	require.NoError(err)
	require.Len(report.Profiles, 3)

	// results keep the order of the input profiles
	require.Equal("good", report.Profiles[0].Profile)
	require.True(report.Profiles[0].Reachable)
	require.False(report.Profiles[0].ChainIDMismatch)

	require.Equal("dead", report.Profiles[1].Profile)
	require.False(report.Profiles[1].Reachable)

	require.Equal("wrong-chain", report.Profiles[2].Profile)
	require.True(report.Profiles[2].Reachable)
	require.True(report.Profiles[2].ChainIDMismatch)

	require.Equal(2, report.ReachableCount())
}

func TestCheckProfilesBoundedConcurrency(t *testing.T) {
	require := testutils.SetupTest(t)

	var inFlight, peak atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cur := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			old := peak.Load()
			if cur <= old || peak.CompareAndSwap(old, cur) {
				break
			}
		}
		time.Sleep(20 * time.Millisecond)

		var req struct {
			ID     json.RawMessage `json:"id"`
			Method string          `json:"method"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		result := "0x2a"
		if req.Method == "eth_chainId" {
			result = "0x539"
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%s,"result":"%s"}`, req.ID, result)
	}))
	defer server.Close()

	profiles := make([]ledger.Profile, 20)
	for i := range profiles {
		profiles[i] = ledger.Profile{
			Name:    fmt.Sprintf("profile-%d", i),
			Network: "local",
			Address: server.URL,
			ChainID: 1337,
		}
	}

	report, err := NewService().CheckProfiles(context.Background(), profiles)
	require.NoError(err)
	require.Equal(20, report.ReachableCount())
	require.LessOrEqual(peak.Load(), int64(constants.MaxConcurrentProbes))
}

func TestCheckProfilesCancelledContext(t *testing.T) {
	require := testutils.SetupTest(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	profiles := []ledger.Profile{
		{Name: "local", Network: "local", Address: "http://127.0.0.1:1", ChainID: 1337},
	}

	_, err := NewService().CheckProfiles(ctx, profiles)
	require.Error(err)
	require.ErrorContains(err, "failed to probe profiles")
}

func TestCheckProfilesEmpty(t *testing.T) {
	require := testutils.SetupTest(t)

	report, err := NewService().CheckProfiles(context.Background(), nil)
	require.NoError(err)
	require.Empty(report.Profiles)
	require.Equal(0, report.ReachableCount())
}
