// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package status

import (
	"time"
)

// ProfileStatus is the probe outcome for one ledger profile.
type ProfileStatus struct {
	Profile   string `json:"profile" yaml:"profile"`
	Network   string `json:"network" yaml:"network"`
	Endpoint  string `json:"endpoint" yaml:"endpoint"`
	Reachable bool   `json:"reachable" yaml:"reachable"`
	// ChainID as reported by the endpoint, 0 when unreachable.
	ChainID uint64 `json:"chain_id,omitempty" yaml:"chain_id,omitempty"`
	// ChainIDMismatch is set when the endpoint reports a different
	// chain id than the profile pins.
	ChainIDMismatch bool   `json:"chain_id_mismatch,omitempty" yaml:"chain_id_mismatch,omitempty"`
	Height          uint64 `json:"height,omitempty" yaml:"height,omitempty"`
	LatencyMS       int    `json:"latency_ms" yaml:"latency_ms"`
	LastError       string `json:"last_error,omitempty" yaml:"last_error,omitempty"`
}

// Report contains the probe results for a set of profiles.
type Report struct {
	Profiles   []ProfileStatus `json:"profiles" yaml:"profiles"`
	Timestamp  time.Time       `json:"timestamp" yaml:"timestamp"`
	DurationMS int             `json:"duration_ms" yaml:"duration_ms"`
}

// ReachableCount returns how many profiles answered their probe.
func (r *Report) ReachableCount() int {
	count := 0
	for _, p := range r.Profiles {
		if p.Reachable {
			count++
		}
	}
	return count
}
