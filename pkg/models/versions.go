// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package models

// EngineVersions pins the consensus engine release window the CLI
// supports. Latest is what a fresh install gets, Minimum is the oldest
// release node commands will agree to start.
type EngineVersions struct {
	LatestVersion  string `json:"latest-version"`
	MinimumVersion string `json:"minimum-version"`
}

// VersionMap is the shape of versions.json, fetched remotely with
// local-file and embedded fallbacks.
type VersionMap struct {
	Engine EngineVersions `json:"engine"`
}
