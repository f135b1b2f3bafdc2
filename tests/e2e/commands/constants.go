// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commands

const (
	CLIBinary = "./bin/praxis"
	LedgerCmd = "ledger"
	EngineCmd = "engine"
	ConfigCmd = "config"
)
