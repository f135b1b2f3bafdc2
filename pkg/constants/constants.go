// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

import (
	"time"
)

const (
	DefaultPerms755    = 0o755
	WriteReadReadPerms = 0o644

	BaseDirName = ".praxis"
	LogDir      = "logs"
	RunDir      = "run"

	EngineRunFile    = "engine-run.json"
	EngineLogFile    = "engine.log"
	EngineHomeDir    = "engine-home"
	EngineInstallDir = "engines"

	LedgersDir          = "ledgers"
	RegistryDir         = "registry"
	RegistryProfilesDir = "profiles"
	SnapshotsDirName    = "snapshots"

	ProfileSuffix = ".yaml"

	MaxLogFileSize   = 4
	MaxNumOfLogFiles = 5
	RetainOldFiles   = 0 // retain all old log files

	RequestTimeout      = 3 * time.Minute
	DownloadTimeout     = 10 * time.Minute
	APIRequestTimeout   = 30 * time.Second
	ProbeRequestTimeout = 10 * time.Second
	E2ERequestTimeout   = 30 * time.Second

	// Consensus engine release pin
	EngineOrg            = "tendermint"
	EngineRepo           = "tendermint"
	EngineBinaryName     = "tendermint"
	DefaultEngineVersion = "v0.34.19"

	EngineProxyApp    = "kvstore"
	EngineStopTimeout = 10 * time.Second
	EngineRPCURL      = "http://127.0.0.1:26657"

	// Ledger endpoints and chain parameters
	LocalLedgerEndpoint   = "http://localhost:8545"
	DevnetLedgerEndpoint  = "http://localhost:8545"
	TestnetLedgerEndpoint = "https://rpc-sepolia.praxis.network"
	MainnetLedgerEndpoint = "https://rpc.praxis.network"

	LocalChainID   = 31337
	DevnetChainID  = 1337
	TestnetChainID = 11155111
	MainnetChainID = 1

	DefaultDenom = "wei"

	LedgerAddressEnvVar = "LEDGER_ADDRESS"
	LedgerChainIDEnvVar = "LEDGER_CHAIN_ID"

	// Gas price strategies
	EIP1559Strategy    = "eip1559"
	GasStationStrategy = "gas_station"

	MaxGasFast                  = 1500
	FeeHistoryBlocks            = 10
	FeeHistoryPercentile        = 50
	DefaultPriorityFee          = 3_000_000_000
	FallbackMaxFeePerGas        = 20_000_000_000
	FallbackMaxPriorityFee      = 3_000_000_000
	PriorityFeeIncreaseBoundary = 200

	GasStationSpeed = "fast"

	// Profile registry
	DefaultRegistryURL = "https://github.com/praxislabs/ledger-registry"
	RegistryRemoteName = "origin"

	// Version resolution
	VersionsURL      = "https://raw.githubusercontent.com/praxislabs/cli/main/versions.json"
	VersionsFileName = "versions.json"
	CLIOrg           = "praxislabs"
	CLIRepoName      = "cli"
	CLIInstallURL    = "https://raw.githubusercontent.com/praxislabs/cli/main/scripts/install.sh"

	// #nosec G101
	GithubAPITokenEnvVarName = "PRAXIS_GITHUB_TOKEN"

	DefaultConfigFileName = "cli"
	DefaultConfigFileType = "json"
	LastFileName          = ".last_actions.json"

	// Config keys
	ConfigMetricsEnabledKey = "metrics-enabled"
	ConfigRegistryURLKey    = "registry-url"
	ConfigEnginePathKey     = "engine-path"
	SkipUpdateFlag          = "skip-update-check"

	// Environment variables
	EnvEnginePath    = "PRAXIS_ENGINE_PATH"
	EnvRegistryURL   = "PRAXIS_REGISTRY_URL"
	EnvLedgerAddress = "PRAXIS_LEDGER_ADDRESS"
	EnvLedgerChainID = "PRAXIS_LEDGER_CHAIN_ID"

	Enable  = "enable"
	Disable = "disable"

	YesLabel = "Yes"
	NoLabel  = "No"

	NotAvailableLabel = "Not available"

	MaxConcurrentProbes = 8

	HealthCheckInterval = 100 * time.Millisecond
)
