// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/mod/semver"

	"github.com/praxislabs/cli/pkg/config"
	"github.com/praxislabs/cli/pkg/constants"
	"github.com/praxislabs/cli/pkg/ledger"
	"github.com/praxislabs/cli/pkg/log"
	"github.com/praxislabs/cli/pkg/prompts"
)

// Praxis carries the state every command needs: logger, config, prompter
// and the resolved base directory. A single instance is created by the
// root command and threaded through the command constructors.
type Praxis struct {
	Log        log.Logger
	baseDir    string
	Conf       *config.Config
	Prompt     prompts.Prompter
	Downloader Downloader
	Cmd        interface{} // current cobra command, set by the root dispatcher
}

func New() *Praxis {
	return &Praxis{}
}

func (app *Praxis) Setup(baseDir string, logger log.Logger, conf *config.Config, prompt prompts.Prompter, downloader Downloader) {
	app.baseDir = baseDir
	app.Log = logger
	app.Conf = conf
	app.Prompt = prompt
	app.Downloader = downloader
}

func (app *Praxis) GetBaseDir() string {
	return app.baseDir
}

func (app *Praxis) GetRunDir() string {
	return filepath.Join(app.baseDir, constants.RunDir)
}

func (app *Praxis) GetLogDir() string {
	return filepath.Join(app.baseDir, constants.LogDir)
}

func (app *Praxis) GetSnapshotsDir() string {
	return filepath.Join(app.baseDir, constants.SnapshotsDirName)
}

// GetRunFile returns the path of the engine process info file.
func (app *Praxis) GetRunFile() string {
	return filepath.Join(app.GetRunDir(), constants.EngineRunFile)
}

func (app *Praxis) GetEngineLogPath() string {
	return filepath.Join(app.GetLogDir(), constants.EngineLogFile)
}

// GetEnginesDir returns the root under which engine binaries are
// installed, one subdirectory per version.
func (app *Praxis) GetEnginesDir() string {
	return filepath.Join(app.baseDir, constants.EngineInstallDir)
}

func (app *Praxis) GetEngineInstallDir(version string) string {
	return filepath.Join(app.GetEnginesDir(), version)
}

func (app *Praxis) GetEngineBinaryPath(version string) string {
	return filepath.Join(app.GetEngineInstallDir(version), constants.EngineBinaryName)
}

// GetEngineHomeDir returns the engine's own data directory, initialized
// on first node start.
func (app *Praxis) GetEngineHomeDir() string {
	return filepath.Join(app.baseDir, constants.EngineHomeDir)
}

func (app *Praxis) GetLedgersDir() string {
	return filepath.Join(app.baseDir, constants.LedgersDir)
}

func (app *Praxis) GetRegistryDir() string {
	return filepath.Join(app.baseDir, constants.RegistryDir)
}

func (app *Praxis) GetVersionsFilePath() string {
	return filepath.Join(app.baseDir, constants.VersionsFileName)
}

func (app *Praxis) GetDownloader() Downloader {
	return app.Downloader
}

// EngineIsInstalled reports whether the given engine version has a
// binary on disk.
func (app *Praxis) EngineIsInstalled(version string) bool {
	info, err := os.Stat(app.GetEngineBinaryPath(version))
	return err == nil && !info.IsDir()
}

// InstalledEngineVersions lists the engine versions with a binary on
// disk, newest first.
func (app *Praxis) InstalledEngineVersions() ([]string, error) {
	entries, err := os.ReadDir(app.GetEnginesDir())
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	versions := []string{}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if app.EngineIsInstalled(entry.Name()) {
			versions = append(versions, entry.Name())
		}
	}
	// lexical sort misorders v0.34.9 after v0.34.19
	semver.Sort(versions)
	slices.Reverse(versions)
	return versions, nil
}

// LedgerStore returns the profile store rooted at the ledgers dir.
func (app *Praxis) LedgerStore() *ledger.Store {
	return ledger.NewStore(app.GetLedgersDir())
}

func (app *Praxis) ProfileExists(name string) bool {
	return app.LedgerStore().Exists(name)
}

func (app *Praxis) WriteProfile(profile ledger.Profile) error {
	return app.LedgerStore().Write(profile)
}

func (app *Praxis) LoadProfile(name string) (ledger.Profile, error) {
	return app.LedgerStore().Load(name)
}

// ResolveProfile looks a profile up by name, falling back to the
// built-in profiles.
func (app *Praxis) ResolveProfile(name string) (ledger.Profile, error) {
	return app.LedgerStore().Resolve(name)
}

func (app *Praxis) DeleteProfile(name string) error {
	return app.LedgerStore().Delete(name)
}

func (app *Praxis) ListProfiles() ([]ledger.Profile, error) {
	return app.LedgerStore().List()
}

func (app *Praxis) AllProfiles() ([]ledger.Profile, error) {
	return app.LedgerStore().All()
}

func (*Praxis) readFile(path string) ([]byte, error) {
	if err := os.MkdirAll(filepath.Dir(path), constants.DefaultPerms755); err != nil {
		return nil, err
	}

	return os.ReadFile(path)
}

func (*Praxis) writeFile(path string, bytes []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), constants.DefaultPerms755); err != nil {
		return err
	}

	return os.WriteFile(path, bytes, constants.WriteReadReadPerms)
}
