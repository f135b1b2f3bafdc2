// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package registry syncs the shared ledger profile registry, a git
// repository of profile documents, into the praxis base directory.
package registry

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	git "github.com/go-git/go-git/v5"

	"github.com/praxislabs/cli/pkg/config"
	"github.com/praxislabs/cli/pkg/constants"
	"github.com/praxislabs/cli/pkg/ledger"
	"github.com/praxislabs/cli/pkg/ux"
)

// Registry defines the interface for syncing and reading the shared profile registry.
type Registry interface {
	// Sync clones the registry on first use and pulls afterwards.
	Sync() error
	// Profiles returns the ledger profiles the synced registry carries.
	Profiles() ([]ledger.Profile, error)
	// Synced reports whether the registry has been cloned yet.
	Synced() bool
}

type registryImpl struct {
	repoURL  string
	repoPath string
}

var _ Registry = &registryImpl{}

// New creates a Registry rooted at repoDir tracking repoURL.
func New(repoDir, repoURL string) Registry {
	return &registryImpl{
		repoURL:  repoURL,
		repoPath: repoDir,
	}
}

// ResolveURL returns the registry remote to track. The environment
// override wins over the config file, which falls back to the default.
func ResolveURL(conf *config.Config) string {
	if url := os.Getenv(constants.EnvRegistryURL); url != "" {
		return url
	}
	return conf.GetRegistryURL()
}

func (r *registryImpl) Synced() bool {
	_, err := os.Stat(filepath.Join(r.repoPath, git.GitDirName))
	return err == nil
}

func (r *registryImpl) Sync() error {
	if !r.Synced() {
		ux.Logger.PrintToUser("Cloning profile registry from %s...", r.repoURL)
		if _, err := git.PlainClone(r.repoPath, false, &git.CloneOptions{
			URL: r.repoURL,
		}); err != nil {
			return fmt.Errorf("failed to clone profile registry: %w", err)
		}
		return nil
	}

	repo, err := git.PlainOpen(r.repoPath)
	if err != nil {
		return fmt.Errorf("failed to open profile registry: %w", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return err
	}
	err = wt.Pull(&git.PullOptions{RemoteName: constants.RegistryRemoteName})
	if errors.Is(err, git.NoErrAlreadyUpToDate) {
		ux.Logger.PrintToUser("Profile registry already up to date")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to pull profile registry: %w", err)
	}
	return nil
}

func (r *registryImpl) Profiles() ([]ledger.Profile, error) {
	if !r.Synced() {
		return nil, fmt.Errorf("profile registry not synced yet, run 'praxis ledger sync' first")
	}
	store := ledger.NewStore(filepath.Join(r.repoPath, constants.RegistryProfilesDir))
	return store.List()
}
