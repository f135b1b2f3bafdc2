// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/praxislabs/cli/pkg/constants"
	"gopkg.in/yaml.v3"
)

// Store persists profiles as YAML files, one per profile, in a single
// directory.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name+constants.ProfileSuffix)
}

func (s *Store) Exists(name string) bool {
	_, err := os.Stat(s.Path(name))
	return err == nil
}

// Write validates and persists the profile, creating the profiles
// directory on first use.
func (s *Store) Write(profile Profile) error {
	if err := profile.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, constants.DefaultPerms755); err != nil {
		return fmt.Errorf("failed creating ledgers dir %s: %w", s.dir, err)
	}
	data, err := yaml.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed marshaling profile %s: %w", profile.Name, err)
	}
	return os.WriteFile(s.Path(profile.Name), data, constants.WriteReadReadPerms)
}

// Load reads a user profile. Unknown names are an error; callers that
// want built-in fallback use Resolve.
func (s *Store) Load(name string) (Profile, error) {
	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return Profile{}, fmt.Errorf("ledger profile %q not found", name)
		}
		return Profile{}, err
	}
	var profile Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return Profile{}, fmt.Errorf("failed parsing profile %s: %w", name, err)
	}
	return profile, nil
}

// Delete removes a user profile.
func (s *Store) Delete(name string) error {
	if !s.Exists(name) {
		return fmt.Errorf("ledger profile %q not found", name)
	}
	return os.Remove(s.Path(name))
}

// List returns the user profiles sorted by name.
func (s *Store) List() ([]Profile, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Profile{}, nil
		}
		return nil, err
	}
	profiles := []Profile{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), constants.ProfileSuffix) {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), constants.ProfileSuffix)
		profile, err := s.Load(name)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	sort.Slice(profiles, func(i, j int) bool { return profiles[i].Name < profiles[j].Name })
	return profiles, nil
}

// Resolve returns the named profile, preferring a user profile over a
// built-in of the same name.
func (s *Store) Resolve(name string) (Profile, error) {
	if s.Exists(name) {
		return s.Load(name)
	}
	for _, profile := range BuiltinProfiles() {
		if profile.Name == name {
			return profile, nil
		}
	}
	return Profile{}, fmt.Errorf("ledger profile %q not found", name)
}

// All merges built-in and user profiles; user profiles shadow
// built-ins with the same name.
func (s *Store) All() ([]Profile, error) {
	user, err := s.List()
	if err != nil {
		return nil, err
	}
	byName := map[string]bool{}
	for _, profile := range user {
		byName[profile.Name] = true
	}
	merged := []Profile{}
	for _, profile := range BuiltinProfiles() {
		if !byName[profile.Name] {
			merged = append(merged, profile)
		}
	}
	merged = append(merged, user...)
	sort.Slice(merged, func(i, j int) bool { return merged[i].Name < merged[j].Name })
	return merged, nil
}
