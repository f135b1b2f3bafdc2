// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/praxislabs/cli/pkg/constants"
	"github.com/spf13/viper"
)

// Config wraps the viper-backed CLI configuration file. Viper keeps
// the merged view of flags, env vars and the config file; this wrapper
// exposes typed access and write-through updates.
type Config struct{}

func New() *Config {
	return &Config{}
}

func (*Config) GetConfigStringValue(key string) string {
	return viper.GetString(key)
}

func (*Config) GetConfigBoolValue(key string) bool {
	return viper.GetBool(key)
}

func (*Config) ConfigValueIsSet(key string) bool {
	return viper.IsSet(key)
}

func (*Config) ConfigFileExists() bool {
	return viper.ConfigFileUsed() != ""
}

// SetConfigValue writes the key through to the config file, creating
// the file on first use.
func (*Config) SetConfigValue(key string, value interface{}) error {
	viper.Set(key, value)
	if err := viper.WriteConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed locating home dir for config file: %w", err)
		}
		configPath := filepath.Join(
			home,
			constants.BaseDirName,
			constants.DefaultConfigFileName+"."+constants.DefaultConfigFileType,
		)
		return viper.WriteConfigAs(configPath)
	}
	return nil
}

// MetricsEnabled reports whether anonymous usage metrics are on.
func (c *Config) MetricsEnabled() bool {
	return viper.GetBool(constants.ConfigMetricsEnabledKey)
}

// GetRegistryURL returns the ledger profile registry remote, honoring
// the config file override.
func (c *Config) GetRegistryURL() string {
	if url := viper.GetString(constants.ConfigRegistryURLKey); url != "" {
		return url
	}
	return constants.DefaultRegistryURL
}

// GetConfigPath returns the path to the configuration file
func (*Config) GetConfigPath() string {
	return viper.ConfigFileUsed()
}
