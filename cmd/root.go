// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/praxislabs/cli/cmd/configcmd"
	"github.com/praxislabs/cli/cmd/enginecmd"
	"github.com/praxislabs/cli/cmd/ledgercmd"
	"github.com/praxislabs/cli/cmd/nodecmd"
	"github.com/praxislabs/cli/cmd/updatecmd"
	"github.com/praxislabs/cli/internal/migrations"
	"github.com/praxislabs/cli/pkg/application"
	"github.com/praxislabs/cli/pkg/config"
	"github.com/praxislabs/cli/pkg/constants"
	"github.com/praxislabs/cli/pkg/log"
	"github.com/praxislabs/cli/pkg/prompts"
	"github.com/praxislabs/cli/pkg/ux"
)

var (
	app        *application.Praxis
	logFactory *log.Factory

	logLevel       string
	Version        = "1.3.0"
	cfgFile        string
	skipCheck      bool
	nonInteractive bool
)

func NewRootCmd() *cobra.Command {
	// rootCmd represents the base command when called without any subcommands
	rootCmd := &cobra.Command{
		Use: "praxis",
		Long: `Praxis CLI - Developer toolchain for ledger connections and local engines.

The Praxis CLI manages the connection profiles test harnesses use to reach
ledgers across Praxis networks, and installs and runs the consensus engine
needed for local development.

COMMAND OVERVIEW:

  engine      Install and manage consensus engine binaries
  node        Run a local consensus engine (start/stop/status)
  ledger      Manage ledger connection profiles
  config      CLI configuration
  update      Update the CLI itself

NETWORKS:

  local       http://localhost:8545 (chain ID 31337)
  devnet      http://localhost:8545 (chain ID 1337)
  testnet     https://rpc-sepolia.praxis.network (chain ID 11155111)
  mainnet     https://rpc.praxis.network (chain ID 1)

QUICK START:

  # Install the supported engine version and start a local node
  praxis engine install
  praxis node start

  # Configure a connection profile and render its connection document
  praxis ledger configure mychain --network devnet
  praxis ledger render mychain

  # Probe every configured profile
  praxis ledger status

For detailed command help, use: praxis <command> --help`,
		PersistentPreRunE: createApp,
		Version:           Version,
	}

	// Disable printing the completion command
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.praxis/cli.json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "ERROR", "log level for the application")
	rootCmd.PersistentFlags().BoolVar(&skipCheck, constants.SkipUpdateFlag, false, "skip check for new versions")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false,
		"Disable prompts; fail if required values are missing (also enabled when stdin is not a TTY or CI=1)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Show verbose output (info level logs)")
	rootCmd.PersistentFlags().Bool("debug", false, "Show debug output (debug level logs)")
	rootCmd.PersistentFlags().Bool("quiet", false, "Show only errors (quiet mode)")

	// add sub commands
	rootCmd.AddCommand(enginecmd.NewCmd(app))
	rootCmd.AddCommand(nodecmd.NewCmd(app))
	rootCmd.AddCommand(ledgercmd.NewCmd(app))

	// add config command
	rootCmd.AddCommand(configcmd.NewCmd(app))

	// add update command
	rootCmd.AddCommand(updatecmd.NewCmd(app, Version))

	return rootCmd
}

func createApp(cmd *cobra.Command, _ []string) error {
	baseDir, err := setupEnv()
	if err != nil {
		return err
	}
	logger, err := setupLogging(baseDir)
	if err != nil {
		return err
	}

	// Adjust log levels based on flags (must be done after flags are parsed)
	switch {
	case cmd.Flags().Changed("debug"):
		logFactory.SetLogLevel(zapcore.DebugLevel)
		logFactory.SetDisplayLevel(zapcore.DebugLevel)
	case cmd.Flags().Changed("verbose"):
		logFactory.SetDisplayLevel(zapcore.InfoLevel)
	case cmd.Flags().Changed("quiet"):
		logFactory.SetDisplayLevel(zapcore.ErrorLevel)
	default:
		if level, err := log.ToLevel(logLevel); err == nil {
			logFactory.SetDisplayLevel(level)
		}
	}

	cf := config.New()

	// If --non-interactive is set, propagate to env so IsInteractive() sees it.
	// TTY detection still works automatically while respecting the flag.
	if nonInteractive {
		_ = os.Setenv(prompts.EnvNonInteractive, "1")
	}

	// Interactive by default on TTY, non-interactive when:
	// PRAXIS_NON_INTERACTIVE=1, CI=1, --non-interactive flag, or stdin is piped
	prompter := prompts.NewPrompterForMode(nonInteractive)
	app.Setup(baseDir, logger, cf, prompter, application.NewDownloader())
	app.Cmd = cmd

	initConfig()

	if err := migrations.RunMigrations(app); err != nil {
		return err
	}

	// Skip metrics prompt in non-interactive mode, E2E tests, or if config exists
	if os.Getenv("RUN_E2E") == "" && prompts.IsInteractive() && !app.Conf.ConfigFileExists() {
		if err := handleMetricsPreference(app); err != nil {
			return err
		}
	}
	return checkForUpdates(cmd)
}

// handleMetricsPreference asks once whether anonymous usage metrics may
// be collected and persists the answer, creating the config file.
func handleMetricsPreference(app *application.Praxis) error {
	ux.Logger.PrintToUser("Praxis CLI can collect anonymous usage metrics to improve the tool.")
	yes, err := app.Prompt.CaptureYesNo("Help us improve the CLI by opting in?")
	if err != nil {
		return err
	}
	if err := app.Conf.SetConfigValue(constants.ConfigMetricsEnabledKey, yes); err != nil {
		return err
	}
	if yes {
		ux.Logger.PrintToUser("Thank you! You can opt out at any time with 'praxis config metrics disable'")
	}
	return nil
}

// checkForUpdates evaluates first if the user is maybe wanting to skip the update check
// if there's no skip, it runs the update check
func checkForUpdates(cmd *cobra.Command) error {
	// If skip-update-check is enabled (via flag or config), skip silently
	if skipCheck {
		return nil
	}

	// we store a timestamp of the last skip check in a file
	lastActs, err := app.ReadLastActionsFile()
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			app.Log.Warnw("failed to read last-actions file; this is non-critical but is logged", "error", err)
		}
		lastActs = &application.LastActions{}
	}

	// if the user had requested to skip the check less than 24 hrs ago, we skip
	if lastActs.LastSkipCheck != (time.Time{}) &&
		time.Now().Before(lastActs.LastSkipCheck.Add(24*time.Hour)) {
		return nil
	}

	// the update command runs the check itself, don't double up
	isUserCalled := false
	commandList := strings.Fields(cmd.CommandPath())
	if len(commandList) <= 1 || commandList[1] != "update" {
		if err := updatecmd.Update(cmd, isUserCalled, Version); err != nil {
			if errors.Is(err, updatecmd.ErrUserAbortedInstallation) {
				return nil
			}
			if errors.Is(err, updatecmd.ErrNoVersion) {
				ux.Logger.PrintToUser(
					"Attempted to check if a new version is available, but couldn't find the currently running version information")
				ux.Logger.PrintToUser(
					"Make sure to follow official instructions, or automatic updates won't be available for you")
				return nil
			}
			return err
		}
	}
	return nil
}

func setupEnv() (string, error) {
	usr, err := user.Current()
	if err != nil {
		// no logger here yet
		fmt.Printf("unable to get system user %s\n", err)
		return "", err
	}
	baseDir := filepath.Join(usr.HomeDir, constants.BaseDirName)

	for _, dir := range []string{
		baseDir,
		filepath.Join(baseDir, constants.RunDir),
		filepath.Join(baseDir, constants.LogDir),
		filepath.Join(baseDir, constants.EngineInstallDir),
		filepath.Join(baseDir, constants.LedgersDir),
		filepath.Join(baseDir, constants.RegistryDir),
		filepath.Join(baseDir, constants.SnapshotsDirName),
	} {
		if err := os.MkdirAll(dir, constants.DefaultPerms755); err != nil {
			// no logger here yet
			fmt.Printf("failed creating directory %s: %s\n", dir, err)
			return "", err
		}
	}

	return baseDir, nil
}

func setupLogging(baseDir string) (log.Logger, error) {
	config := log.Config{
		LogLevel:     zapcore.InfoLevel,
		DisplayLevel: zapcore.WarnLevel,
		Directory:    filepath.Join(baseDir, constants.LogDir),
		MaxSize:      constants.MaxLogFileSize,
		MaxFiles:     constants.MaxNumOfLogFiles,
		MaxAge:       constants.RetainOldFiles,
	}

	logFactory = log.NewFactory(config)
	logger, err := logFactory.Make("praxis")
	if err != nil {
		return nil, fmt.Errorf("failed setting up logging, exiting: %w", err)
	}
	// create the user facing logger as a global var
	// User output goes to stdout, logs go to stderr
	ux.NewUserLog(logger, os.Stdout)
	return logger, nil
}

// initConfig reads in config file and ENV variables if set.
// Priority: flags > env vars > config file > defaults
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Search for config in ~/.praxis/ directory
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)
		praxisDir := filepath.Join(home, constants.BaseDirName)
		viper.AddConfigPath(praxisDir)
		viper.SetConfigType(constants.DefaultConfigFileType)
		viper.SetConfigName(constants.DefaultConfigFileName)
	}

	// PRAXIS_ENGINE_PATH -> engine-path, etc.
	_ = viper.BindEnv(constants.ConfigEnginePathKey, constants.EnvEnginePath)
	_ = viper.BindEnv(constants.ConfigRegistryURLKey, constants.EnvRegistryURL)

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		app.Log.Debugw("using config file", "config-file", viper.ConfigFileUsed())

		// Read skip-update-check from config file if not already set by flag
		if !skipCheck && viper.IsSet(constants.SkipUpdateFlag) {
			skipCheck = viper.GetBool(constants.SkipUpdateFlag)
		}
	}
	// No config file is normal - most users don't have one, so we silently continue
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	app = application.New()
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\nERROR: %s\n", err)
		os.Exit(1)
	}
}
