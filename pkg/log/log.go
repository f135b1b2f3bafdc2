// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package log builds the CLI loggers: a colored console core for the
// display level and a rotating file core that keeps everything at or
// above the configured file level.
package log

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the CLI-wide logging handle.
type Logger = *zap.SugaredLogger

// Config drives Factory. MaxSize is megabytes per log file, MaxFiles
// the number of rotated files kept, MaxAge days before deletion
// (zero keeps old files forever).
type Config struct {
	LogLevel     zapcore.Level
	DisplayLevel zapcore.Level
	Directory    string
	MaxSize      int
	MaxFiles     int
	MaxAge       int
}

// Factory creates named loggers sharing the same sinks and lets the
// display level be adjusted after flag parsing.
type Factory struct {
	config       Config
	displayLevel zap.AtomicLevel
	fileLevel    zap.AtomicLevel
}

func NewFactory(config Config) *Factory {
	return &Factory{
		config:       config,
		displayLevel: zap.NewAtomicLevelAt(config.DisplayLevel),
		fileLevel:    zap.NewAtomicLevelAt(config.LogLevel),
	}
}

// Make returns a named logger writing to stderr and to
// <Directory>/<name>.log with rotation.
func (f *Factory) Make(name string) (Logger, error) {
	if err := os.MkdirAll(f.config.Directory, 0o750); err != nil {
		return nil, fmt.Errorf("failed creating log directory %s: %w", f.config.Directory, err)
	}

	consoleCfg := zap.NewDevelopmentEncoderConfig()
	consoleCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	consoleCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(consoleCfg),
		zapcore.AddSync(os.Stderr),
		f.displayLevel,
	)

	fileCfg := zap.NewProductionEncoderConfig()
	fileCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	rotator := &lumberjack.Logger{
		Filename:   filepath.Join(f.config.Directory, name+".log"),
		MaxSize:    f.config.MaxSize,
		MaxBackups: f.config.MaxFiles,
		MaxAge:     f.config.MaxAge,
	}
	fileCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(fileCfg),
		zapcore.AddSync(rotator),
		f.fileLevel,
	)

	log := zap.New(zapcore.NewTee(consoleCore, fileCore), zap.AddCaller())
	return log.Named(name).Sugar(), nil
}

// SetDisplayLevel changes the console verbosity for all loggers made
// by this factory.
func (f *Factory) SetDisplayLevel(level zapcore.Level) {
	f.displayLevel.SetLevel(level)
}

// SetLogLevel changes the file verbosity for all loggers made by this
// factory.
func (f *Factory) SetLogLevel(level zapcore.Level) {
	f.fileLevel.SetLevel(level)
}

// ToLevel parses a level name the way the CLI flags spell them.
func ToLevel(s string) (zapcore.Level, error) {
	return zapcore.ParseLevel(strings.ToLower(s))
}

// NewNop returns a logger that discards everything, for tests and for
// code paths that run before logging is configured.
func NewNop() Logger {
	return zap.NewNop().Sugar()
}
