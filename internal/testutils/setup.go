// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package testutils

import (
	"io"
	"testing"

	"github.com/praxislabs/cli/pkg/application"
	"github.com/praxislabs/cli/pkg/config"
	"github.com/praxislabs/cli/pkg/log"
	"github.com/praxislabs/cli/pkg/ux"
	"github.com/stretchr/testify/require"
)

func SetupTest(t *testing.T) *require.Assertions {
	// use io.Discard to not print anything
	ux.NewUserLog(log.NewNop(), io.Discard)
	return require.New(t)
}

func SetupTestInTempDir(t *testing.T) *application.Praxis {
	testDir := t.TempDir()

	app := application.New()
	app.Setup(testDir, log.NewNop(), &config.Config{}, nil, application.NewDownloader())
	ux.NewUserLog(log.NewNop(), io.Discard)
	return app
}
