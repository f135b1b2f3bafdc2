// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package migrations

import (
	"bytes"
	"errors"
	"testing"

	"github.com/praxislabs/cli/internal/testutils"
	"github.com/praxislabs/cli/pkg/application"
	"github.com/praxislabs/cli/pkg/log"
	"github.com/praxislabs/cli/pkg/ux"
	"github.com/stretchr/testify/require"
)

// the ux logger is installed once per process, so every test in this
// package shares this buffer
var uxBuf = setupUXBuffer()

func setupUXBuffer() *bytes.Buffer {
	buf := &bytes.Buffer{}
	ux.NewUserLog(log.NewNop(), buf)
	return buf
}

func TestRunMigrations(t *testing.T) {
	require := require.New(t)
	app := testutils.SetupTestInTempDir(t)

	type migTest struct {
		migs           map[int]migrationFunc
		name           string
		shouldErr      bool
		expectedOutput string
	}

	expectedIfRan := runMessage + "\n" + endMessage + "\n"
	expectedIfFailed := runMessage + "\n" + failedEndMessage + "\n"

	tests := []migTest{
		{
			name:           "no migrations",
			shouldErr:      false,
			migs:           map[int]migrationFunc{},
			expectedOutput: "",
		},
		{
			name:      "migration fail",
			shouldErr: true,
			migs: map[int]migrationFunc{
				0: func(app *application.Praxis, r *migrationRunner) error {
					return errors.New("bogus fail")
				},
			},
			expectedOutput: "",
		},
		{
			name:      "1 mig, apply",
			shouldErr: false,
			migs: map[int]migrationFunc{
				0: func(app *application.Praxis, r *migrationRunner) error {
					r.printMigrationMessage()
					return nil
				},
			},
			expectedOutput: expectedIfRan,
		},
		{
			name:      "2 mig, apply both",
			shouldErr: false,
			migs: map[int]migrationFunc{
				0: func(app *application.Praxis, r *migrationRunner) error {
					r.printMigrationMessage()
					return nil
				},
				1: func(app *application.Praxis, r *migrationRunner) error {
					r.printMigrationMessage()
					return nil
				},
			},
			expectedOutput: expectedIfRan,
		},
		{
			name:      "2 mig, apply 1",
			shouldErr: false,
			migs: map[int]migrationFunc{
				0: func(app *application.Praxis, r *migrationRunner) error {
					return nil
				},
				1: func(app *application.Praxis, r *migrationRunner) error {
					r.printMigrationMessage()
					return nil
				},
			},
			expectedOutput: expectedIfRan,
		},
		{
			name:      "2 mig, first one fails",
			shouldErr: true,
			migs: map[int]migrationFunc{
				0: func(app *application.Praxis, r *migrationRunner) error {
					return errors.New("bogus fail")
				},
				1: func(app *application.Praxis, r *migrationRunner) error {
					r.printMigrationMessage()
					return nil
				},
			},
			expectedOutput: "",
		},
		{
			name:      "2 mig, apply 1, second one fails",
			shouldErr: true,
			migs: map[int]migrationFunc{
				0: func(app *application.Praxis, r *migrationRunner) error {
					r.printMigrationMessage()
					return nil
				},
				1: func(app *application.Praxis, r *migrationRunner) error {
					return errors.New("bogus fail")
				},
			},
			expectedOutput: expectedIfFailed,
		},
	}

	for _, tt := range tests {
		// reset the buffer on each run to match expected output
		uxBuf.Reset()
		runner := &migrationRunner{
			showMsg:    true,
			running:    false,
			migrations: tt.migs,
		}
		err := runner.run(app)
		if tt.shouldErr {
			require.Error(err, tt.name)
		} else {
			require.NoError(err, tt.name)
		}
		require.Equal(tt.expectedOutput, uxBuf.String(), tt.name)
	}
}
