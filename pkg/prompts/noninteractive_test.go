// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prompts

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNonInteractivePrompterFailsWithError(t *testing.T) {
	p := NewNonInteractivePrompter()

	_, err := p.CaptureYesNo("Confirm?")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrNonInteractive))
	require.Contains(t, err.Error(), "Confirm?")

	_, err = p.CaptureString("Enter name")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrNonInteractive))
	require.Contains(t, err.Error(), "Enter name")

	_, err = p.CaptureList("Choose", []string{"a", "b"})
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrNonInteractive))

	_, err = p.CaptureUint64("Enter number")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrNonInteractive))
}

func TestNonInteractivePrompterDefaultMessage(t *testing.T) {
	p := NewNonInteractivePrompter()

	_, err := p.CaptureString("Chain ID")
	require.Error(t, err)
	require.Contains(t, err.Error(), EnvNonInteractive)
}

func TestNonInteractivePrompterCustomMessage(t *testing.T) {
	p := NewNonInteractivePrompterWithMessage("use --chain-id flag")

	_, err := p.CaptureString("Chain ID")
	require.Error(t, err)
	require.Contains(t, err.Error(), "use --chain-id flag")
}

func TestNonInteractivePrompterAllMethods(t *testing.T) {
	p := NewNonInteractivePrompter()

	tests := []struct {
		name string
		fn   func() error
	}{
		{"CaptureString", func() error { _, err := p.CaptureString(""); return err }},
		{"CaptureStringAllowEmpty", func() error { _, err := p.CaptureStringAllowEmpty(""); return err }},
		{"CaptureValidatedString", func() error { _, err := p.CaptureValidatedString("", nil); return err }},
		{"CaptureYesNo", func() error { _, err := p.CaptureYesNo(""); return err }},
		{"CaptureNoYes", func() error { _, err := p.CaptureNoYes(""); return err }},
		{"CaptureList", func() error { _, err := p.CaptureList("", nil); return err }},
		{"CaptureIndex", func() error { _, err := p.CaptureIndex("", nil); return err }},
		{"CaptureURL", func() error { _, err := p.CaptureURL("", false); return err }},
		{"CaptureGitURL", func() error { _, err := p.CaptureGitURL(""); return err }},
		{"CapturePositiveInt", func() error { _, err := p.CapturePositiveInt("", nil); return err }},
		{"CaptureUint64", func() error { _, err := p.CaptureUint64(""); return err }},
		{"CaptureUint64Compare", func() error { _, err := p.CaptureUint64Compare("", nil); return err }},
		{"CaptureFloat", func() error { _, err := p.CaptureFloat("", nil); return err }},
		{"CaptureVersion", func() error { _, err := p.CaptureVersion(""); return err }},
		{"CaptureExistingFilepath", func() error { _, err := p.CaptureExistingFilepath(""); return err }},
		{"CaptureNewFilepath", func() error { _, err := p.CaptureNewFilepath(""); return err }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.fn()
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrNonInteractive), "expected ErrNonInteractive for %s", tc.name)
		})
	}
}
