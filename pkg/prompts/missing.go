// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prompts

import (
	"errors"
	"fmt"
	"strings"
)

// isInteractiveCheck is a variable for testing purposes to allow mocking mode detection
var isInteractiveCheck = IsInteractive

// MissingOpt describes a required option that was not provided.
type MissingOpt struct {
	Flag    string // e.g., "--chain-id"
	Env     string // e.g., "PRAXIS_CHAIN_ID" (optional)
	Prompt  string // e.g., "Chain ID" - used for interactive prompts
	Note    string // optional additional context
	Default string // optional default value hint
}

// MissingError creates a clear, actionable error listing all missing options.
// The error message follows UNIX conventions and guides users to the right flags.
func MissingError(cmd string, missing []MissingOpt) error {
	if len(missing) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString("missing required options:\n")
	for _, m := range missing {
		if m.Env != "" {
			fmt.Fprintf(&b, "  %s (or %s)", m.Flag, m.Env)
		} else {
			fmt.Fprintf(&b, "  %s", m.Flag)
		}
		if m.Note != "" {
			fmt.Fprintf(&b, " - %s", m.Note)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\nrun '%s --help' to see all options", cmd)
	return errors.New(b.String())
}

// Validator holds options being collected and tracks missing ones.
// Use this for clean, declarative option handling.
type Validator struct {
	cmd     string
	missing []MissingOpt
	values  []*string
}

// NewValidator creates a validator for a command.
func NewValidator(cmd string) *Validator {
	return &Validator{cmd: cmd}
}

// Require marks a value as required. If empty, adds to missing list.
func (v *Validator) Require(target *string, opt MissingOpt) *Validator {
	if *target == "" {
		v.missing = append(v.missing, opt)
		v.values = append(v.values, target)
	}
	return v
}

// RequireWithDefault marks a value as required with a default.
// Uses the default if empty and non-interactive, otherwise prompts.
func (v *Validator) RequireWithDefault(target *string, opt MissingOpt, defaultVal string) *Validator {
	if *target == "" {
		if !isInteractiveCheck() {
			*target = defaultVal
		} else {
			opt.Default = defaultVal
			v.missing = append(v.missing, opt)
			v.values = append(v.values, target)
		}
	}
	return v
}

// Optional sets a default if the value is empty (no prompting).
func (v *Validator) Optional(target *string, defaultVal string) *Validator {
	if *target == "" {
		*target = defaultVal
	}
	return v
}

// Missing returns the list of missing options.
func (v *Validator) Missing() []MissingOpt {
	return v.missing
}

// HasMissing returns true if any required options are missing.
func (v *Validator) HasMissing() bool {
	return len(v.missing) > 0
}

// Resolve prompts for missing values (interactive) or returns error (non-interactive).
//
// Usage:
//
//	v := prompts.NewValidator("praxis ledger configure")
//	v.Require(&address, prompts.MissingOpt{
//	    Flag:   "--address",
//	    Prompt: "Ledger endpoint address",
//	})
//	v.RequireWithDefault(&denom, prompts.MissingOpt{
//	    Flag:   "--denom",
//	    Prompt: "Fee denomination",
//	}, "wei")
//	if err := v.Resolve(func(m prompts.MissingOpt) (string, error) {
//	    return app.Prompt.CaptureString(m.Prompt)
//	}); err != nil {
//	    return err
//	}
func (v *Validator) Resolve(promptFn func(MissingOpt) (string, error)) error {
	if !v.HasMissing() {
		return nil
	}

	if !isInteractiveCheck() {
		return MissingError(v.cmd, v.missing)
	}

	for i, m := range v.missing {
		val, err := promptFn(m)
		if err != nil {
			return fmt.Errorf("failed to get %s: %w", m.Flag, err)
		}
		*v.values[i] = val
	}
	return nil
}
