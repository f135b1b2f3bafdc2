// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

/*
Package prompts provides user interaction primitives following UNIX conventions.

# Design Philosophy

The CLI follows standard UNIX behavior for interactive mode:

  - If stdin is a TTY → prompting is allowed for missing values
  - If stdin is not a TTY → never prompt (piped/scripted)
  - Explicit overrides (PRAXIS_NON_INTERACTIVE, CI) force non-interactive

This gives predictable scripting behavior without quirky mode toggles.

# Mode Detection

Non-interactive mode is enabled when ANY of these is true:

  - PRAXIS_NON_INTERACTIVE=1/true/yes/on environment variable
  - CI=1/true environment variable (GitHub Actions, GitLab CI, etc.)
  - stdin is not a TTY (piped/redirected/scripted)

Interactive mode is enabled otherwise (stdin is TTY, no overrides).

# Option Precedence

Values are resolved in this order (UNIX-standard):

 1. Flags (--chain-id=31337)
 2. Environment variables
 3. Config file (~/.praxis/cli.json)
 4. Defaults
 5. Prompts (only if interactive/TTY)

Prompts should only fill values that remain empty after 1-4.

# Usage Pattern: Validator

The recommended pattern uses Validator for clean, declarative option handling:

	func configureLedger(cmd *cobra.Command, args []string) error {
	    profileName := args[0]

	    // 1. Resolve from flags/env/config (cobra already did this)

	    // 2. Validate and collect missing required options
	    v := prompts.NewValidator("praxis ledger configure")
	    v.Require(&address, prompts.MissingOpt{
	        Flag:   "--address",
	        Prompt: "Ledger endpoint address",
	    })
	    v.RequireWithDefault(&denom, prompts.MissingOpt{
	        Flag:   "--denom",
	        Prompt: "Fee denomination",
	    }, "wei")

	    // 3. Prompt for missing (interactive) or fail with error (non-interactive)
	    if err := v.Resolve(func(m prompts.MissingOpt) (string, error) {
	        prompt := m.Prompt
	        if m.Default != "" {
	            prompt = fmt.Sprintf("%s (default: %s)", m.Prompt, m.Default)
	        }
	        return app.Prompt.CaptureString(prompt)
	    }); err != nil {
	        return err
	    }

	    // 4. All values are now populated - proceed with command
	    ...
	}

# Error Messages

When non-interactive and required values are missing, errors look like:

	missing required options:
	  --address
	  --chain-id

	run 'praxis ledger configure --help' to see all options

# Checking Mode

	if prompts.IsInteractive() {
	    // can prompt for optional values
	}
*/
package prompts
