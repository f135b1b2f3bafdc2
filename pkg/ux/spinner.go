// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ux

import (
	"fmt"

	"github.com/chelnak/ysmrr"
	"github.com/chelnak/ysmrr/pkg/animations"
	"github.com/chelnak/ysmrr/pkg/colors"
)

// UserSpinner drives a group of terminal spinners for multi-step flows.
type UserSpinner struct {
	manager ysmrr.SpinnerManager
	started bool
}

func NewUserSpinner() *UserSpinner {
	return &UserSpinner{
		manager: ysmrr.NewSpinnerManager(
			ysmrr.WithAnimation(animations.Dots),
			ysmrr.WithSpinnerColor(colors.FgHiBlue),
		),
	}
}

// SpinToUser adds a spinner for the given step and starts the manager on
// first use.
func (us *UserSpinner) SpinToUser(msg string, args ...interface{}) *ysmrr.Spinner {
	formattedMsg := fmt.Sprintf(msg, args...)
	spinner := us.manager.AddSpinner(formattedMsg)
	if !us.started {
		us.manager.Start()
		us.started = true
	}
	return spinner
}

func (us *UserSpinner) Stop() {
	if us.started {
		us.manager.Stop()
	}
}

// SpinComplete marks the spinner as successful.
func SpinComplete(spinner *ysmrr.Spinner) {
	if spinner == nil {
		return
	}
	spinner.Complete()
}

// SpinFailWithError marks the spinner as failed, appending the error to
// the step message.
func SpinFailWithError(spinner *ysmrr.Spinner, txt string, err error) {
	if spinner == nil {
		return
	}
	if err != nil {
		spinner.UpdateMessage(fmt.Sprintf("%s err: %v", txt, err))
	}
	spinner.Error()
}
