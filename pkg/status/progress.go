// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package status

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
)

// ProgressTracker handles progress reporting while probes run
type ProgressTracker struct {
	writer         io.Writer
	isTTY          bool
	spinnerChars   []string
	spinnerIndex   int
	lastLineLength int
	startTime      time.Time
	mu             sync.Mutex
}

// NewProgressTracker creates a new progress tracker
func NewProgressTracker(writer io.Writer) *ProgressTracker {
	return &ProgressTracker{
		writer:       writer,
		isTTY:        isTerminal(writer),
		spinnerChars: []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
		startTime:    time.Now(),
	}
}

// isTerminal checks if the writer is a terminal
func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}

// StartStep begins a new step
func (pt *ProgressTracker) StartStep(stepName string) {
	pt.mu.Lock()
	defer pt.mu.Unlock()

	if pt.isTTY {
		pt.clearLine()
		fmt.Fprintf(pt.writer, "%s %s...", pt.nextSpinner(), stepName)
		pt.lastLineLength = len(stepName) + 5
	} else {
		fmt.Fprintf(pt.writer, "%s...\n", stepName)
	}
}

// CompleteStep marks a step as completed
func (pt *ProgressTracker) CompleteStep(stepName string) {
	pt.mu.Lock()
	defer pt.mu.Unlock()

	if pt.isTTY {
		pt.clearLine()
	}
	fmt.Fprintf(pt.writer, "✓ %s (%.1fs)\n", stepName, time.Since(pt.startTime).Seconds())
	pt.startTime = time.Now()
}

// FailStep marks a step as failed
func (pt *ProgressTracker) FailStep(stepName string, err error) {
	pt.mu.Lock()
	defer pt.mu.Unlock()

	if pt.isTTY {
		pt.clearLine()
	}
	fmt.Fprintf(pt.writer, "✗ %s: %v\n", stepName, err)
}

// PrintWarning prints a warning message
func (pt *ProgressTracker) PrintWarning(message string) {
	pt.mu.Lock()
	defer pt.mu.Unlock()

	if pt.isTTY {
		pt.clearLine()
	}
	fmt.Fprintf(pt.writer, "⚠ %s\n", message)
}

// Summary prints the final probe counts
func (pt *ProgressTracker) Summary(duration time.Duration, reachable int, total int) {
	pt.mu.Lock()
	defer pt.mu.Unlock()

	if pt.isTTY {
		pt.clearLine()
	}
	fmt.Fprintf(pt.writer, "\nProbed %d profiles in %.2fs, %d reachable\n", total, duration.Seconds(), reachable)
}

// nextSpinner returns the current spinner character and advances it
func (pt *ProgressTracker) nextSpinner() string {
	char := pt.spinnerChars[pt.spinnerIndex]
	pt.spinnerIndex = (pt.spinnerIndex + 1) % len(pt.spinnerChars)
	return char
}

// clearLine clears the current line
func (pt *ProgressTracker) clearLine() {
	if pt.lastLineLength > 0 {
		fmt.Fprint(pt.writer, "\r")
		fmt.Fprint(pt.writer, strings.Repeat(" ", pt.lastLineLength))
		fmt.Fprint(pt.writer, "\r")
		pt.lastLineLength = 0
	}
}
