// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package status

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/praxislabs/cli/pkg/ux"
)

// StatusFormatter renders probe reports to a writer.
type StatusFormatter struct {
	writer io.Writer
}

// NewStatusFormatter creates a new formatter
func NewStatusFormatter(writer io.Writer) *StatusFormatter {
	return &StatusFormatter{
		writer: writer,
	}
}

// FormatTable renders the report as a table, one row per profile.
func (f *StatusFormatter) FormatTable(report *Report) {
	table := tablewriter.NewWriter(f.writer)
	table.Header("Profile", "Network", "Endpoint", "Reachable", "Chain ID", "Height", "Latency", "Error")

	for _, p := range report.Profiles {
		reachable := "no"
		if p.Reachable {
			reachable = "yes"
		}

		chainID := "-"
		if p.Reachable && p.ChainID != 0 {
			chainID = strconv.FormatUint(p.ChainID, 10)
			if p.ChainIDMismatch {
				chainID += " (mismatch)"
			}
		}

		height := "-"
		if p.Reachable {
			height = ux.ConvertToStringWithThousandSeparator(p.Height)
		}

		errStr := "-"
		if p.LastError != "" {
			errStr = p.LastError
		}

		_ = table.Append([]string{
			p.Profile,
			p.Network,
			p.Endpoint,
			reachable,
			chainID,
			height,
			fmt.Sprintf("%dms", p.LatencyMS),
			errStr,
		})
	}

	_ = table.Render()
}

// FormatSummary provides a compact one-line summary
func (f *StatusFormatter) FormatSummary(report *Report) {
	fmt.Fprintf(f.writer, "status  %d/%d profiles reachable  (%dms)\n",
		report.ReachableCount(),
		len(report.Profiles),
		report.DurationMS)
}

// FormatJSON outputs the report as JSON
func (f *StatusFormatter) FormatJSON(report *Report) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

// FormatYAML outputs the report as YAML
func (f *StatusFormatter) FormatYAML(report *Report) error {
	encoder := yaml.NewEncoder(f.writer)
	encoder.SetIndent(2)
	return encoder.Encode(report)
}
