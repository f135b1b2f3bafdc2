// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/praxislabs/cli/pkg/constants"
	"gopkg.in/yaml.v3"
)

// Override injects one value into a configuration tree at the field
// addressed by a dotted path, e.g.
// `vendor.connections.ledger.config.ledger_apis.ethereum.chain_id`.
type Override struct {
	DottedPath string
	Value      interface{}
}

// ParseOverride parses the `dotted.path=value` flag form. Values are
// typed by shape: ints, floats and bools are converted, everything
// else stays a string.
func ParseOverride(s string) (Override, error) {
	idx := strings.Index(s, "=")
	if idx <= 0 {
		return Override{}, fmt.Errorf("invalid override %q: want dotted.path=value", s)
	}
	path, raw := s[:idx], s[idx+1:]
	for _, segment := range strings.Split(path, ".") {
		if segment == "" {
			return Override{}, fmt.Errorf("invalid override path %q: empty segment", path)
		}
	}
	return Override{DottedPath: path, Value: parseValue(raw)}, nil
}

func parseValue(raw string) interface{} {
	if value, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return value
	}
	if value, err := strconv.ParseFloat(raw, 64); err == nil {
		return value
	}
	if value, err := strconv.ParseBool(raw); err == nil {
		return value
	}
	return raw
}

// Apply sets the override's value in the tree, creating intermediate
// maps as needed. Traversing through an existing non-map value is an
// error; silently replacing a subtree with a scalar mid-path would
// corrupt the agent configuration.
func Apply(tree map[string]interface{}, override Override) error {
	segments := strings.Split(override.DottedPath, ".")
	for _, segment := range segments {
		if segment == "" {
			return fmt.Errorf("invalid override path %q: empty segment", override.DottedPath)
		}
	}

	current := tree
	for _, segment := range segments[:len(segments)-1] {
		next, ok := current[segment]
		if !ok {
			child := map[string]interface{}{}
			current[segment] = child
			current = child
			continue
		}
		child, ok := next.(map[string]interface{})
		if !ok {
			return fmt.Errorf(
				"cannot apply override %q: %q is not a mapping",
				override.DottedPath,
				segment,
			)
		}
		current = child
	}
	current[segments[len(segments)-1]] = override.Value
	return nil
}

// ApplyAll applies overrides in order; later overrides win on
// conflicting paths.
func ApplyAll(tree map[string]interface{}, overrides []Override) error {
	for _, override := range overrides {
		if err := Apply(tree, override); err != nil {
			return err
		}
	}
	return nil
}

// ApplyToFile loads a YAML configuration tree, applies the overrides
// and writes the result to outPath (same file when outPath is empty).
func ApplyToFile(path string, outPath string, overrides []Override) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed reading config %s: %w", path, err)
	}
	tree := map[string]interface{}{}
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return fmt.Errorf("failed parsing config %s: %w", path, err)
	}
	if err := ApplyAll(tree, overrides); err != nil {
		return err
	}
	out, err := yaml.Marshal(tree)
	if err != nil {
		return fmt.Errorf("failed marshaling config %s: %w", path, err)
	}
	if outPath == "" {
		outPath = path
	}
	return os.WriteFile(outPath, out, constants.WriteReadReadPerms)
}
