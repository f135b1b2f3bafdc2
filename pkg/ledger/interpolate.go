// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// PlaceholderType tags how an interpolated environment value is parsed.
type PlaceholderType string

const (
	TypeString PlaceholderType = "str"
	TypeInt    PlaceholderType = "int"
	TypeBool   PlaceholderType = "bool"
	TypeFloat  PlaceholderType = "float"
)

// Placeholder renders the `${VAR:type:default}` form agent
// configuration files ship with.
func Placeholder(envVar string, typ PlaceholderType, defaultValue interface{}) string {
	return fmt.Sprintf("${%s:%s:%v}", envVar, typ, defaultValue)
}

// IsPlaceholder reports whether s looks like an interpolation
// placeholder.
func IsPlaceholder(s string) bool {
	return strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}")
}

// ParsePlaceholder splits `${VAR:type:default}` into its parts. The
// default may itself contain colons (URLs do), so only the first two
// separators are significant.
func ParsePlaceholder(s string) (envVar string, typ PlaceholderType, defaultValue string, err error) {
	if !IsPlaceholder(s) {
		return "", "", "", fmt.Errorf("not a placeholder: %q", s)
	}
	inner := s[2 : len(s)-1]
	parts := strings.SplitN(inner, ":", 3)
	if len(parts) != 3 {
		return "", "", "", fmt.Errorf("malformed placeholder %q: want ${VAR:type:default}", s)
	}
	envVar, typeName, defaultValue := parts[0], parts[1], parts[2]
	if envVar == "" {
		return "", "", "", fmt.Errorf("malformed placeholder %q: empty variable name", s)
	}
	typ = PlaceholderType(typeName)
	switch typ {
	case TypeString, TypeInt, TypeBool, TypeFloat:
	default:
		return "", "", "", fmt.Errorf("placeholder %q has unknown type %q", s, typeName)
	}
	return envVar, typ, defaultValue, nil
}

// Resolve evaluates a placeholder against the process environment: the
// environment variable wins when set, the embedded default applies
// otherwise, and the chosen value is parsed per the type tag.
func Resolve(placeholder string) (interface{}, error) {
	envVar, typ, defaultValue, err := ParsePlaceholder(placeholder)
	if err != nil {
		return nil, err
	}
	raw, ok := os.LookupEnv(envVar)
	if !ok {
		raw = defaultValue
	}
	value, err := parseTyped(raw, typ)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve %s: %w", placeholder, err)
	}
	return value, nil
}

func parseTyped(raw string, typ PlaceholderType) (interface{}, error) {
	switch typ {
	case TypeString:
		return raw, nil
	case TypeInt:
		value, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not an int", raw)
		}
		return value, nil
	case TypeBool:
		value, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%q is not a bool", raw)
		}
		return value, nil
	case TypeFloat:
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a float", raw)
		}
		return value, nil
	}
	return nil, fmt.Errorf("unknown placeholder type %q", typ)
}
