/*
File    : interp/config/config.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package config loads the optional `.interp.yaml` limit overrides
// described in spec §6: identifier/string length caps and the
// recursion depth cap. Absent a config file, every limit keeps its
// spec-mandated default.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/akashmaji946/interp/lexer"
	"github.com/akashmaji946/interp/scope"
)

// Limits holds the three tunable caps from spec §6.
type Limits struct {
	MaxIdentifierLength int `yaml:"max_identifier_length"`
	MaxStringLength     int `yaml:"max_string_length"`
	MaxRecursionDepth   int `yaml:"max_recursion_depth"`
}

// Default returns the spec-mandated limits.
func Default() Limits {
	return Limits{
		MaxIdentifierLength: lexer.DefaultMaxIdentifierLength,
		MaxStringLength:     lexer.DefaultMaxStringLength,
		MaxRecursionDepth:   scope.DefaultMaxRecursionDepth,
	}
}

// Load reads `.interp.yaml` from dir if present, overriding any of
// Default's fields the file sets; a missing file is not an error.
func Load(dir string) (Limits, error) {
	limits := Default()
	path := dir + "/.interp.yaml"
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return limits, nil
		}
		return limits, err
	}
	var override Limits
	if err := yaml.Unmarshal(data, &override); err != nil {
		return limits, err
	}
	if override.MaxIdentifierLength > 0 {
		limits.MaxIdentifierLength = override.MaxIdentifierLength
	}
	if override.MaxStringLength > 0 {
		limits.MaxStringLength = override.MaxStringLength
	}
	if override.MaxRecursionDepth > 0 {
		limits.MaxRecursionDepth = override.MaxRecursionDepth
	}
	return limits, nil
}
