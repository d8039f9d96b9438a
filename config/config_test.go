/*
File    : interp/config/config_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/interp/lexer"
	"github.com/akashmaji946/interp/scope"
)

func TestDefaultMatchesSpecConstants(t *testing.T) {
	d := Default()
	assert.Equal(t, lexer.DefaultMaxIdentifierLength, d.MaxIdentifierLength)
	assert.Equal(t, lexer.DefaultMaxStringLength, d.MaxStringLength)
	assert.Equal(t, scope.DefaultMaxRecursionDepth, d.MaxRecursionDepth)
}

func TestLoadWithoutConfigFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	limits, err := Load(dir)
	assert.NoError(t, err)
	assert.Equal(t, Default(), limits)
}

func TestLoadOverridesOnlySetFields(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, ".interp.yaml"), []byte("max_recursion_depth: 64\n"), 0644)
	assert.NoError(t, err)

	limits, err := Load(dir)
	assert.NoError(t, err)
	assert.Equal(t, 64, limits.MaxRecursionDepth)
	assert.Equal(t, lexer.DefaultMaxIdentifierLength, limits.MaxIdentifierLength)
	assert.Equal(t, lexer.DefaultMaxStringLength, limits.MaxStringLength)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, ".interp.yaml"), []byte("max_recursion_depth: [not-a-number"), 0644)
	assert.NoError(t, err)

	_, err = Load(dir)
	assert.Error(t, err)
}
