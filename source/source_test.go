/*
File    : interp/source/source_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringSourceBasics(t *testing.T) {
	s := NewStringSource("ab\ncd")
	assert.Equal(t, byte('a'), s.CurrentChar())
	line, col, off := s.Position()
	assert.Equal(t, 1, line)
	assert.Equal(t, 1, col)
	assert.Equal(t, 0, off)

	s.Advance()
	assert.Equal(t, byte('b'), s.CurrentChar())
	_, col, _ = s.Position()
	assert.Equal(t, 2, col)

	s.Advance()
	assert.Equal(t, byte('\n'), s.CurrentChar())

	s.Advance()
	assert.Equal(t, byte('c'), s.CurrentChar())
	line, col, _ = s.Position()
	assert.Equal(t, 2, line)
	assert.Equal(t, 1, col)
}

func TestStringSourceEmptyYieldsETX(t *testing.T) {
	s := NewStringSource("")
	assert.Equal(t, byte(ETX), s.CurrentChar())
	s.Advance()
	assert.Equal(t, byte(ETX), s.CurrentChar())
}

func TestStringSourcePositionMonotonic(t *testing.T) {
	s := NewStringSource("hello world")
	_, _, prevOffset := s.Position()
	for i := 0; i < 20; i++ {
		s.Advance()
		_, _, off := s.Position()
		assert.GreaterOrEqual(t, off, prevOffset)
		prevOffset = off
	}
}

func TestFileSourceReadsAndCloses(t *testing.T) {
	f, err := NewFileSource("testdata/sample.txt")
	assert.NoError(t, err)
	assert.Equal(t, byte('h'), f.CurrentChar())
	f.Advance()
	assert.Equal(t, byte('i'), f.CurrentChar())
	assert.NoError(t, f.Close())
}

func TestFileSourceMissingFile(t *testing.T) {
	_, err := NewFileSource("testdata/does-not-exist.txt")
	assert.Error(t, err)
}
