package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsKey_Valid(t *testing.T) {
	valid := []string{
		"PROJ-123",
		"AB-1",
		"A1-9",
		"ABC123-456",
		"  PROJ-1  ", // surrounding whitespace is ignored
	}

	for _, key := range valid {
		assert.True(t, IsKey(key), "expected %q to be a valid key", key)
	}
}

func TestIsKey_Invalid(t *testing.T) {
	invalid := []string{
		"",
		"proj-123",  // lowercase leading letter
		"PROJ123",   // missing hyphen
		"PROJ-",     // missing numeric suffix
		"PROJ-12a",  // non-numeric suffix
		"P-1",       // single-letter prefix
		"1ROJ-12",   // digit leading
		"PROJ 123",  // space instead of hyphen
		"PROJ-1-2x", // trailing garbage
	}

	for _, key := range invalid {
		assert.False(t, IsKey(key), "expected %q to be rejected", key)
	}
}

func TestProject_IsZero(t *testing.T) {
	assert.True(t, Project{}.IsZero())
	assert.False(t, Project{ID: "10001"}.IsZero())
	assert.False(t, Project{Key: "PROJ"}.IsZero())
	assert.False(t, Project{Name: "Project"}.IsZero())
}
