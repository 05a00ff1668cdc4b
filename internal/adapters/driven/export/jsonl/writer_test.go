package jsonl

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/exporta-cli/internal/core/domain"
)

func testIssues() []*domain.Issue {
	return []*domain.Issue{
		{Key: "PROJ-1", Summary: "one", Text: "KEY: PROJ-1\nSUMMARY: one"},
		{Key: "PROJ-2", Summary: "two & <b>three</b>", Text: "KEY: PROJ-2\nSUMMARY: two & <b>three</b>"},
	}
}

func TestWriteLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.jsonl")

	require.NoError(t, New().WriteLines(context.Background(), path, testIssues()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2, "one record per line")

	var first domain.Issue
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "PROJ-1", first.Key)

	// HTML is not escaped in the output.
	assert.Contains(t, lines[1], "two & <b>three</b>")
}

func TestWriteLines_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.jsonl")

	require.NoError(t, New().WriteLines(context.Background(), path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestWriteLines_CreatesParentFolder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "out.jsonl")

	require.NoError(t, New().WriteLines(context.Background(), path, testIssues()))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestWritePretty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.pretty.json")

	require.NoError(t, New().WritePretty(context.Background(), path, testIssues()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded []domain.Issue
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "PROJ-1", decoded[0].Key)

	assert.Contains(t, string(data), "\n  ", "output is indented")
}

func TestWritePretty_EmptyIsArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.pretty.json")

	require.NoError(t, New().WritePretty(context.Background(), path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(string(data)))
}
