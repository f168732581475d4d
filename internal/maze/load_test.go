package maze

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromFileRoundTripsDefaultMaze(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "maze.txt")

	var content string
	for _, row := range DefaultMaze {
		content += string(row[:]) + "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	g, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultMaze, g)
}

func TestLoadFromFileRejectsWrongRowLength(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "maze.txt")
	require.NoError(t, os.WriteFile(path, []byte("short\n"), 0o644))

	_, err := LoadFromFile(path)
	require.Error(t, err)
}
