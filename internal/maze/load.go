package maze

import (
	"bufio"
	"os"

	"github.com/pkg/errors"
)

// ErrBadMazeFile is returned by LoadFromFile when the file isn't exactly
// Size rows of Size glyphs.
var ErrBadMazeFile = errors.New("maze: file must contain exactly Size rows of Size glyphs")

// LoadFromFile reads a Size×Size glyph grid from a plain text file, one row
// per line, replacing DefaultMaze for callers that want a custom layout.
func LoadFromFile(path string) (Grid, error) {
	var g Grid

	f, err := os.Open(path)
	if err != nil {
		return g, errors.Wrapf(err, "maze: opening %s", path)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	row := 0
	for scanner.Scan() {
		line := scanner.Text()
		if row >= Size {
			return g, errors.Wrapf(ErrBadMazeFile, "%s has more than %d rows", path, Size)
		}
		if len(line) != Size {
			return g, errors.Wrapf(ErrBadMazeFile, "%s row %d has length %d", path, row, len(line))
		}
		copy(g[row][:], line)
		row++
	}
	if err := scanner.Err(); err != nil {
		return g, errors.Wrapf(err, "maze: reading %s", path)
	}
	if row != Size {
		return g, errors.Wrapf(ErrBadMazeFile, "%s has only %d rows", path, row)
	}
	return g, nil
}
