// Package pattern parses plain-text seed patterns.
//
// A pattern is a grid of '.' (dead) and '#' (alive) characters, one row per
// line. All rows must have the same length. Trailing blank lines and CRLF
// line endings are tolerated; anything else is rejected.
package pattern

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"lifegen/pkg/core"
)

// Pattern is a parsed seed: its bounding box and alive cells in row-major
// order.
type Pattern struct {
	Width  int
	Height int
	Alive  [][2]int
}

// Parse reads a pattern from r.
func Parse(r io.Reader) (Pattern, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rows = append(rows, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return Pattern{}, fmt.Errorf("reading pattern: %w", err)
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return Pattern{}, fmt.Errorf("%w: empty pattern", core.ErrInvalidArgument)
	}

	p := Pattern{Width: len(rows[0]), Height: len(rows)}
	if p.Width == 0 {
		return Pattern{}, fmt.Errorf("%w: pattern row 1 is empty", core.ErrInvalidArgument)
	}
	for y, row := range rows {
		if len(row) != p.Width {
			return Pattern{}, fmt.Errorf("%w: pattern row %d has length %d, want %d", core.ErrInvalidArgument, y+1, len(row), p.Width)
		}
		for x := 0; x < len(row); x++ {
			switch row[x] {
			case '.':
			case '#':
				p.Alive = append(p.Alive, [2]int{x, y})
			default:
				return Pattern{}, fmt.Errorf("%w: pattern row %d column %d: unexpected character %q", core.ErrInvalidArgument, y+1, x+1, row[x])
			}
		}
	}
	return p, nil
}

// ParseString parses an in-memory pattern.
func ParseString(s string) (Pattern, error) {
	return Parse(strings.NewReader(s))
}

// Load parses the pattern file at path.
func Load(path string) (Pattern, error) {
	f, err := os.Open(path)
	if err != nil {
		return Pattern{}, fmt.Errorf("opening pattern: %w", err)
	}
	defer f.Close()
	p, err := Parse(f)
	if err != nil {
		return Pattern{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Offset returns the alive cells shifted by (dx, dy).
func (p Pattern) Offset(dx, dy int) [][2]int {
	out := make([][2]int, len(p.Alive))
	for i, c := range p.Alive {
		out[i] = [2]int{c[0] + dx, c[1] + dy}
	}
	return out
}

// CenteredOn returns the offset that places the middle of the pattern on
// origin.
func (p Pattern) CenteredOn(origin [2]int) (dx, dy int) {
	return origin[0] - p.Width/2, origin[1] - p.Height/2
}
