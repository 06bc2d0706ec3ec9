// Package life implements Conway's Game of Life on a toroidal board.
//
// Boards are values: Step returns the next generation and never mutates the
// receiver, so a board can be rendered or cached while the simulation moves
// on.
package life

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
)

// Board is a width×height grid whose edges wrap.
type Board struct {
	width  int
	height int
	cells  []bool
}

// MaxCells bounds the cell count of a single board.
const MaxCells = 1 << 26

// NewBoard returns an empty board.
func NewBoard(width, height int) (*Board, error) {
	if width <= 0 || height <= 0 || width > MaxCells/height {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	return &Board{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}, nil
}

// Random seeds each cell alive with probability density. The same seed
// always produces the same board.
func Random(width, height int, density float64, seed int64) (*Board, error) {
	if !(density >= 0 && density <= 1) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDensity, density)
	}

	b, err := NewBoard(width, height)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewPCG(uint64(seed), 0x2545f4914f6cdd1d))
	for i := range b.cells {
		b.cells[i] = rng.Float64() < density
	}
	return b, nil
}

// Parse builds a board from rows of text where '#' or 'O' marks a live cell
// and '.' a dead one. All rows must have the same length.
func Parse(rows []string) (*Board, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidPattern)
	}

	b, err := NewBoard(len(rows[0]), len(rows))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}

	for y, row := range rows {
		if len(row) != b.width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidPattern, y, len(row), b.width)
		}
		for x, c := range row {
			switch c {
			case '#', 'O':
				b.cells[y*b.width+x] = true
			case '.':
			default:
				return nil, fmt.Errorf("%w: unexpected %q at %d,%d", ErrInvalidPattern, c, x, y)
			}
		}
	}
	return b, nil
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

// Get reports whether the cell at (x, y) is alive. Coordinates wrap.
func (b *Board) Get(x, y int) bool {
	return b.cells[b.index(x, y)]
}

// Set changes the cell at (x, y). Coordinates wrap.
func (b *Board) Set(x, y int, alive bool) {
	b.cells[b.index(x, y)] = alive
}

// Alive returns the population.
func (b *Board) Alive() int {
	n := 0
	for _, c := range b.cells {
		if c {
			n++
		}
	}
	return n
}

// Neighbors counts live cells among the eight surrounding (x, y).
func (b *Board) Neighbors(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if (dx != 0 || dy != 0) && b.Get(x+dx, y+dy) {
				n++
			}
		}
	}
	return n
}

// Step applies B3/S23 and returns the next generation.
func (b *Board) Step() *Board {
	next := &Board{
		width:  b.width,
		height: b.height,
		cells:  make([]bool, len(b.cells)),
	}
	for y := range b.height {
		for x := range b.width {
			n := b.Neighbors(x, y)
			next.cells[y*b.width+x] = n == 3 || (n == 2 && b.cells[y*b.width+x])
		}
	}
	return next
}

// Advance returns the board n generations ahead, checking ctx between
// generations.
func (b *Board) Advance(ctx context.Context, n int) (*Board, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidGenerations, n)
	}
	cur := b
	for range n {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		cur = cur.Step()
	}
	return cur, nil
}

// Equal reports whether both boards have the same size and cells.
func (b *Board) Equal(o *Board) bool {
	if b.width != o.width || b.height != o.height {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// String renders the board in the format accepted by Parse.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.width + 1) * b.height)
	for y := range b.height {
		for x := range b.width {
			if b.cells[y*b.width+x] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (b *Board) index(x, y int) int {
	x = ((x % b.width) + b.width) % b.width
	y = ((y % b.height) + b.height) % b.height
	return y*b.width + x
}
