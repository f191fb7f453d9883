package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// RandomBoard places the requested number of tokens for each side on
// distinct cells of an otherwise open board.
func RandomBoard(rng *rand.Rand, rows, cols, left, right int) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", rows, cols, ErrInvalidSize)
	}
	if left < 0 || right < 0 || left+right > rows*cols {
		return nil, fmt.Errorf("%d tokens on %d cells: %w", left+right, rows*cols, ErrOverlap)
	}

	cells := rng.Perm(rows * cols)
	positions := make([]Position, left+right)
	for i := range positions {
		positions[i] = Position{Row: cells[i] / cols, Col: cells[i] % cols}
	}
	return NewBoard(rows, cols, positions[:left], positions[left:])
}
