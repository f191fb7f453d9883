package game

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSize     = errors.New("board dimensions must be positive")
	ErrOutOfBounds     = errors.New("position is outside the board")
	ErrOverlap         = errors.New("cell already holds a token")
	ErrNoToken         = errors.New("no such token")
	ErrNotAxisAligned  = errors.New("move is not along a single axis")
	ErrStationary      = errors.New("move does not leave the current cell")
	ErrOutcomeAssigned = errors.New("outcome already assigned")
	ErrUnknownOutcome  = errors.New("cannot assign the unknown outcome")
)

// Board is a Tron position: a fixed-size grid, the tokens of both sides and
// the outcome class once it has been determined.
type Board struct {
	rows    int
	cols    int
	grid    []Cell // row-major
	left    []Token
	right   []Token
	outcome Outcome
}

// NewBoard builds the initial position. All cells start open, then each
// token's starting cell is occupied by its side.
func NewBoard(rows, cols int, left, right []Position) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", rows, cols, ErrInvalidSize)
	}

	b := &Board{
		rows:  rows,
		cols:  cols,
		grid:  make([]Cell, rows*cols),
		left:  make([]Token, 0, len(left)),
		right: make([]Token, 0, len(right)),
	}
	if err := b.place(Left, left); err != nil {
		return nil, err
	}
	if err := b.place(Right, right); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Board) place(side Side, starts []Position) error {
	for _, p := range starts {
		if !b.InBounds(p.Row, p.Col) {
			return fmt.Errorf("%s token at (%d, %d): %w", side, p.Row, p.Col, ErrOutOfBounds)
		}
		if b.At(p.Row, p.Col) != Open {
			return fmt.Errorf("%s token at (%d, %d): %w", side, p.Row, p.Col, ErrOverlap)
		}
		b.set(p.Row, p.Col, Occupied(side))
		token := Token{Row: p.Row, Col: p.Col, Side: side}
		if side == Left {
			b.left = append(b.left, token)
		} else {
			b.right = append(b.right, token)
		}
	}
	return nil
}

// Clone returns an independent copy of the grid and tokens. The outcome of
// the copy is Unknown.
func (b *Board) Clone() *Board {
	gridCopy := make([]Cell, len(b.grid))
	copy(gridCopy, b.grid)

	leftCopy := make([]Token, len(b.left))
	copy(leftCopy, b.left)

	rightCopy := make([]Token, len(b.right))
	copy(rightCopy, b.right)

	return &Board{
		rows:  b.rows,
		cols:  b.cols,
		grid:  gridCopy,
		left:  leftCopy,
		right: rightCopy,
	}
}

// Move slides the index-th token of side in a straight line to (row, col).
// Every cell swept, origin and destination included, is destroyed, then the
// destination is occupied by the token. Whether the path was open is not
// checked; Children only proposes legal moves.
func (b *Board) Move(side Side, index int, row, col int) error {
	tokens := b.tokens(side)
	if index < 0 || index >= len(tokens) {
		return fmt.Errorf("%s token %d: %w", side, index, ErrNoToken)
	}
	token := &tokens[index]

	if row == token.Row && col == token.Col {
		return fmt.Errorf("%s token %d to (%d, %d): %w", side, index, row, col, ErrStationary)
	}
	if row != token.Row && col != token.Col {
		return fmt.Errorf("%s token %d from (%d, %d) to (%d, %d): %w",
			side, index, token.Row, token.Col, row, col, ErrNotAxisAligned)
	}
	if !b.InBounds(row, col) {
		return fmt.Errorf("%s token %d to (%d, %d): %w", side, index, row, col, ErrOutOfBounds)
	}

	fromRow, toRow := order(token.Row, row)
	fromCol, toCol := order(token.Col, col)
	for r := fromRow; r <= toRow; r++ {
		for c := fromCol; c <= toCol; c++ {
			b.set(r, c, Destroyed)
		}
	}
	b.set(row, col, Occupied(side))
	token.Row = row
	token.Col = col
	return nil
}

func order(a, b int) (int, int) {
	if a <= b {
		return a, b
	}
	return b, a
}

func (b *Board) tokens(side Side) []Token {
	if side == Left {
		return b.left
	}
	return b.right
}

// Tokens returns a copy of the given side's tokens in placement order.
func (b *Board) Tokens(side Side) []Token {
	tokens := b.tokens(side)
	out := make([]Token, len(tokens))
	copy(out, tokens)
	return out
}

func (b *Board) Rows() int { return b.rows }
func (b *Board) Cols() int { return b.cols }

func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// At returns the cell at (row, col). It panics outside the grid.
func (b *Board) At(row, col int) Cell {
	if !b.InBounds(row, col) {
		panic(fmt.Sprintf("cell (%d, %d) outside %dx%d board", row, col, b.rows, b.cols))
	}
	return b.grid[row*b.cols+col]
}

func (b *Board) set(row, col int, cell Cell) {
	b.grid[row*b.cols+col] = cell
}

// OpenCells counts the cells no token has visited.
func (b *Board) OpenCells() int {
	count := 0
	for _, cell := range b.grid {
		if cell == Open {
			count++
		}
	}
	return count
}

func (b *Board) Outcome() Outcome {
	return b.outcome
}

// SetOutcome records the outcome class. The field is write-once: assigning a
// different class after the first assignment fails.
func (b *Board) SetOutcome(o Outcome) error {
	if o == Unknown {
		return ErrUnknownOutcome
	}
	if b.outcome != Unknown && b.outcome != o {
		return fmt.Errorf("have %s, got %s: %w", b.outcome, o, ErrOutcomeAssigned)
	}
	b.outcome = o
	return nil
}
