// Package setup builds initial positions from user input. Coordinates are
// 1-based wherever a person types or writes them.
package setup

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"tron/game"
)

var ErrMalformedInput = errors.New("malformed input")

type prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// Prompt asks for the board size, then the number and locations of each
// side's tokens.
func Prompt(in io.Reader, out io.Writer) (*game.Board, error) {
	p := &prompter{scanner: bufio.NewScanner(in), out: out}

	size, err := p.ints("Enter in the board size (m n): ", 2)
	if err != nil {
		return nil, fmt.Errorf("board size: %w", err)
	}

	left, err := p.tokens(game.Left)
	if err != nil {
		return nil, err
	}
	right, err := p.tokens(game.Right)
	if err != nil {
		return nil, err
	}

	return game.NewBoard(size[0], size[1], left, right)
}

func (p *prompter) tokens(side game.Side) ([]game.Position, error) {
	count, err := p.ints(fmt.Sprintf("How many %s bikes do you want? ", side), 1)
	if err != nil {
		return nil, fmt.Errorf("%s token count: %w", side, err)
	}
	if count[0] < 0 {
		return nil, fmt.Errorf("%s token count %d: %w", side, count[0], ErrMalformedInput)
	}

	positions := make([]game.Position, 0, count[0])
	for i := 0; i < count[0]; i++ {
		location, err := p.ints(fmt.Sprintf("Bike %d location (r c): ", i+1), 2)
		if err != nil {
			return nil, fmt.Errorf("%s token %d: %w", side, i+1, err)
		}
		positions = append(positions, game.Position{Row: location[0] - 1, Col: location[1] - 1})
	}
	return positions, nil
}

func (p *prompter) ints(prompt string, n int) ([]int, error) {
	fmt.Fprint(p.out, prompt)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("unexpected end of input: %w", ErrMalformedInput)
	}
	return parseInts(p.scanner.Text(), n)
}

func parseInts(line string, n int) ([]int, error) {
	fields := strings.Fields(line)
	if len(fields) != n {
		return nil, fmt.Errorf("want %d numbers, got %q: %w", n, line, ErrMalformedInput)
	}
	values := make([]int, n)
	for i, field := range fields {
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number: %w", field, ErrMalformedInput)
		}
		values[i] = v
	}
	return values, nil
}
