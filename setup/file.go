package setup

import (
	"fmt"
	"os"

	"tron/game"

	"gopkg.in/yaml.v3"
)

// Position file layout:
//
//	rows: 3
//	cols: 3
//	left: [[1, 3]]
//	right: [[3, 1]]
type positionFile struct {
	Rows  int      `yaml:"rows"`
	Cols  int      `yaml:"cols"`
	Left  [][2]int `yaml:"left"`
	Right [][2]int `yaml:"right"`
}

func LoadFile(path string) (*game.Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read position file: %w", err)
	}
	return Parse(data)
}

// Parse builds a board from a YAML position document.
func Parse(data []byte) (*game.Board, error) {
	var file positionFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrMalformedInput)
	}
	return game.NewBoard(file.Rows, file.Cols, zeroBased(file.Left), zeroBased(file.Right))
}

func zeroBased(coords [][2]int) []game.Position {
	positions := make([]game.Position, len(coords))
	for i, c := range coords {
		positions[i] = game.Position{Row: c[0] - 1, Col: c[1] - 1}
	}
	return positions
}
