package game

import "strings"

// Markers maps cell states to the characters printed for them.
type Markers struct {
	Open      string
	Destroyed string
	Left      string
	Right     string
}

var DefaultMarkers = Markers{
	Open:      "+",
	Destroyed: "X",
	Left:      "L",
	Right:     "R",
}

func (m Markers) marker(c Cell) string {
	switch c {
	case Open:
		return m.Open
	case Destroyed:
		return m.Destroyed
	}
	if side, _ := c.Owner(); side == Left {
		return m.Left
	}
	return m.Right
}

// Render prints the grid row by row, one marker per cell separated by
// spaces.
func (b *Board) Render(m Markers) string {
	var sb strings.Builder
	row := make([]string, b.cols)
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			row[c] = m.marker(b.At(r, c))
		}
		sb.WriteString(strings.Join(row, " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (b *Board) String() string {
	return b.Render(DefaultMarkers)
}
