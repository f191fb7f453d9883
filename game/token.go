package game

// Position is a zero-based grid coordinate.
type Position struct {
	Row int
	Col int
}

// Token is a light cycle on the board. Only the owning Board moves it.
type Token struct {
	Row  int
	Col  int
	Side Side
}

func (t Token) Position() Position {
	return Position{Row: t.Row, Col: t.Col}
}

// Direction is a unit step along one grid axis.
type Direction struct {
	Name string
	DRow int
	DCol int
}

// Directions lists the four axis directions in generation order.
var Directions = [4]Direction{
	{Name: "east", DRow: 0, DCol: 1},
	{Name: "west", DRow: 0, DCol: -1},
	{Name: "north", DRow: -1, DCol: 0},
	{Name: "south", DRow: 1, DCol: 0},
}
