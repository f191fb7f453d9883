package game

// Children enumerates every position reachable by one move of one token.
// A token may slide one or more cells along any axis while the cells ahead
// are open in b; each distance is a separate child.
func Children(b *Board) (left, right []*Board) {
	left = sideChildren(b, Left)
	right = sideChildren(b, Right)
	return left, right
}

func sideChildren(b *Board, side Side) []*Board {
	var children []*Board
	for i, token := range b.tokens(side) {
		for _, dir := range Directions {
			child := b.Clone()
			row, col := token.Row+dir.DRow, token.Col+dir.DCol
			// Legality is read from the unmoved board.
			for b.InBounds(row, col) && b.At(row, col) == Open {
				if err := child.Move(side, i, row, col); err != nil {
					panic(err)
				}
				children = append(children, child)
				child = child.Clone()
				row += dir.DRow
				col += dir.DCol
			}
		}
	}
	return children
}
