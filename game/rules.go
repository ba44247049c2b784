package game

// IsLegal reports whether the side to move may play m: From holds one of its
// pieces, To is an in-bounds active king's-move neighbour of From and does not
// hold one of its own pieces.
func (s *BoardState) IsLegal(m Move) bool {
	from, to := m.From, m.To
	if !from.InBounds() || !to.InBounds() {
		return false
	}
	if s.occupancy[from.X][from.Y] != s.turn {
		return false
	}
	dx, dy := abs(to.X-from.X), abs(to.Y-from.Y)
	if max(dx, dy) != 1 {
		return false
	}
	if s.occupancy[to.X][to.Y] == s.turn {
		return false
	}
	return s.active[to.X][to.Y]
}

// LegalMoves lists every legal move for the side to move. Pieces are scanned
// column by column (x outer, y inner) and each piece's neighbours in offset
// order; search relies on this order for tie-breaking.
func (s *BoardState) LegalMoves() []Move {
	var moves []Move
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			if s.occupancy[x][y] != s.turn {
				continue
			}
			from := Position{X: x, Y: y}
			for _, offset := range offsets {
				move := Move{From: from, To: neighbour(from, offset)}
				if s.IsLegal(move) {
					moves = append(moves, move)
				}
			}
		}
	}
	return moves
}

func (s *BoardState) HasLegalMoves() bool {
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			if s.occupancy[x][y] != s.turn {
				continue
			}
			from := Position{X: x, Y: y}
			for _, offset := range offsets {
				if s.IsLegal(Move{From: from, To: neighbour(from, offset)}) {
					return true
				}
			}
		}
	}
	return false
}
