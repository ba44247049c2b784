package game

const (
	advanceWeight = 5 // per row of progress toward the goal row
	safetyBonus   = 2 // for a piece with no enemy piece next to it
	materialValue = 100
)

// EvaluatePosition weighs each piece by its progress toward its side's current
// goal row, adds a bonus for pieces no enemy piece touches, and short-circuits
// to ±MaxScore when the side to move already stands on its goal row.
func EvaluatePosition(s *BoardState) int {
	goalA, goalB := s.WinLine()
	goal := goalA
	if s.turn == PlayerB {
		goal = goalB
	}
	if s.occupiesRow(s.turn, goal) {
		return TerminalScore(s.turn)
	}

	score := 0
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			p := Position{X: x, Y: y}
			switch s.occupancy[x][y] {
			case PlayerA:
				score += advanceWeight * (Size - max(y-goalA, 0))
				if !s.threatened(p) {
					score += safetyBonus
				}
			case PlayerB:
				score -= advanceWeight * (Size - max(goalB-y, 0))
				if !s.threatened(p) {
					score -= safetyBonus
				}
			}
		}
	}
	return clamp(score)
}

// EvaluateMaterial only counts pieces.
func EvaluateMaterial(s *BoardState) int {
	return clamp(materialValue * (s.pieces[PlayerA] - s.pieces[PlayerB]))
}

// threatened reports whether an enemy piece stands next to the piece on p.
func (s *BoardState) threatened(p Position) bool {
	enemy := s.occupancy[p.X][p.Y].Opponent()
	for _, offset := range offsets {
		n := neighbour(p, offset)
		if n.InBounds() && s.occupancy[n.X][n.Y] == enemy {
			return true
		}
	}
	return false
}

func (s *BoardState) occupiesRow(side Side, y int) bool {
	for x := 0; x < Size; x++ {
		if s.occupancy[x][y] == side {
			return true
		}
	}
	return false
}

// TerminalScore returns the score of a game won by winner.
func TerminalScore(winner Side) int {
	if winner == PlayerA {
		return MaxScore
	}
	return -MaxScore
}

func clamp(score int) int {
	return min(max(score, -MaxScore), MaxScore)
}
