package game

import "fmt"

// Apply plays m for the side to move and reports whether it captured an enemy
// piece. After the relocation the origin cell is retired, every isolated region
// collapses, and the turn passes to the opponent. The move wins outright when it
// lands on the mover's goal row or takes the opponent's last piece.
func (s *BoardState) Apply(m Move) (bool, error) {
	if !s.IsLegal(m) {
		return false, fmt.Errorf("%w: %v for %v", ErrIllegalMove, m, s.turn)
	}

	from, to := m.From, m.To
	mover, opponent := s.turn, s.turn.Opponent()
	record := undoRecord{move: m, winner: s.winner}

	record.captured = s.occupancy[to.X][to.Y] != None
	s.occupancy[from.X][from.Y] = None
	s.occupancy[to.X][to.Y] = mover
	if record.captured {
		s.pieces[opponent]--
	}

	if to.Y == s.GoalRow(mover) || s.pieces[opponent] == 0 {
		s.winner = mover
	}

	s.active[from.X][from.Y] = false
	record.collapsed = s.collapse()
	s.history = append(s.history, record)

	s.turn = opponent
	s.moves++
	return record.captured, nil
}

// collapse retires every isolated region, removing the pieces inside it, and
// returns the vacated cells with their prior occupancy.
func (s *BoardState) collapse() map[Position]Side {
	regions := FindIsolatedRegions(&s.occupancy, &s.active)
	if len(regions) == 0 {
		return nil
	}

	cells := make(map[Position]Side)
	for _, region := range regions {
		for _, p := range region {
			side := s.occupancy[p.X][p.Y]
			cells[p] = side
			if side != None {
				s.pieces[side]--
			}
			s.occupancy[p.X][p.Y] = None
			s.active[p.X][p.Y] = false
		}
	}
	return cells
}

// Reverse takes back the most recent Apply, which must have been m with the
// given capture flag. The state afterwards equals the state before that Apply.
func (s *BoardState) Reverse(m Move, wasCaptured bool) error {
	n := len(s.history)
	if n == 0 {
		return fmt.Errorf("%w: no move to reverse", ErrInvalidReversal)
	}
	record := s.history[n-1]
	if record.move != m || record.captured != wasCaptured {
		return fmt.Errorf("%w: %v (capture %t) is not the last applied move %v (capture %t)",
			ErrInvalidReversal, m, wasCaptured, record.move, record.captured)
	}
	s.history = s.history[:n-1]

	for p, side := range record.collapsed {
		s.occupancy[p.X][p.Y] = side
		s.active[p.X][p.Y] = true
		if side != None {
			s.pieces[side]++
		}
	}

	s.moves--
	s.turn = s.turn.Opponent()
	s.winner = record.winner

	from, to := m.From, m.To
	mover := s.turn
	if wasCaptured {
		s.pieces[mover.Opponent()]++
		s.occupancy[to.X][to.Y] = mover.Opponent()
	} else {
		s.occupancy[to.X][to.Y] = None
	}
	s.occupancy[from.X][from.Y] = mover
	s.active[from.X][from.Y] = true
	return nil
}

// WinLine returns the goal rows of both sides. PlayerA's goal starts at row 0
// and PlayerB's at row Size-1; each moves one row inward for every fully
// inactive row along its edge.
func (s *BoardState) WinLine() (goalA, goalB int) {
	goalA, goalB = 0, Size-1
	for y := 0; y < Size && s.rowInactive(y); y++ {
		goalA++
	}
	for y := Size - 1; y >= 0 && s.rowInactive(y); y-- {
		goalB--
	}
	return goalA, goalB
}

// GoalRow returns the row side must reach to win.
func (s *BoardState) GoalRow(side Side) int {
	goalA, goalB := s.WinLine()
	if side == PlayerA {
		return goalA
	}
	return goalB
}

func (s *BoardState) rowInactive(y int) bool {
	for x := 0; x < Size; x++ {
		if s.active[x][y] {
			return false
		}
	}
	return true
}
