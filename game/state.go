package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strings"
)

type StateHash uint64

// undoRecord holds what Reverse needs to take back one Apply.
type undoRecord struct {
	move      Move
	captured  bool
	winner    Side              // winner before the move
	collapsed map[Position]Side // cells vacated by the region collapse, with their prior occupancy
}

// BoardState is the mutable game position. It is changed only through Apply and
// Reverse (and Concede), so its counters always agree with the grid.
type BoardState struct {
	occupancy [Size][Size]Side // indexed [x][y]
	active    [Size][Size]bool // once false, never true again except through Reverse
	pieces    [3]int           // indexed by Side; pieces[None] is unused
	turn      Side
	moves     int
	winner    Side
	history   []undoRecord
}

// NewGame returns the starting position: PlayerA on row Size-1, PlayerB on row 0,
// every cell active and PlayerA to move.
func NewGame() *BoardState {
	s := &BoardState{turn: PlayerA}
	for x := 0; x < Size; x++ {
		s.occupancy[x][0] = PlayerB
		s.occupancy[x][Size-1] = PlayerA
		for y := 0; y < Size; y++ {
			s.active[x][y] = true
		}
	}
	s.pieces[PlayerA] = Size
	s.pieces[PlayerB] = Size
	return s
}

// Parse builds a position from Size lines of Size characters, top row (y=0)
// first: 'A' and 'B' are pieces, '.' is an empty active cell and '#' an inactive
// one. Whitespace around lines is ignored.
func Parse(layout string, turn Side) (*BoardState, error) {
	if turn != PlayerA && turn != PlayerB {
		return nil, fmt.Errorf("cannot parse board: invalid side to move %v", turn)
	}
	var rows []string
	for _, line := range strings.Split(layout, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			rows = append(rows, line)
		}
	}
	if len(rows) != Size {
		return nil, fmt.Errorf("cannot parse board: want %d rows, got %d", Size, len(rows))
	}

	s := &BoardState{turn: turn}
	for y, row := range rows {
		if len(row) != Size {
			return nil, fmt.Errorf("cannot parse board: row %d has %d cells, want %d", y, len(row), Size)
		}
		for x, c := range row {
			switch c {
			case 'A':
				s.occupancy[x][y] = PlayerA
				s.active[x][y] = true
				s.pieces[PlayerA]++
			case 'B':
				s.occupancy[x][y] = PlayerB
				s.active[x][y] = true
				s.pieces[PlayerB]++
			case '.':
				s.active[x][y] = true
			case '#':
			default:
				return nil, fmt.Errorf("cannot parse board: unknown cell %q at (%d,%d)", c, x, y)
			}
		}
	}
	return s, nil
}

// MustParse is Parse for layouts known to be valid, such as test fixtures.
func MustParse(layout string, turn Side) *BoardState {
	s, err := Parse(layout, turn)
	if err != nil {
		panic(err)
	}
	return s
}

// Copy returns an independent copy, undo history included.
func (s *BoardState) Copy() *BoardState {
	c := *s
	c.history = make([]undoRecord, len(s.history))
	copy(c.history, s.history) // records are never mutated after Apply
	return &c
}

func (s *BoardState) At(p Position) Side {
	return s.occupancy[p.X][p.Y]
}

func (s *BoardState) Active(p Position) bool {
	return s.active[p.X][p.Y]
}

// Pieces returns how many pieces side has on the board.
func (s *BoardState) Pieces(side Side) int {
	if side != PlayerA && side != PlayerB {
		return 0
	}
	return s.pieces[side]
}

func (s *BoardState) TotalPieces() int {
	return s.pieces[PlayerA] + s.pieces[PlayerB]
}

func (s *BoardState) Turn() Side {
	return s.turn
}

// MoveNumber returns the number of moves applied so far.
func (s *BoardState) MoveNumber() int {
	return s.moves
}

func (s *BoardState) Winner() Side {
	return s.winner
}

// LastCollapse returns the cells vacated by the most recent collapse, mapped to
// their occupancy before it. The result is a copy.
func (s *BoardState) LastCollapse() map[Position]Side {
	if len(s.history) == 0 {
		return map[Position]Side{}
	}
	last := s.history[len(s.history)-1].collapsed
	out := make(map[Position]Side, len(last))
	for p, side := range last {
		out[p] = side
	}
	return out
}

// Concede ends the game in favour of the opponent of the side to move. It is
// used when that side has no legal move left. A later Reverse of the preceding
// move restores the earlier winner.
func (s *BoardState) Concede() {
	s.winner = s.turn.Opponent()
}

// Hash identifies a position by occupancy, activity, side to move and winner.
func (s *BoardState) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(s.turn))
	binary.Write(hasher, binary.LittleEndian, int64(s.winner))

	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			cell := int8(s.occupancy[x][y])
			if !s.active[x][y] {
				cell = -1
			}
			binary.Write(hasher, binary.LittleEndian, cell)
		}
	}

	return StateHash(hasher.Sum64())
}

// String renders the board in the layout accepted by Parse.
func (s *BoardState) String() string {
	var b strings.Builder
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			b.WriteByte(s.cellRune(Position{X: x, Y: y}))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (s *BoardState) cellRune(p Position) byte {
	switch {
	case s.occupancy[p.X][p.Y] == PlayerA:
		return 'A'
	case s.occupancy[p.X][p.Y] == PlayerB:
		return 'B'
	case s.active[p.X][p.Y]:
		return '.'
	}
	return '#'
}
