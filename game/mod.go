package game

import "errors"

// Size is the number of rows and columns on the board.
const Size = 5

// MaxScore bounds every evaluation: a won position for PlayerA scores MaxScore,
// a won position for PlayerB scores -MaxScore.
const MaxScore = 1000

// Side identifies who occupies a cell or whose turn it is.
type Side int

const (
	None Side = iota
	PlayerA
	PlayerB
)

func (s Side) Opponent() Side {
	switch s {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	}
	return None
}

func (s Side) String() string {
	switch s {
	case PlayerA:
		return "PlayerA"
	case PlayerB:
		return "PlayerB"
	}
	return "None"
}

var (
	// ErrIllegalMove is returned by Apply for a move that fails IsLegal.
	ErrIllegalMove = errors.New("illegal move")
	// ErrInvalidReversal is returned by Reverse when the move does not match the last applied move.
	ErrInvalidReversal = errors.New("invalid reversal")
)

// Evaluate scores a position on an absolute scale in [-MaxScore, MaxScore];
// positive values favour PlayerA.
type Evaluate func(*BoardState) int
