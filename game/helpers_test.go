package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// view is the observable part of a BoardState, comparable with require.Equal.
type view struct {
	Occupancy [Size][Size]Side
	Active    [Size][Size]bool
	Pieces    [3]int
	Turn      Side
	Moves     int
	Winner    Side
}

func snapshot(s *BoardState) view {
	return view{
		Occupancy: s.occupancy,
		Active:    s.active,
		Pieces:    s.pieces,
		Turn:      s.turn,
		Moves:     s.moves,
		Winner:    s.winner,
	}
}

// playouts plays random games from the starting position and calls visit on
// every position reached before a move is applied.
func playouts(t *testing.T, seed uint64, games int, visit func(s *BoardState)) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	for g := 0; g < games; g++ {
		s := NewGame()
		for s.Winner() == None {
			moves := s.LegalMoves()
			if len(moves) == 0 {
				break
			}
			visit(s)
			_, err := s.Apply(moves[rng.Intn(len(moves))])
			require.NoError(t, err, "Random playout should only apply legal moves")
		}
	}
}
