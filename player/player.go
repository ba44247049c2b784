package player

import (
	"passo/experiments/metrics"
	"passo/game"

	"golang.org/x/exp/rand"
)

// Player picks the move for the side to move. It must leave state as it found
// it.
type Player interface {
	ChooseMove(state *game.BoardState) game.Move
}

// Searcher is a Player that also reports statistics on its search.
type Searcher interface {
	Player
	FindMove(state *game.BoardState) (game.Move, metrics.SearchMetric)
}

// Random plays a uniformly random legal move from a seeded source.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) ChooseMove(state *game.BoardState) game.Move {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}
	}
	return moves[r.rng.Intn(len(moves))]
}

// Opening plays random moves for the first plies of a game and defers to
// inner afterwards, so that games between deterministic agents differ.
type Opening struct {
	inner  Player
	plies  int
	random *Random
}

func NewOpening(inner Player, plies int, seed uint64) *Opening {
	return &Opening{inner: inner, plies: plies, random: NewRandom(seed)}
}

func (o *Opening) ChooseMove(state *game.BoardState) game.Move {
	if state.MoveNumber() < o.plies {
		return o.random.ChooseMove(state)
	}
	return o.inner.ChooseMove(state)
}

// FindMove passes on the search statistics of inner. Random plies report none.
func (o *Opening) FindMove(state *game.BoardState) (game.Move, metrics.SearchMetric) {
	if state.MoveNumber() < o.plies {
		return o.random.ChooseMove(state), metrics.SearchMetric{}
	}
	if searcher, ok := o.inner.(Searcher); ok {
		return searcher.FindMove(state)
	}
	return o.inner.ChooseMove(state), metrics.SearchMetric{}
}
