package searcher

import (
	"fmt"
	"math"

	"passo/experiments/metrics"
	"passo/game"

	"github.com/rs/zerolog/log"
)

type Option func(ab *AlphaBeta)

// AlphaBeta is a depth-limited minimax agent with alpha-beta pruning. It
// explores by applying and reversing moves on the caller's state, which is
// restored before every return.
type AlphaBeta struct {
	depth     int // fixed depth; 0 selects the piece-count policy
	threshold int
	shallow   int
	deep      int
	evaluate  game.Evaluate
	metrics   metrics.Collector
}

// WithDepth searches every position to the given depth.
func WithDepth(depth int) Option {
	return func(ab *AlphaBeta) {
		if depth > 0 {
			ab.depth = depth
		}
	}
}

// WithDepthPolicy searches shallow while more than threshold pieces remain on
// the board and deep once the count drops to threshold or below.
func WithDepthPolicy(threshold, shallow, deep int) Option {
	return func(ab *AlphaBeta) {
		if threshold >= 0 && shallow > 0 && deep > 0 {
			ab.depth = 0
			ab.threshold = threshold
			ab.shallow = shallow
			ab.deep = deep
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(ab *AlphaBeta) {
		if evaluate != nil {
			ab.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(ab *AlphaBeta) {
		ab.metrics = metrics.NewCollector()
	}
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	ab := &AlphaBeta{ // Default values
		threshold: DepthThreshold,
		shallow:   ShallowDepth,
		deep:      DeepDepth,
		evaluate:  game.EvaluatePosition,
		metrics:   metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(ab)
	}
	return ab
}

// Depth returns the search depth used for state.
func (ab *AlphaBeta) Depth(state *game.BoardState) int {
	if ab.depth > 0 {
		return ab.depth
	}
	if state.TotalPieces() > ab.threshold {
		return ab.shallow
	}
	return ab.deep
}

// ChooseMove returns the best move for the side to move.
func (ab *AlphaBeta) ChooseMove(state *game.BoardState) game.Move {
	move, _ := ab.FindMove(state)
	return move
}

// FindMove searches state at the policy depth over the full score window and
// returns the best move with the search statistics. It panics if the game is
// over or the side to move has no legal move.
func (ab *AlphaBeta) FindMove(state *game.BoardState) (game.Move, metrics.SearchMetric) {
	if state.Winner() != game.None {
		panic(fmt.Sprintf("cannot search: game already won by %v", state.Winner()))
	}
	if !state.HasLegalMoves() {
		panic(fmt.Sprintf("cannot search: %v has no legal moves", state.Turn()))
	}

	depth := ab.Depth(state)
	ab.metrics.Start(depth)
	value, move, _ := ab.Search(state, depth, -game.MaxScore, game.MaxScore)
	metric := ab.metrics.Complete(value)

	log.Debug().Msgf("%v searched depth %d: move %v value %d (%d nodes, %d cutoffs)",
		state.Turn(), depth, move, value, metric.Nodes, metric.Cutoffs)
	return move, metric
}

// Search returns the minimax value of state to the given depth within the
// window [alpha, beta], and the first best move found when state has one.
// PlayerA maximises, PlayerB minimises. A side left without moves loses: its
// opponent is recorded as winner on state, which the Reverse of the move that
// led here undoes.
//
// Apply and Reverse errors are invariant violations and panic.
func (ab *AlphaBeta) Search(state *game.BoardState, depth, alpha, beta int) (int, game.Move, bool) {
	ab.metrics.AddNode()

	if winner := state.Winner(); winner != game.None {
		return game.TerminalScore(winner), game.Move{}, false
	}

	moves := state.LegalMoves()
	if len(moves) == 0 || state.Pieces(state.Turn()) == 0 {
		state.Concede()
		return game.TerminalScore(state.Winner()), game.Move{}, false
	}

	if depth == 0 {
		ab.metrics.AddLeaf()
		return ab.evaluate(state), game.Move{}, false
	}

	maximizing := state.Turn() == game.PlayerA
	best := math.MaxInt
	if maximizing {
		best = math.MinInt
	}
	var bestMove game.Move

	for _, move := range moves {
		captured := apply(state, move)
		value, _, _ := ab.Search(state, depth-1, alpha, beta)
		reverse(state, move, captured)

		// Strict comparison: earlier moves win ties.
		if maximizing && value > best || !maximizing && value < best {
			best = value
			bestMove = move
		}
		if maximizing {
			alpha = max(alpha, best)
		} else {
			beta = min(beta, best)
		}
		if alpha >= beta {
			ab.metrics.AddCutoff()
			break
		}
	}
	return best, bestMove, true
}

func apply(state *game.BoardState, move game.Move) bool {
	captured, err := state.Apply(move)
	if err != nil {
		panic(fmt.Sprintf("search: %v", err))
	}
	return captured
}

func reverse(state *game.BoardState, move game.Move, captured bool) {
	if err := state.Reverse(move, captured); err != nil {
		panic(fmt.Sprintf("search: %v", err))
	}
}
