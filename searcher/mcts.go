package searcher

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"passo/experiments/metrics"
	"passo/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type MCTSOption func(mcts *MCTS)

// step is one applied move, kept so a simulation can unwind its state.
type step struct {
	move     game.Move
	captured bool
}

// MCTS is a tree-parallel Monte Carlo tree search agent with virtual loss.
// Each goroutine copies the position once and then plays and reverses moves
// on its copy; the caller's state is never modified.
type MCTS struct {
	goroutines int
	duration   time.Duration
	episodes   int
	cutoff     int
	seed       uint64
	evaluate   game.Evaluate
}

func WithDuration(duration time.Duration) MCTSOption {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

func WithEpisodes(episodes int) MCTSOption {
	return func(m *MCTS) {
		if episodes > 0 {
			m.episodes = episodes
		}
	}
}

// WithCutoff stops rollouts after depth moves and scores them with the
// evaluation function.
func WithCutoff(depth int) MCTSOption {
	return func(m *MCTS) {
		if depth > 0 {
			m.cutoff = depth
		}
	}
}

func WithSeed(seed uint64) MCTSOption {
	return func(m *MCTS) {
		m.seed = seed
	}
}

func WithRolloutEvaluation(evaluate game.Evaluate) MCTSOption {
	return func(m *MCTS) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func NewMCTS(goroutines int, options ...MCTSOption) *MCTS {
	m := &MCTS{ // Default values
		goroutines: max(goroutines, 1),
		cutoff:     MaxCutoff,
		seed:       1,
		evaluate:   game.EvaluatePosition,
	}
	for _, option := range options {
		option(m)
	}
	if m.episodes <= 0 && m.duration <= 0 {
		panic("Must specify search episodes or duration")
	}
	return m
}

func (m *MCTS) ChooseMove(state *game.BoardState) game.Move {
	move, _ := m.FindMove(state)
	return move
}

// FindMove runs the simulations and returns the most visited root move. In the
// returned metric Nodes counts episodes and Leaves the rollouts that reached
// the end of the game.
func (m *MCTS) FindMove(state *game.BoardState) (game.Move, metrics.SearchMetric) {
	if state.Winner() != game.None {
		panic(fmt.Sprintf("cannot search: game already won by %v", state.Winner()))
	}
	if !state.HasLegalMoves() {
		panic(fmt.Sprintf("cannot search: %v has no legal moves", state.Turn()))
	}

	start := time.Now()
	root := newNode(nil, game.Move{}, state)
	var episodes, fullPlayouts atomic.Int64

	run := func(worker int, next func() bool) {
		local := state.Copy()
		rng := rand.New(rand.NewSource(m.seed + uint64(worker)))
		for next() {
			if m.simulate(root, local, rng) {
				fullPlayouts.Add(1)
			}
			episodes.Add(1)
		}
	}
	if m.episodes > 0 {
		m.iterate(run)
	} else {
		m.countdown(run)
	}

	move, _ := root.bestMove()
	metric := metrics.SearchMetric{
		Duration: time.Since(start),
		Nodes:    int(episodes.Load()),
		Leaves:   int(fullPlayouts.Load()),
		Value:    rootValue(root, state.Turn()),
	}
	log.Debug().Msgf("%v ran %d episodes: move %v value %d", state.Turn(), metric.Nodes, move, metric.Value)
	return move, metric
}

func (m *MCTS) iterate(run func(worker int, next func() bool)) {
	task := make(chan any, m.episodes)
	for i := 0; i < m.episodes; i++ {
		task <- nil
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			run(worker, func() bool {
				_, ok := <-task
				return ok
			})
		}(i)
	}
	wg.Wait()
}

func (m *MCTS) countdown(run func(worker int, next func() bool)) {
	done := make(chan any)

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			run(worker, func() bool {
				select {
				case <-done:
					return false
				default:
					return true
				}
			})
		}(i)
	}

	<-time.After(m.duration)
	close(done)
	wg.Wait()
}

// simulate runs one episode on state and restores it afterwards. It reports
// whether the rollout reached the end of the game.
func (m *MCTS) simulate(root *node, state *game.BoardState, rng *rand.Rand) bool {
	var path []step
	leaf := selectThenExpand(root, state, &path)
	reward, full := m.rollout(state, rng, &path)
	for n := leaf; n != nil; {
		n = n.backup(reward)
	}
	for i := len(path) - 1; i >= 0; i-- {
		reverse(state, path[i].move, path[i].captured)
	}
	return full
}

func selectThenExpand(root *node, state *game.BoardState, path *[]step) *node {
	n := root
	for {
		n.Lock()
		if move, ok := n.expand(); ok { // Expandable node
			captured := apply(state, move)
			*path = append(*path, step{move: move, captured: captured})
			child := newNode(n, move, state)
			n.children = append(n.children, child)
			n.Unlock()
			child.applyLoss()
			return child
		}
		if len(n.children) == 0 { // Terminal node
			n.Unlock()
			return n
		}
		child := n.pickChild() // Fully expanded node
		n.Unlock()

		child.applyLoss()
		captured := apply(state, child.move)
		*path = append(*path, step{move: child.move, captured: captured})
		n = child
	}
}

// rollout plays random moves until the game ends or the cutoff is reached and
// returns the reward per side.
func (m *MCTS) rollout(state *game.BoardState, rng *rand.Rand, path *[]step) (func(game.Side) float64, bool) {
	for depth := 0; state.Winner() == game.None && depth < m.cutoff; depth++ {
		moves := state.LegalMoves()
		if len(moves) == 0 {
			break
		}
		move := moves[rng.Intn(len(moves))] // Random rollout policy
		captured := apply(state, move)
		*path = append(*path, step{move: move, captured: captured})
	}

	if winner := outcome(state); winner != game.None {
		return rewarder(winner), true
	}

	// At cutoff, turn the evaluation into PlayerA's chance of winning
	p := float64(m.evaluate(state)+game.MaxScore) / (2 * game.MaxScore)
	return func(side game.Side) float64 {
		if side == game.PlayerA {
			return p
		}
		return 1 - p
	}, false
}

// outcome returns the winner of state, counting a side without legal moves as
// lost, or None while the game goes on.
func outcome(state *game.BoardState) game.Side {
	if winner := state.Winner(); winner != game.None {
		return winner
	}
	if !state.HasLegalMoves() {
		return state.Turn().Opponent()
	}
	return game.None
}

func rewarder(winner game.Side) func(player game.Side) float64 {
	return func(player game.Side) float64 {
		if player == winner {
			return Win
		}
		return Loss
	}
}

// rootValue converts the best child's win rate into the absolute score scale.
func rootValue(root *node, turn game.Side) int {
	var best *node
	for _, child := range root.children {
		if best == nil || child.visits > best.visits {
			best = child
		}
	}
	if best == nil || best.visits == 0 {
		return 0
	}
	rate := best.rewards / best.visits // for the side to move at the root
	value := int(math.Round(float64(game.MaxScore) * (2*rate - 1)))
	if turn == game.PlayerB {
		value = -value
	}
	return value
}
