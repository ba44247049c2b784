package engine

import (
	"fmt"
	"time"

	"passo/experiments/metrics"
	"passo/game"
	"passo/meta"
	"passo/player"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

type Option func(e *Local)

// WithState starts the game from state instead of the opening position.
func WithState(state *game.BoardState) Option {
	return func(e *Local) {
		if state != nil {
			e.state = state
		}
	}
}

func WithMaxTurns(turns int) Option {
	return func(e *Local) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

type played struct {
	move     game.Move
	captured bool
}

// Local drives a game between two players in one process. Players are handed
// the engine's own state and must leave it unchanged.
type Local struct {
	state       *game.BoardState
	players     map[game.Side]player.Player
	maxTurns    int
	history     []played
	moveMetrics []metrics.MoveMetric
}

func NewLocal(a, b player.Player, options ...Option) *Local {
	if a == nil || b == nil {
		panic("need two players")
	}
	e := &Local{
		state:    game.NewGame(),
		players:  map[game.Side]player.Player{game.PlayerA: a, game.PlayerB: b},
		maxTurns: meta.MAX_TURNS,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *Local) State() *game.BoardState {
	return e.state
}

// Play applies move for the side to move after checking it against the legal
// moves.
func (e *Local) Play(move game.Move) error {
	if e.state.Winner() != game.None {
		return fmt.Errorf("%w: game already won by %v", game.ErrIllegalMove, e.state.Winner())
	}
	if !slices.Contains(e.state.LegalMoves(), move) {
		return fmt.Errorf("%w: %v for %v", game.ErrIllegalMove, move, e.state.Turn())
	}
	captured, err := e.state.Apply(move)
	if err != nil {
		return err
	}
	e.history = append(e.history, played{move: move, captured: captured})
	return nil
}

// Undo takes back the last move played, with its move metric.
func (e *Local) Undo() error {
	n := len(e.history)
	if n == 0 {
		return ErrNothingToUndo
	}
	last := e.history[n-1]
	if err := e.state.Reverse(last.move, last.captured); err != nil {
		return err
	}
	e.history = e.history[:n-1]
	if m := len(e.moveMetrics); m > 0 && e.moveMetrics[m-1].Step > e.state.MoveNumber() {
		e.moveMetrics = e.moveMetrics[:m-1]
	}
	log.Debug().Msgf("took back %v", last.move)
	return nil
}

// Run executes the game loop until a winner is found or the turn limit is hit.
// A side left without a legal move loses.
func (e *Local) Run() (game.Side, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.state.Turn(),
		StartTime:      time.Now(),
	}
	log.Info().Msgf("%v is starting", e.state.Turn())

	for e.state.Winner() == game.None && e.state.MoveNumber() < e.maxTurns {
		side := e.state.Turn()
		if !e.state.HasLegalMoves() {
			log.Info().Msgf("%v has no legal moves left", side)
			e.state.Concede()
			break
		}

		move, search := e.choose(side)
		if err := e.Play(move); err != nil {
			fallback := e.state.LegalMoves()[0]
			log.Warn().Err(err).Msgf("%v chose an invalid move, playing %v instead", side, fallback)
			if err := e.Play(fallback); err != nil {
				panic(fmt.Sprintf("failed to play fallback move: %v", err))
			}
			move = fallback
		}

		e.moveMetrics = append(e.moveMetrics, metrics.MoveMetric{
			Step:         e.state.MoveNumber(),
			Player:       side,
			Move:         move,
			SearchMetric: search,
		})
		log.Debug().Msgf("move %d: %v played %v (captured %t)",
			e.state.MoveNumber(), side, move, e.history[len(e.history)-1].captured)
	}

	winner := e.state.Winner()
	if winner != game.None {
		log.Info().Msgf("game over after %d moves, winner: %v", e.state.MoveNumber(), winner)
	} else {
		log.Info().Msgf("stopped after %d moves without a winner", e.state.MoveNumber())
	}

	gameMetric.Winner = winner
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = e.state.MoveNumber()
	return winner, gameMetric, e.moveMetrics
}

func (e *Local) choose(side game.Side) (game.Move, metrics.SearchMetric) {
	p := e.players[side]
	if searcher, ok := p.(player.Searcher); ok {
		return searcher.FindMove(e.state)
	}
	start := time.Now()
	move := p.ChooseMove(e.state)
	return move, metrics.SearchMetric{Duration: time.Since(start)}
}
