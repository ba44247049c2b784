package engine

import (
	"errors"

	"passo/experiments/metrics"
	"passo/game"
)

// ErrNothingToUndo is returned by Undo before any move has been played.
var ErrNothingToUndo = errors.New("nothing to undo")

type Engine interface {
	// Run plays the game till there's a winner or a max number of moves is reached
	Run() (winner game.Side, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
