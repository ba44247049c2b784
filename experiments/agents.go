package experiments

import (
	"fmt"

	"passo/experiments/metrics"
	"passo/game"
	"passo/player"
	"passo/searcher"
)

// Agent kinds
const (
	AlphaBeta = "alphabeta"
	MCTS      = "mcts"
	Random    = "random"
)

// Evaluation functions
const (
	Position = "position"
	Material = "material"
)

func evaluation(name string) (game.Evaluate, error) {
	switch name {
	case "", Position:
		return game.EvaluatePosition, nil
	case Material:
		return game.EvaluateMaterial, nil
	}
	return nil, fmt.Errorf("unknown evaluation %q", name)
}

// NewAgent builds the player described by config. offset is added to the
// configured seed so that repeated games differ.
func NewAgent(config metrics.AgentConfig, offset uint64) (player.Player, error) {
	evaluate, err := evaluation(config.Evaluation)
	if err != nil {
		return nil, fmt.Errorf("agent %d: %w", config.ID, err)
	}
	seed := config.Seed + offset

	var p player.Player
	switch config.Kind {
	case AlphaBeta:
		p = searcher.NewAlphaBeta(
			searcher.WithDepthPolicy(config.Threshold, config.Shallow, config.Deep),
			searcher.WithDepth(config.Depth),
			searcher.WithEvaluationFn(evaluate),
			searcher.WithMetrics(),
		)
	case MCTS:
		if config.Episodes <= 0 && config.Duration <= 0 {
			return nil, fmt.Errorf("agent %d: mcts needs episodes or a duration", config.ID)
		}
		p = searcher.NewMCTS(config.Goroutines,
			searcher.WithEpisodes(config.Episodes),
			searcher.WithDuration(config.Duration),
			searcher.WithCutoff(config.Cutoff),
			searcher.WithRolloutEvaluation(evaluate),
			searcher.WithSeed(seed),
		)
	case Random:
		return player.NewRandom(seed), nil
	default:
		return nil, fmt.Errorf("agent %d: unknown kind %q", config.ID, config.Kind)
	}

	if config.Opening > 0 {
		p = player.NewOpening(p, config.Opening, seed)
	}
	return p, nil
}
