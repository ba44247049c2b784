package experiments

import (
	"fmt"

	"passo/engine"
	"passo/experiments/metrics"
	"passo/game"

	"github.com/rs/zerolog/log"
)

// Result holds the records of a finished experiment.
type Result struct {
	Games []metrics.GameRecord
	Moves []metrics.MoveRecord
}

// Wins counts the games each agent won, by agent ID, and the games without a
// winner.
func (r Result) Wins() (wins map[int]int, draws int) {
	wins = make(map[int]int)
	for _, record := range r.Games {
		switch record.Winner {
		case game.PlayerA:
			wins[record.AgentA]++
		case game.PlayerB:
			wins[record.AgentB]++
		default:
			draws++
		}
	}
	return wins, draws
}

// Run plays every matchup of exp, swapping sides after each game so both
// agents start equally often.
func Run(exp *Experiment) (Result, error) {
	if err := exp.Validate(); err != nil {
		return Result{}, err
	}

	count := 0
	var result Result

	log.Info().Msgf("starting %s experiment...", exp.Name)

	for mi, matchup := range exp.Matchups {
		config1 := exp.agent(matchup[0])
		config2 := exp.agent(matchup[1])

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(exp.Matchups), config1, config2)

		for i := 0; i < exp.Games; i++ {
			first, second := config1, config2
			if i%2 == 1 {
				first, second = config2, config1
			}
			count++

			winner, gameMetric, moveMetrics, err := runGame(first, second, uint64(count))
			if err != nil {
				return Result{}, err
			}
			result.Games = append(result.Games, metrics.GameRecord{
				ID:         count,
				AgentA:     first.ID,
				AgentB:     second.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				result.Moves = append(result.Moves, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d of %d with winner: %v", mi+1, len(exp.Matchups), i+1, exp.Games, winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(exp.Matchups))
	}

	wins, draws := result.Wins()
	log.Info().Msgf("completed %s experiment: wins by agent %v, %d without a winner", exp.Name, wins, draws)
	return result, nil
}

// Store writes the agent configs and the records of result as CSV files
// under root and returns the directory used.
func Store(root string, exp *Experiment, result Result) (string, error) {
	writer, err := metrics.NewWriter(root, exp.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(exp.Agents); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(result.Games); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(result.Moves); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

// runGame plays a single game with first as PlayerA and second as PlayerB.
func runGame(first, second metrics.AgentConfig, seed uint64) (game.Side, metrics.GameMetric, []metrics.MoveMetric, error) {
	a, err := NewAgent(first, seed)
	if err != nil {
		return game.None, metrics.GameMetric{}, nil, err
	}
	b, err := NewAgent(second, seed)
	if err != nil {
		return game.None, metrics.GameMetric{}, nil, err
	}

	winner, gameMetric, moveMetrics := engine.NewLocal(a, b).Run()
	return winner, gameMetric, moveMetrics, nil
}
