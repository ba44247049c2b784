package experiments

import (
	"fmt"
	"os"

	"passo/experiments/metrics"
	"passo/meta"

	"gopkg.in/yaml.v3"
)

// Experiment is a set of agents and the pairs of them that play each other.
type Experiment struct {
	Name     string                `yaml:"name"`
	Games    int                   `yaml:"games"` // per matchup
	Agents   []metrics.AgentConfig `yaml:"agents"`
	Matchups [][]int               `yaml:"matchups"` // pairs of agent IDs
}

// DefaultExperiment pits the default alpha-beta agent against a shallower
// search, the material evaluation, MCTS and a random player.
func DefaultExperiment() *Experiment {
	return &Experiment{
		Name:  "depth",
		Games: meta.GAMES,
		Agents: []metrics.AgentConfig{
			{ID: 1, Kind: AlphaBeta, Opening: 2},
			{ID: 2, Kind: AlphaBeta, Depth: 1, Opening: 2},
			{ID: 3, Kind: AlphaBeta, Evaluation: Material, Opening: 2},
			{ID: 4, Kind: MCTS, Goroutines: meta.GO_ROUTINES, Episodes: meta.EPISODES},
			{ID: 5, Kind: Random},
		},
		Matchups: [][]int{{1, 2}, {1, 3}, {1, 4}, {1, 5}},
	}
}

// LoadExperiment reads an experiment from a YAML file.
func LoadExperiment(path string) (*Experiment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read experiment: %w", err)
	}
	return ParseExperiment(data)
}

func ParseExperiment(data []byte) (*Experiment, error) {
	var exp Experiment
	if err := yaml.Unmarshal(data, &exp); err != nil {
		return nil, fmt.Errorf("failed to parse experiment: %w", err)
	}
	if exp.Games <= 0 {
		exp.Games = meta.GAMES
	}
	if err := exp.Validate(); err != nil {
		return nil, err
	}
	return &exp, nil
}

// Validate checks that every matchup names two known agents and every agent
// can be built.
func (e *Experiment) Validate() error {
	if e.Name == "" {
		return fmt.Errorf("experiment has no name")
	}
	ids := make(map[int]bool, len(e.Agents))
	for _, config := range e.Agents {
		if ids[config.ID] {
			return fmt.Errorf("duplicate agent id %d", config.ID)
		}
		ids[config.ID] = true
		if _, err := NewAgent(config, 0); err != nil {
			return err
		}
	}
	if len(e.Matchups) == 0 {
		return fmt.Errorf("experiment %s has no matchups", e.Name)
	}
	for i, matchup := range e.Matchups {
		if len(matchup) != 2 {
			return fmt.Errorf("matchup %d: want 2 agents, got %d", i+1, len(matchup))
		}
		for _, id := range matchup {
			if !ids[id] {
				return fmt.Errorf("matchup %d: unknown agent id %d", i+1, id)
			}
		}
	}
	return nil
}

func (e *Experiment) agent(id int) metrics.AgentConfig {
	for _, config := range e.Agents {
		if config.ID == id {
			return config
		}
	}
	panic(fmt.Sprintf("unknown agent id %d", id))
}
