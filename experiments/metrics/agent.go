package metrics

import "time"

// AgentConfig describes one agent taking part in an experiment. Zero fields
// fall back to the agent's defaults.
type AgentConfig struct {
	ID         int           `yaml:"id"`
	Kind       string        `yaml:"kind"` // alphabeta, mcts or random
	Depth      int           `yaml:"depth,omitempty"`
	Threshold  int           `yaml:"threshold,omitempty"`
	Shallow    int           `yaml:"shallow,omitempty"`
	Deep       int           `yaml:"deep,omitempty"`
	Evaluation string        `yaml:"evaluation,omitempty"` // position or material
	Goroutines int           `yaml:"goroutines,omitempty"`
	Episodes   int           `yaml:"episodes,omitempty"`
	Duration   time.Duration `yaml:"duration,omitempty"`
	Cutoff     int           `yaml:"cutoff,omitempty"`
	Opening    int           `yaml:"opening,omitempty"` // random plies before the agent takes over
	Seed       uint64        `yaml:"seed,omitempty"`
}
