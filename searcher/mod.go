package searcher

import "passo/meta"

// Default alpha-beta depth policy. Fewer pieces mean fewer moves per ply, so
// the endgame can afford the deeper search.
const (
	DepthThreshold = meta.DEPTH_THRESHOLD
	ShallowDepth   = meta.SHALLOW_DEPTH
	DeepDepth      = meta.DEEP_DEPTH
)

// Hyperparameters for MCTS

const CSquared = 2.0 // Exploration constant

// Use rewards to estimate the chance of winning
const Win = 1.0
const Loss = 1 - Win

// MaxCutoff bounds a rollout; every move retires a cell, so no game outlasts it.
const MaxCutoff = meta.MAX_TURNS
