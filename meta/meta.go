// meta/meta.go
package meta

// GO_ROUTINES defines the number of goroutines to use.
const GO_ROUTINES = 8

// EPISODES defines the number of episodes for MCTS.
const EPISODES = 400

// MAX_TURNS bounds a game. Every move retires its origin cell, so a game on
// the 5x5 board ends within 25 moves.
const MAX_TURNS = 25

// DEPTH_THRESHOLD is the piece count at or below which alpha-beta searches
// DEEP_DEPTH instead of SHALLOW_DEPTH.
const DEPTH_THRESHOLD = 7

const SHALLOW_DEPTH = 2

const DEEP_DEPTH = 3

// GAMES defines the number of games per experiment matchup.
const GAMES = 10
