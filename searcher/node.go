package searcher

import (
	"math"
	"sync"

	"passo/game"
)

// node is a position in the MCTS tree. Rewards are counted from the point of
// view of player, the side whose move led to the node.
type node struct {
	sync.Mutex
	parent     *node
	move       game.Move
	player     game.Side
	unexplored []game.Move // legal moves not yet expanded, in generation order
	children   []*node
	rewards    float64
	visits     float64
}

func newNode(parent *node, move game.Move, state *game.BoardState) *node {
	n := &node{
		parent: parent,
		move:   move,
		player: state.Turn().Opponent(),
	}
	if state.Winner() == game.None {
		n.unexplored = state.LegalMoves()
	}
	return n
}

// expand takes the next unexplored move. The caller holds the lock.
func (n *node) expand() (game.Move, bool) {
	if len(n.unexplored) == 0 {
		return game.Move{}, false
	}
	move := n.unexplored[0]
	n.unexplored = n.unexplored[1:]
	return move, true
}

// pickChild returns the child with the highest UCT score. The caller holds the lock.
func (n *node) pickChild() *node {
	// The root has no virtual loss, so concurrent simulations can reach it
	// fully expanded before any of them has backed up.
	numerator := CSquared * math.Log(max(n.visits, 1))

	var best *node
	maxScore := math.Inf(-1)
	for _, child := range n.children {
		if score := child.score(numerator); score > maxScore {
			maxScore = score
			best = child
		}
	}
	return best
}

func (n *node) score(numerator float64) float64 {
	n.Lock()
	defer n.Unlock()

	if n.visits == 0 {
		return math.Inf(1)
	}
	// UCT = q/n + sqrt(c^2*ln(N)/n)
	return n.rewards/n.visits + math.Sqrt(numerator/n.visits)
}

// applyLoss counts a pending simulation as lost so that concurrent
// simulations spread over other children.
func (n *node) applyLoss() {
	n.Lock()
	defer n.Unlock()

	n.rewards += Loss
	n.visits++
}

func (n *node) backup(reward func(game.Side) float64) *node {
	n.Lock()
	defer n.Unlock()

	if n.parent != nil { // Non-root nodes carry a virtual loss
		n.rewards -= Loss
		n.visits--
	}

	n.rewards += reward(n.player)
	n.visits++

	return n.parent
}

// bestMove returns the move of the most visited child; earlier children win
// ties. It must not run concurrently with simulations.
func (n *node) bestMove() (game.Move, bool) {
	var best *node
	for _, child := range n.children {
		if best == nil || child.visits > best.visits {
			best = child
		}
	}
	if best == nil {
		return game.Move{}, false
	}
	return best.move, true
}
