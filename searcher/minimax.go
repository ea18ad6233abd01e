package searcher

import "othello/game"

// Minimax is the plain fixed-depth minimax search, the reference point the
// pruned searches must agree with.
type Minimax struct {
	depth    int
	evaluate game.Evaluate
	metrics  Collector
}

// NewMinimax builds a minimax search exploring depth plies. Depths below 1
// are clamped to 1.
func NewMinimax(depth int, evaluate game.Evaluate, options ...Option) *Minimax {
	if depth < 1 {
		depth = 1
	}
	s := newSettings(options...)
	return &Minimax{depth: depth, evaluate: evaluate, metrics: s.metrics}
}

// FindMove evaluates every legal root move and keeps the strictly best one in
// enumeration order, so ties keep the first candidate seen.
func (m *Minimax) FindMove(state game.State) (game.Move, bool) {
	m.metrics.Start()
	m.metrics.SetDepth(m.depth)

	var best game.Move
	bestValue := -inf
	for _, move := range state.LegalMoves() {
		value := m.value(state.Play(move), m.depth-1, false)
		if best == nil || value > bestValue {
			bestValue, best = value, move
		}
	}
	if best == nil {
		return nil, false
	}
	return best, true
}

// value backs up the minimax evaluation of state with depth plies remaining.
// A node whose side to move has no legal move is scored where it stands,
// whether the game is over or the side must pass.
func (m *Minimax) value(state game.State, depth int, maximizing bool) int {
	if depth <= 0 || state.GameOver() {
		m.metrics.AddLeaf()
		return m.evaluate(state)
	}
	moves := state.LegalMoves()
	if len(moves) == 0 {
		m.metrics.AddLeaf()
		return m.evaluate(state)
	}
	m.metrics.AddNode()

	if maximizing {
		best := -inf
		for _, move := range moves {
			if value := m.value(state.Play(move), depth-1, false); value > best {
				best = value
			}
		}
		return best
	}
	best := inf
	for _, move := range moves {
		if value := m.value(state.Play(move), depth-1, true); value < best {
			best = value
		}
	}
	return best
}
