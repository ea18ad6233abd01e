package searcher

import "othello/game"

// AlphaBeta is the fixed-depth search with alpha-beta pruning. Pruning only
// skips subtrees that cannot change the decision: for any state and depth the
// backed-up value equals Minimax's.
type AlphaBeta struct {
	depth    int
	evaluate game.Evaluate
	metrics  Collector
}

// NewAlphaBeta builds an alpha-beta search exploring depth plies. Depths
// below 1 are clamped to 1.
func NewAlphaBeta(depth int, evaluate game.Evaluate, options ...Option) *AlphaBeta {
	if depth < 1 {
		depth = 1
	}
	s := newSettings(options...)
	return &AlphaBeta{depth: depth, evaluate: evaluate, metrics: s.metrics}
}

// FindMove mirrors Minimax.FindMove: first strictly best root move wins. The
// running best value tightens alpha across the root candidates.
func (ab *AlphaBeta) FindMove(state game.State) (game.Move, bool) {
	ab.metrics.Start()
	ab.metrics.SetDepth(ab.depth)

	var best game.Move
	bestValue := -inf
	for _, move := range state.LegalMoves() {
		value := ab.value(state.Play(move), ab.depth-1, bestValue, inf, false)
		if best == nil || value > bestValue {
			bestValue, best = value, move
		}
	}
	if best == nil {
		return nil, false
	}
	return best, true
}

// value is minimax with alpha/beta bounds threaded through the recursion.
// alpha is the value the maximizer can already guarantee, beta the
// minimizer's; a sibling loop stops as soon as the window closes.
func (ab *AlphaBeta) value(state game.State, depth, alpha, beta int, maximizing bool) int {
	if depth <= 0 || state.GameOver() {
		ab.metrics.AddLeaf()
		return ab.evaluate(state)
	}
	moves := state.LegalMoves()
	if len(moves) == 0 {
		ab.metrics.AddLeaf()
		return ab.evaluate(state)
	}
	ab.metrics.AddNode()

	if maximizing {
		best := -inf
		for _, move := range moves {
			if value := ab.value(state.Play(move), depth-1, alpha, beta, false); value > best {
				best = value
			}
			if best > alpha {
				alpha = best
			}
			if alpha >= beta {
				ab.metrics.AddPrune()
				break
			}
		}
		return best
	}
	best := inf
	for _, move := range moves {
		if value := ab.value(state.Play(move), depth-1, alpha, beta, true); value < best {
			best = value
		}
		if best < beta {
			beta = best
		}
		if beta <= alpha {
			ab.metrics.AddPrune()
			break
		}
	}
	return best
}
