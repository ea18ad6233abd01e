package searcher

import (
	"time"

	"othello/game"

	"github.com/rs/zerolog/log"
)

// Iterative is the time-bounded search: it re-runs a depth-limited
// alpha-beta pass from scratch at increasing depth until the wall-clock
// budget runs out, and answers with the best move of the deepest pass that
// completed. The deadline is polled at the entry of every recursive call, so
// a pass in flight when time expires unwinds quickly; a single expensive
// leaf evaluation can still overrun the budget by its own cost.
type Iterative struct {
	budget   time.Duration
	evaluate game.Evaluate
	metrics  Collector
}

// NewIterative builds a search bounded by the given wall-clock budget. A
// zero or negative budget is honored literally: every move request returns
// no move.
func NewIterative(budget time.Duration, evaluate game.Evaluate, options ...Option) *Iterative {
	s := newSettings(options...)
	return &Iterative{budget: budget, evaluate: evaluate, metrics: s.metrics}
}

// FindMove deepens from depth 1, adopting each completed pass's move as the
// incumbent answer. A pass cut short at the top level stops the loop and the
// incumbent stands. ok is false when no depth completed at all.
func (s *Iterative) FindMove(state game.State) (game.Move, bool) {
	s.metrics.Start()
	deadline := time.Now().Add(s.budget)

	var best game.Move
	for depth := 1; time.Now().Before(deadline); depth++ {
		result := s.search(state, depth, -inf, inf, true, deadline)
		if result.timedOut || result.move == nil {
			break
		}
		best = result.move
		s.metrics.SetDepth(depth)
		log.Debug().Msgf("depth %d completed: move %s value %d", depth, best, result.value)
	}
	if best == nil {
		return nil, false
	}
	return best, true
}

// search is one depth-limited alpha-beta pass against the deadline. A call
// entered after the deadline returns the timeout sentinel without touching
// the state. A parent never compares a sentinel child's value and never
// adopts its move; a node whose every child returned the sentinel propagates
// it.
func (s *Iterative) search(state game.State, depth, alpha, beta int, maximizing bool, deadline time.Time) outcome {
	if !time.Now().Before(deadline) {
		return outcome{timedOut: true}
	}
	if depth <= 0 || state.GameOver() {
		s.metrics.AddLeaf()
		return outcome{value: s.evaluate(state)}
	}
	moves := state.LegalMoves()
	if len(moves) == 0 {
		s.metrics.AddLeaf()
		return outcome{value: s.evaluate(state)}
	}
	s.metrics.AddNode()

	var best game.Move
	if maximizing {
		value := -inf
		for _, move := range moves {
			child := s.search(state.Play(move), depth-1, alpha, beta, false, deadline)
			if child.timedOut {
				continue
			}
			if best == nil || child.value > value {
				value, best = child.value, move
			}
			if value > alpha {
				alpha = value
			}
			if alpha >= beta {
				s.metrics.AddPrune()
				break
			}
		}
		if best == nil {
			return outcome{timedOut: true}
		}
		return outcome{value: value, move: best}
	}

	value := inf
	for _, move := range moves {
		child := s.search(state.Play(move), depth-1, alpha, beta, true, deadline)
		if child.timedOut {
			continue
		}
		if best == nil || child.value < value {
			value, best = child.value, move
		}
		if value < beta {
			beta = value
		}
		if beta <= alpha {
			s.metrics.AddPrune()
			break
		}
	}
	if best == nil {
		return outcome{timedOut: true}
	}
	return outcome{value: value, move: best}
}
