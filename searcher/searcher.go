// Package searcher implements the move-selection searches: fixed-depth
// minimax, fixed-depth alpha-beta, and time-bounded iterative-deepening
// alpha-beta. All searches are single-threaded and recurse over cloned
// successor states; they never mutate or retain the states they are given.
package searcher

import (
	"math"

	"othello/game"
)

// inf bounds the backed-up values. MaxInt32 leaves headroom so negation and
// comparison never overflow.
const inf = int(math.MaxInt32)

// outcome is the tagged result of one depth-limited pass: a backed-up value
// with the move that produced it, or a timeout sentinel. The sentinel is a
// flag, never a reserved numeric value, so it cannot collide with a real
// evaluation.
type outcome struct {
	value    int
	move     game.Move
	timedOut bool
}

// Searcher is the root entry point shared by all searches. ok is false when
// there is no move to report: the position has no legal move, or the time
// budget expired before any depth completed.
type Searcher interface {
	FindMove(state game.State) (move game.Move, ok bool)
}

type settings struct {
	metrics Collector
}

type Option func(*settings)

// WithMetrics attaches a collector counting nodes, leaf evaluations and
// prune events. The default collector discards everything.
func WithMetrics(c Collector) Option {
	return func(s *settings) {
		if c != nil {
			s.metrics = c
		}
	}
}

func newSettings(options ...Option) settings {
	s := settings{metrics: NewDummyCollector()}
	for _, option := range options {
		option(&s)
	}
	return s
}
