// Package agent maps decision policies onto a single capability: choose a
// move for the side to act. Human and random agents live here; the search
// agents wrap the searcher package.
package agent

import (
	"os"
	"time"

	"othello/game"
	"othello/searcher"

	"github.com/rs/zerolog/log"
)

// Agent picks a move for the side it plays. ok is false when the agent has
// no move to offer: the position has no legal move, or its search budget
// expired before any depth completed. Agents are built once per game and
// hold no state across turns beyond their fixed parameters.
type Agent interface {
	ChooseMove(state game.State) (move game.Move, ok bool)
}

// Search adapts a root searcher into an Agent.
func Search(s searcher.Searcher) Agent {
	return searchAgent{searcher: s}
}

type searchAgent struct {
	searcher searcher.Searcher
}

func (a searchAgent) ChooseMove(state game.State) (game.Move, bool) {
	return a.searcher.FindMove(state)
}

// New builds the agent for a policy kind. param is the search depth in plies
// for the fixed-depth policies and the time budget in milliseconds for the
// timed one; non-positive values are clamped to 1. Unknown kinds degrade to
// random play instead of failing.
func New(kind string, color game.Color, param int, options ...searcher.Option) Agent {
	if param < 1 {
		param = 1
	}
	evaluate := game.EvaluateFor(color)

	switch kind {
	case "human":
		return NewHuman(color, os.Stdin, os.Stdout)
	case "random":
		return NewRandom()
	case "minimax":
		return Search(searcher.NewMinimax(param, evaluate, options...))
	case "alphabeta":
		return Search(searcher.NewAlphaBeta(param, evaluate, options...))
	case "timed":
		return Search(searcher.NewIterative(time.Duration(param)*time.Millisecond, evaluate, options...))
	default:
		log.Warn().Msgf("unknown policy %q, falling back to random", kind)
		return NewRandom()
	}
}
