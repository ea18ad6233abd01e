// Package engine drives a local game between two agents: it alternates the
// sides, applies the chosen moves, handles forced passes and forfeits, and
// reports the outcome.
package engine

import (
	"othello/agent"
	"othello/game"

	"github.com/rs/zerolog/log"
)

// maxPlies guards the loop against a rules-engine defect; an Othello game
// including passes stays far below it.
const maxPlies = 256

type Engine struct {
	state  game.State
	agents map[game.Color]agent.Agent
}

// Outcome is the result of one finished game.
type Outcome struct {
	Winner  game.Color // Empty on a draw
	Score   int        // final fixed-perspective score, positive favors Black
	Plies   int        // moves played, passes included
	Forfeit game.Color // side that yielded without a move, Empty if none
}

// Local builds an engine for a game between two agents starting from the
// given state.
func Local(black, white agent.Agent, state game.State) *Engine {
	return &Engine{
		state: state,
		agents: map[game.Color]agent.Agent{
			game.Black: black,
			game.White: white,
		},
	}
}

// Run plays the game to the end and returns the outcome. A side with no
// legal move passes; a side whose agent yields without a move while moves
// exist forfeits and the opponent wins.
func (e *Engine) Run() Outcome {
	log.Info().Msgf("%s is starting", e.state.Player())

	plies := 0
	forfeit := game.Empty
	for !e.state.GameOver() && plies < maxPlies {
		mover := e.state.Player()
		if len(e.state.LegalMoves()) == 0 {
			log.Debug().Msgf("%s has no move and passes", mover)
			e.state = e.state.Play(game.Pass)
			plies++
			continue
		}

		move, ok := e.agents[mover].ChooseMove(e.state)
		if !ok {
			log.Warn().Msgf("%s yields without a move and forfeits", mover)
			forfeit = mover
			break
		}
		log.Debug().Msgf("%s plays %s", mover, move)
		e.state = e.state.Play(move)
		plies++
	}

	outcome := Outcome{Score: e.state.Score(), Plies: plies, Forfeit: forfeit}
	switch {
	case forfeit != game.Empty:
		outcome.Winner = forfeit.Opponent()
	case outcome.Score > 0:
		outcome.Winner = game.Black
	case outcome.Score < 0:
		outcome.Winner = game.White
	}
	log.Info().Msgf("game over after %d plies: winner %s, score %d", outcome.Plies, outcome.Winner, outcome.Score)
	return outcome
}
