package agent

import (
	"time"

	"othello/game"

	"golang.org/x/exp/rand"
)

// Random plays a uniformly random legal move.
type Random struct {
	rng *rand.Rand
}

func NewRandom() *Random {
	return &Random{rng: rand.New(rand.NewSource(uint64(time.Now().UnixNano())))}
}

func (a *Random) ChooseMove(state game.State) (game.Move, bool) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return nil, false
	}
	return moves[a.rng.Intn(len(moves))], true
}
