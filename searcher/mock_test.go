package searcher

import (
	"fmt"
	"time"

	"othello/game"
)

// branch identifies a child of a synthetic tree node.
type branch struct {
	index int
}

func (b branch) String() string { return fmt.Sprintf("child%d", b.index) }

// treeState is a hand-built game tree for exercising the searches against
// known values. value is the node's static score from the maximizer's
// perspective; children are the legal moves in order. A node with no
// children is terminal unless forcedPass is set, which models a side with no
// legal move in a game that is not over. delay is slept on every Play out of
// the node, to give leaves a measurable cost in budget tests.
type treeState struct {
	value      int
	children   []*treeState
	forcedPass bool
	delay      time.Duration
}

func (s *treeState) Player() game.Color { return game.Black }

func (s *treeState) LegalMoves() []game.Move {
	moves := make([]game.Move, len(s.children))
	for i := range s.children {
		moves[i] = branch{index: i}
	}
	return moves
}

func (s *treeState) Play(move game.Move) game.State {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	return s.children[move.(branch).index]
}

func (s *treeState) GameOver() bool { return len(s.children) == 0 && !s.forcedPass }

func (s *treeState) Score() int { return s.value }

// tree builds a balanced tree with the given branching factor over the leaf
// values. Inner nodes carry a zero static score.
func tree(branching int, leaves []int) *treeState {
	if len(leaves) <= branching {
		children := make([]*treeState, len(leaves))
		for i, v := range leaves {
			children[i] = &treeState{value: v}
		}
		return &treeState{children: children}
	}
	chunk := len(leaves) / branching
	children := make([]*treeState, branching)
	for i := 0; i < branching; i++ {
		children[i] = tree(branching, leaves[i*chunk:(i+1)*chunk])
	}
	return &treeState{children: children}
}

// scenarioTree is the 8-leaf, branching-2 tree whose minimax value at depth 3
// is 5: leaf pairs max to [5 9 4 7], the pairs min to [5 4], the root maxes
// to 5 through its first child.
func scenarioTree() *treeState {
	return tree(2, []int{3, 5, 2, 9, 1, 4, 7, 6})
}
