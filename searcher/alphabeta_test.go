package searcher

import (
	"testing"

	"othello/game"

	"github.com/stretchr/testify/require"
)

func TestAlphaBetaAgreesWithMinimax(t *testing.T) {
	trees := map[string]*treeState{
		"scenario tree":    scenarioTree(),
		"wider tree":       tree(3, []int{4, -2, 7, 0, 1, -5, 9, 3, -1}),
		"uneven values":    tree(2, []int{-8, -8, 12, -3}),
		"forced pass leaf": {children: []*treeState{{value: 2, forcedPass: true}, {value: -1}}},
	}
	evaluate := game.EvaluateFor(game.Black)

	for name, root := range trees {
		t.Run(name, func(t *testing.T) {
			for depth := 1; depth <= 4; depth++ {
				m := NewMinimax(depth, evaluate)
				ab := NewAlphaBeta(depth, evaluate)

				require.Equal(t, m.value(root, depth, true), ab.value(root, depth, -inf, inf, true),
					"Pruning must preserve the backed-up value at depth %d", depth)

				mMove, mOK := m.FindMove(root)
				abMove, abOK := ab.FindMove(root)
				require.Equal(t, mOK, abOK)
				require.Equal(t, mMove, abMove, "Both searches should choose the same move at depth %d", depth)
			}
		})
	}
}

func TestAlphaBetaScenario(t *testing.T) {
	evaluate := game.EvaluateFor(game.Black)
	mmMetrics := NewCollector()
	abMetrics := NewCollector()
	m := NewMinimax(3, evaluate, WithMetrics(mmMetrics))
	ab := NewAlphaBeta(3, evaluate, WithMetrics(abMetrics))
	root := scenarioTree()

	require.Equal(t, 5, m.value(root, 3, true))
	require.Equal(t, 5, ab.value(root, 3, -inf, inf, true))

	mMove, ok := m.FindMove(root)
	require.True(t, ok)
	abMove, ok := ab.FindMove(root)
	require.True(t, ok)
	require.Equal(t, mMove, abMove)

	mmLeaves := mmMetrics.Complete().Leaves
	abLeaves := abMetrics.Complete().Leaves
	require.LessOrEqual(t, abLeaves, mmLeaves, "Alpha-beta should never evaluate more leaves than minimax")
}

func TestAlphaBetaPrunesDominatedBranch(t *testing.T) {
	// The second root subtree is dominated: its first leaf pair already
	// backs up below the first subtree's value, so the rest is skipped.
	evaluate := game.EvaluateFor(game.Black)
	mmMetrics := NewCollector()
	abMetrics := NewCollector()
	root := scenarioTree()

	_, ok := NewMinimax(3, evaluate, WithMetrics(mmMetrics)).FindMove(root)
	require.True(t, ok)
	_, ok = NewAlphaBeta(3, evaluate, WithMetrics(abMetrics)).FindMove(root)
	require.True(t, ok)

	mm := mmMetrics.Complete()
	ab := abMetrics.Complete()
	require.Less(t, ab.Leaves, mm.Leaves, "Alpha-beta should evaluate strictly fewer leaves on a dominated branch")
	require.Positive(t, ab.Prunes, "Alpha-beta should record at least one cut")
	require.Zero(t, mm.Prunes)
}

func TestAlphaBetaNoLegalMoves(t *testing.T) {
	ab := NewAlphaBeta(3, game.EvaluateFor(game.Black))

	move, ok := ab.FindMove(&treeState{value: 1})

	require.False(t, ok, "A terminal state should yield no move")
	require.Nil(t, move)
}

func TestAlphaBetaDepthClamped(t *testing.T) {
	ab := NewAlphaBeta(-2, game.EvaluateFor(game.Black))

	move, ok := ab.FindMove(scenarioTree())

	require.True(t, ok, "A non-positive depth should clamp to 1 and still search")
	require.NotNil(t, move)
}
