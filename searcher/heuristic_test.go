package searcher

import (
	"testing"

	"othello/game"

	"github.com/stretchr/testify/require"
)

func TestLegalMovesHeuristic(t *testing.T) {
	t.Run("symmetric opening picks the first move", func(t *testing.T) {
		board := game.InitialState()

		require.Equal(t, game.Move{Row: 2, Col: 3}, MaximizeLegalMovesDifference.FindMove(board, game.Black))
		require.Equal(t, game.Move{Row: 2, Col: 3}, MinimizeOpponentLegalMoves.FindMove(board, game.Black))
	})

	t.Run("maximizes the supplied score", func(t *testing.T) {
		board, side := midgame(t)

		move := MaximizeLegalMovesDifference.FindMove(board, side)

		require.True(t, game.IsLegalMove(board, side, move.Row, move.Col))
		next, err := game.ApplyMove(board, side, move.Row, move.Col)
		require.NoError(t, err)
		chosen := game.CountLegalMoves(next, side) - game.CountLegalMoves(next, game.Opposite(side))
		for _, m := range game.LegalMoves(board, side) {
			other, _ := game.ApplyMove(board, side, m.Row, m.Col)
			require.GreaterOrEqual(t, chosen, game.CountLegalMoves(other, side)-game.CountLegalMoves(other, game.Opposite(side)))
		}
	})

	t.Run("minimizes opponent replies", func(t *testing.T) {
		board, side := midgame(t)

		move := MinimizeOpponentLegalMoves.FindMove(board, side)

		next, err := game.ApplyMove(board, side, move.Row, move.Col)
		require.NoError(t, err)
		chosen := game.CountLegalMoves(next, game.Opposite(side))
		for _, m := range game.LegalMoves(board, side) {
			other, _ := game.ApplyMove(board, side, m.Row, m.Col)
			require.LessOrEqual(t, chosen, game.CountLegalMoves(other, game.Opposite(side)))
		}
	})

	t.Run("ties resolve to the first move in scan order", func(t *testing.T) {
		board, side := midgame(t)
		constant := LegalMovesHeuristic(func(_, _ []game.Move) int { return 7 })

		require.Equal(t, game.LegalMoves(board, side)[0], constant.FindMove(board, side))
	})

	t.Run("scores see both sides' moves after the candidate", func(t *testing.T) {
		board := game.InitialState()
		var calls int
		probe := LegalMovesHeuristic(func(mine, theirs []game.Move) int {
			calls++
			require.NotEmpty(t, theirs, "White can always reply in the opening")
			return len(mine)
		})

		probe.FindMove(board, game.Black)

		require.Equal(t, 4, calls, "Only legal candidates are scored")
	})

	t.Run("no legal move", func(t *testing.T) {
		board := game.Board{}.With(0, 0, game.Black).With(0, 1, game.White)

		require.Equal(t, game.NoMove, MaximizeLegalMovesDifference.FindMove(board, game.White))
	})
}
