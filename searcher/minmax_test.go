package searcher

import (
	"testing"

	"othello/game"

	"github.com/stretchr/testify/require"
)

// midgame plays a fixed opening sequence so tests can search a position with
// more variety than the symmetric start.
func midgame(t *testing.T) (game.Board, game.Cell) {
	t.Helper()
	pos := game.NewPosition()
	for _, notation := range []string{"d3", "c5", "f6", "f5", "e6", "e3"} {
		move, err := game.ParseMove(notation)
		require.NoError(t, err)
		pos, err = pos.Play(move)
		require.NoError(t, err, "Opening move %s should be legal", notation)
	}
	return pos.Board, pos.Turn
}

// greedy is the depth-0 reference: score each child directly, first best wins.
func greedy(board game.Board, side game.Cell) (int, game.Move) {
	bestMove := game.NoMove
	bestValue := 0
	for _, move := range game.LegalMoves(board, side) {
		next, _ := game.ApplyMove(board, side, move.Row, move.Col)
		value := game.EvaluatePosition(next)
		better := value > bestValue
		if side == game.Black {
			better = value < bestValue
		}
		if bestMove == game.NoMove || better {
			bestValue, bestMove = value, move
		}
	}
	return bestValue, bestMove
}

// reference is a plain recursive minimax over plies moves, built only from game
// functions. A side without moves passes without using up a ply.
func reference(board game.Board, side game.Cell, plies int) (int, game.Move) {
	moves := game.LegalMoves(board, side)
	if len(moves) == 0 {
		if game.IsGameOver(board) {
			return game.EvaluatePosition(board), game.NoMove
		}
		value, _ := reference(board, game.Opposite(side), plies)
		return value, game.NoMove
	}

	bestMove := game.NoMove
	bestValue := 0
	for _, move := range moves {
		next, _ := game.ApplyMove(board, side, move.Row, move.Col)

		var value int
		if plies == 1 || game.IsGameOver(next) {
			value = game.EvaluatePosition(next)
		} else {
			value, _ = reference(next, game.Opposite(side), plies-1)
		}

		better := value > bestValue
		if side == game.Black {
			better = value < bestValue
		}
		if bestMove == game.NoMove || better {
			bestValue, bestMove = value, move
		}
	}
	return bestValue, bestMove
}

func TestMinMaxSearch(t *testing.T) {
	t.Run("symmetric opening resolves ties to the first move", func(t *testing.T) {
		mm := NewMinMax()

		move := mm.FindMove(game.InitialState(), game.Black)

		require.Equal(t, game.Move{Row: 2, Col: 3}, move, "All four opening moves are equivalent so row-major first wins")
	})

	t.Run("depth zero scores children directly", func(t *testing.T) {
		board, side := midgame(t)
		mm := NewMinMax(WithDepth(0))

		value, move, _ := mm.Search(board, side)

		expectedValue, expectedMove := greedy(board, side)
		require.Equal(t, expectedMove, move)
		require.Equal(t, expectedValue, value)
	})

	t.Run("deeper searches alternate min and max", func(t *testing.T) {
		board, side := midgame(t)

		for depth := 0; depth <= 2; depth++ {
			for _, s := range []game.Cell{side, game.Opposite(side)} {
				value, move, _ := NewMinMax(WithDepth(depth)).Search(board, s)
				expectedValue, expectedMove := reference(board, s, depth+1)

				require.Equal(t, expectedMove, move, "%s at depth %d", s, depth)
				require.Equal(t, expectedValue, value, "%s at depth %d", s, depth)
			}
		}
	})

	t.Run("black minimizes and white maximizes", func(t *testing.T) {
		board, _ := midgame(t)
		mm := NewMinMax(WithDepth(0))

		blackValue, _, _ := mm.Search(board, game.Black)
		whiteValue, _, _ := mm.Search(board, game.White)

		for _, move := range game.LegalMoves(board, game.Black) {
			next, _ := game.ApplyMove(board, game.Black, move.Row, move.Col)
			require.LessOrEqual(t, blackValue, game.EvaluatePosition(next))
		}
		for _, move := range game.LegalMoves(board, game.White) {
			next, _ := game.ApplyMove(board, game.White, move.Row, move.Col)
			require.GreaterOrEqual(t, whiteValue, game.EvaluatePosition(next))
		}
	})

	t.Run("returned move is legal", func(t *testing.T) {
		board, side := midgame(t)

		move := NewMinMax(WithDepth(2)).FindMove(board, side)

		require.True(t, game.IsLegalMove(board, side, move.Row, move.Col))
	})

	t.Run("finishing move is scored as terminal", func(t *testing.T) {
		board := game.Board{}.With(0, 0, game.Black).With(0, 1, game.White)

		value, move, _ := NewMinMax().Search(board, game.Black)

		require.Equal(t, game.Move{Row: 0, Col: 2}, move)
		require.Equal(t, -3*game.TerminalWeight, value)
	})

	t.Run("blocked side passes at the same depth", func(t *testing.T) {
		board := game.Board{}.With(0, 0, game.Black).With(0, 1, game.White)

		value, move, metric := NewMinMax(WithMetrics()).Search(board, game.White)

		require.Equal(t, game.NoMove, move, "White has no move to report")
		require.Equal(t, -3*game.TerminalWeight, value, "Black plays on after the pass")
		require.Equal(t, 1, metric.Passes)
		require.Equal(t, 2, metric.Nodes)
	})

	t.Run("finished board is evaluated without recursing", func(t *testing.T) {
		board := game.Board{}.With(3, 3, game.Black)

		value, move, metric := NewMinMax(WithMetrics()).Search(board, game.White)

		require.Equal(t, game.NoMove, move)
		require.Equal(t, -game.TerminalWeight, value)
		require.Zero(t, metric.Passes)
		require.Equal(t, 1, metric.Leaves)
	})

	t.Run("custom evaluation function", func(t *testing.T) {
		board, side := midgame(t)
		whitePieces := func(b game.Board) int { return game.CountPieces(b, game.White) }
		mm := NewMinMax(WithDepth(0), WithEvaluationFn(whitePieces))

		_, move, _ := mm.Search(board, side)

		best := game.NoMove
		bestValue := 0
		for _, m := range game.LegalMoves(board, side) {
			next, _ := game.ApplyMove(board, side, m.Row, m.Col)
			v := whitePieces(next)
			better := v > bestValue
			if side == game.Black {
				better = v < bestValue
			}
			if best == game.NoMove || better {
				best, bestValue = m, v
			}
		}
		require.Equal(t, best, move)
	})
}

func TestMinMaxDeterminism(t *testing.T) {
	board, side := midgame(t)

	t.Run("repeated searches agree", func(t *testing.T) {
		mm := NewMinMax(WithDepth(3))

		first := mm.FindMove(board, side)
		for i := 0; i < 3; i++ {
			require.Equal(t, first, mm.FindMove(board, side))
		}
	})

	t.Run("parallel search matches sequential search", func(t *testing.T) {
		positions := []struct {
			board game.Board
			side  game.Cell
		}{
			{game.InitialState(), game.Black},
			{board, side},
			{board, game.Opposite(side)},
		}
		for _, pos := range positions {
			seqValue, seqMove, _ := NewMinMax(WithDepth(2)).Search(pos.board, pos.side)
			parValue, parMove, _ := NewMinMax(WithDepth(2), WithGoroutines(4)).Search(pos.board, pos.side)

			require.Equal(t, seqMove, parMove)
			require.Equal(t, seqValue, parValue)
		}
	})

	t.Run("parallel search counts every node", func(t *testing.T) {
		_, _, seq := NewMinMax(WithDepth(2), WithMetrics()).Search(board, side)
		_, _, par := NewMinMax(WithDepth(2), WithMetrics(), WithGoroutines(8)).Search(board, side)

		require.Equal(t, seq.Nodes, par.Nodes)
		require.Equal(t, seq.Leaves, par.Leaves)
		require.Equal(t, 8, par.Goroutines)
	})

	t.Run("parallel root pass", func(t *testing.T) {
		blocked := game.Board{}.With(0, 0, game.Black).With(0, 1, game.White)

		value, move, _ := NewMinMax(WithGoroutines(4)).Search(blocked, game.White)

		require.Equal(t, game.NoMove, move)
		require.Equal(t, -3*game.TerminalWeight, value)
	})
}

func TestMinMaxOptions(t *testing.T) {
	mm := NewMinMax(WithDepth(-1), WithGoroutines(0), WithEvaluationFn(nil))

	require.Equal(t, 4, mm.depth, "Invalid depth keeps the default")
	require.Equal(t, 1, mm.goroutines, "Invalid goroutine count keeps the default")
	require.NotNil(t, mm.evaluate)
	require.False(t, mm.withMetrics)
}
