package searcher

import (
	"sync"
	"testing"

	"othello/game"

	"github.com/stretchr/testify/require"
)

func TestFirst(t *testing.T) {
	require.Equal(t, game.Move{Row: 2, Col: 3}, First.FindMove(game.InitialState(), game.Black))
	require.Equal(t, game.Move{Row: 2, Col: 4}, First.FindMove(game.InitialState(), game.White))
	require.Equal(t, game.NoMove, First.FindMove(game.Board{}, game.Black))
}

func TestRandom(t *testing.T) {
	t.Run("plays legal moves", func(t *testing.T) {
		r := NewRandom(1)
		board, side := midgame(t)

		for i := 0; i < 20; i++ {
			move := r.FindMove(board, side)
			require.True(t, game.IsLegalMove(board, side, move.Row, move.Col))
		}
	})

	t.Run("same seed, same choices", func(t *testing.T) {
		board, side := midgame(t)
		r1, r2 := NewRandom(42), NewRandom(42)

		for i := 0; i < 10; i++ {
			require.Equal(t, r1.FindMove(board, side), r2.FindMove(board, side))
		}
	})

	t.Run("no legal move", func(t *testing.T) {
		require.Equal(t, game.NoMove, NewRandom(1).FindMove(game.Board{}, game.White))
	})

	t.Run("concurrent use", func(t *testing.T) {
		r := NewRandom(3)
		board := game.InitialState()

		moves := make([]game.Move, 8)
		var wg sync.WaitGroup
		for i := range moves {
			i := i
			wg.Add(1)
			go func() {
				defer wg.Done()
				moves[i] = r.FindMove(board, game.Black)
			}()
		}
		wg.Wait()

		for _, move := range moves {
			require.True(t, game.IsLegalMove(board, game.Black, move.Row, move.Col))
		}
	})
}

func TestNew(t *testing.T) {
	for _, name := range Names {
		t.Run(name, func(t *testing.T) {
			strategy, err := New(name, 1, WithDepth(1))

			require.NoError(t, err)
			require.NotNil(t, strategy)
			move := strategy.FindMove(game.InitialState(), game.Black)
			require.True(t, game.IsLegalMove(game.InitialState(), game.Black, move.Row, move.Col))
		})
	}

	t.Run("minmax receives options", func(t *testing.T) {
		strategy, err := New(MinMaxName, 0, WithDepth(2), WithGoroutines(3))

		require.NoError(t, err)
		require.IsType(t, &MinMax{}, strategy)
		require.Equal(t, 2, strategy.(*MinMax).depth)
		require.Equal(t, 3, strategy.(*MinMax).goroutines)
		require.Implements(t, (*Measured)(nil), strategy)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := New("alphabeta", 0)
		require.ErrorContains(t, err, "unknown strategy")
	})
}
