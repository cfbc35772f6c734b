package searcher

import (
	"sync"

	"othello/game"

	"golang.org/x/exp/rand"
)

// First plays the first legal move in row-major order.
var First = StrategyFunc(func(board game.Board, side game.Cell) game.Move {
	moves := game.LegalMoves(board, side)
	if len(moves) == 0 {
		return game.NoMove
	}
	return moves[0]
})

// Random plays a uniformly chosen legal move. It is safe for concurrent use.
type Random struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) FindMove(board game.Board, side game.Cell) game.Move {
	moves := game.LegalMoves(board, side)
	if len(moves) == 0 {
		return game.NoMove
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return moves[r.rng.Intn(len(moves))]
}
