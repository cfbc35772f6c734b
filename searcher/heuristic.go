package searcher

import (
	"errors"

	"othello/game"

	"github.com/rs/zerolog/log"
)

// LegalMovesHeuristic returns a one-ply strategy that plays the move whose resulting
// position maximizes score(my legal moves, their legal moves). Ties go to the first
// move in row-major order.
func LegalMovesHeuristic(score func(mine, theirs []game.Move) int) Strategy {
	return StrategyFunc(func(board game.Board, side game.Cell) game.Move {
		bestMove := game.NoMove
		bestValue := 0

		for row := 0; row < game.Size; row++ {
			for col := 0; col < game.Size; col++ {
				next, err := game.ApplyMove(board, side, row, col)
				if err != nil {
					if !errors.Is(err, game.ErrInvalidMove) {
						log.Error().Err(err).Msgf("unexpected error trying (%d, %d)", row, col)
					}
					continue
				}

				value := score(game.LegalMoves(next, side), game.LegalMoves(next, game.Opposite(side)))
				if bestMove == game.NoMove || value > bestValue {
					bestValue = value
					bestMove = game.Move{Row: row, Col: col}
				}
			}
		}

		return bestMove
	})
}

// MaximizeLegalMovesDifference plays for the largest lead in mobility.
var MaximizeLegalMovesDifference = LegalMovesHeuristic(func(mine, theirs []game.Move) int {
	return len(mine) - len(theirs)
})

// MinimizeOpponentLegalMoves plays to leave the opponent as few replies as possible.
var MinimizeOpponentLegalMoves = LegalMovesHeuristic(func(_, theirs []game.Move) int {
	return -len(theirs)
})
