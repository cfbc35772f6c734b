package searcher

import (
	"fmt"

	"othello/experiments/metrics"
	"othello/game"
)

// Strategy chooses a move for side on board. It is only asked to move when side has
// at least one legal move; otherwise it returns game.NoMove.
type Strategy interface {
	FindMove(board game.Board, side game.Cell) game.Move
}

// StrategyFunc adapts a plain function to the Strategy interface.
type StrategyFunc func(board game.Board, side game.Cell) game.Move

func (f StrategyFunc) FindMove(board game.Board, side game.Cell) game.Move {
	return f(board, side)
}

// Measured is implemented by strategies that report search metrics with their move.
type Measured interface {
	Strategy
	FindMeasuredMove(board game.Board, side game.Cell) (game.Move, metrics.SearchMetric)
}

// Strategy names accepted by New.
const (
	MinMaxName                = "minmax"
	MaxMobilityDifferenceName = "max-mobility-diff"
	MinOpponentMobilityName   = "min-opponent-mobility"
	FirstName                 = "first"
	RandomName                = "random"
)

var Names = []string{MinMaxName, MaxMobilityDifferenceName, MinOpponentMobilityName, FirstName, RandomName}

// New builds a strategy by name. The seed is used by the random strategy and the
// options by minimax; both are ignored otherwise.
func New(name string, seed uint64, options ...Option) (Strategy, error) {
	switch name {
	case MinMaxName:
		return NewMinMax(options...), nil
	case MaxMobilityDifferenceName:
		return MaximizeLegalMovesDifference, nil
	case MinOpponentMobilityName:
		return MinimizeOpponentLegalMoves, nil
	case FirstName:
		return First, nil
	case RandomName:
		return NewRandom(seed), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q, expected one of %v", name, Names)
	}
}
