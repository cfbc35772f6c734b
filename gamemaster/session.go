package gamemaster

import (
	"errors"
	"fmt"

	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"

	"github.com/rs/zerolog/log"
)

var (
	ErrGameOver       = errors.New("game is over - no moves allowed")
	ErrNotHumanTurn   = errors.New("side to move is computer controlled")
	ErrAwaitingHuman  = errors.New("side to move is human controlled")
	ErrStrategyFailed = errors.New("strategy returned an illegal move")
)

// Update describes one played move.
type Update struct {
	Move   game.Move
	Mover  game.Cell
	Board  game.Board
	Next   game.Cell // Side to move afterwards
	Passed bool      // The opponent had no reply, so Mover moves again
	Over   bool
	Hash   game.StateHash
	Metric metrics.SearchMetric // Set when the strategy reports search metrics
}

// Snapshot is everything a front end needs to display the game.
type Snapshot struct {
	Board       game.Board
	Turn        game.Cell
	LegalMoves  int // For the side to move
	Evaluation  int
	BlackPieces int
	WhitePieces int
	Over        bool
	Winner      game.Cell // Empty for a draw or a game in progress
	Moves       int
}

// Session runs a single game between two controllers. It is not safe for concurrent use.
type Session struct {
	position    game.Position
	controllers map[game.Cell]Controller
	moves       int
	gameOver    bool
}

func NewSession(black, white Controller) *Session {
	return NewSessionFrom(game.NewPosition(), black, white)
}

// NewSessionFrom starts a session at an arbitrary position. If the side to move has
// no legal move the turn passes to the opponent straight away.
func NewSessionFrom(position game.Position, black, white Controller) *Session {
	if !position.Turn.IsSide() {
		panic(fmt.Sprintf("invalid side to move: %s", position.Turn))
	}
	if !position.IsOver() && game.CountLegalMoves(position.Board, position.Turn) == 0 {
		log.Info().Msgf("%s has no legal move and passes", position.Turn)
		position.Turn = game.Opposite(position.Turn)
	}
	return &Session{
		position:    position,
		controllers: map[game.Cell]Controller{game.Black: black, game.White: white},
		gameOver:    position.IsOver(),
	}
}

func (s *Session) Position() game.Position {
	return s.position
}

func (s *Session) Turn() game.Cell {
	return s.position.Turn
}

func (s *Session) IsOver() bool {
	return s.gameOver
}

// AwaitsHuman reports whether the game is waiting for an external move.
func (s *Session) AwaitsHuman() bool {
	return !s.gameOver && s.controllers[s.position.Turn].IsHuman()
}

func (s *Session) Snapshot() Snapshot {
	board := s.position.Board
	return Snapshot{
		Board:       board,
		Turn:        s.position.Turn,
		LegalMoves:  game.CountLegalMoves(board, s.position.Turn),
		Evaluation:  game.EvaluatePosition(board),
		BlackPieces: game.CountPieces(board, game.Black),
		WhitePieces: game.CountPieces(board, game.White),
		Over:        s.gameOver,
		Winner:      s.position.Winner(),
		Moves:       s.moves,
	}
}

// Play applies an externally supplied move for a human-controlled side.
func (s *Session) Play(move game.Move) (Update, error) {
	if s.gameOver {
		return Update{}, ErrGameOver
	}
	if !s.controllers[s.position.Turn].IsHuman() {
		return Update{}, ErrNotHumanTurn
	}
	return s.apply(move, metrics.SearchMetric{})
}

// Step asks the strategy of the computer-controlled side to move and plays its choice.
func (s *Session) Step() (Update, error) {
	if s.gameOver {
		return Update{}, ErrGameOver
	}
	controller := s.controllers[s.position.Turn]
	if controller.IsHuman() {
		return Update{}, ErrAwaitingHuman
	}

	var move game.Move
	var metric metrics.SearchMetric
	if measured, ok := controller.Strategy().(searcher.Measured); ok {
		move, metric = measured.FindMeasuredMove(s.position.Board, s.position.Turn)
	} else {
		move = controller.Strategy().FindMove(s.position.Board, s.position.Turn)
	}

	update, err := s.apply(move, metric)
	if err != nil {
		log.Error().Err(err).Msgf("%s strategy chose %s", s.position.Turn, move)
		return Update{}, fmt.Errorf("%w: %w", ErrStrategyFailed, err)
	}
	return update, nil
}

func (s *Session) apply(move game.Move, metric metrics.SearchMetric) (Update, error) {
	mover := s.position.Turn
	next, err := s.position.Play(move)
	if err != nil {
		return Update{}, err
	}

	s.position = next
	s.moves++
	s.gameOver = next.IsOver()

	update := Update{
		Move:   move,
		Mover:  mover,
		Board:  next.Board,
		Next:   next.Turn,
		Passed: !s.gameOver && next.Turn == mover,
		Over:   s.gameOver,
		Hash:   next.Hash(),
		Metric: metric,
	}

	if update.Passed {
		log.Info().Msgf("%s has no legal move and passes", game.Opposite(mover))
	}
	if s.gameOver {
		log.Info().Msgf("game over after %d moves: black %d, white %d", s.moves,
			game.CountPieces(next.Board, game.Black), game.CountPieces(next.Board, game.White))
	}
	return update, nil
}
