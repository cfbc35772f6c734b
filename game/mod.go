package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

type StateHash uint64

// Position is a board together with the side to move. Like Board it is immutable:
// Play always returns a new Position.
type Position struct {
	Board Board
	Turn  Cell
}

// NewPosition returns the opening position with Black to move.
func NewPosition() Position {
	return Position{Board: InitialState(), Turn: Black}
}

func (p Position) Player() Cell {
	return p.Turn
}

func (p Position) LegalMoves() []Move {
	return LegalMoves(p.Board, p.Turn)
}

// Play applies move for the side to move and hands the turn over, skipping a side
// that has no legal reply.
func (p Position) Play(move Move) (Position, error) {
	next, err := ApplyMove(p.Board, p.Turn, move.Row, move.Col)
	if err != nil {
		return p, err
	}
	return Position{Board: next, Turn: NextTurn(next, p.Turn)}, nil
}

func (p Position) IsOver() bool {
	return IsGameOver(p.Board)
}

// Winner returns the winning side of a finished game, or Empty for a draw or a game in progress.
func (p Position) Winner() Cell {
	if !p.IsOver() {
		return Empty
	}
	return Winner(p.Board)
}

func (p Position) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, uint8(p.Turn))
	for row := range p.Board {
		binary.Write(hasher, binary.LittleEndian, p.Board[row][:])
	}

	return StateHash(hasher.Sum64())
}

func (p Position) String() string {
	return fmt.Sprintf("%s to move\n%s", p.Turn, p.Board)
}
