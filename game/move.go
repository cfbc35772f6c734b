package game

import (
	"errors"
	"fmt"
)

// ErrInvalidMove is returned by ApplyMove for off-board, occupied or non-capturing placements.
var ErrInvalidMove = errors.New("invalid move")

// ApplyMove places a piece of side at (row, col) and flips every bracketed run of
// opponent pieces. It returns a new board and leaves the input untouched.
func ApplyMove(board Board, side Cell, row, col int) (Board, error) {
	if !side.IsSide() {
		return board, fmt.Errorf("%w: %s is not a side", ErrInvalidMove, side)
	}
	if !IsValidPosition(row, col) {
		return board, fmt.Errorf("%w: (%d, %d) is off the board", ErrInvalidMove, row, col)
	}
	if board[row][col] != Empty {
		return board, fmt.Errorf("%w: (%d, %d) is occupied", ErrInvalidMove, row, col)
	}

	opponent := Opposite(side)
	next := board

	for _, dir := range Directions {
		r, c := row+dir.Row, col+dir.Col
		if !IsValidPosition(r, c) || board[r][c] != opponent {
			continue
		}

		for IsValidPosition(r, c) && board[r][c] == opponent {
			r += dir.Row
			c += dir.Col
		}
		if !IsValidPosition(r, c) || board[r][c] != side {
			continue
		}

		// Walk back from the bracketing piece to the origin
		r -= dir.Row
		c -= dir.Col
		for board[r][c] == opponent {
			next[r][c] = side
			r -= dir.Row
			c -= dir.Col
		}
		next[row][col] = side
	}

	if next == board {
		return board, fmt.Errorf("%w: (%d, %d) captures nothing", ErrInvalidMove, row, col)
	}
	return next, nil
}

func IsLegalMove(board Board, side Cell, row, col int) bool {
	_, err := ApplyMove(board, side, row, col)
	return err == nil
}

// LegalMoves lists the legal moves of side in row-major order.
func LegalMoves(board Board, side Cell) []Move {
	var moves []Move
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if IsLegalMove(board, side, row, col) {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}
	return moves
}

func CountLegalMoves(board Board, side Cell) int {
	count := 0
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if IsLegalMove(board, side, row, col) {
				count++
			}
		}
	}
	return count
}

// IsGameOver reports whether neither side can move. One blocked side is a pass, not the end.
func IsGameOver(board Board) bool {
	return CountLegalMoves(board, Black) == 0 && CountLegalMoves(board, White) == 0
}

// NextTurn returns the side to move after mover has played on board.
func NextTurn(board Board, mover Cell) Cell {
	if CountLegalMoves(board, Opposite(mover)) > 0 {
		return Opposite(mover)
	}
	if CountLegalMoves(board, mover) > 0 {
		return mover
	}
	// Nobody can move; keep alternating so the turn stays well defined
	return Opposite(mover)
}
