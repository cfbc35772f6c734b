package game

import (
	"fmt"
	"strings"
)

// Encode serializes board as 64 row-major characters: 'b' black, 'w' white, 'e' empty.
func Encode(board Board) string {
	var sb strings.Builder
	sb.Grow(Size * Size)
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			switch board[row][col] {
			case Black:
				sb.WriteByte('b')
			case White:
				sb.WriteByte('w')
			default:
				sb.WriteByte('e')
			}
		}
	}
	return sb.String()
}

// Decode parses the output of Encode.
func Decode(s string) (Board, error) {
	var board Board
	if len(s) != Size*Size {
		return board, fmt.Errorf("board string must be %d characters long, got %d", Size*Size, len(s))
	}
	for i := 0; i < len(s); i++ {
		var cell Cell
		switch s[i] {
		case 'b':
			cell = Black
		case 'w':
			cell = White
		case 'e':
			cell = Empty
		default:
			return board, fmt.Errorf("invalid cell %q at index %d", s[i], i)
		}
		board[i/Size][i%Size] = cell
	}
	return board, nil
}

// String formats the move in algebraic notation, column letter then row number ("d3" is row 2, col 3).
func (m Move) String() string {
	if !m.IsValid() {
		return "pass"
	}
	return fmt.Sprintf("%c%d", 'a'+rune(m.Col), m.Row+1)
}

// ParseMove parses algebraic notation such as "d3" or "D3".
func ParseMove(s string) (Move, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 {
		return NoMove, fmt.Errorf("move %q must be a column letter followed by a row number", s)
	}
	move := Move{Row: int(s[1] - '1'), Col: int(s[0] - 'a')}
	if !move.IsValid() {
		return NoMove, fmt.Errorf("move %q is off the board", s)
	}
	return move, nil
}

// DecodePosition parses an encoded board and the side to move ("black"/"b" or "white"/"w").
func DecodePosition(board, turn string) (Position, error) {
	b, err := Decode(board)
	if err != nil {
		return Position{}, err
	}

	var side Cell
	switch strings.ToLower(strings.TrimSpace(turn)) {
	case "black", "b":
		side = Black
	case "white", "w":
		side = White
	default:
		return Position{}, fmt.Errorf("side to move %q must be black or white", turn)
	}
	return Position{Board: b, Turn: side}, nil
}
