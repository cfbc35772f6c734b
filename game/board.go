package game

import "strings"

// Size is the number of rows and columns of the board.
const Size = 8

// Cell is the content of one square of the board.
type Cell uint8

const (
	Empty Cell = iota
	Black
	White
)

// Board is an 8x8 row-major grid. It is a value: copying a Board copies every cell,
// and no operation in this package modifies a board it receives.
type Board [Size][Size]Cell

// Move is a board coordinate.
type Move struct {
	Row int
	Col int
}

// NoMove is returned when no coordinate could be chosen.
var NoMove = Move{Row: -1, Col: -1}

// Direction is a unit step between neighboring cells.
type Direction struct {
	Row int
	Col int
}

// Directions holds the eight compass offsets used for capture scanning.
var Directions = [8]Direction{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, 1}, {1, 1}, {1, 0},
	{1, -1}, {0, -1},
}

var corners = [4]Move{{0, 0}, {0, Size - 1}, {Size - 1, 0}, {Size - 1, Size - 1}}

// InitialState returns the standard opening position.
func InitialState() Board {
	var b Board
	mid := Size / 2
	b[mid-1][mid-1], b[mid][mid] = White, White
	b[mid-1][mid], b[mid][mid-1] = Black, Black

	return b
}

// Opposite returns the other side. Empty has no opposite and maps to itself.
func Opposite(side Cell) Cell {
	switch side {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

func IsValidPosition(row, col int) bool {
	return 0 <= row && row < Size && 0 <= col && col < Size
}

// IsSide reports whether c is one of the two players.
func (c Cell) IsSide() bool {
	return c == Black || c == White
}

func (c Cell) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	case Empty:
		return "empty"
	default:
		return "unknown"
	}
}

func (m Move) IsValid() bool {
	return IsValidPosition(m.Row, m.Col)
}

// At returns the cell at (row, col). The position must be valid.
func (b Board) At(row, col int) Cell {
	return b[row][col]
}

// With returns a copy of b with (row, col) set to cell.
func (b Board) With(row, col int, cell Cell) Board {
	b[row][col] = cell
	return b
}

// String renders the board with column letters and row numbers, X for black and O for white.
func (b Board) String() string {
	var sb strings.Builder
	sb.WriteString("  ")
	for col := 0; col < Size; col++ {
		sb.WriteRune('a' + rune(col))
		sb.WriteByte(' ')
	}
	sb.WriteByte('\n')
	for row := 0; row < Size; row++ {
		sb.WriteRune('1' + rune(row))
		sb.WriteByte(' ')
		for col := 0; col < Size; col++ {
			switch b[row][col] {
			case Black:
				sb.WriteByte('X')
			case White:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
