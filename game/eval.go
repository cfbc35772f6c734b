package game

// Evaluates a board from White's perspective: positive favors White, negative favors Black.
type Evaluate func(Board) int

const (
	// TerminalWeight scales the piece margin of a finished game so it outranks any heuristic score.
	TerminalWeight = 1_000_000
	CornerBonus    = 10
	FixedBonus     = 2
)

func CountPieces(board Board, side Cell) int {
	count := 0
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if board[row][col] == side {
				count++
			}
		}
	}
	return count
}

// Winner returns the side with more pieces, or Empty on a tie.
func Winner(board Board) Cell {
	black, white := CountPieces(board, Black), CountPieces(board, White)
	switch {
	case black > white:
		return Black
	case white > black:
		return White
	default:
		return Empty
	}
}

// IsFixedPiece reports whether some corner-anchored rectangle ending at (row, col)
// holds only the color of (row, col). This is a coarse stand-in for true stability.
func IsFixedPiece(board Board, row, col int) bool {
	color := board[row][col]
	if color == Empty {
		return false
	}

	rects := [4][4]int{
		// firstRow, lastRow, firstCol, lastCol
		{0, row, 0, col},
		{0, row, col, Size - 1},
		{row, Size - 1, 0, col},
		{row, Size - 1, col, Size - 1},
	}
	for _, rect := range rects {
		if isMonochrome(board, color, rect[0], rect[1], rect[2], rect[3]) {
			return true
		}
	}
	return false
}

func isMonochrome(board Board, color Cell, firstRow, lastRow, firstCol, lastCol int) bool {
	for r := firstRow; r <= lastRow; r++ {
		for c := firstCol; c <= lastCol; c++ {
			if board[r][c] != color {
				return false
			}
		}
	}
	return true
}

// PositionScore is the greedy heuristic value of board for side: mobility, corners and fixed pieces.
func PositionScore(board Board, side Cell) int {
	value := CountLegalMoves(board, side)

	for _, corner := range corners {
		if board[corner.Row][corner.Col] == side {
			value += CornerBonus
		}
	}

	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if board[row][col] == side && IsFixedPiece(board, row, col) {
				value += FixedBonus
			}
		}
	}

	return value
}

// EvaluatePosition scores a finished game by its piece margin and any other board by
// the difference of both sides' position scores. White maximizes, Black minimizes.
func EvaluatePosition(board Board) int {
	if IsGameOver(board) {
		black, white := CountPieces(board, Black), CountPieces(board, White)
		switch {
		case black > white:
			return -TerminalWeight * (black - white)
		case white > black:
			return TerminalWeight * (white - black)
		default:
			return 0
		}
	}
	return PositionScore(board, White) - PositionScore(board, Black)
}
