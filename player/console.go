package player

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"othello/game"
	"othello/gamemaster"

	"github.com/rs/zerolog/log"
)

type Controller interface {
	Run() error
}

// Console plays a session on a text terminal: it reads moves such as "d3" for human
// sides and lets strategies move for computer sides.
type Console struct {
	session *gamemaster.Session
	in      *bufio.Scanner
	out     io.Writer
}

func NewConsole(session *gamemaster.Session, in io.Reader, out io.Writer) *Console {
	return &Console{
		session: session,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run loops until the game is over or the input is exhausted.
func (c *Console) Run() error {
	c.show()
	for !c.session.IsOver() {
		var update gamemaster.Update
		var err error

		if c.session.AwaitsHuman() {
			update, err = c.readMove()
			if errors.Is(err, io.EOF) {
				log.Info().Msg("input closed, leaving the game")
				return nil
			}
		} else {
			update, err = c.session.Step()
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(c.out, "%s plays %s\n", update.Mover, update.Move)
		if update.Passed {
			fmt.Fprintf(c.out, "%s has no legal move and passes\n", game.Opposite(update.Mover))
		}
		c.show()
	}
	return nil
}

// readMove prompts until the human enters a legal move.
func (c *Console) readMove() (gamemaster.Update, error) {
	for {
		fmt.Fprintf(c.out, "%s to move: ", c.session.Turn())
		if !c.in.Scan() {
			if err := c.in.Err(); err != nil {
				return gamemaster.Update{}, fmt.Errorf("failed to read move: %w", err)
			}
			return gamemaster.Update{}, io.EOF
		}

		text := strings.TrimSpace(c.in.Text())
		if text == "" {
			continue
		}
		move, err := game.ParseMove(text)
		if err != nil {
			fmt.Fprintln(c.out, err)
			continue
		}

		update, err := c.session.Play(move)
		if errors.Is(err, game.ErrInvalidMove) {
			fmt.Fprintf(c.out, "%s is not a legal move\n", move)
			continue
		}
		return update, err
	}
}

func (c *Console) show() {
	snap := c.session.Snapshot()
	fmt.Fprint(c.out, snap.Board.String())
	fmt.Fprintf(c.out, "black %d  white %d  evaluation %d\n", snap.BlackPieces, snap.WhitePieces, snap.Evaluation)

	switch {
	case snap.Over && snap.Winner == game.Empty:
		fmt.Fprintln(c.out, "game over: draw")
	case snap.Over:
		fmt.Fprintf(c.out, "game over: %s wins\n", snap.Winner)
	default:
		moves := c.session.Position().LegalMoves()
		notation := make([]string, 0, len(moves))
		for _, move := range moves {
			notation = append(notation, move.String())
		}
		fmt.Fprintf(c.out, "%s to move, %d legal moves: %s\n", snap.Turn, snap.LegalMoves, strings.Join(notation, " "))
	}
}
