package engine

import (
	"fmt"
	"time"

	"othello/experiments/metrics"
	"othello/game"
	"othello/gamemaster"
	"othello/meta"
	"othello/searcher"

	"github.com/rs/zerolog/log"
)

// Agent pairs a strategy with the experiment ID it is reported under.
type Agent struct {
	ID       int
	Strategy searcher.Strategy
}

type Engine struct {
	Session *gamemaster.Session
	Black   Agent
	White   Agent
}

func LocalEngine(black, white Agent) *Engine {
	if black.Strategy == nil || white.Strategy == nil {
		panic("both agents need a strategy")
	}

	session := gamemaster.NewSession(
		gamemaster.Computed(black.Strategy),
		gamemaster.Computed(white.Strategy),
	)

	return &Engine{
		Session: session,
		Black:   black,
		White:   white,
	}
}

// Run executes the entire game loop until nobody can move.
func (e *Engine) Run() (string, metrics.GameMetric, []metrics.MoveMetric) {
	log.Debug().Msgf("agent %d (black) vs agent %d (white)", e.Black.ID, e.White.ID)

	start := time.Now()
	var moveMetrics []metrics.MoveMetric
	step := 1
	for !e.Session.IsOver() && step <= meta.MAX_MOVES {
		player := e.Session.Turn()

		moveStart := time.Now()
		update, err := e.Session.Step()
		if err != nil {
			panic(fmt.Sprintf("agent %d failed to move: %v", e.agent(player).ID, err))
		}

		metric := update.Metric
		if metric.Duration == 0 {
			metric.Duration = time.Since(moveStart)
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player.String(),
			Move:         update.Move.String(),
			SearchMetric: metric,
		})

		step++
	}

	end := time.Now()
	snap := e.Session.Snapshot()
	winner := ""
	switch {
	case snap.Over && snap.Winner == game.Empty:
		winner = "draw"
	case snap.Over:
		winner = snap.Winner.String()
	default:
		log.Warn().Msgf("stopped after %d moves without a result", meta.MAX_MOVES)
	}

	gameMetric := metrics.GameMetric{
		BlackAgent:  e.Black.ID,
		WhiteAgent:  e.White.ID,
		Winner:      winner,
		BlackPieces: snap.BlackPieces,
		WhitePieces: snap.WhitePieces,
		StartTime:   start,
		EndTime:     end,
		Duration:    end.Sub(start),
		TotalMoves:  snap.Moves,
		FinalBoard:  game.Encode(snap.Board),
	}

	return winner, gameMetric, moveMetrics
}

func (e *Engine) agent(side game.Cell) Agent {
	if side == game.Black {
		return e.Black
	}
	return e.White
}
