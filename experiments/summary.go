package experiments

import (
	"time"

	"othello/experiments/metrics"
	"othello/game"

	"gonum.org/v1/gonum/stat"
)

// Summarize aggregates game and move records per agent. Margins and outcomes are
// taken from the agent's point of view; an agent playing itself is counted once per colour.
func Summarize(agents []metrics.AgentConfig, games []metrics.GameRecord, moves []metrics.MoveRecord) []metrics.SummaryRecord {
	byID := make(map[int]metrics.GameRecord, len(games))
	for _, g := range games {
		byID[g.ID] = g
	}

	durations := map[int][]float64{}
	for _, move := range moves {
		g, ok := byID[move.Game]
		if !ok {
			continue
		}
		agent := g.WhiteAgent
		if move.Player == game.Black.String() {
			agent = g.BlackAgent
		}
		durations[agent] = append(durations[agent], float64(move.Duration))
	}

	summaries := make([]metrics.SummaryRecord, 0, len(agents))
	for _, agent := range agents {
		summary := metrics.SummaryRecord{Agent: agent.ID}
		var margins, lengths []float64

		for _, g := range games {
			for _, side := range []game.Cell{game.Black, game.White} {
				if !plays(g, agent.ID, side) {
					continue
				}
				summary.Games++
				switch g.Winner {
				case side.String():
					summary.Wins++
				case "draw", "": // Unfinished games count as draws
					summary.Draws++
				default:
					summary.Losses++
				}

				margin := g.Margin()
				if side == game.White {
					margin = -margin
				}
				margins = append(margins, float64(margin))
				lengths = append(lengths, float64(g.TotalMoves))
			}
		}

		if len(margins) > 0 {
			summary.MeanMargin, summary.StdDevMargin = stat.MeanStdDev(margins, nil)
			if len(margins) == 1 {
				summary.StdDevMargin = 0
			}
			summary.MeanMoves = stat.Mean(lengths, nil)
		}
		if d := durations[agent.ID]; len(d) > 0 {
			summary.MeanDuration = time.Duration(stat.Mean(d, nil))
		}

		summaries = append(summaries, summary)
	}
	return summaries
}

func plays(g metrics.GameRecord, agent int, side game.Cell) bool {
	if side == game.Black {
		return g.BlackAgent == agent
	}
	return g.WhiteAgent == agent
}
