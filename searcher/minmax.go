package searcher

import (
	"sync"

	"othello/experiments/metrics"
	"othello/game"
	"othello/meta"

	"github.com/rs/zerolog/log"
)

type Option func(m *MinMax)

// MinMax is a fixed-depth minimax search without pruning. White maximizes and Black
// minimizes the evaluation.
type MinMax struct {
	depth       int
	goroutines  int
	evaluate    game.Evaluate
	withMetrics bool
}

func WithDepth(depth int) Option {
	return func(m *MinMax) {
		if depth >= 0 {
			m.depth = depth
		}
	}
}

// WithGoroutines evaluates the root's subtrees on a pool of goroutines. The chosen
// move is the same as with a sequential search.
func WithGoroutines(goroutines int) Option {
	return func(m *MinMax) {
		if goroutines > 0 {
			m.goroutines = goroutines
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *MinMax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(m *MinMax) {
		m.withMetrics = true
	}
}

func NewMinMax(options ...Option) *MinMax {
	m := &MinMax{ // Default values
		depth:      meta.MAX_DEPTH,
		goroutines: 1,
		evaluate:   game.EvaluatePosition,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *MinMax) FindMove(board game.Board, side game.Cell) game.Move {
	_, move, _ := m.Search(board, side)
	return move
}

func (m *MinMax) FindMeasuredMove(board game.Board, side game.Cell) (game.Move, metrics.SearchMetric) {
	_, move, metric := m.Search(board, side)
	return move, metric
}

// Search returns the minimax value of board with side to move, the root move that
// achieves it (game.NoMove if side must pass) and the collected metrics.
func (m *MinMax) Search(board game.Board, side game.Cell) (int, game.Move, metrics.SearchMetric) {
	collector := metrics.NewDummyCollector()
	if m.withMetrics {
		collector = metrics.NewCollector()
	}
	collector.Start(m.depth, m.goroutines)

	var value int
	var move game.Move
	if m.goroutines > 1 {
		value, move = m.searchRoot(board, side, collector)
	} else {
		value, move = m.search(board, side, 0, collector)
	}

	metric := collector.Complete()
	if m.withMetrics {
		log.Debug().Msgf("minmax for %s chose %s with value %d (%d nodes, %d leaves)", side, move, value, metric.Nodes, metric.Leaves)
	} else {
		log.Debug().Msgf("minmax for %s chose %s with value %d", side, move, value)
	}
	return value, move, metric
}

func (m *MinMax) search(board game.Board, side game.Cell, depth int, collector metrics.Collector) (int, game.Move) {
	collector.AddNode()

	bestMove := game.NoMove
	bestValue := 0
	for row := 0; row < game.Size; row++ {
		for col := 0; col < game.Size; col++ {
			next, err := game.ApplyMove(board, side, row, col)
			if err != nil {
				continue
			}

			value := m.value(next, side, depth, collector)
			if bestMove == game.NoMove || improves(side, value, bestValue) {
				bestValue = value
				bestMove = game.Move{Row: row, Col: col}
			}
		}
	}

	if bestMove == game.NoMove {
		return m.pass(board, side, depth, collector), game.NoMove
	}
	return bestValue, bestMove
}

// searchRoot is search at depth 0 with the candidate subtrees spread over a worker pool.
func (m *MinMax) searchRoot(board game.Board, side game.Cell, collector metrics.Collector) (int, game.Move) {
	collector.AddNode()

	type candidate struct {
		move  game.Move
		next  game.Board
		value int
	}
	var candidates []candidate
	for row := 0; row < game.Size; row++ {
		for col := 0; col < game.Size; col++ {
			next, err := game.ApplyMove(board, side, row, col)
			if err != nil {
				continue
			}
			candidates = append(candidates, candidate{move: game.Move{Row: row, Col: col}, next: next})
		}
	}

	if len(candidates) == 0 {
		return m.pass(board, side, 0, collector), game.NoMove
	}

	task := make(chan int, len(candidates))
	for i := range candidates {
		task <- i
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < min(m.goroutines, len(candidates)); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range task {
				candidates[i].value = m.value(candidates[i].next, side, 0, collector)
			}
		}()
	}
	wg.Wait()

	// Reduce in row-major order so ties resolve as in the sequential search
	best := candidates[0]
	for _, c := range candidates[1:] {
		if improves(side, c.value, best.value) {
			best = c
		}
	}
	return best.value, best.move
}

// value scores the board reached after side moved at depth.
func (m *MinMax) value(next game.Board, side game.Cell, depth int, collector metrics.Collector) int {
	if depth >= m.depth || game.IsGameOver(next) {
		collector.AddLeaf()
		return m.evaluate(next)
	}
	value, _ := m.search(next, game.Opposite(side), depth+1, collector)
	return value
}

// pass hands the turn to the opponent without spending a ply.
func (m *MinMax) pass(board game.Board, side game.Cell, depth int, collector metrics.Collector) int {
	if game.IsGameOver(board) {
		collector.AddLeaf()
		return m.evaluate(board)
	}
	collector.AddPass()
	value, _ := m.search(board, game.Opposite(side), depth, collector)
	return value
}

func improves(side game.Cell, value, best int) bool {
	if side == game.Black {
		return value < best
	}
	return value > best
}
