package engine

import "othello/experiments/metrics"

type Runner interface {
	// Run plays a game to the end or until meta.MAX_MOVES moves have been played
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
