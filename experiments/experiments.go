package experiments

import (
	"fmt"

	"othello/engine"
	"othello/experiments/metrics"
	"othello/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Results holds everything recorded during an experiment.
type Results struct {
	Games   []metrics.GameRecord
	Moves   []metrics.MoveRecord
	Summary []metrics.SummaryRecord
}

// RunFromFile loads a YAML config, runs it and stores the results as CSV files.
// It returns the directory the files were written to.
func RunFromFile(path string) (string, error) {
	config, err := LoadConfig(path)
	if err != nil {
		return "", err
	}

	results := Run(config)
	return Store(config, results)
}

// Run plays config.Games games for every matchup. The first agent of a matchup plays
// Black in even games and White in odd ones, unless colours are shuffled.
func Run(config Config) Results {
	rng := rand.New(rand.NewSource(config.Seed))
	count := 0
	results := Results{}

	log.Info().Msgf("starting %s experiment...", config.Name)

	for mi, matchup := range config.MatchUps {
		config1 := config.agent(matchup[0])
		config2 := config.agent(matchup[1])

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(config.MatchUps), config1, config2)

		for i := 0; i < config.Games; i++ {
			black, white := config1, config2
			swap := i%2 == 1
			if config.Shuffle {
				swap = rng.Intn(2) == 1
			}
			if swap {
				black, white = white, black
			}
			// Vary seeded agents between games
			black.Seed += uint64(i)
			white.Seed += uint64(i)

			winner, gameMetric, moveMetrics := runGame(black, white)
			count++
			results.Games = append(results.Games, metrics.GameRecord{
				ID:         count,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				results.Moves = append(results.Moves, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(config.MatchUps), i+1, winner)
		}
	}

	results.Summary = Summarize(config.Agents, results.Games, results.Moves)
	log.Info().Msgf("completed %s experiment", config.Name)
	return results
}

// Store writes the configs and results below config.Output.
func Store(config Config, results Results) (string, error) {
	writer, err := metrics.NewWriter(config.Output, config.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(config.Agents); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(results.Games); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(results.Moves); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	if err := writer.WriteSummary(results.Summary); err != nil {
		return "", fmt.Errorf("failed to write summary: %w", err)
	}
	log.Info().Msgf("stored results in %s", writer.Dir())

	return writer.Dir(), nil
}

// runGame executes a single game between two agents and returns the winner
func runGame(black, white metrics.AgentConfig) (string, metrics.GameMetric, []metrics.MoveMetric) {
	var runner engine.Runner = engine.LocalEngine(
		engine.Agent{ID: black.ID, Strategy: mustCreateStrategy(black)},
		engine.Agent{ID: white.ID, Strategy: mustCreateStrategy(white)},
	)
	return runner.Run()
}

func createStrategy(config metrics.AgentConfig) (searcher.Strategy, error) {
	options := []searcher.Option{searcher.WithMetrics()}

	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	if config.Goroutines > 0 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}

	return searcher.New(config.Strategy, config.Seed, options...)
}

func mustCreateStrategy(config metrics.AgentConfig) searcher.Strategy {
	strategy, err := createStrategy(config)
	if err != nil {
		panic(fmt.Sprintf("failed to create agent %d: %v", config.ID, err))
	}
	return strategy
}
