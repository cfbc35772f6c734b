package experiments

import (
	"errors"
	"fmt"
	"os"

	"othello/experiments/metrics"
	"othello/meta"
	"othello/searcher"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid experiment config")

// Config describes an experiment: the agents taking part and which of them play each other.
type Config struct {
	Name     string                `yaml:"name"`
	Output   string                `yaml:"output"`
	Games    int                   `yaml:"games"` // Per matchup
	Seed     uint64                `yaml:"seed"`
	Shuffle  bool                  `yaml:"shuffle"` // Randomize colours instead of alternating them
	Agents   []metrics.AgentConfig `yaml:"agents"`
	MatchUps [][2]int              `yaml:"matchups"` // Pairs of agent IDs
}

func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes a YAML config, fills in defaults and validates it.
func ParseConfig(data []byte) (Config, error) {
	config := Config{}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if config.Name == "" {
		config.Name = "matchups"
	}
	if config.Output == "" {
		config.Output = "results"
	}
	if config.Games == 0 {
		config.Games = meta.NUM_GAMES
	}
	for i := range config.Agents {
		if config.Agents[i].Strategy == searcher.MinMaxName {
			if config.Agents[i].Depth == 0 {
				config.Agents[i].Depth = meta.MAX_DEPTH
			}
			if config.Agents[i].Goroutines == 0 {
				config.Agents[i].Goroutines = 1
			}
		}
	}

	return config, config.Validate()
}

func (c Config) Validate() error {
	if c.Games < 0 {
		return fmt.Errorf("%w: games must be positive, got %d", ErrInvalidConfig, c.Games)
	}
	if len(c.Agents) == 0 {
		return fmt.Errorf("%w: no agents", ErrInvalidConfig)
	}

	ids := map[int]bool{}
	for _, agent := range c.Agents {
		if ids[agent.ID] {
			return fmt.Errorf("%w: duplicate agent id %d", ErrInvalidConfig, agent.ID)
		}
		ids[agent.ID] = true

		if _, err := createStrategy(agent); err != nil {
			return fmt.Errorf("%w: agent %d: %w", ErrInvalidConfig, agent.ID, err)
		}
		if agent.Depth < 0 || agent.Goroutines < 0 {
			return fmt.Errorf("%w: agent %d has a negative depth or goroutine count", ErrInvalidConfig, agent.ID)
		}
	}

	if len(c.MatchUps) == 0 {
		return fmt.Errorf("%w: no matchups", ErrInvalidConfig)
	}
	for _, matchup := range c.MatchUps {
		for _, id := range matchup {
			if !ids[id] {
				return fmt.Errorf("%w: matchup references unknown agent %d", ErrInvalidConfig, id)
			}
		}
	}
	return nil
}

func (c Config) agent(id int) metrics.AgentConfig {
	for _, agent := range c.Agents {
		if agent.ID == id {
			return agent
		}
	}
	panic(fmt.Sprintf("unknown agent %d", id))
}
