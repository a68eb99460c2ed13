package experiments

import (
	"fmt"
	"hexwar/engine"
	"hexwar/experiments/metrics"
	"hexwar/game"
	"hexwar/rules"
	"hexwar/searcher"
	"hexwar/searcher/agent"

	"github.com/rs/zerolog/log"
)

// Experiment plays every match up a number of times and stores the results
type Experiment struct {
	Name     string
	Configs  []metrics.AgentConfig   // Every agent taking part
	MatchUps [][]metrics.AgentConfig // Pairs of (Ally, Enemy) agents
	Games    int                     // Per match up
	MaxTurns int
	Seed     uint64
	Rules    rules.Ruleset
	OutDir   string // Results are written below OutDir; nothing is written when empty
}

// Results gathers the records of a finished experiment
type Results struct {
	Games []metrics.GameRecord
	Moves []metrics.MoveRecord
	Dir   string
}

// Wins counts the games each faction won
func (r Results) Wins() map[string]int {
	wins := make(map[string]int)
	for _, g := range r.Games {
		wins[g.Winner]++
	}
	return wins
}

func (x Experiment) Run() (Results, error) {
	// Run a number of games for each matchup
	var results Results
	count := 0

	log.Info().Msgf("starting %s experiment...", x.Name)

	for mi, matchup := range x.MatchUps {
		if len(matchup) != 2 {
			return results, fmt.Errorf("match up %d: need 2 agents, got %d", mi+1, len(matchup))
		}
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(x.MatchUps), config1, config2)

		for i := 0; i < x.Games; i++ {
			count++
			winner, gameMetric, moveMetrics, err := x.runGame(config1, config2, x.Seed+uint64(count))
			if err != nil {
				return results, fmt.Errorf("match up %d game %d: %w", mi+1, i+1, err)
			}
			results.Games = append(results.Games, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				results.Moves = append(results.Moves, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %q", mi+1, len(x.MatchUps), i+1, winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(x.MatchUps))
	}

	log.Info().Msgf("completed %s experiment", x.Name)

	if x.OutDir == "" {
		return results, nil
	}
	dir, err := x.store(results)
	results.Dir = dir
	return results, err
}

func (x Experiment) store(results Results) (string, error) {
	writer, err := metrics.NewWriter(x.OutDir, x.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	// Store experiment metadata
	if err := writer.WriteAgentConfigs(x.Configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	// Store experiment results
	if err := writer.WriteGameRecords(results.Games); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(results.Moves); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")
	return writer.Dir(), nil
}

// runGame executes a single skirmish between two agents and returns the winner
func (x Experiment) runGame(config1, config2 metrics.AgentConfig, seed uint64) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	gs, err := game.Skirmish(x.Rules)
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}
	if err := game.AutoPlaceAllyCapital(gs); err != nil {
		return "", metrics.GameMetric{}, nil, err
	}

	e := engine.NewLocal(gs,
		agent.NewEvaluationAgent(createMCTS(config1, seed)),
		agent.NewEvaluationAgent(createMCTS(config2, seed<<1)),
	)
	if x.MaxTurns > 0 {
		e.MaxTurns = x.MaxTurns
	}

	winner, gameMetric, moveMetrics := e.Run()
	return winner, gameMetric, moveMetrics, nil
}

func createMCTS(config metrics.AgentConfig, seed uint64) *searcher.MCTS {
	options := []searcher.Option{searcher.WithSeed(seed)}

	if config.Episodes > 0 {
		options = append(options, searcher.WithEpisodes(config.Episodes))
	}
	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}
	if config.Cutoff > 0 {
		options = append(options, searcher.WithCutoff(config.Cutoff))
	}
	if config.Evaluate != nil {
		options = append(options, searcher.WithEvaluationFn(config.Evaluate))
	}

	options = append(options, searcher.WithMetrics())
	return searcher.NewMCTS(config.Goroutines, options...)
}
