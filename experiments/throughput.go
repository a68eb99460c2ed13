package experiments

import (
	"fmt"
	"hexwar/experiments/metrics"
	"hexwar/game"
	"hexwar/meta"
	"hexwar/rules"
	"time"
)

const (
	NumGames   = 30 // Per match up
	TimeBudget = 10 * time.Millisecond
)

// Throughput pits agents with increasing parallelism against themselves, for
// the same playing strength and similar game length
func Throughput(r rules.Ruleset, budget time.Duration) Experiment {
	configs := []metrics.AgentConfig{}
	matchUps := [][]metrics.AgentConfig{}
	for i, goroutines := range []int{1, 2, 4, 8, 16, 32} {
		config := metrics.AgentConfig{ID: i + 1, Goroutines: goroutines, Duration: budget, Cutoff: meta.WITH_CUTOFF}
		configs = append(configs, config)
		matchUps = append(matchUps, []metrics.AgentConfig{config, config})
	}
	return Experiment{Name: "throughput", Configs: configs, MatchUps: matchUps, Games: NumGames, Rules: r}
}

// Cutoff pairs a deep-rollout baseline against agents cut off earlier
func Cutoff(r rules.Ruleset, budget time.Duration) Experiment {
	baseline := metrics.AgentConfig{ID: 0, Goroutines: meta.GO_ROUTINES, Duration: budget, Cutoff: 4 * meta.WITH_CUTOFF}
	configs := []metrics.AgentConfig{baseline}
	matchUps := [][]metrics.AgentConfig{}
	for i, cutoff := range []int{10, 25, 50, meta.WITH_CUTOFF} {
		config := metrics.AgentConfig{ID: i + 1, Goroutines: baseline.Goroutines, Duration: budget, Cutoff: cutoff}
		configs = append(configs, config)
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}
	return Experiment{Name: "cutoff", Configs: configs, MatchUps: matchUps, Games: NumGames, Rules: r}
}

// Evaluation compares cutoff evaluation functions head to head, each side playing Ally once
func Evaluation(r rules.Ruleset, episodes int) Experiment {
	evals := []game.Evaluate{game.EvaluateTerritory, game.EvaluateMilitary, game.EvaluateCapitalThreat}
	configs := make([]metrics.AgentConfig, len(evals))
	for i, eval := range evals {
		configs[i] = metrics.AgentConfig{ID: i + 1, Goroutines: meta.GO_ROUTINES, Episodes: episodes, Cutoff: meta.WITH_CUTOFF, Evaluate: eval}
	}
	matchUps := [][]metrics.AgentConfig{}
	for i := range configs {
		for j := range configs {
			if i != j {
				matchUps = append(matchUps, []metrics.AgentConfig{configs[i], configs[j]})
			}
		}
	}
	return Experiment{Name: "evaluation", Configs: configs, MatchUps: matchUps, Games: NumGames, Rules: r}
}

// Named returns a preset experiment by name
func Named(name string, r rules.Ruleset, budget time.Duration) (Experiment, error) {
	switch name {
	case "throughput":
		return Throughput(r, budget), nil
	case "cutoff":
		return Cutoff(r, budget), nil
	case "evaluation":
		return Evaluation(r, meta.EPISODES), nil
	}
	return Experiment{}, fmt.Errorf("unknown experiment %q", name)
}
