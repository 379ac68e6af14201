package experiments

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"ur/engine"
	"ur/experiments/metrics"
	"ur/game"
	"ur/meta"
	"ur/searcher/agent"
	"ur/utils"
)

type Result struct {
	Specs     [2]string
	Wins      [2]int // Per agent
	Abandoned int
	Games     []metrics.GameRecord
	Moves     []metrics.MoveRecord
}

type gameResult struct {
	winner      int // Seat
	gameMetric  metrics.GameMetric
	moveMetrics []metrics.MoveMetric
}

// Showdown plays cfg.Showdown.Games pairs of games between two agents. In
// each pair both agents move first once. Games run concurrently on
// cfg.Showdown.Workers goroutines, each with its own board, dice and agents,
// seeded from cfg.Seed so that a run can be reproduced.
func Showdown(ctx context.Context, cfg meta.Config) (Result, error) {
	sc := cfg.Showdown
	result := Result{Specs: [2]string{sc.First, sc.Second}}
	if err := cfg.Validate(); err != nil {
		return result, err
	}
	for _, spec := range result.Specs {
		if _, err := agent.New(spec, agent.Options{Weights: cfg.Weights}); err != nil {
			return result, err
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = utils.NewSeed()
	}
	numGames := 2 * sc.Games
	seeds := make([]uint64, numGames)
	rng := utils.NewRand(seed)
	for i := range seeds {
		seeds[i] = rng.Uint64()
	}

	log.Info().Uint64("seed", seed).Msgf("starting showdown of %d games between %s and %s...", numGames, sc.First, sc.Second)
	start := time.Now()

	results := make([]gameResult, numGames)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(sc.Workers)
	for i := 0; i < numGames; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := runGame(cfg, seeds[i], seating(i))
			if err != nil {
				return err
			}
			results[i] = r
			log.Debug().Msgf("completed game %d of %d with winner: %d", i+1, numGames, r.winner)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return result, err
	}

	for i, r := range results {
		seats := seating(i)
		record := metrics.GameRecord{
			ID:         i + 1,
			Light:      seats[game.Light],
			Dark:       seats[game.Dark],
			GameMetric: r.gameMetric,
		}
		if r.winner < 0 {
			result.Abandoned++
		} else {
			result.Wins[seats[r.winner]]++
		}
		result.Games = append(result.Games, record)
		for _, mm := range r.moveMetrics {
			result.Moves = append(result.Moves, metrics.MoveRecord{
				Game:       record.ID,
				MoveMetric: mm,
			})
		}
	}

	log.Info().Dur("elapsed", time.Since(start)).Msgf("completed showdown: %s won %d/%d, %s won %d/%d",
		sc.First, result.Wins[0], numGames, sc.Second, result.Wins[1], numGames)

	if sc.Output != "" {
		if err := write(sc.Output, result); err != nil {
			return result, err
		}
	}
	return result, nil
}

// seating maps seats to agent indices. Odd games swap the agents.
func seating(i int) [2]int {
	if i%2 == 1 {
		return [2]int{1, 0}
	}
	return [2]int{0, 1}
}

// NewEngine sets up one game between the configured agents, seats[i] being
// the index of the agent in seat i. The dice and each agent draw from their
// own seed, all derived from seed.
func NewEngine(cfg meta.Config, seed uint64, seats [2]int) (*engine.LocalEngine, error) {
	rng := utils.NewRand(seed)
	diceSeed := rng.Uint64() | 1

	specs := [2]string{cfg.Showdown.First, cfg.Showdown.Second}
	var agents [2]agent.Agent
	for seat, idx := range seats {
		a, err := agent.New(specs[idx], agent.Options{
			Weights: cfg.Weights,
			Seed:    rng.Uint64() | 1,
			Metrics: cfg.Showdown.Output != "",
		})
		if err != nil {
			return nil, err
		}
		agents[seat] = a
	}

	return engine.NewLocalEngine(agents[0], agents[1], game.NewDice(utils.NewRand(diceSeed))), nil
}

// runGame executes a single game between two agents and returns the winner seat
func runGame(cfg meta.Config, seed uint64, seats [2]int) (gameResult, error) {
	e, err := NewEngine(cfg, seed, seats)
	if err != nil {
		return gameResult{}, err
	}
	winner, gameMetric, moveMetrics := e.Run()

	return gameResult{winner: winner, gameMetric: gameMetric, moveMetrics: moveMetrics}, nil
}

func write(dir string, result Result) error {
	writer, err := metrics.NewWriter(dir)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgents(result.Specs[:])
	if err != nil {
		return fmt.Errorf("failed to store agents: %w", err)
	}
	log.Info().Msg("stored agents")

	err = writer.WriteGameRecords(result.Games)
	if err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(result.Moves)
	if err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored move records")
	return nil
}
