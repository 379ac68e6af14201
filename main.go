package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"ur/experiments"
	"ur/experiments/metrics"
	"ur/game"
	"ur/meta"
	"ur/training"
	"ur/utils"
)

const usage = `usage: ur [flags] <command>

commands:
  train     train the linear evaluator by self-play and print its weights
  showdown  play game pairs between two agents and report the wins
  show      play and print a single game between two agents

flags:
`

func main() {
	configPath := flag.String("config", "", "YAML configuration file")
	verbose := flag.Bool("v", false, "Log debug messages")
	seed := flag.Uint64("seed", 0, "Random seed, 0 for a fresh one")
	games := flag.Int("games", 0, "Number of training games, or of showdown game pairs")
	first := flag.String("first", "", "First agent, e.g. expectimax:depth=3,eval=linear")
	second := flag.String("second", "", "Second agent, e.g. greedy")
	workers := flag.Int("workers", 0, "Number of games played concurrently")
	output := flag.String("output", "", "Directory for showdown CSV records")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg := meta.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = meta.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load configuration")
		}
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *first != "" {
		cfg.Showdown.First = *first
	}
	if *second != "" {
		cfg.Showdown.Second = *second
	}
	if *workers > 0 {
		cfg.Showdown.Workers = *workers
	}
	if *output != "" {
		cfg.Showdown.Output = *output
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch cmd := flag.Arg(0); cmd {
	case "train":
		if *games > 0 {
			cfg.Train.Games = *games
		}
		err = train(ctx, cfg)
	case "showdown":
		if *games > 0 {
			cfg.Showdown.Games = *games
		}
		_, err = experiments.Showdown(ctx, cfg)
	case "show":
		err = show(cfg)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("failed")
	}
}

// train prints the trained weights as a YAML weights section.
func train(ctx context.Context, cfg meta.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	var weights game.Weights
	if cfg.Weights != nil {
		weights = *cfg.Weights
	}
	trainer := training.NewTrainer(
		game.NewLinear(weights),
		game.NewDice(utils.NewRand(cfg.Seed)),
		training.WithAlpha(cfg.Train.Alpha),
		training.WithGames(cfg.Train.Games),
		training.WithReportEvery(cfg.Train.ReportEvery),
	)

	trained, runErr := trainer.Run(ctx)
	out, err := yaml.Marshal(map[string]game.Weights{"weights": trained})
	if err != nil {
		return fmt.Errorf("failed to encode weights: %w", err)
	}
	fmt.Print(string(out))
	return runErr
}

// show plays a single game and prints the board after every move.
func show(cfg meta.Config) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = utils.NewSeed()
	}
	e, err := experiments.NewEngine(cfg, seed, [2]int{0, 1})
	if err != nil {
		return err
	}
	log.Info().Uint64("seed", seed).Msgf("showing a game between %s and %s", cfg.Showdown.First, cfg.Showdown.Second)
	e.OnMove = func(b *game.Board, m metrics.MoveMetric) {
		fmt.Printf("Player %s rolls %d and plays %s\n", game.Player(m.Player), m.Dice, game.Move(m.Move))
		fmt.Println(b.String())
	}
	fmt.Println(e.Board.String())

	winner, gameMetric, _ := e.Run()
	if winner < 0 {
		return fmt.Errorf("no winner after %d turns", e.MaxTurns)
	}
	specs := []string{cfg.Showdown.First, cfg.Showdown.Second}
	fmt.Printf("Player %s (%s) wins after %d moves and %d passes\n",
		game.Player(winner), specs[winner], gameMetric.TotalMoves, gameMetric.Passes)
	return nil
}
