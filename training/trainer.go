package training

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"ur/game"
	"ur/meta"
	"ur/searcher"
)

type Option func(t *Trainer)

// Trainer improves a linear evaluator by self-play. Before every roll it
// moves the evaluation of the current position toward the one-roll
// expectimax value, then plays the move the evaluator ranks best.
type Trainer struct {
	evaluator   *game.Linear
	searcher    *searcher.Expectimax
	dice        game.Dice
	alpha       float64
	games       int
	reportEvery int
	maxTurns    int
}

func WithAlpha(alpha float64) Option {
	return func(t *Trainer) {
		t.alpha = alpha
	}
}

func WithGames(games int) Option {
	return func(t *Trainer) {
		t.games = games
	}
}

func WithReportEvery(n int) Option {
	return func(t *Trainer) {
		t.reportEvery = n
	}
}

func WithMaxTurns(n int) Option {
	return func(t *Trainer) {
		t.maxTurns = n
	}
}

func NewTrainer(evaluator *game.Linear, dice game.Dice, options ...Option) *Trainer {
	t := &Trainer{ // Default values
		evaluator:   evaluator,
		searcher:    searcher.NewExpectimax(evaluator),
		dice:        dice,
		alpha:       meta.ALPHA,
		games:       meta.TRAIN_GAMES,
		reportEvery: meta.REPORT_EVERY,
		maxTurns:    meta.MAX_TURNS,
	}
	for _, option := range options {
		option(t)
	}
	if t.alpha <= 0 {
		panic("learning rate must be positive")
	}
	if t.reportEvery < 1 {
		panic("report interval must be positive")
	}
	return t
}

// Run plays the configured number of training games and returns the final
// weights. It stops early, with the weights reached so far, when ctx is done.
func (t *Trainer) Run(ctx context.Context) (game.Weights, error) {
	start := time.Now()
	log.Info().Msgf("starting training for %d games with alpha=%g...", t.games, t.alpha)

	for i := 0; i < t.games; i++ {
		if err := ctx.Err(); err != nil {
			log.Warn().Err(err).Msgf("training interrupted after %d games", i)
			return t.evaluator.Weights(), err
		}

		turns := t.Play()
		log.Debug().Int("game", i+1).Int("turns", turns).Msg("completed training game")

		if (i+1)%t.reportEvery == 0 {
			log.Info().
				Int("game", i+1).
				Dur("elapsed", time.Since(start)).
				Msgf("training progress, weights:\n%s", t.evaluator.Weights())
		}
	}

	log.Info().Dur("elapsed", time.Since(start)).Msg("completed training")
	return t.evaluator.Weights(), nil
}

// Play runs one self-play game, updating the weights at every turn, and
// returns the number of turns played.
func (t *Trainer) Play() int {
	b := game.NewBoard()
	for turn := 1; turn <= t.maxTurns; turn++ {
		target := t.searcher.ExpectedValue(&b, 1)
		t.evaluator.Step(&b, target, t.alpha)

		dice := t.dice.Roll()
		if len(b.LegalMoves(dice)) == 0 {
			b.SwapTurn()
			continue
		}
		move, _ := t.searcher.BestMove(&b, dice, 1)
		if b.Play(dice, move) {
			return turn
		}
	}
	log.Warn().Msgf("abandoned training game after %d turns", t.maxTurns)
	return t.maxTurns
}
