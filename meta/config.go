package meta

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"ur/game"
)

type TrainConfig struct {
	Games       int     `yaml:"games"`
	Alpha       float64 `yaml:"alpha"`
	ReportEvery int     `yaml:"report_every"`
}

type ShowdownConfig struct {
	// Agent specs, see agent.New
	First  string `yaml:"first"`
	Second string `yaml:"second"`

	// Number of game pairs, each agent starts once per pair
	Games   int    `yaml:"games"`
	Workers int    `yaml:"workers"`
	Output  string `yaml:"output"`
}

// Config describes a run. Zero values are replaced by the defaults of this
// package, and a zero Seed draws a fresh one.
type Config struct {
	Seed     uint64         `yaml:"seed"`
	Train    TrainConfig    `yaml:"train"`
	Showdown ShowdownConfig `yaml:"showdown"`

	// Trained weights for the linear evaluator, if any
	Weights *game.Weights `yaml:"weights"`
}

// DefaultConfig pits the expectimax agent against the greedy one, like the
// reference experiment.
func DefaultConfig() Config {
	return Config{
		Train: TrainConfig{
			Games:       TRAIN_GAMES,
			Alpha:       ALPHA,
			ReportEvery: REPORT_EVERY,
		},
		Showdown: ShowdownConfig{
			First:   fmt.Sprintf("expectimax:depth=%d", DEPTH),
			Second:  "greedy",
			Games:   GAMES,
			Workers: GO_ROUTINES,
		},
	}
}

// Load reads a YAML configuration file over the defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "failed to read config %q", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "failed to parse config %q", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.WithMessagef(err, "invalid config %q", path)
	}
	return cfg, nil
}

// Validate reports every problem of the configuration at once.
func (c Config) Validate() error {
	var errs error
	if c.Train.Games < 0 {
		errs = multierror.Append(errs, fmt.Errorf("train.games must not be negative, got %d", c.Train.Games))
	}
	if c.Train.Alpha <= 0 || c.Train.Alpha > 1 {
		errs = multierror.Append(errs, fmt.Errorf("train.alpha must be in (0, 1], got %g", c.Train.Alpha))
	}
	if c.Train.ReportEvery < 1 {
		errs = multierror.Append(errs, fmt.Errorf("train.report_every must be positive, got %d", c.Train.ReportEvery))
	}
	if c.Showdown.First == "" || c.Showdown.Second == "" {
		errs = multierror.Append(errs, errors.New("showdown needs two agents"))
	}
	if c.Showdown.Games < 1 {
		errs = multierror.Append(errs, fmt.Errorf("showdown.games must be positive, got %d", c.Showdown.Games))
	}
	if c.Showdown.Workers < 1 {
		errs = multierror.Append(errs, fmt.Errorf("showdown.workers must be positive, got %d", c.Showdown.Workers))
	}
	return errs
}
