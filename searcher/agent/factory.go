package agent

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"ur/game"
	"ur/meta"
	"ur/searcher"
	"ur/utils"
)

// Options carries what an agent spec string cannot.
type Options struct {
	// Trained weights, required by eval=linear
	Weights *game.Weights

	// Seed of the random agent, 0 for a fresh one
	Seed uint64

	// Collect search metrics
	Metrics bool
}

// New creates an agent from a spec: the agent name, optionally followed by a colon and a comma-separated
// list of key=value parameters. Known agents:
//
//	expectimax[:depth=3,eval=simple|linear]
//	greedy
//	last
//	random[:seed=N]
func New(spec string, opts Options) (Agent, error) {
	name, config, _ := strings.Cut(spec, ":")
	params := splitConfig(config)

	var a Agent
	switch name {
	case "expectimax":
		depth, err := popParamOr(params, "depth", meta.DEPTH)
		if err != nil {
			return nil, err
		}
		if depth < 1 {
			return nil, errors.Errorf("expectimax depth must be at least 1, got %d", depth)
		}
		evaluator, err := newEvaluator(popParam(params, "eval", "simple"), opts.Weights)
		if err != nil {
			return nil, err
		}
		var options []searcher.Option
		if opts.Metrics {
			options = append(options, searcher.WithMetrics())
		}
		a = NewExpectimaxAgent(searcher.NewExpectimax(evaluator, options...), depth)
	case "greedy":
		a = NewGreedyAgent()
	case "last":
		a = NewLastAgent()
	case "random":
		seed, err := popParamOr(params, "seed", opts.Seed)
		if err != nil {
			return nil, err
		}
		a = NewRandomAgent(utils.NewRand(seed))
	default:
		return nil, errors.Errorf("unknown agent %q", name)
	}

	if len(params) > 0 {
		keys := make([]string, 0, len(params))
		for k := range params {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return nil, errors.Errorf("unknown parameters for agent %q: %s", name, strings.Join(keys, ", "))
	}
	return a, nil
}

func newEvaluator(name string, weights *game.Weights) (game.Evaluator, error) {
	switch name {
	case "simple":
		return game.Advancement{}, nil
	case "linear":
		if weights == nil {
			return nil, errors.New("linear evaluator needs trained weights")
		}
		return game.NewLinear(*weights), nil
	}
	return nil, errors.Errorf("unknown evaluator %q", name)
}

// splitConfig splits "a=1,b=2" into a map of keys to values, all strings.
func splitConfig(config string) map[string]string {
	params := make(map[string]string)
	if config == "" {
		return params
	}
	for _, part := range strings.Split(config, ",") {
		key, value, _ := strings.Cut(part, "=")
		params[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return params
}

func popParam(params map[string]string, key, defaultValue string) string {
	value, ok := params[key]
	if !ok {
		return defaultValue
	}
	delete(params, key)
	return value
}

// popParamOr parses and removes a parameter if present, or returns defaultValue.
func popParamOr[T int | uint64](params map[string]string, key string, defaultValue T) (T, error) {
	value, ok := params[key]
	if !ok || value == "" {
		delete(params, key)
		return defaultValue, nil
	}
	delete(params, key)
	parsed, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return defaultValue, errors.Wrapf(err, "failed to parse parameter %s=%q", key, value)
	}
	return T(parsed), nil
}
