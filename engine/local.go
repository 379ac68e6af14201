package engine

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"ur/experiments/metrics"
	"ur/game"
	"ur/searcher/agent"
	"ur/utils"
)

// LocalEngine plays one game between two in-process agents. Seat 0 plays
// Light and moves first.
type LocalEngine struct {
	Board    game.Board
	Agents   [2]agent.Agent
	Dice     game.Dice
	MaxTurns int

	// Called after every move, if set
	OnMove func(b *game.Board, m metrics.MoveMetric)
}

var _ Engine = (*LocalEngine)(nil)

func NewLocalEngine(first, second agent.Agent, dice game.Dice) *LocalEngine {
	if first == nil || second == nil {
		panic("need two agents")
	}
	if dice == nil {
		panic("need dice")
	}
	return &LocalEngine{
		Board:    game.NewBoard(),
		Agents:   [2]agent.Agent{first, second},
		Dice:     dice,
		MaxTurns: MaxTurns,
	}
}

// Run executes the entire game loop until a winner is found.
func (e *LocalEngine) Run() (int, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: int(e.Board.Turn),
		Winner:         -1,
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Msgf("player %s is starting", e.Board.Turn)

	for turn := 1; turn <= e.MaxTurns; turn++ {
		player := e.Board.Turn
		dice := e.Dice.Roll()
		moves := e.Board.LegalMoves(dice)
		if len(moves) == 0 {
			e.Board.SwapTurn()
			gameMetric.Passes++
			continue
		}

		move, searchMetric := e.Agents[player].FindMove(&e.Board, dice)
		if utils.FindIndex(moves, move) < 0 {
			panic(fmt.Sprintf("agent %d chose illegal move %s for dice %d in\n%s", player, move, dice, e.Board.String()))
		}

		ready := e.Board.Ready[player.Opponent()]
		won := e.Board.Play(dice, move)
		if e.Board.Ready[player.Opponent()] > ready {
			gameMetric.Captures[player]++
		}
		gameMetric.TotalMoves++
		if zerolog.GlobalLevel() <= zerolog.DebugLevel {
			if err := e.Board.Validate(); err != nil {
				panic(fmt.Sprintf("corrupted board after move %s: %v", move, err))
			}
		}
		moveMetric := metrics.MoveMetric{
			Step:         turn,
			Player:       int(player),
			Dice:         dice,
			Move:         int(move),
			Hash:         uint64(e.Board.Hash()),
			SearchMetric: searchMetric,
		}
		moveMetrics = append(moveMetrics, moveMetric)
		if e.OnMove != nil {
			e.OnMove(&e.Board, moveMetric)
		}

		if won {
			gameMetric.Winner = int(player)
			break
		}
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	if gameMetric.Winner < 0 {
		log.Warn().Msgf("abandoned game after %d turns", e.MaxTurns)
	} else {
		log.Debug().Msgf("player %d won after %d moves", gameMetric.Winner, gameMetric.TotalMoves)
	}
	return gameMetric.Winner, gameMetric, moveMetrics
}
