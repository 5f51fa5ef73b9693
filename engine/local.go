// Package engine drives local episodes between a sliding player and the
// tile-placing environment.
package engine

import (
	"time"

	"github.com/timliao0206/TCG/agent"
	"github.com/timliao0206/TCG/game"
)

// initialPlacements is the number of tiles the environment drops before the
// player's first slide.
const initialPlacements = 9

// Result summarizes one finished episode.
type Result struct {
	Score    int
	Moves    int
	MaxCell  int
	Duration time.Duration
}

// Engine alternates turns between a player (slider) and an environment
// (placer) on a fresh board per episode.
type Engine struct {
	player agent.Agent
	evil   agent.Agent
}

// New builds an engine for one player/environment pairing.
func New(player, evil agent.Agent) *Engine {
	if player == nil || evil == nil {
		panic("engine needs both a player and an environment agent")
	}
	return &Engine{player: player, evil: evil}
}

// RunEpisode plays one episode to completion: the environment places the
// opening tiles, then player and environment alternate until either has no
// action. Episode hooks are invoked on both agents around the run.
func (e *Engine) RunEpisode() Result {
	start := time.Now()
	b := game.NewBoard()

	e.player.OpenEpisode("~:" + e.evil.Name())
	e.evil.OpenEpisode(e.player.Name() + ":~")

	score := 0
	moves := 0
	for {
		who := e.turn(moves)
		action := who.TakeAction(&b)
		if action == nil {
			break
		}
		reward := action.Apply(&b)
		if reward == game.Illegal {
			break
		}
		score += int(reward)
		moves++
	}

	e.player.CloseEpisode("")
	e.evil.CloseEpisode("")

	return Result{
		Score:    score,
		Moves:    moves,
		MaxCell:  b.MaxCell(),
		Duration: time.Since(start),
	}
}

// turn returns whose move it is: the environment for the opening
// placements, then strict alternation starting with the player.
func (e *Engine) turn(moves int) agent.Agent {
	if moves < initialPlacements {
		return e.evil
	}
	if (moves-initialPlacements)%2 == 0 {
		return e.player
	}
	return e.evil
}
