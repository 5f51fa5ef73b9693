// Package agent defines the uniform contract between the episode driver and
// every player/environment variant, plus the variants themselves: the random
// tile placer, a few hand-written sliders, and the learning n-tuple player.
package agent

import "github.com/timliao0206/TCG/game"

// Agent is one participant in an episode. TakeAction returns nil when the
// agent has no available action, which ends the episode.
type Agent interface {
	Name() string
	Role() string
	OpenEpisode(flag string)
	CloseEpisode(flag string)
	TakeAction(b *game.Board) game.Action
}

// base carries the identity shared by every agent and no-op episode hooks.
type base struct {
	name string
	role string
}

func (b base) Name() string             { return b.name }
func (b base) Role() string             { return b.role }
func (b base) OpenEpisode(flag string)  {}
func (b base) CloseEpisode(flag string) {}
