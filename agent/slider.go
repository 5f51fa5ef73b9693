package agent

import (
	"time"

	"golang.org/x/exp/rand"

	"github.com/timliao0206/TCG/game"
)

var directions = [4]int{game.Up, game.Right, game.Down, game.Left}

// RandomSlider plays a uniformly random legal slide.
type RandomSlider struct {
	base
	rng *rand.Rand
}

func NewRandomSlider(cfg Config) *RandomSlider {
	seed := cfg.Seed
	if !cfg.HasSeed {
		seed = uint64(time.Now().UnixNano())
	}
	name := cfg.Name
	if name == "" {
		name = "random"
	}
	return &RandomSlider{
		base: base{name: name, role: "slider"},
		rng:  rand.New(rand.NewSource(seed)),
	}
}

func (s *RandomSlider) TakeAction(before *game.Board) game.Action {
	order := directions
	s.rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	for _, dir := range order {
		trial := *before
		if trial.Slide(dir) != game.Illegal {
			return game.Slide{Dir: dir}
		}
	}
	return nil
}

// GreedySlider plays the legal slide with the highest immediate reward,
// breaking ties by direction order.
type GreedySlider struct {
	base
}

func NewGreedySlider(cfg Config) *GreedySlider {
	name := cfg.Name
	if name == "" {
		name = "greedy"
	}
	return &GreedySlider{base: base{name: name, role: "slider"}}
}

func (s *GreedySlider) TakeAction(before *game.Board) game.Action {
	if dir, ok := bestByReward(before, directions[:]); ok {
		return game.Slide{Dir: dir}
	}
	return nil
}

// RestrictedGreedySlider is a greedy slider that avoids sliding up or left
// unless no other direction is legal, keeping large tiles toward one corner.
type RestrictedGreedySlider struct {
	base
}

func NewRestrictedGreedySlider(cfg Config) *RestrictedGreedySlider {
	name := cfg.Name
	if name == "" {
		name = "mrgreedy"
	}
	return &RestrictedGreedySlider{base: base{name: name, role: "slider"}}
}

func (s *RestrictedGreedySlider) TakeAction(before *game.Board) game.Action {
	if dir, ok := bestByReward(before, []int{game.Right, game.Down}); ok {
		return game.Slide{Dir: dir}
	}
	if dir, ok := bestByReward(before, []int{game.Up, game.Left}); ok {
		return game.Slide{Dir: dir}
	}
	return nil
}

// bestByReward probes the given directions on copies of before and returns
// the legal one with the highest immediate reward, earliest first on ties.
func bestByReward(before *game.Board, dirs []int) (int, bool) {
	bestDir := -1
	bestReward := game.Illegal
	for _, dir := range dirs {
		trial := *before
		reward := trial.Slide(dir)
		if reward == game.Illegal {
			continue
		}
		if bestDir == -1 || reward > bestReward {
			bestDir = dir
			bestReward = reward
		}
	}
	return bestDir, bestDir != -1
}
