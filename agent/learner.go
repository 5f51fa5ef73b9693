package agent

import (
	"github.com/rs/zerolog/log"

	"github.com/timliao0206/TCG/game"
	"github.com/timliao0206/TCG/ntuple"
)

// defaultPatterns is the reference 6-tuple network: four overlapping
// patterns covering the board, each expanded to its symmetry orbit.
var defaultPatterns = [][]int{
	{0, 1, 2, 3, 4, 5},
	{4, 5, 6, 7, 8, 9},
	{5, 6, 7, 9, 10, 11},
	{9, 10, 11, 13, 14, 15},
}

// NTuple is the learning player: one-step-lookahead action selection over
// the n-tuple value function, with a backward TD(0) pass at episode end.
type NTuple struct {
	base
	net      *ntuple.Network
	learner  *ntuple.Learner
	savePath string
}

// NewNTuple builds the learning player over the reference pattern set. A
// configured load path is applied immediately; failure to read it terminates
// the process, since training state cannot be recovered without the weights.
func NewNTuple(cfg Config) (*NTuple, error) {
	return NewNTupleWithPatterns(cfg, defaultPatterns)
}

// NewNTupleWithPatterns builds the learning player over an explicit pattern
// set, one feature group per pattern.
func NewNTupleWithPatterns(cfg Config, patterns [][]int) (*NTuple, error) {
	features := make([]ntuple.Feature, 0, len(patterns))
	for _, pattern := range patterns {
		f, err := ntuple.NewFeature(pattern)
		if err != nil {
			return nil, err
		}
		features = append(features, f)
	}

	net, err := ntuple.NewNetwork(features, cfg.Init)
	if err != nil {
		return nil, err
	}

	if cfg.Load != "" {
		if err := net.LoadFile(cfg.Load); err != nil {
			log.Fatal().Err(err).Str("path", cfg.Load).Msg("cannot load weights")
		}
		log.Info().Str("path", cfg.Load).Msg("loaded weights")
	}

	name := cfg.Name
	if name == "" {
		name = "ntuple"
	}
	return &NTuple{
		base:     base{name: name, role: "slider"},
		net:      net,
		learner:  ntuple.NewLearner(net, cfg.Alpha),
		savePath: cfg.Save,
	}, nil
}

// Network exposes the value function, read-only, for evaluation tooling.
func (a *NTuple) Network() *ntuple.Network {
	return a.net
}

func (a *NTuple) OpenEpisode(flag string) {
	a.learner.OpenEpisode()
}

func (a *NTuple) CloseEpisode(flag string) {
	if a.learner.Len() == 0 {
		return
	}
	a.learner.CloseEpisode()
}

// TakeAction probes all four slides on copies of before and picks the one
// maximizing evaluate(after) + reward; an illegal slide is skipped, never
// scored. The decision point is recorded on the trajectory either way, with
// reward 0 when no slide is legal.
func (a *NTuple) TakeAction(before *game.Board) game.Action {
	bestDir := -1
	bestScore := 0.0
	bestReward := game.Reward(0)

	for _, dir := range directions {
		after := *before
		reward := after.Slide(dir)
		if reward == game.Illegal {
			continue
		}
		score := a.net.Evaluate(&after) + float64(reward)
		if bestDir == -1 || score > bestScore {
			bestDir = dir
			bestScore = score
			bestReward = reward
		}
	}

	if bestDir == -1 {
		a.learner.Record(*before, 0)
		return nil
	}
	a.learner.Record(*before, bestReward)
	return game.Slide{Dir: bestDir}
}

// Close persists the weights when a save path is configured. Like load, a
// failed save terminates the process.
func (a *NTuple) Close() {
	if a.savePath == "" {
		return
	}
	if err := a.net.SaveFile(a.savePath); err != nil {
		log.Fatal().Err(err).Str("path", a.savePath).Msg("cannot save weights")
	}
	log.Info().Str("path", a.savePath).Msg("saved weights")
}
