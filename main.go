package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/timliao0206/TCG/agent"
	"github.com/timliao0206/TCG/engine"
	"github.com/timliao0206/TCG/stats"
)

func main() {
	total := flag.Int("total", 1000, "number of episodes to run")
	block := flag.Int("block", 100, "episodes per statistics block")
	play := flag.String("play", "alpha=0.003125", "player options (name=ntuple|random|greedy|mrgreedy alpha= init= load= save= seed=)")
	evil := flag.String("evil", "", "environment options (seed=)")
	out := flag.String("out", "", "directory for CSV episode records, empty to skip")
	verbose := flag.Bool("verbose", false, "log per-block tile statistics")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	playCfg, err := agent.ParseConfig(*play)
	if err != nil {
		log.Fatal().Err(err).Msg("bad player options")
	}
	evilCfg, err := agent.ParseConfig(*evil)
	if err != nil {
		log.Fatal().Err(err).Msg("bad environment options")
	}

	player, closePlayer, err := newSlider(playCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot build player")
	}
	placer := agent.NewRandomPlacer(evilCfg)

	log.Info().
		Str("player", player.Name()).
		Str("environment", placer.Name()).
		Int("total", *total).
		Msg("starting training run")

	eng := engine.New(player, placer)
	collector := stats.NewCollector(*block)
	for i := 1; i <= *total; i++ {
		result := eng.RunEpisode()
		collector.Add(stats.EpisodeRecord{
			ID:       i,
			Score:    result.Score,
			MaxCell:  result.MaxCell,
			Moves:    result.Moves,
			Duration: result.Duration,
		})
	}

	closePlayer()

	if *out != "" {
		writer, err := stats.NewWriter(*out)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot create record writer")
		}
		if err := writer.WriteEpisodeRecords(collector.Records()); err != nil {
			log.Fatal().Err(err).Msg("cannot write episode records")
		}
		log.Info().Str("dir", writer.Dir()).Msg("stored episode records")
	}

	log.Info().Msg("training run complete")
}

// newSlider builds the player named by cfg. The returned func flushes any
// shutdown work (weight saving for the learner).
func newSlider(cfg agent.Config) (agent.Agent, func(), error) {
	switch cfg.Name {
	case "", "ntuple":
		player, err := agent.NewNTuple(cfg)
		if err != nil {
			return nil, nil, err
		}
		return player, player.Close, nil
	case "random":
		return agent.NewRandomSlider(cfg), func() {}, nil
	case "greedy":
		return agent.NewGreedySlider(cfg), func() {}, nil
	case "mrgreedy":
		return agent.NewRestrictedGreedySlider(cfg), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown player %q", cfg.Name)
	}
}
