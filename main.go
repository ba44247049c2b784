package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"passo/engine"
	"passo/experiments"
	"passo/game"
	"passo/player"
	"passo/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	mode := flag.String("mode", "play", "play (human vs agent), selfplay (agent vs agent) or experiment")
	human := flag.String("human", "A", "side played by the human in play mode: A or B")
	depth := flag.Int("depth", 0, "fixed search depth; 0 uses the piece-count policy")
	matchups := flag.String("matchups", "", "YAML experiment file; empty runs the built-in experiment")
	out := flag.String("out", "results", "directory for experiment CSV files")
	games := flag.Int("games", 0, "games per matchup, overriding the experiment file")
	level := flag.String("log-level", "info", "log level: debug, info, warn or error")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(lvl)

	switch *mode {
	case "play":
		side, err := parseSide(*human)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid -human")
		}
		play(side, *depth)
	case "selfplay":
		selfplay(*depth)
	case "experiment":
		if err := experiment(*matchups, *out, *games); err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
	default:
		log.Fatal().Msgf("unknown mode %q", *mode)
	}
}

func parseSide(s string) (game.Side, error) {
	switch strings.ToUpper(s) {
	case "A":
		return game.PlayerA, nil
	case "B":
		return game.PlayerB, nil
	}
	return game.None, fmt.Errorf("want A or B, got %q", s)
}

func play(side game.Side, depth int) {
	var e *engine.Local
	human := player.NewHuman(os.Stdin, os.Stdout, func() error { return e.Undo() })
	agent := searcher.NewAlphaBeta(searcher.WithDepth(depth))

	if side == game.PlayerA {
		e = engine.NewLocal(human, agent)
	} else {
		e = engine.NewLocal(agent, human)
	}
	winner, _, _ := e.Run()

	player.NewRenderer(os.Stdout).Draw(e.State())
	if winner == game.None {
		fmt.Println("No winner.")
		return
	}
	fmt.Printf("%v wins!\n", winner)
}

func selfplay(depth int) {
	a := searcher.NewAlphaBeta(searcher.WithDepth(depth), searcher.WithMetrics())
	b := searcher.NewAlphaBeta(searcher.WithDepth(depth), searcher.WithMetrics())
	e := engine.NewLocal(a, b)

	winner, gameMetric, moveMetrics := e.Run()

	for _, m := range moveMetrics {
		fmt.Printf("%2d %v %v value %d (%d nodes)\n", m.Step, m.Player, m.Move, m.Value, m.Nodes)
	}
	player.NewRenderer(os.Stdout).Draw(e.State())
	fmt.Printf("Winner: %v after %d moves in %v\n", winner, gameMetric.TotalMoves, gameMetric.Duration)
}

func experiment(path, out string, games int) error {
	exp := experiments.DefaultExperiment()
	if path != "" {
		var err error
		if exp, err = experiments.LoadExperiment(path); err != nil {
			return err
		}
	}
	if games > 0 {
		exp.Games = games
	}

	result, err := experiments.Run(exp)
	if err != nil {
		return err
	}
	dir, err := experiments.Store(out, exp, result)
	if err != nil {
		return err
	}
	log.Info().Msgf("results written to %s", dir)
	return nil
}
