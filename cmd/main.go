package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/three-thirteen/config"
	"github.com/luca-patrignani/three-thirteen/console"
	"github.com/luca-patrignani/three-thirteen/domain/deck"
	"github.com/luca-patrignani/three-thirteen/domain/game"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		pterm.Error.Println(err.Error())
		fmt.Fprintf(os.Stderr, "usage: %s [-players 2-4] [-seed n] [-debug]\n", os.Args[0])
		os.Exit(2)
	}

	if cfg.Debug {
		pterm.DefaultLogger.Level = pterm.LogLevelDebug
	}
	// Create a new slog logger backed by the default PTerm logger
	logger := slog.New(pterm.NewSlogHandler(&pterm.DefaultLogger))

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("3", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("1", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("3", pterm.FgRed.ToStyle()),
	).Render()

	var src deck.RandomSource
	if cfg.Seed != 0 {
		src = deck.NewSeededSource(cfg.Seed)
		pterm.Info.Printfln("Using seed %d", cfg.Seed)
	} else {
		src = deck.NewCryptoSource()
	}

	var g *game.Game
	spinner, _ := pterm.DefaultSpinner.Start("Shuffling the cards ...")
	g, err = game.New(cfg.Players,
		game.WithSource(src),
		game.WithLogger(logger),
		game.WithPhaseChange(func(old, next game.Phase) {
			if old == game.PhaseDiscard && next == game.PhasePickup {
				printLastAction(g)
			}
		}),
	)
	if err != nil {
		spinner.Fail()
		logger.Error("failed to set up the game", "error", err)
		os.Exit(1)
	}
	spinner.Success()
	pterm.Success.Printfln("Dealt %d cards to %d players", game.CardsPerHand, cfg.Players)

	if err := g.Play(console.New(os.Stdin, os.Stdout)); err != nil {
		logger.Error("game aborted", "error", err)
		os.Exit(1)
	}

	pterm.DefaultPanel.WithPanels([][]pterm.Panel{{getFinishPanel(g)}}).Render()
}
