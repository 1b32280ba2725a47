package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/card-dealer/config"
	"github.com/luca-patrignani/card-dealer/domain/dealer"
	"github.com/luca-patrignani/card-dealer/domain/deck"
)

func main() {
	if len(os.Args) > 2 {
		fmt.Fprintf(os.Stderr, "usage: %s [config.json]\n", os.Args[0])
		os.Exit(1)
	}
	path := ""
	if len(os.Args) == 2 {
		path = os.Args[1]
	}

	cfg, err := config.Load(path)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}

	handler := pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(logLevel(cfg.LogLevel)))
	logger := slog.New(handler)

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("D", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("ealer", pterm.FgDarkGray.ToStyle()),
	).Render()

	if cfg.Players == 0 {
		cfg.Players, err = askPlayers()
		if err != nil {
			logger.Error("could not read the number of players", "error", err)
			os.Exit(1)
		}
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	logger.Debug("configuration loaded", "path", path, "players", cfg.Players, "shuffle", cfg.Shuffle, "source", cfg.Source)

	d := deck.New(deck.WithSource(cfg.RandomSource()))
	if cfg.Shuffle {
		spinner, _ := pterm.DefaultSpinner.Start("Shuffling the cards ...")
		d.Shuffle()
		spinner.Success()
	}

	dl, err := dealer.New(d, cfg.Players)
	if err != nil {
		logger.Error("failed to deal", "error", err)
		os.Exit(1)
	}
	logger.Info("cards dealt",
		"deal", dl.ID(),
		"players", dl.Players(),
		"cardsPerPlayer", dl.CardsPerPlayer(),
		"unused", dl.UnusedCount(),
	)

	panels, err := dealPanels(dl)
	if err != nil {
		logger.Error("failed to render the deal", "error", err)
		os.Exit(1)
	}
	pterm.DefaultPanel.WithPanels(panels).Render()
	pterm.Success.Printfln("Dealt %d cards to %d players, %d unused", dl.CardsPerPlayer()*dl.Players(), dl.Players(), dl.UnusedCount())
}

func askPlayers() (int, error) {
	selected, err := pterm.DefaultInteractiveSelect.
		WithDefaultText("Select the number of players").
		WithOptions(playerOptions()).
		Show()
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(selected)
}

func playerOptions() []string {
	options := []string{}
	for n := config.MinPlayers; n <= config.MaxPlayers; n++ {
		options = append(options, strconv.Itoa(n))
	}
	return options
}

func logLevel(level slog.Level) pterm.LogLevel {
	switch {
	case level <= slog.LevelDebug:
		return pterm.LogLevelDebug
	case level <= slog.LevelInfo:
		return pterm.LogLevelInfo
	case level <= slog.LevelWarn:
		return pterm.LogLevelWarn
	default:
		return pterm.LogLevelError
	}
}
