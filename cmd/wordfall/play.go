package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/wordfall/internal/core"
	"github.com/vovakirdan/wordfall/internal/platform/tui"
	"github.com/vovakirdan/wordfall/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play wordfall",
	Long: `Start a game of wordfall.

Controls:
  letters     - Type the falling words
  Backspace   - Erase the synonym/antonym candidate
  Enter       - Start / play again
  Esc         - Pause and resume
  PgUp/PgDn   - Change word speed (saved)
  Ctrl+C      - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  wordfall play
  wordfall play --pack en
  wordfall play --difficulty hard --speed 20
  wordfall play --words-a ./warm.txt --words-b ./cold.txt
  wordfall play --config ./my-wordfall.yaml --log-file ./wordfall.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd.Flags())
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closer, err := newLogger("wordfall", io.Discard)
	if err != nil {
		return err
	}
	defer closer.Close()

	setup, err := loadSetup(logger, true)
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "err", err)
		store = nil
	}

	runErr := tui.Run(tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Config:   setup.cfg,
		Pack:     setup.pack,
		Store:    store,
		Settings: setup.settings,
		Logger:   logger,
	})

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}
