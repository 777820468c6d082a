package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/wordfall/internal/platform/tui"
	"github.com/vovakirdan/wordfall/internal/storage"
)

var scoreboardCmd = &cobra.Command{
	Use:   "scoreboard",
	Short: "Browse run history",
	Long: `Open an interactive table of the best runs per word pack.

Controls:
  Up/Down     - Scroll
  Tab/S-Tab   - Next/previous pack
  Q/Esc       - Quit`,
	Args: cobra.NoArgs,
	RunE: runScoreboard,
}

func runScoreboard(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return tui.RunScoreboard(store, flagPack, width, height)
}
