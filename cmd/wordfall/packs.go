package main

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordfall/internal/registry"
)

var packsCmd = &cobra.Command{
	Use:   "packs",
	Short: "List available word packs",
	Long:  `Shows the word packs built into wordfall with their vocabulary size.`,
	Args:  cobra.NoArgs,
	RunE:  runPacks,
}

func runPacks(_ *cobra.Command, _ []string) error {
	packs := registry.List()
	if len(packs) == 0 {
		fmt.Println("No packs available.")
		return nil
	}

	fmt.Println("Available packs:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	maxTitleLen := 5
	for _, p := range packs {
		maxIDLen = max(maxIDLen, len(p.ID))
		maxTitleLen = max(maxTitleLen, runewidth.StringWidth(p.Title))
	}

	fmt.Printf("  %-*s  %s  %s\n", maxIDLen, "ID", runewidth.FillRight("Title", maxTitleLen), "Words  Pairs")
	fmt.Printf("  %-*s  %s  %s\n", maxIDLen, "--", runewidth.FillRight("-----", maxTitleLen), "-----  -----")

	for _, info := range packs {
		pack, err := registry.Get(info.ID)
		if err != nil {
			return err
		}
		dict := pack.Dictionary()
		fmt.Printf("  %-*s  %s  %5d  %5d\n", maxIDLen, info.ID,
			runewidth.FillRight(info.Title, maxTitleLen), dict.TotalWords(), dict.PairCount())
	}

	fmt.Println()
	fmt.Println("Run 'wordfall play --pack <id>' to play a pack.")
	return nil
}
