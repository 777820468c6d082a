// wordfall is a terminal typing game: words fall, you type them away.
//
// Usage:
//
//	wordfall play              - Play with the last used pack
//	wordfall packs             - List available word packs
//	wordfall scores [pack]     - Print the best runs for a pack
//	wordfall scoreboard        - Browse run history interactively
//	wordfall serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.wordfall/scores.db)
//	--pack <id>     - Word pack (default: last used)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import packs to register them
	_ "github.com/vovakirdan/wordfall/internal/packs/en"
	_ "github.com/vovakirdan/wordfall/internal/packs/ru"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagPack     string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wordfall",
	Short: "Wordfall - type the falling words before they land",
	Long: `Wordfall is a terminal typing game. Words fall down the screen and
stack on each other; type a word to destroy it before one reaches the floor.

Bonus words grant timed effects: freeze stops the field, case makes
typing case-sensitive for double points, and synonym/antonym let you
type a related word to destroy a whole group at once.

Available commands:
  play        - Start a game
  packs       - Show available word packs
  scores      - Print the best runs
  scoreboard  - Browse run history
  serve       - Start SSH server for remote play

Examples:
  wordfall play
  wordfall play --pack en --difficulty hard
  wordfall scores ru
  wordfall serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.wordfall/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagPack, "pack", "", "Word pack ID (default: last used)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(packsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(scoreboardCmd)
	rootCmd.AddCommand(serveCmd)
}
