package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/vovakirdan/wordfall/internal/config"
	"github.com/vovakirdan/wordfall/internal/registry"
	"github.com/vovakirdan/wordfall/internal/settings"
)

// customPackID is the pack ID used for --words-a/--words-b lists.
const customPackID = "custom"

var (
	flagConfig     string
	flagDifficulty string
	flagSpeed      float64
	flagWordsA     string
	flagWordsB     string
)

// gameSetup is everything a game host needs, resolved from flags, saved
// settings and the config file.
type gameSetup struct {
	cfg      config.WordfallConfig
	pack     registry.Pack
	settings *settings.Manager
}

// addGameFlags registers the flags shared by play and serve.
func addGameFlags(fs *pflag.FlagSet) {
	fs.StringVar(&flagConfig, "config", "", "Path to custom wordfall config YAML")
	fs.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed (default: last used)")
	fs.Float64Var(&flagSpeed, "speed", 0, "Word speed 1-100 (default: last used)")
	fs.StringVar(&flagWordsA, "words-a", "", "Custom word list, group A (needs --words-b)")
	fs.StringVar(&flagWordsB, "words-b", "", "Custom word list, group B (needs --words-a)")
}

// loadSetup resolves the game configuration. With persist, saved settings
// fill in flags that were not given and given flags are saved for next time.
func loadSetup(logger *log.Logger, persist bool) (*gameSetup, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	var mgr *settings.Manager
	if persist {
		data, err := settings.Open()
		if err != nil {
			logger.Warn("settings will not be saved", "err", err)
		}
		mgr = settings.NewManager(data, logger)
	} else {
		mgr = settings.NewManager(nil, logger)
	}
	saved := mgr.Get()

	difficulty := flagDifficulty
	if difficulty == "" {
		difficulty = saved.Difficulty
	}
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return nil, err
	}
	config.ApplyPreset(&cfg, preset)
	mgr.SetDifficulty(string(preset))

	pack, err := resolvePack(saved.Pack)
	if err != nil {
		return nil, err
	}
	if pack.ID != customPackID {
		mgr.SetPack(pack.ID)
	}
	if dict := pack.Dictionary(); dict.Err() != nil {
		logger.Warn("word lists unusable, falling back to placeholder words", "pack", pack.ID, "err", dict.Err())
	}

	if flagSpeed > 0 {
		mgr.SetWordSpeed(flagSpeed)
	}
	if err := mgr.Save(); err != nil {
		logger.Warn("could not save settings", "err", err)
	}

	logger.Debug("setup resolved", "pack", pack.ID, "difficulty", preset, "word_speed", mgr.Get().WordSpeed)
	return &gameSetup{cfg: cfg, pack: pack, settings: mgr}, nil
}

// resolvePack picks the custom lists, the --pack flag or the last used pack.
func resolvePack(lastUsed string) (registry.Pack, error) {
	if flagWordsA != "" || flagWordsB != "" {
		if flagWordsA == "" || flagWordsB == "" {
			return registry.Pack{}, fmt.Errorf("--words-a and --words-b must be given together")
		}
		a, err := os.ReadFile(flagWordsA)
		if err != nil {
			return registry.Pack{}, fmt.Errorf("cannot read word list: %w", err)
		}
		b, err := os.ReadFile(flagWordsB)
		if err != nil {
			return registry.Pack{}, fmt.Errorf("cannot read word list: %w", err)
		}
		return registry.Pack{
			ID:     customPackID,
			Title:  strings.TrimSuffix(filepath.Base(flagWordsA), filepath.Ext(flagWordsA)),
			GroupA: a,
			GroupB: b,
		}, nil
	}

	id := flagPack
	if id == "" {
		id = lastUsed
	}
	if !registry.Exists(id) {
		if flagPack != "" {
			return registry.Pack{}, fmt.Errorf("unknown pack %q, run 'wordfall packs' to see available packs", id)
		}
		id = settings.Default().Pack
	}
	return registry.Get(id)
}
