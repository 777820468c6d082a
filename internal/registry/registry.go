// Package registry provides a global registry of word packs.
// Packs register themselves in init() functions, allowing the platform
// to discover them without hardcoded dependencies.
package registry

import (
	"bytes"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/wordfall/internal/dictionary"
)

// Pack is a pair of line-aligned word lists.
// Line i of GroupA and line i of GroupB are opposites; words on one line
// of the same list are synonyms.
type Pack struct {
	// ID is a unique identifier (e.g., "ru", "en").
	// Used for CLI flags and score storage.
	ID string

	// Title is a human-readable name for display.
	Title string

	GroupA []byte
	GroupB []byte
}

// Dictionary parses the pack into a relation index.
func (p Pack) Dictionary() *dictionary.Dictionary {
	return dictionary.Parse(bytes.NewReader(p.GroupA), bytes.NewReader(p.GroupB))
}

// PackInfo contains metadata about a registered pack.
type PackInfo struct {
	ID    string
	Title string
}

var (
	packs = make(map[string]Pack)
	mu    sync.RWMutex
)

// Register adds a word pack to the registry.
// Typically called from a pack's init() function.
// Panics if a pack with the same ID is already registered.
func Register(p Pack) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := packs[p.ID]; exists {
		panic(fmt.Sprintf("registry: pack %q already registered", p.ID))
	}
	packs[p.ID] = p
}

// List returns information about all registered packs, sorted by ID.
func List() []PackInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PackInfo, 0, len(packs))
	for id, p := range packs {
		result = append(result, PackInfo{
			ID:    id,
			Title: p.Title,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns a pack by its ID.
// Returns an error if the pack ID is not registered.
func Get(id string) (Pack, error) {
	mu.RLock()
	defer mu.RUnlock()

	p, ok := packs[id]
	if !ok {
		return Pack{}, fmt.Errorf("registry: unknown pack %q", id)
	}
	return p, nil
}

// Exists checks if a pack with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := packs[id]
	return ok
}
