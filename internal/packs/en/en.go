// Package en registers the English word pack.
package en

import (
	_ "embed"

	"github.com/vovakirdan/wordfall/internal/registry"
)

//go:embed a.txt
var groupA []byte

//go:embed b.txt
var groupB []byte

// ID is the registry identifier of this pack.
const ID = "en"

func init() {
	registry.Register(registry.Pack{
		ID:     ID,
		Title:  "English",
		GroupA: groupA,
		GroupB: groupB,
	})
}
