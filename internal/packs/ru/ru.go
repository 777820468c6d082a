// Package ru registers the Russian word pack.
package ru

import (
	_ "embed"

	"github.com/vovakirdan/wordfall/internal/registry"
)

//go:embed a.txt
var groupA []byte

//go:embed b.txt
var groupB []byte

// ID is the registry identifier of this pack.
const ID = "ru"

func init() {
	registry.Register(registry.Pack{
		ID:     ID,
		Title:  "Русский",
		GroupA: groupA,
		GroupB: groupB,
	})
}
