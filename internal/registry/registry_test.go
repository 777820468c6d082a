package registry

import (
	"testing"
)

func TestRegisterAndGet(t *testing.T) {
	Register(Pack{
		ID:     "test-pack",
		Title:  "Test",
		GroupA: []byte("hot warm\nday"),
		GroupB: []byte("cold\nnight"),
	})

	if !Exists("test-pack") {
		t.Fatal("registered pack should exist")
	}

	p, err := Get("test-pack")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	d := p.Dictionary()
	if !d.AreAntonyms("day", "night") || !d.AreSynonyms("hot", "warm") {
		t.Error("pack dictionary lost its relations")
	}

	found := false
	for _, info := range List() {
		if info.ID == "test-pack" && info.Title == "Test" {
			found = true
		}
	}
	if !found {
		t.Error("List() should include the registered pack")
	}
}

func TestGetUnknown(t *testing.T) {
	if _, err := Get("no-such-pack"); err == nil {
		t.Error("expected error for unknown pack")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(Pack{ID: "dup-pack"})
	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()
	Register(Pack{ID: "dup-pack"})
}
