package game

import (
	"math/rand"
	"strings"
	"testing"
)

func TestWordCursorBounds(t *testing.T) {
	w := newWord(1, "cat", BonusNone, 0, 1)

	if w.Advance() || w.Advance() {
		t.Fatal("word should not be complete before its last letter")
	}
	if !w.Advance() {
		t.Fatal("third letter should complete the word")
	}
	// Further advances must not push the cursor past the text.
	w.Advance()
	if w.Cursor() != w.Len() {
		t.Errorf("cursor = %d, expected %d", w.Cursor(), w.Len())
	}
	if w.Next() != 0 {
		t.Errorf("Next() on a full selection = %q, expected 0", w.Next())
	}

	w.ResetCursor()
	if w.Cursor() != 0 {
		t.Errorf("cursor after reset = %d", w.Cursor())
	}
}

func TestWordDestroyIdempotent(t *testing.T) {
	w := newWord(1, "день", BonusNone, 0, 2)
	w.Advance()

	if !w.Destroy() {
		t.Fatal("first Destroy should report true")
	}
	if w.Destroy() {
		t.Error("second Destroy should be a no-op")
	}

	w.SetSpeed(9)
	w.Fall(1)
	w.Advance()
	if w.Speed() != 2 || w.Y() != 0 || w.Cursor() != 0 {
		t.Errorf("destroyed word mutated: speed=%v y=%v cursor=%d", w.Speed(), w.Y(), w.Cursor())
	}
}

func TestWordNormalizesText(t *testing.T) {
	w := newWord(1, "ДеНь", BonusNone, 0, 1)
	if w.Text() != "день" || w.Original() != "день" {
		t.Errorf("text = %q original = %q, expected lowercase", w.Text(), w.Original())
	}
	if w.Width() != 4 {
		t.Errorf("width = %v, expected 4 columns", w.Width())
	}
}

func TestWordCaseRoundTrip(t *testing.T) {
	w := newWord(1, "abcdefghijklmnop", BonusNone, 0, 1)
	w.RandomizeCase(rand.New(rand.NewSource(3)), 0.4)

	if strings.ToLower(w.Text()) != w.Original() {
		t.Fatalf("randomized text %q must only differ in case", w.Text())
	}
	if w.Text() == w.Original() {
		t.Error("with 16 letters at 40% at least one should flip for this seed")
	}

	w.RestoreText()
	if w.Text() != w.Original() {
		t.Errorf("RestoreText() left %q", w.Text())
	}
}

func TestWordPlaceAbove(t *testing.T) {
	lower := newWord(1, "slow", BonusNone, 0, 1)
	lower.y = 5
	upper := newWord(2, "fast", BonusNone, 0, 3)
	upper.y = 4.5

	upper.PlaceAbove(lower)
	if upper.Y() != 4 || upper.Speed() != 1 {
		t.Errorf("after PlaceAbove y=%v speed=%v, expected 4 and 1", upper.Y(), upper.Speed())
	}
	if upper.BaseSpeed() != 3 {
		t.Error("PlaceAbove must not change the base speed")
	}
}

func TestArenaOrderAndCompact(t *testing.T) {
	a := NewArena()
	w1 := a.Spawn("one", BonusNone, 0, 1)
	w2 := a.Spawn("two", BonusFreeze, 0, 1)
	w3 := a.Spawn("three", BonusNone, 0, 1)

	if got := a.Tracked(); len(got) != 2 || got[0] != w1 || got[1] != w3 {
		t.Errorf("Tracked() should skip bonus words and keep order, got %d words", len(got))
	}

	w1.Destroy()
	if a.ActiveCount() != 2 {
		t.Errorf("ActiveCount() = %d, expected 2", a.ActiveCount())
	}
	if a.Get(w1.ID()) != nil {
		t.Error("Get should not return destroyed words")
	}

	a.Compact()
	live := a.Live()
	if len(live) != 2 || live[0] != w2 || live[1] != w3 {
		t.Error("Compact should keep live words in insertion order")
	}

	a.Clear()
	if a.ActiveCount() != 0 || !w2.Destroyed() {
		t.Error("Clear should destroy every word")
	}
}
