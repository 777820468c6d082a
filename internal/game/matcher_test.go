package game

import "testing"

func cursors(words ...*Word) []int {
	out := make([]int, len(words))
	for i, w := range words {
		out[i] = w.Cursor()
	}
	return out
}

func TestPrimarySharedPrefix(t *testing.T) {
	a := NewArena()
	cat := a.Spawn("cat", BonusNone, 0, 1)
	car := a.Spawn("car", BonusNone, 10, 1)
	dog := a.Spawn("dog", BonusNone, 20, 1)
	m := NewPrimaryMatcher()

	res := m.Feed(a, 'c')
	if !res.Accepted || cat.Cursor() != 1 || car.Cursor() != 1 || dog.Cursor() != 0 {
		t.Fatalf("after 'c': accepted=%v cursors=%v", res.Accepted, cursors(cat, car, dog))
	}

	res = m.Feed(a, 'a')
	if !res.Accepted || cat.Cursor() != 2 || car.Cursor() != 2 {
		t.Fatalf("after 'a': cursors=%v", cursors(cat, car, dog))
	}

	res = m.Feed(a, 't')
	if !res.Accepted {
		t.Fatal("'t' should be accepted")
	}
	if len(res.Completed) != 1 || res.Completed[0] != cat {
		t.Fatalf("expected only cat completed, got %d words", len(res.Completed))
	}
	if car.Cursor() != 0 {
		t.Errorf("car cursor = %d, expected reset to 0", car.Cursor())
	}
}

func TestPrimarySelectionIgnoresUnselected(t *testing.T) {
	a := NewArena()
	cat := a.Spawn("cat", BonusNone, 0, 1)
	ant := a.Spawn("ant", BonusNone, 10, 1)
	m := NewPrimaryMatcher()

	m.Feed(a, 'c')
	// 'a' is the next letter of cat and the first of ant; only cat is selected.
	m.Feed(a, 'a')
	if cat.Cursor() != 2 || ant.Cursor() != 0 {
		t.Errorf("cursors = %v, expected [2 0]", cursors(cat, ant))
	}
}

func TestPrimaryRejectClearsSelection(t *testing.T) {
	a := NewArena()
	cat := a.Spawn("cat", BonusNone, 0, 1)
	car := a.Spawn("car", BonusNone, 10, 1)
	m := NewPrimaryMatcher()

	m.Feed(a, 'c')
	res := m.Feed(a, 'x')
	if res.Accepted {
		t.Error("'x' should be rejected")
	}
	if cat.Cursor() != 0 || car.Cursor() != 0 {
		t.Errorf("cursors = %v, expected all zero", cursors(cat, car))
	}

	if res := m.Feed(a, 'z'); res.Accepted {
		t.Error("a letter starting no word should be rejected")
	}
}

func TestPrimaryCaseSensitivity(t *testing.T) {
	a := NewArena()
	w := a.Spawn("день", BonusNone, 0, 1)
	w.text[0] = 'Д'
	m := NewPrimaryMatcher()

	if !m.Feed(a, 'д').Accepted {
		t.Fatal("case-insensitive match should accept 'д' for 'Д'")
	}
	w.ResetCursor()

	m.SetCaseSensitive(true)
	if m.Feed(a, 'д').Accepted {
		t.Error("case-sensitive match should reject 'д' for 'Д'")
	}
	if !m.Feed(a, 'Д').Accepted {
		t.Error("case-sensitive match should accept 'Д'")
	}
}

func TestPrimaryOneLetterWordCompletes(t *testing.T) {
	a := NewArena()
	a.Spawn("я", BonusNone, 0, 1)
	res := NewPrimaryMatcher().Feed(a, 'я')
	if len(res.Completed) != 1 {
		t.Error("one-letter word should complete on its first letter")
	}
}
