package dictionary

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

const listA = `день, свет
горячий; жаркий

Большой
день`

const listB = `ночь
холодный
пусто
маленький`

func testDict(t *testing.T) *Dictionary {
	t.Helper()
	d := Parse(strings.NewReader(listA), strings.NewReader(listB))
	if d.Err() != nil {
		t.Fatalf("unexpected load error: %v", d.Err())
	}
	return d
}

func TestSynonymsIncludeSelf(t *testing.T) {
	d := testDict(t)

	syn := d.Synonyms("день")
	if !slices.Contains(syn, "день") || !slices.Contains(syn, "свет") {
		t.Errorf("Synonyms(день) = %v, expected to contain itself and свет", syn)
	}
	if !d.AreSynonyms("горячий", "горячий") {
		t.Error("a word should be its own synonym")
	}
}

func TestAntonyms(t *testing.T) {
	d := testDict(t)

	if got := d.Antonyms("день"); !slices.Equal(got, []string{"ночь"}) {
		t.Errorf("Antonyms(день) = %v, expected [ночь]", got)
	}
	if got := d.Antonyms("ночь"); !slices.Equal(got, []string{"день", "свет"}) {
		t.Errorf("Antonyms(ночь) = %v, expected [день свет]", got)
	}
}

func TestCaseInsensitive(t *testing.T) {
	d := testDict(t)

	if !d.AreAntonyms("ДЕНЬ", "Ночь") {
		t.Error("lookups should ignore case")
	}
	if !d.Contains("большой") {
		t.Error("words should be lowercased on load")
	}
}

func TestRelations(t *testing.T) {
	d := testDict(t)

	tests := []struct {
		a, b     string
		synonyms bool
		antonyms bool
	}{
		{"день", "свет", true, false},
		{"горячий", "жаркий", true, false},
		{"горячий", "холодный", false, true},
		{"день", "ночь", false, true},
		{"день", "холодный", false, false},
		{"день", "нет-такого", false, false},
		{"нет-такого", "нет-такого", false, false},
	}
	for _, tc := range tests {
		if got := d.AreSynonyms(tc.a, tc.b); got != tc.synonyms {
			t.Errorf("AreSynonyms(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.synonyms)
		}
		if got := d.AreAntonyms(tc.a, tc.b); got != tc.antonyms {
			t.Errorf("AreAntonyms(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.antonyms)
		}
	}
}

func TestFirstOccurrenceWins(t *testing.T) {
	d := testDict(t)

	// "день" appears again on line 3; the index keeps line 0.
	if !d.AreAntonyms("день", "ночь") {
		t.Error("duplicate word should keep its first line")
	}
	if d.AreAntonyms("день", "маленький") {
		t.Error("duplicate word must not be reindexed to its later line")
	}
}

func TestBlankLineKeepsIndex(t *testing.T) {
	d := testDict(t)

	// Line 2 of A is blank, so "большой" sits on line 3 next to "маленький".
	if !d.AreAntonyms("большой", "маленький") {
		t.Error("blank lines must still occupy a line index")
	}
	if got := d.Antonyms("пусто"); len(got) != 0 {
		t.Errorf("antonyms of a word opposite a blank line = %v, expected none", got)
	}
}

func TestUnknownWord(t *testing.T) {
	d := testDict(t)
	if d.Synonyms("xyz") != nil || d.Antonyms("xyz") != nil {
		t.Error("unknown words should have empty relation sets")
	}
}

func TestCounts(t *testing.T) {
	d := testDict(t)

	// день свет горячий жаркий большой ночь холодный пусто маленький
	if d.TotalWords() != 9 {
		t.Errorf("TotalWords() = %d, expected 9", d.TotalWords())
	}
	if d.PairCount() != 4 {
		t.Errorf("PairCount() = %d, expected 4", d.PairCount())
	}

	uneven := Parse(strings.NewReader("a\nb\nc"), strings.NewReader("x"))
	if uneven.PairCount() != 1 {
		t.Errorf("PairCount() with uneven lists = %d, expected 1", uneven.PairCount())
	}
}

func TestRandomWordDeterministic(t *testing.T) {
	d := testDict(t)

	r1 := rand.New(rand.NewSource(42))
	r2 := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		w1, w2 := d.RandomWord(r1), d.RandomWord(r2)
		if w1 != w2 {
			t.Fatalf("draw %d differs: %q vs %q", i, w1, w2)
		}
		if !d.Contains(w1) {
			t.Fatalf("RandomWord returned %q, not in vocabulary", w1)
		}
	}
}

func TestRandomWordEmpty(t *testing.T) {
	d := Empty()
	if got := d.RandomWord(rand.New(rand.NewSource(1))); got != Placeholder {
		t.Errorf("RandomWord on empty dictionary = %q, expected %q", got, Placeholder)
	}
}

func TestInvalidEncodingYieldsEmpty(t *testing.T) {
	d := Parse(strings.NewReader("ok\n\xff\xfe"), strings.NewReader("fine"))

	if d.TotalWords() != 0 || d.PairCount() != 0 {
		t.Error("corrupt source should produce an empty dictionary")
	}
	if !errors.Is(d.Err(), ErrInvalidEncoding) {
		t.Errorf("Err() = %v, expected ErrInvalidEncoding", d.Err())
	}
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	pathA := filepath.Join(dir, "a.txt")
	pathB := filepath.Join(dir, "b.txt")
	if err := os.WriteFile(pathA, []byte("hot warm\nbig"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(pathB, []byte("cold\nsmall\nhot"), 0o644); err != nil {
		t.Fatal(err)
	}

	d := LoadFiles(pathA, pathB)
	if d.Err() != nil {
		t.Fatalf("LoadFiles: %v", d.Err())
	}
	if !d.AreAntonyms("warm", "cold") {
		t.Error("expected warm/cold to be antonyms")
	}
	if !d.AreAntonyms("big", "small") {
		t.Error("expected big/small to be antonyms")
	}
	// "hot" repeats on B line 2 but stays indexed at A line 0.
	if !d.AreAntonyms("hot", "cold") || !d.AreSynonyms("hot", "warm") {
		t.Error("a repeated word should keep its first line")
	}
}

func TestLoadFilesMissing(t *testing.T) {
	d := LoadFiles(filepath.Join(t.TempDir(), "nope.txt"), "also-missing.txt")

	if d.Err() == nil {
		t.Error("missing file should be reported by Err")
	}
	if d.TotalWords() != 0 {
		t.Error("missing file should produce an empty dictionary")
	}
	if d.RandomWord(rand.New(rand.NewSource(1))) != Placeholder {
		t.Error("empty dictionary should degrade to the placeholder word")
	}
}
