// Package dictionary indexes two line-aligned word lists into synonym and
// antonym relations.
//
// Line i of list A and line i of list B are opposites of each other; words
// sharing a line inside one list are synonyms. The index is built once and
// never mutated afterwards, so a *Dictionary can be shared freely.
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Placeholder is returned by RandomWord when the vocabulary is empty.
const Placeholder = "word"

// Group identifies which of the two lists a word came from.
type Group int

const (
	GroupA Group = iota
	GroupB
)

// Opposite returns the other group.
func (g Group) Opposite() Group {
	if g == GroupA {
		return GroupB
	}
	return GroupA
}

type position struct {
	line  int
	group Group
}

// Dictionary is an immutable relation index.
type Dictionary struct {
	lines [2][][]string
	index map[string]position
	vocab []string
	err   error
}

// ErrInvalidEncoding is reported by Err when a source is not valid UTF-8.
var ErrInvalidEncoding = errors.New("dictionary: source is not valid UTF-8")

// Empty returns a dictionary with no words.
func Empty() *Dictionary {
	return &Dictionary{index: make(map[string]position)}
}

// Parse builds a dictionary from two line-aligned readers.
// It never fails: on any read or decode error the result is empty and Err
// reports the cause.
func Parse(a, b io.Reader) *Dictionary {
	linesA, err := readLines(a)
	if err != nil {
		return failed(fmt.Errorf("dictionary: group A: %w", err))
	}
	linesB, err := readLines(b)
	if err != nil {
		return failed(fmt.Errorf("dictionary: group B: %w", err))
	}
	return build(linesA, linesB)
}

// LoadFiles reads both lists from disk. A missing or unreadable file yields
// an empty dictionary.
func LoadFiles(pathA, pathB string) *Dictionary {
	fa, err := os.Open(pathA)
	if err != nil {
		return failed(fmt.Errorf("dictionary: cannot open %s: %w", pathA, err))
	}
	defer fa.Close()

	fb, err := os.Open(pathB)
	if err != nil {
		return failed(fmt.Errorf("dictionary: cannot open %s: %w", pathB, err))
	}
	defer fb.Close()

	return Parse(fa, fb)
}

func failed(err error) *Dictionary {
	d := Empty()
	d.err = err
	return d
}

// Err returns the load error, if the dictionary fell back to empty.
func (d *Dictionary) Err() error {
	return d.err
}

func readLines(r io.Reader) ([][]string, error) {
	var lines [][]string
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		raw := sc.Bytes()
		if !utf8.Valid(raw) {
			return nil, fmt.Errorf("line %d: %w", lineNo, ErrInvalidEncoding)
		}
		lines = append(lines, splitWords(string(raw)))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// splitWords splits a line on commas, semicolons and whitespace and
// lowercases every word. Blank lines produce an empty slice.
func splitWords(line string) []string {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ';' || unicode.IsSpace(r)
	})
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		words = append(words, normalize(f))
	}
	return words
}

func normalize(w string) string {
	return strings.ToLower(strings.TrimSpace(w))
}

func build(a, b [][]string) *Dictionary {
	d := Empty()
	d.lines[GroupA] = a
	d.lines[GroupB] = b

	seen := make(map[string]bool)
	for g := GroupA; g <= GroupB; g++ {
		for i, words := range d.lines[g] {
			for _, w := range words {
				// First occurrence wins.
				if _, ok := d.index[w]; !ok {
					d.index[w] = position{line: i, group: g}
				}
				if !seen[w] {
					seen[w] = true
					d.vocab = append(d.vocab, w)
				}
			}
		}
	}
	return d
}

func (d *Dictionary) lookup(word string) (position, bool) {
	p, ok := d.index[normalize(word)]
	return p, ok
}

func (d *Dictionary) lineWords(g Group, line int) []string {
	lines := d.lines[g]
	if line < 0 || line >= len(lines) {
		return nil
	}
	out := make([]string, len(lines[line]))
	copy(out, lines[line])
	return out
}

// Synonyms returns every word on the same line of the same group, the word
// itself included. Unknown words yield nil.
func (d *Dictionary) Synonyms(word string) []string {
	p, ok := d.lookup(word)
	if !ok {
		return nil
	}
	return d.lineWords(p.group, p.line)
}

// Antonyms returns every word on the same line of the opposite group.
func (d *Dictionary) Antonyms(word string) []string {
	p, ok := d.lookup(word)
	if !ok {
		return nil
	}
	return d.lineWords(p.group.Opposite(), p.line)
}

// AreSynonyms reports whether both words index to the same line and group.
func (d *Dictionary) AreSynonyms(a, b string) bool {
	pa, okA := d.lookup(a)
	pb, okB := d.lookup(b)
	return okA && okB && pa.line == pb.line && pa.group == pb.group
}

// AreAntonyms reports whether both words index to the same line in opposite groups.
func (d *Dictionary) AreAntonyms(a, b string) bool {
	pa, okA := d.lookup(a)
	pb, okB := d.lookup(b)
	return okA && okB && pa.line == pb.line && pa.group != pb.group
}

// RandomWord picks uniformly from the deduplicated vocabulary.
func (d *Dictionary) RandomWord(rng *rand.Rand) string {
	if len(d.vocab) == 0 {
		return Placeholder
	}
	return d.vocab[rng.Intn(len(d.vocab))]
}

// TotalWords returns the size of the deduplicated vocabulary.
func (d *Dictionary) TotalWords() int {
	return len(d.vocab)
}

// PairCount returns the number of lines present in both groups.
func (d *Dictionary) PairCount() int {
	return min(len(d.lines[GroupA]), len(d.lines[GroupB]))
}

// Contains reports whether the word is indexed.
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.lookup(word)
	return ok
}
