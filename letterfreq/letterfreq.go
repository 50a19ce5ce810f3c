// Package letterfreq counts how often each letter occurs in a word list,
// overall and per position.
package letterfreq

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/bent101/wordle-matches/feedback"
	"github.com/bent101/wordle-matches/wordlist"
)

// Stats are the letter frequencies of the five letter words of a list.
type Stats struct {
	// Total is the number of distinct five letter entries before filtering.
	Total     int
	Nonwords  int
	PastTense int
	Plurals   int
	Valid     int

	// Overall counts each letter once per word that contains it.
	Overall map[byte]int
	// Positional[i] counts the letters at position i.
	Positional [feedback.Length]map[byte]int
}

// Count computes Stats over list. Entries of other lengths only serve as
// roots when deciding whether a word is an inflected form.
func Count(list []string) *Stats {
	s := &Stats{Overall: map[byte]int{}}
	for i := range s.Positional {
		s.Positional[i] = map[byte]int{}
	}

	unique := mapset.NewThreadUnsafeSet(list...)
	roots := wordlist.NewRoots(list)

	for _, word := range unique.ToSlice() {
		if len(word) != feedback.Length {
			continue
		}
		s.Total++

		if !wordlist.IsLowerAlpha(word) {
			s.Nonwords++
			continue
		}
		switch classify(word, roots) {
		case wordlist.PastTense:
			s.PastTense++
			continue
		case wordlist.Plural:
			s.Plurals++
			continue
		}

		s.Valid++
		var seen [26]bool
		for i := 0; i < feedback.Length; i++ {
			c := word[i]
			s.Positional[i][c]++
			if !seen[c-'a'] {
				seen[c-'a'] = true
				s.Overall[c]++
			}
		}
	}

	return s
}

// classify is stricter than wordlist.Classify: a past tense must drop
// exactly "ed" to reach its root, so "baked" from "bake" is kept.
func classify(word string, roots wordlist.Roots) wordlist.Reason {
	n := len(word)
	switch {
	case strings.HasSuffix(word, "ed") && roots.Contains(word[:n-2]):
		return wordlist.PastTense
	case strings.HasSuffix(word, "s") && roots.Contains(word[:n-1]):
		return wordlist.Plural
	}
	return wordlist.Keep
}

// Ranked returns the overall ranking followed by one ranking per position.
func (s *Stats) Ranked() (overall []Ranked[byte], positional [feedback.Length][]Ranked[byte]) {
	overall = Rank(s.Overall)
	for i, m := range s.Positional {
		positional[i] = Rank(m)
	}
	return overall, positional
}
