package wordlist

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// Reason says why Classify would drop a word from a cleaned list.
type Reason int

const (
	Keep Reason = iota
	PastTense
	Plural
)

func (r Reason) String() string {
	switch r {
	case PastTense:
		return "past tense"
	case Plural:
		return "plural"
	}
	return "keep"
}

// Roots is the set of words an inflected form may be derived from.
type Roots struct {
	set mapset.Set[string]
}

func NewRoots(words []string) Roots {
	return Roots{set: mapset.NewThreadUnsafeSet(words...)}
}

func (r Roots) Contains(w string) bool {
	return w != "" && r.set.Contains(w)
}

// Classify guesses whether word is an inflected form of one of roots.
//
// A word ending in "ed" is past tense when dropping "ed" or the final "d"
// leaves a root ("jumped", "rosed"); a word ending in "s" is plural when
// dropping the "s" leaves one ("jumps"). This is a cheap noise filter and
// gets words like "bless" or "need" wrong when the list is unlucky.
func Classify(word string, roots Roots) Reason {
	n := len(word)
	if strings.HasSuffix(word, "ed") && (roots.Contains(word[:n-2]) || roots.Contains(word[:n-1])) {
		return PastTense
	}
	if strings.HasSuffix(word, "s") && roots.Contains(word[:n-1]) {
		return Plural
	}
	return Keep
}

// Clean drops the words of list that Classify flags against the list itself.
// The order of list does not matter.
func Clean(list []string) []string {
	roots := NewRoots(list)
	ret := make([]string, 0, len(list))
	for _, w := range list {
		if Classify(w, roots) == Keep {
			ret = append(ret, w)
		}
	}
	return ret
}
