package constraint

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"

	"github.com/bent101/wordle-matches/feedback"
)

const (
	length   = feedback.Length
	alphabet = 26
)

// ErrContradiction is returned when a play cannot be reconciled with the
// plays already folded into a State.
var ErrContradiction = errors.New("contradictory feedback")

// State holds the positional and occurrence constraints accumulated over
// the plays of one game. The zero value is not usable; call New.
type State struct {
	// allowed[i] is the set of letters still possible at position i
	allowed [length]*bitset.BitSet
	min     [alphabet]int
	// max is length for letters without an upper bound
	max [alphabet]int
	// plays applied so far, for diagnostics
	plays int
}

// New returns a State with no constraints: every letter is allowed
// everywhere and no counts are bounded.
func New() *State {
	s := &State{}
	for i := range s.allowed {
		s.allowed[i] = bitset.New(alphabet)
		for c := uint(0); c < alphabet; c++ {
			s.allowed[i].Set(c)
		}
	}
	for c := range s.max {
		s.max[c] = length
	}
	return s
}

// Clone returns a deep copy of s that shares no storage with it.
func (s *State) Clone() *State {
	n := &State{min: s.min, max: s.max, plays: s.plays}
	for i, b := range s.allowed {
		n.allowed[i] = b.Clone()
	}
	return n
}

// Equal reports whether both states accept exactly the same constraints.
func (s *State) Equal(o *State) bool {
	if s.min != o.min || s.max != o.max {
		return false
	}
	for i := range s.allowed {
		if !s.allowed[i].Equal(o.allowed[i]) {
			return false
		}
	}
	return true
}

// Plays returns how many plays have been applied.
func (s *State) Plays() int { return s.plays }

// Update folds one guess and its feedback into s. It either applies the
// whole play or, on error, leaves s untouched.
//
// An absent letter fixes that letter's count to the number of times the
// same guess marked it exact or present, which is zero for a letter that
// is not in the answer at all.
func (s *State) Update(guess string, p feedback.Pattern) error {
	if err := feedback.ValidateWord(guess); err != nil {
		return err
	}

	var tally [alphabet]int
	var sawAbsent [alphabet]bool

	for i := 0; i < length; i++ {
		c := uint(guess[i] - 'a')
		switch p[i] {
		case feedback.Exact:
			if !s.allowed[i].Test(c) {
				return fmt.Errorf("%w: %q is exact at position %d but was ruled out there", ErrContradiction, guess[i], i+1)
			}
			tally[c]++
		case feedback.Present:
			if s.pinned(i, c) {
				return fmt.Errorf("%w: %q is present at position %d but is already exact there", ErrContradiction, guess[i], i+1)
			}
			tally[c]++
		case feedback.Absent:
			sawAbsent[c] = true
		default:
			return fmt.Errorf("%w: bad code %d at position %d", feedback.ErrInvalidFeedback, p[i], i+1)
		}
	}

	for c := 0; c < alphabet; c++ {
		if tally[c] > s.max[c] {
			return fmt.Errorf("%w: %q occurs at least %d times but at most %d", ErrContradiction, 'a'+c, tally[c], s.max[c])
		}
		if sawAbsent[c] && s.min[c] > tally[c] {
			return fmt.Errorf("%w: %q occurs exactly %d times but at least %d", ErrContradiction, 'a'+c, tally[c], s.min[c])
		}
	}

	for i := 0; i < length; i++ {
		c := uint(guess[i] - 'a')
		switch p[i] {
		case feedback.Exact:
			s.allowed[i].ClearAll().Set(c)
		case feedback.Present:
			s.allowed[i].Clear(c)
		}
	}

	for c := 0; c < alphabet; c++ {
		if tally[c] > s.min[c] {
			s.min[c] = tally[c]
		}
		if sawAbsent[c] {
			s.max[c] = tally[c]
		}
	}

	s.plays++
	return nil
}

// Apply updates s with each play in order, stopping at the first error.
func (s *State) Apply(plays ...Play) error {
	for _, pl := range plays {
		if err := s.Update(pl.Guess, pl.Pattern); err != nil {
			return fmt.Errorf("play %s: %w", pl, err)
		}
	}
	return nil
}

// Matches reports whether word satisfies every constraint in s.
func (s *State) Matches(word string) bool {
	if len(word) != length {
		return false
	}

	var count [alphabet]int
	for i := 0; i < length; i++ {
		ch := word[i]
		if ch < 'a' || ch > 'z' {
			return false
		}
		c := ch - 'a'
		if !s.allowed[i].Test(uint(c)) {
			return false
		}
		count[c]++
	}

	for c := 0; c < alphabet; c++ {
		if count[c] < s.min[c] || count[c] > s.max[c] {
			return false
		}
	}
	return true
}

// Allowed returns the letters still possible at position i, in order.
func (s *State) Allowed(i int) string {
	var b strings.Builder
	for c, ok := s.allowed[i].NextSet(0); ok; c, ok = s.allowed[i].NextSet(c + 1) {
		b.WriteByte(byte('a' + c))
	}
	return b.String()
}

// Bounds returns the minimum and maximum number of times letter may occur.
func (s *State) Bounds(letter byte) (lo, hi int) {
	c := letter - 'a'
	return s.min[c], s.max[c]
}

func (s *State) pinned(i int, c uint) bool {
	return s.allowed[i].Count() == 1 && s.allowed[i].Test(c)
}
