package feedback

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Length is the number of letters in a word.
const Length = 5

var (
	ErrInvalidWord     = errors.New("invalid word")
	ErrInvalidFeedback = errors.New("invalid feedback")
)

// Code is the feedback for a single letter of a guess.
type Code uint8

const (
	Absent Code = iota
	Present
	Exact
)

func (c Code) String() string {
	switch c {
	case Absent:
		return "absent"
	case Present:
		return "present"
	case Exact:
		return "exact"
	}
	return "Code(" + strconv.Itoa(int(c)) + ")"
}

// Pattern is the feedback for a whole guess, one Code per position.
type Pattern [Length]Code

// Solved is the pattern of a correct guess.
var Solved = Pattern{Exact, Exact, Exact, Exact, Exact}

// Rank packs the pattern as a base 3 number (for hashing).
func (p Pattern) Rank() uint8 {
	var ret uint8
	for _, c := range p {
		ret = ret*3 + uint8(c)
	}
	return ret
}

// FromRank is the inverse of Rank.
func FromRank(r uint8) Pattern {
	var p Pattern
	for i := Length - 1; i >= 0; i-- {
		p[i] = Code(r % 3)
		r /= 3
	}
	return p
}

func (p Pattern) String() string {
	var b strings.Builder
	for _, c := range p {
		switch c {
		case Exact:
			b.WriteString("🟩")
		case Present:
			b.WriteString("🟨")
		default:
			b.WriteString("⬜")
		}
	}
	return b.String()
}

// ValidateWord checks that w is exactly Length lowercase letters.
func ValidateWord(w string) error {
	if len(w) != Length {
		return fmt.Errorf("%w: %q has %d letters, want %d", ErrInvalidWord, w, len(w), Length)
	}
	for i := 0; i < Length; i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return fmt.Errorf("%w: %q contains %q", ErrInvalidWord, w, w[i])
		}
	}
	return nil
}

// Compute returns the feedback the game shows for guess when the answer is
// answer. Repeated letters are only marked Present as many times as they
// remain unaccounted for in the answer.
func Compute(guess, answer string) (Pattern, error) {
	var p Pattern
	if err := ValidateWord(guess); err != nil {
		return p, err
	}
	if err := ValidateWord(answer); err != nil {
		return p, err
	}

	// exact matches, and tally the answer letters they don't account for
	var remaining [26]int
	for i := 0; i < Length; i++ {
		if guess[i] == answer[i] {
			p[i] = Exact
		} else {
			remaining[answer[i]-'a']++
		}
	}

	for i := 0; i < Length; i++ {
		if p[i] == Exact {
			continue
		}
		c := guess[i] - 'a'
		if remaining[c] > 0 {
			p[i] = Present
			remaining[c]--
		}
	}

	return p, nil
}
