package constraint

import (
	"fmt"
	"strings"

	"github.com/bent101/wordle-matches/feedback"
)

// Play is a guess together with the feedback it received.
type Play struct {
	Guess   string
	Pattern feedback.Pattern
}

func (p Play) String() string {
	return p.Guess + ":" + p.Pattern.Format(feedback.DefaultSymbols)
}

// ParsePlay parses "guess:feedback", e.g. "arise:yy.y.".
func ParsePlay(s string, sym feedback.Symbols) (Play, error) {
	guess, fb, ok := strings.Cut(s, ":")
	if !ok {
		return Play{}, fmt.Errorf("%w: %q is not of the form guess:feedback", feedback.ErrInvalidFeedback, s)
	}
	if err := feedback.ValidateWord(guess); err != nil {
		return Play{}, err
	}
	p, err := feedback.Parse(fb, sym)
	if err != nil {
		return Play{}, err
	}
	return Play{Guess: guess, Pattern: p}, nil
}

// Replay computes the plays of a game from its guesses and the answer.
func Replay(answer string, guesses ...string) ([]Play, error) {
	plays := make([]Play, 0, len(guesses))
	for _, g := range guesses {
		p, err := feedback.Compute(g, answer)
		if err != nil {
			return nil, err
		}
		plays = append(plays, Play{Guess: g, Pattern: p})
	}
	return plays, nil
}
