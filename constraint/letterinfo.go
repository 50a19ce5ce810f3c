package constraint

import (
	"fmt"
	"slices"
)

// LetterInfo represents what we know about a letter's constraints in the target word.
// Positions are 1-based.
type LetterInfo struct {
	Letter              string `json:"letter" yaml:"letter"`
	MustBeInPositions   []int  `json:"must_be_in_positions,omitempty" yaml:"must_be_in_positions,omitempty,flow"`
	CantBeInPositions   []int  `json:"cant_be_in_positions,omitempty" yaml:"cant_be_in_positions,omitempty,flow"`
	PossibleInPositions []int  `json:"possible_positions,omitempty" yaml:"possible_positions,omitempty,flow"`
	Frequency           int    `json:"frequency" yaml:"frequency"`
	FrequencyIsExact    bool   `json:"frequency_is_exact" yaml:"frequency_is_exact"`
}

func (l LetterInfo) String() string {
	return fmt.Sprintf("%s must:%v,cant:%v,freq:%d,exact:%t",
		l.Letter, l.MustBeInPositions, l.CantBeInPositions, l.Frequency, l.FrequencyIsExact)
}

func (l LetterInfo) InTarget() bool {
	return l.Frequency > 0
}

// Excluded reports whether the letter cannot appear at all.
func (l LetterInfo) Excluded() bool {
	return l.Frequency == 0 && l.FrequencyIsExact
}

// CouldBeInPosition reports whether the letter may occupy pos. Once the
// exact count is pinned down by MustBeInPositions, no other position is
// possible.
func (l LetterInfo) CouldBeInPosition(pos int) bool {
	switch {
	case l.Excluded():
		return false
	case slices.Contains(l.MustBeInPositions, pos):
		return true
	case slices.Contains(l.CantBeInPositions, pos):
		return false
	case l.FrequencyIsExact && len(l.MustBeInPositions) >= l.Frequency:
		return false
	}
	return true
}

func (l LetterInfo) PossiblePositions() []int {
	var possible []int
	for pos := 1; pos <= length; pos++ {
		if l.CouldBeInPosition(pos) {
			possible = append(possible, pos)
		}
	}
	return possible
}

// Letters summarizes s per letter, in alphabetical order. Letters about
// which nothing is known are omitted.
func (s *State) Letters() []LetterInfo {
	var infos []LetterInfo

	for c := 0; c < alphabet; c++ {
		info := LetterInfo{
			Letter:           string(rune('a' + c)),
			Frequency:        s.min[c],
			FrequencyIsExact: s.max[c] < length,
		}

		excluded := s.max[c] == 0
		for i := 0; i < length; i++ {
			switch {
			case s.pinned(i, uint(c)):
				info.MustBeInPositions = append(info.MustBeInPositions, i+1)
			case !excluded && !s.allowed[i].Test(uint(c)):
				info.CantBeInPositions = append(info.CantBeInPositions, i+1)
			}
		}

		if !info.InTarget() && !info.FrequencyIsExact {
			continue
		}
		info.PossibleInPositions = info.PossiblePositions()
		infos = append(infos, info)
	}

	return infos
}
