package wordlist

import (
	"fmt"
	"sort"

	"github.com/bent101/wordle-matches/feedback"
)

// Group is the set of candidates for which a probe guess gets Pattern.
type Group struct {
	Pattern feedback.Pattern
	Bitvec  *Bitvec
}

// Partition groups the words of set by the feedback probe would get if
// each of them were the answer. Groups are ordered largest first.
//
// The whole dictionary is split first and each part intersected with set,
// so empty parts are dropped.
func (d *Dictionary) Partition(set *Bitvec, probe string) ([]Group, error) {
	if err := feedback.ValidateWord(probe); err != nil {
		return nil, err
	}

	byRank := map[uint8]*Bitvec{}
	for i, w := range d.Words {
		p, err := feedback.Compute(probe, w)
		if err != nil {
			return nil, fmt.Errorf("word %d: %w", i+1, err)
		}
		r := p.Rank()
		if byRank[r] == nil {
			byRank[r] = NewBitvec(len(d.Words))
		}
		byRank[r].Set(i)
	}

	groups := make([]Group, 0, len(byRank))
	for r, bv := range byRank {
		if in := bv.And(set); in.Count > 0 {
			groups = append(groups, Group{Pattern: feedback.FromRank(r), Bitvec: in})
		}
	}

	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Bitvec.Count != groups[j].Bitvec.Count {
			return groups[i].Bitvec.Count > groups[j].Bitvec.Count
		}
		return groups[i].Pattern.Rank() < groups[j].Pattern.Rank()
	})
	return groups, nil
}

// ExpectedRemaining is the average number of candidates left after the
// probe, assuming each candidate is equally likely to be the answer.
func ExpectedRemaining(groups []Group) float64 {
	var tot, sq int
	for _, g := range groups {
		tot += g.Bitvec.Count
		sq += g.Bitvec.Count * g.Bitvec.Count
	}
	if tot == 0 {
		return 0
	}
	return float64(sq) / float64(tot)
}
