package render

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/bent101/wordle-matches/constraint"
)

// Explain prints the per-letter constraints of s as YAML.
func (p *Printer) Explain(s *constraint.State) error {
	letters := s.Letters()
	if len(letters) == 0 {
		fmt.Fprintln(p.Out, "letters: []")
		return nil
	}

	out, err := yaml.Marshal(map[string][]constraint.LetterInfo{"letters": letters})
	if err != nil {
		return err
	}
	_, err = p.Out.Write(out)
	return err
}
