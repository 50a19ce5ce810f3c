package feedback

import (
	"fmt"
	"unicode/utf8"
)

// Symbols maps each Code to the character used for it on the command line.
type Symbols struct {
	Exact   rune
	Present rune
	Absent  rune
}

// DefaultSymbols: g for green, y for yellow, . for gray.
var DefaultSymbols = Symbols{Exact: 'g', Present: 'y', Absent: '.'}

// Validate reports an error if two codes share a symbol.
func (s Symbols) Validate() error {
	if s.Exact == s.Present || s.Exact == s.Absent || s.Present == s.Absent {
		return fmt.Errorf("feedback symbols must be distinct, got %q %q %q", s.Exact, s.Present, s.Absent)
	}
	for _, r := range []rune{s.Exact, s.Present, s.Absent} {
		if r == ':' || r == utf8.RuneError || r == 0 {
			return fmt.Errorf("feedback symbol %q is not allowed", r)
		}
	}
	return nil
}

func (s Symbols) code(r rune) (Code, bool) {
	switch r {
	case s.Exact:
		return Exact, true
	case s.Present:
		return Present, true
	case s.Absent:
		return Absent, true
	}
	return Absent, false
}

func (s Symbols) symbol(c Code) rune {
	switch c {
	case Exact:
		return s.Exact
	case Present:
		return s.Present
	}
	return s.Absent
}

// Parse decodes a feedback string such as "yy.y." into a Pattern.
func Parse(str string, sym Symbols) (Pattern, error) {
	var p Pattern
	if n := utf8.RuneCountInString(str); n != Length {
		return p, fmt.Errorf("%w: %q has %d symbols, want %d", ErrInvalidFeedback, str, n, Length)
	}
	i := 0
	for _, r := range str {
		c, ok := sym.code(r)
		if !ok {
			return p, fmt.Errorf("%w: unexpected symbol %q in %q", ErrInvalidFeedback, r, str)
		}
		p[i] = c
		i++
	}
	return p, nil
}

// Format encodes p with the given symbols; it is the inverse of Parse.
func (p Pattern) Format(sym Symbols) string {
	runes := make([]rune, Length)
	for i, c := range p {
		runes[i] = sym.symbol(c)
	}
	return string(runes)
}
