package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/colorstring"
	"golang.org/x/term"

	"github.com/bent101/wordle-matches/feedback"
)

// ColorMode selects when annotated guesses are colored.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(s)); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	}
	return "", fmt.Errorf("invalid color mode %q (valid: auto, always, never)", s)
}

// Enabled reports whether output to f should be colored.
func (m ColorMode) Enabled(f *os.File) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// tile colors of the game: white bold letters on green, yellow and gray
var tiles = colorstring.Colorize{
	Colors: map[string]string{
		"letter":  "1;38;2;255;255;255",
		"exact":   "48;2;106;170;100",
		"present": "48;2;201;180;88",
		"absent":  "48;2;120;124;126",
	},
	Reset: true,
}

// ColoredWord displays a word with colored backgrounds based on the pattern.
func ColoredWord(word string, p feedback.Pattern) string {
	var b strings.Builder
	b.WriteString("[letter]")
	for i := 0; i < len(word) && i < feedback.Length; i++ {
		b.WriteString("[" + p[i].String() + "] ")
		b.WriteByte(word[i])
		b.WriteString(" ")
	}
	return tiles.Color(b.String())
}
