// Package render prints annotated guesses, match listings, partitions and
// letter frequency tables.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/bent101/wordle-matches/feedback"
	"github.com/bent101/wordle-matches/letterfreq"
	"github.com/bent101/wordle-matches/wordlist"
)

const (
	DefaultPerLine  = 13
	DefaultMaxLines = 5
)

// Printer writes results to Out.
type Printer struct {
	Out     io.Writer
	Color   bool
	Symbols feedback.Symbols
	// Limit truncates match listings to MaxLines lines of PerLine words.
	Limit    bool
	PerLine  int
	MaxLines int
}

// NewPrinter returns a Printer with the default paging.
func NewPrinter(out io.Writer, color bool) *Printer {
	return &Printer{
		Out:      out,
		Color:    color,
		Symbols:  feedback.DefaultSymbols,
		Limit:    true,
		PerLine:  DefaultPerLine,
		MaxLines: DefaultMaxLines,
	}
}

func (p *Printer) annotated(guess string, pat feedback.Pattern) string {
	if p.Color {
		return ColoredWord(guess, pat)
	}
	return fmt.Sprintf("## %s (%s)", guess, pat.Format(p.Symbols))
}

// Annotate prints a guess with its feedback.
func (p *Printer) Annotate(guess string, pat feedback.Pattern) {
	fmt.Fprintln(p.Out, p.annotated(guess, pat))
}

func (p *Printer) Blank() {
	fmt.Fprintln(p.Out)
}

// Matches prints words PerLine to a line followed by a count. With Limit
// set, listings longer than MaxLines lines end with an ellipsis.
func (p *Printer) Matches(words []string) {
	perLine := max(p.PerLine, 1)
	shown := len(words)
	if p.Limit && p.MaxLines > 0 {
		shown = min(shown, perLine*p.MaxLines)
	}

	for start := 0; start < shown; start += perLine {
		end := min(start+perLine, shown)
		fmt.Fprintln(p.Out, strings.Join(words[start:end], " "))
	}
	if shown < len(words) {
		fmt.Fprintln(p.Out, "…")
	}

	fmt.Fprintln(p.Out, plural(len(words), "match", "matches"))
}

// Partition prints how probe splits the candidates, largest group first.
// Counts line up even when the feedback symbols are wide or multi-byte.
func (p *Printer) Partition(d *wordlist.Dictionary, probe string, groups []wordlist.Group) {
	labels := make([]string, len(groups))
	width := 0
	for i, g := range groups {
		labels[i] = p.annotated(probe, g.Pattern)
		if !p.Color {
			width = max(width, uniseg.StringWidth(labels[i]))
		}
	}
	countWidth := 0
	if len(groups) > 0 {
		countWidth = len(fmt.Sprint(groups[0].Bitvec.Count))
	}

	for i, g := range groups {
		line := padRight(labels[i], width) + " " + padLeft(fmt.Sprint(g.Bitvec.Count), countWidth)
		if g.Bitvec.Count <= 3 {
			line += "  " + strings.Join(d.Select(g.Bitvec), " ")
		}
		fmt.Fprintln(p.Out, line)
	}
	fmt.Fprintf(p.Out, "%s, expected %.2f candidates left\n",
		plural(len(groups), "pattern", "patterns"), wordlist.ExpectedRemaining(groups))
}

// Frequencies prints the filtering summary and the letter frequency table:
// overall ranking in the first column, then one column per position.
func (p *Printer) Frequencies(s *letterfreq.Stats) {
	fmt.Fprintln(p.Out)
	fmt.Fprintln(p.Out, "5-letter words (before filtering):", s.Total)
	fmt.Fprintln(p.Out, "skipped nonwords:", s.Nonwords)
	fmt.Fprintln(p.Out, "skipped past tense:", s.PastTense)
	fmt.Fprintln(p.Out, "skipped plurals:", s.Plurals)
	fmt.Fprintln(p.Out, "valid words:", s.Valid)
	fmt.Fprintln(p.Out)

	header := []string{"*", "0", "1", "2", "3", "4"}
	for i, h := range header {
		header[i] = padLeft(h, 6)
	}
	fmt.Fprintln(p.Out, strings.Join(header, " "))

	overall, positional := s.Ranked()
	columns := append([][]letterfreq.Ranked[byte]{overall}, positional[:]...)

	rows := len(overall)
	for _, col := range columns {
		rows = min(rows, len(col))
	}
	for r := 0; r < rows; r++ {
		cells := make([]string, len(columns))
		for i, col := range columns {
			cells[i] = padLeft(fmt.Sprint(col[r].Count), 4) + " " + string(col[r].Key)
		}
		fmt.Fprintln(p.Out, strings.Join(cells, " "))
	}
}

func padLeft(s string, width int) string {
	if w := uniseg.StringWidth(s); w < width {
		return strings.Repeat(" ", width-w) + s
	}
	return s
}

func padRight(s string, width int) string {
	if w := uniseg.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
