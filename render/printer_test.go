package render

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bent101/wordle-matches/feedback"
	"github.com/bent101/wordle-matches/letterfreq"
	"github.com/bent101/wordle-matches/wordlist"
)

func words(n int) []string {
	ret := make([]string, n)
	for i := range ret {
		ret[i] = fmt.Sprintf("w%04d", i)
	}
	return ret
}

func TestAnnotatePlain(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	p.Annotate("arise", feedback.Pattern{feedback.Present, feedback.Present, feedback.Absent, feedback.Present, feedback.Absent})
	assert.Equal(t, "## arise (yy.y.)\n", buf.String())
}

func TestAnnotateColor(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true)

	p.Annotate("ab", feedback.Pattern{feedback.Exact, feedback.Absent})
	want := "\033[1;38;2;255;255;255m" +
		"\033[48;2;106;170;100m a " +
		"\033[48;2;120;124;126m b " +
		"\033[0m\n"
	assert.Equal(t, want, buf.String())
}

func TestMatches(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		limit bool
		lines int // lines before the count
		more  bool
		count string
	}{
		{"none", 0, true, 0, false, "0 matches"},
		{"one", 1, true, 1, false, "1 match"},
		{"exactly one line", 13, true, 1, false, "13 matches"},
		{"wraps", 14, true, 2, false, "14 matches"},
		{"fills the page", 65, true, 5, false, "65 matches"},
		{"truncated", 66, true, 6, true, "66 matches"},
		{"unlimited", 66, false, 6, false, "66 matches"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			p := NewPrinter(&buf, false)
			p.Limit = tt.limit

			p.Matches(words(tt.n))

			lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
			require.Len(t, lines, tt.lines+1)
			assert.Equal(t, tt.count, lines[len(lines)-1])
			if tt.more {
				assert.Equal(t, "…", lines[len(lines)-2])
			}
			if tt.n > 0 {
				assert.LessOrEqual(t, len(strings.Fields(lines[0])), DefaultPerLine)
				assert.True(t, strings.HasPrefix(lines[0], "w0000 w0001") || tt.n == 1)
			}
		})
	}
}

func TestPartition(t *testing.T) {
	d := &wordlist.Dictionary{Words: []string{"humph", "bumpy", "dumpy", "cigar"}}
	groups, err := d.Partition(wordlist.Full(d.Len()), "arise")
	require.NoError(t, err)

	var buf bytes.Buffer
	NewPrinter(&buf, false).Partition(d, "arise", groups)

	want := "## arise (.....) 3  humph bumpy dumpy\n" +
		"## arise (yyy..) 1  cigar\n" +
		"2 patterns, expected 2.50 candidates left\n"
	assert.Equal(t, want, buf.String())
}

func TestPartitionAlignsWideSymbols(t *testing.T) {
	d := &wordlist.Dictionary{Words: []string{"humph", "bumpy", "cigar"}}
	groups, err := d.Partition(wordlist.Full(d.Len()), "arise")
	require.NoError(t, err)

	var buf bytes.Buffer
	p := NewPrinter(&buf, false)
	p.Symbols = feedback.Symbols{Exact: '🟩', Present: '🟨', Absent: '·'}
	p.Partition(d, "arise", groups)

	want := "## arise (·····)    2  humph bumpy\n" +
		"## arise (🟨🟨🟨··) 1  cigar\n" +
		"2 patterns, expected 1.67 candidates left\n"
	assert.Equal(t, want, buf.String())
}

func TestPartitionAlignsCounts(t *testing.T) {
	d := &wordlist.Dictionary{Words: []string{
		"humph", "bumpy", "dumpy", "lumpy", "jumpy",
		"gulch", "mulch", "hutch", "dutch", "buddy", "cigar",
	}}
	groups, err := d.Partition(wordlist.Full(d.Len()), "arise")
	require.NoError(t, err)

	var buf bytes.Buffer
	NewPrinter(&buf, false).Partition(d, "arise", groups)

	want := "## arise (.....) 10\n" +
		"## arise (yyy..)  1  cigar\n" +
		"2 patterns, expected 9.18 candidates left\n"
	assert.Equal(t, want, buf.String())
}

func TestFrequencies(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, false).Frequencies(letterfreq.Count([]string{"sassy", "tasty"}))

	want := "\n" +
		"5-letter words (before filtering): 2\n" +
		"skipped nonwords: 0\n" +
		"skipped past tense: 0\n" +
		"skipped plurals: 0\n" +
		"valid words: 2\n" +
		"\n" +
		"     *      0      1      2      3      4\n" +
		"   2 y    1 t    2 a    2 s    1 t    2 y\n"
	assert.Equal(t, want, buf.String())
}

func TestParseColorMode(t *testing.T) {
	m, err := ParseColorMode("Always")
	require.NoError(t, err)
	assert.Equal(t, ColorAlways, m)
	assert.True(t, m.Enabled(nil))
	assert.False(t, ColorNever.Enabled(nil))
	assert.False(t, ColorAuto.Enabled(nil))

	_, err = ParseColorMode("sometimes")
	assert.Error(t, err)
}

func TestPadLeft(t *testing.T) {
	assert.Equal(t, "     *", padLeft("*", 6))
	assert.Equal(t, "  …", padLeft("…", 3))
	assert.Equal(t, "toolong", padLeft("toolong", 3))
	assert.Equal(t, "🟩· ", padRight("🟩·", 4))
}
