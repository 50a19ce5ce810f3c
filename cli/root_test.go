package cli

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDict = []string{"arise", "donut", "sugar", "radar", "cigar", "humph"}

type fixture struct {
	dir    string
	dict   string
	config string
}

func newFixture(t *testing.T, words ...string) *fixture {
	t.Helper()
	dir := t.TempDir()
	f := &fixture{
		dir:    dir,
		dict:   filepath.Join(dir, "words.txt"),
		config: filepath.Join(dir, "config.yaml"),
	}

	require.NoError(t, os.WriteFile(f.dict, []byte(strings.Join(words, "\n")+"\n"), 0o644))
	cfg := "dictionary: " + f.dict + "\n" +
		"color: never\n" +
		"fetch:\n" +
		"  cache_dir: " + dir + "\n"
	require.NoError(t, os.WriteFile(f.config, []byte(cfg), 0o644))
	return f
}

func (f *fixture) run(args ...string) (stdout, stderr string, code int) {
	cmd := NewRootCommand()
	var out, errb bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errb)
	cmd.SetArgs(append([]string{"--config", f.config}, args...))

	code = Execute(cmd)
	return out.String(), errb.String(), code
}

func TestReplayAnswerMode(t *testing.T) {
	f := newFixture(t, testDict...)

	stdout, stderr, code := f.run("replay", "arise", "donut", "sugar")
	require.Equal(t, int(ExitOK), code, stderr)

	want := "## arise (yy.y.)\n" +
		"sugar\n" +
		"1 match\n" +
		"\n" +
		"## donut (...y.)\n" +
		"sugar\n" +
		"1 match\n" +
		"\n" +
		"## sugar (ggggg)\n" +
		"\n"
	assert.Equal(t, want, stdout)
}

func TestReplayHintMode(t *testing.T) {
	f := newFixture(t, testDict...)

	stdout, stderr, code := f.run("matches", "arise:yy.y.")
	require.Equal(t, int(ExitOK), code, stderr)
	assert.Equal(t, "## arise (yy.y.)\nsugar\n1 match\n\n", stdout)
}

func TestReplayExplain(t *testing.T) {
	f := newFixture(t, testDict...)

	stdout, stderr, code := f.run("replay", "--explain", "arise:yy.y.")
	require.Equal(t, int(ExitOK), code, stderr)
	assert.Contains(t, stdout, "letters:\n")
	assert.Contains(t, stdout, "cant_be_in_positions: [1]")
	assert.Contains(t, stdout, "possible_positions: [2, 3, 4, 5]")
}

func TestVerboseLogsPatterns(t *testing.T) {
	f := newFixture(t, testDict...)

	_, stderr, code := f.run("--verbose", "replay", "arise:yy.y.")
	require.Equal(t, int(ExitOK), code, stderr)
	assert.Contains(t, stderr, "🟨🟨⬜🟨⬜")

	_, stderr, code = f.run("-v", "partition", "crane", "arise:yy.y.")
	require.Equal(t, int(ExitOK), code, stderr)
	assert.Contains(t, stderr, "⬜🟨🟨⬜⬜")
}

func TestReplayNoLimit(t *testing.T) {
	words := make([]string, 0, 26*3)
	for c := 'a'; c <= 'z'; c++ {
		for _, suffix := range []string{"bbbb", "cccc", "dddd"} {
			words = append(words, string(c)+suffix)
		}
	}
	f := newFixture(t, words...)

	stdout, _, code := f.run("replay", "zzzzz:.....")
	require.Equal(t, int(ExitOK), code)
	assert.Contains(t, stdout, "…\n")

	stdout, _, code = f.run("replay", "--limit=false", "zzzzz:.....")
	require.Equal(t, int(ExitOK), code)
	assert.NotContains(t, stdout, "…")
	assert.Contains(t, stdout, "75 matches")
}

func TestExitCodes(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code ExitCode
	}{
		{"mixed argument forms", []string{"replay", "arise:yy.y.", "donut"}, ExitUsage},
		{"missing arguments", []string{"replay"}, ExitUsage},
		{"unknown flag", []string{"replay", "--bogus", "arise"}, ExitUsage},
		{"bad color flag", []string{"--color", "sometimes", "replay", "arise"}, ExitUsage},
		{"bad feedback symbol", []string{"replay", "arise:yyxy."}, ExitInput},
		{"short guess", []string{"replay", "aris", "sugar"}, ExitInput},
		{"contradicting plays", []string{"replay", "cigar:g....", "dogma:g...."}, ExitContradiction},
		{"missing dictionary", []string{"--dict", "does-not-exist.txt", "replay", "arise"}, ExitMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, testDict...)
			_, stderr, code := f.run(tt.args...)
			assert.Equal(t, int(tt.code), code)
			assert.True(t, strings.HasPrefix(stderr, "Error: "), stderr)
			if tt.code == ExitUsage || tt.code == ExitInput {
				assert.Contains(t, stderr, "wordle --help")
			}
		})
	}
}

func TestBadInputPrintsNothing(t *testing.T) {
	f := newFixture(t, testDict...)
	stdout, _, code := f.run("replay", "arise:yy.y.", "donut:...x.")
	assert.Equal(t, int(ExitInput), code)
	assert.Empty(t, stdout)
}

func TestMissingConfigFile(t *testing.T) {
	cmd := NewRootCommand()
	var out, errb bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errb)
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "nope.yaml"), "replay", "arise"})

	assert.Equal(t, int(ExitGeneral), Execute(cmd))
	assert.Contains(t, errb.String(), "reading config")
}

func TestPartitionCommand(t *testing.T) {
	f := newFixture(t, testDict...)

	stdout, stderr, code := f.run("partition", "crane", "arise:yy.y.")
	require.Equal(t, int(ExitOK), code, stderr)
	assert.Equal(t, "## crane (.yy..) 1  sugar\n1 pattern, expected 1.00 candidates left\n", stdout)

	_, _, code = f.run("partition", "cran")
	assert.Equal(t, int(ExitInput), code)
}

func TestFreqCommand(t *testing.T) {
	f := newFixture(t, testDict...)
	list := filepath.Join(f.dir, "list.txt")
	require.NoError(t, os.WriteFile(list, []byte("apple\naim\naimed\nbake\nbaked\nhope\nhopes\nHello\ncrane\n"), 0o644))

	stdout, stderr, code := f.run("freq", list)
	require.Equal(t, int(ExitOK), code, stderr)
	assert.Contains(t, stdout, "5-letter words (before filtering): 6\n")
	assert.Contains(t, stdout, "skipped nonwords: 1\n")
	assert.Contains(t, stdout, "skipped past tense: 1\n")
	assert.Contains(t, stdout, "skipped plurals: 1\n")
	assert.Contains(t, stdout, "valid words: 3\n")
}

func TestFetchCommand(t *testing.T) {
	const script = `var Ma=["sugar","cigar"],Oa=["arise","sugar"];`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(script))
	}))
	defer srv.Close()

	f := newFixture(t)
	out := filepath.Join(f.dir, "fetched.txt")

	_, stderr, code := f.run("fetch", "--url", srv.URL+"/main.js", "-o", out)
	require.Equal(t, int(ExitOK), code, stderr)
	assert.Contains(t, stderr, "wrote dictionary")
	assert.FileExists(t, filepath.Join(f.dir, "main.js"))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "arise\ncigar\nsugar\n", string(data))
}
