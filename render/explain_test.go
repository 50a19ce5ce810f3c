package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bent101/wordle-matches/constraint"
	"github.com/bent101/wordle-matches/feedback"
)

func TestExplain(t *testing.T) {
	s := constraint.New()
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	require.NoError(t, p.Explain(s))
	assert.Equal(t, "letters: []\n", buf.String())

	pl, err := constraint.ParsePlay("geese:...gg", feedback.DefaultSymbols)
	require.NoError(t, err)
	require.NoError(t, s.Apply(pl))

	buf.Reset()
	require.NoError(t, p.Explain(s))

	var got struct {
		Letters []constraint.LetterInfo `yaml:"letters"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, s.Letters(), got.Letters)
	assert.Contains(t, buf.String(), "must_be_in_positions: [5]")
}
