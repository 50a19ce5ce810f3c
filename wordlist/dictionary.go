package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// ErrMissing is returned when a dictionary file does not exist.
var ErrMissing = errors.New("dictionary not found")

type options struct {
	length int
	clean  bool
}

// Option configures Load and Read.
type Option func(*options)

// WithLength keeps only lowercase alphabetic words of n letters.
func WithLength(n int) Option {
	return func(o *options) { o.length = n }
}

// WithClean drops probable plurals and past tenses, see Clean.
func WithClean() Option {
	return func(o *options) { o.clean = true }
}

// Dictionary is an ordered, read-only list of words.
type Dictionary struct {
	Words []string
}

// Load reads a newline-delimited word list from path.
func Load(path string, opts ...Option) (*Dictionary, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissing, path)
		}
		return nil, err
	}
	defer file.Close()

	d, err := Read(file, opts...)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return d, nil
}

// Read reads a newline-delimited word list. Surrounding whitespace and
// blank lines are ignored.
func Read(r io.Reader, opts ...Option) (*Dictionary, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		w := strings.TrimSpace(scanner.Text())
		if w != "" {
			words = append(words, w)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	// roots of any length must be seen before the length filter runs
	if o.clean {
		words = Clean(words)
	}
	if o.length > 0 {
		kept := words[:0]
		for _, w := range words {
			if len(w) == o.length && IsLowerAlpha(w) {
				kept = append(kept, w)
			}
		}
		words = kept
	}

	return &Dictionary{Words: words}, nil
}

// IsLowerAlpha reports whether w is non-empty and consists of a-z only.
func IsLowerAlpha(w string) bool {
	if w == "" {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}
	return true
}

func (d *Dictionary) Len() int { return len(d.Words) }

// Filter returns the indices of the words that satisfy pred.
func (d *Dictionary) Filter(pred func(string) bool) *Bitvec {
	return d.Narrow(Full(len(d.Words)), pred)
}

// Narrow returns the indices in set whose words satisfy pred.
func (d *Dictionary) Narrow(set *Bitvec, pred func(string) bool) *Bitvec {
	ret := NewBitvec(len(d.Words))
	for i, w := range d.Words {
		if set.Get(i) && pred(w) {
			ret.Set(i)
		}
	}
	return ret
}

// Select returns the words at the indices in set, in dictionary order.
func (d *Dictionary) Select(set *Bitvec) []string {
	ret := make([]string, 0, set.Count)
	for _, i := range set.Indices() {
		ret = append(ret, d.Words[i])
	}
	return ret
}
