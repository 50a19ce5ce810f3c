// Package scrape downloads the game's script, keeps a cached copy and
// extracts the word arrays embedded in it.
package scrape

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"
	"github.com/tidwall/jsonc"
)

var (
	ErrStatus        = errors.New("unexpected HTTP status")
	ErrArrayNotFound = errors.New("word array not found")
)

// Fetcher downloads files into CacheDir. Downloads are not retried.
type Fetcher struct {
	Client   *http.Client
	CacheDir string
	// Progress receives a progress bar while downloading; nil disables it.
	Progress io.Writer
	Log      zerolog.Logger
}

func NewFetcher(cacheDir string, log zerolog.Logger) *Fetcher {
	return &Fetcher{
		Client:   cleanhttp.DefaultClient(),
		CacheDir: cacheDir,
		Log:      log,
	}
}

// CachePath is where the file at rawURL is cached.
func (f *Fetcher) CachePath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	name := path.Base(u.Path)
	if name == "." || name == "/" || name == "" {
		return "", fmt.Errorf("cannot derive a file name from %q", rawURL)
	}
	return filepath.Join(f.CacheDir, name), nil
}

// Fetch returns the contents of rawURL, from the cache unless refresh is
// set or nothing is cached yet.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string, refresh bool) ([]byte, error) {
	cached, err := f.CachePath(rawURL)
	if err != nil {
		return nil, err
	}

	if !refresh {
		data, err := os.ReadFile(cached)
		if err == nil {
			f.Log.Debug().Str("path", cached).Int("bytes", len(data)).Msg("using cached script")
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	if err := f.download(ctx, rawURL, cached); err != nil {
		return nil, err
	}
	return os.ReadFile(cached)
}

func (f *Fetcher) download(ctx context.Context, rawURL, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}

	f.Log.Debug().Str("url", rawURL).Msg("downloading")
	resp, err := f.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: GET %s: %s", ErrStatus, rawURL, resp.Status)
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(dest), ".download-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	var w io.Writer = tmp
	if f.Progress != nil {
		bar := progressbar.NewOptions64(resp.ContentLength,
			progressbar.OptionSetWriter(f.Progress),
			progressbar.OptionSetDescription("downloading"),
			progressbar.OptionShowBytes(true),
			progressbar.OptionClearOnFinish(),
		)
		defer bar.Finish()
		w = io.MultiWriter(tmp, bar)
	}

	n, err := io.Copy(w, resp.Body)
	if err != nil {
		return fmt.Errorf("downloading %s: %w", rawURL, err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return err
	}

	f.Log.Info().Str("path", dest).Int64("bytes", n).Msg("cached script")
	return nil
}

// ExtractArray decodes the array literal that follows prefix in src, e.g.
// the ["cigar","rebut",...] after "var Ma=". The literal ends at the first
// closing bracket, so nested arrays are not supported.
func ExtractArray(src []byte, prefix string) ([]string, error) {
	begin := bytes.Index(src, []byte(prefix))
	if begin < 0 {
		return nil, fmt.Errorf("%w: no %q", ErrArrayNotFound, prefix)
	}
	start := begin + len(prefix)
	end := bytes.IndexByte(src[start:], ']')
	if end < 0 {
		return nil, fmt.Errorf("%w: %q is not followed by an array", ErrArrayNotFound, prefix)
	}

	var words []string
	if err := json.Unmarshal(jsonc.ToJSON(src[start:start+end+1]), &words); err != nil {
		return nil, fmt.Errorf("%w: decoding array after %q: %v", ErrArrayNotFound, prefix, err)
	}
	return words, nil
}

// WriteDictionary writes the union of lists to path, sorted and without
// duplicates, one word per line. It returns the number of words written.
func WriteDictionary(path string, lists ...[]string) (int, error) {
	var all []string
	for _, l := range lists {
		all = append(all, l...)
	}
	slices.Sort(all)
	all = slices.Compact(all)

	var b strings.Builder
	for _, w := range all {
		b.WriteString(w)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return 0, err
	}
	return len(all), nil
}
