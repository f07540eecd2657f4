// apps/go-board/internal/words/source.go
//
// Word sources: where a session gets its candidate words from.
//   - HTTPSource: a single GET to an endpoint returning a JSON array of strings.
//   - *List:      the in-process list (see words.go).
//
// A fetch is one attempt; retrying is up to the caller.

package words

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Source yields the candidate words for a new session.
type Source interface {
	Words(ctx context.Context) ([]string, error)
}

// HTTPSource fetches a JSON array of words from URL.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

// NewHTTPSource returns an HTTPSource whose client gives up after timeout.
func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{URL: url, Client: &http.Client{Timeout: timeout}}
}

// Words performs the GET and decodes the body.
// Non-2xx responses, malformed JSON and empty arrays are errors.
func (s *HTTPSource) Words(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("word source request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("word source get %s: %w", s.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("word source %s: status %d", s.URL, resp.StatusCode)
	}

	var list []string
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("word source decode: %w", err)
	}
	if len(list) == 0 {
		return nil, ErrEmpty
	}
	log.Debug().Str("url", s.URL).Int("words", len(list)).Msg("fetched word list")
	return list, nil
}

// FetchSolution asks src for candidates once, picks one with pk and
// returns it upper-cased. The pick must be a 5-letter a–z word.
func FetchSolution(ctx context.Context, src Source, pk Picker) (string, error) {
	list, err := src.Words(ctx)
	if err != nil {
		return "", err
	}
	if len(list) == 0 {
		return "", ErrEmpty
	}
	w, err := pk.Pick(list)
	if err != nil {
		return "", err
	}
	n := normalize(w)
	if n == "" {
		return "", fmt.Errorf("word source: unusable word %q", w)
	}
	return strings.ToUpper(n), nil
}
