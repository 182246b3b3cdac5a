package dict

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

var httpClient = &http.Client{Timeout: 30 * time.Second}

// Load fetches every source URL (one word per line, case-insensitive)
// and merges them. When no source yields any words the embedded
// fallback set is used so the server still runs.
func Load(ctx context.Context, urls []string) *Dictionary {
	var words []string
	for _, url := range urls {
		fetched, err := fetch(ctx, url)
		if err != nil {
			log.Error().Err(err).Str("url", url).Msg("dictionary source failed")
			continue
		}
		log.Info().Str("url", url).Int("words", len(fetched)).Msg("dictionary source loaded")
		words = append(words, fetched...)
	}
	if len(words) == 0 {
		log.Warn().Msg("no dictionary source available, using fallback word set")
		return Fallback()
	}
	return New(words)
}

func fetch(ctx context.Context, url string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var words []string
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}
