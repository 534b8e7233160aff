// Package webpage derives artifact metadata from published web pages.
package webpage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	nurl "net/url"
	"strings"
	"time"

	"github.com/go-shiori/go-readability"
)

const (
	defaultTimeout = 15 * time.Second
	// maxBodySize caps how much of a page is read (5MB).
	maxBodySize = 5 * 1024 * 1024
)

// TitleFetcher reads a page's title the way a reader view would see it.
type TitleFetcher struct {
	client *http.Client
}

// NewTitleFetcher returns a fetcher using client, or a client with a 15s
// timeout when nil.
func NewTitleFetcher(client *http.Client) *TitleFetcher {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &TitleFetcher{client: client}
}

// FetchTitle downloads url and returns its article title.
func (f *TitleFetcher) FetchTitle(ctx context.Context, url string) (string, error) {
	parsed, err := nurl.Parse(url)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", fmt.Errorf("invalid url %q", url)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	article, err := readability.FromReader(io.LimitReader(resp.Body, maxBodySize), parsed)
	if err != nil {
		return "", fmt.Errorf("readability: %w", err)
	}

	title := strings.Join(strings.Fields(article.Title), " ")
	if title == "" {
		return "", fmt.Errorf("no title found at %s", url)
	}
	return title, nil
}
