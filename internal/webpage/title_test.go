package webpage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const landingHTML = `<!DOCTYPE html>
<html><head><title>Spring   Pricing Launch</title></head>
<body><article><h1>Spring Pricing Launch</h1>
<p>Our new pricing tiers make it simpler for growing teams to pick the plan that fits.
Every tier includes onboarding, reporting and support from a named account manager.</p>
<p>Annual plans are discounted and can be upgraded at any time without penalty.</p>
</article></body></html>`

func TestFetchTitle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(landingHTML))
	}))
	defer srv.Close()

	title, err := NewTitleFetcher(srv.Client()).FetchTitle(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "Spring Pricing Launch", title)
}

func TestFetchTitle_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := NewTitleFetcher(nil).FetchTitle(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
}

func TestFetchTitle_InvalidURL(t *testing.T) {
	_, err := NewTitleFetcher(nil).FetchTitle(context.Background(), "not a url")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid url")
}
