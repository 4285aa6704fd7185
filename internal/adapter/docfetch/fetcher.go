package docfetch

import (
	"context"
	"io"
	"net/http"

	"github.com/Karan28272827/testurself-backend/internal/domain"
	"github.com/Karan28272827/testurself-backend/internal/logger"

	"go.uber.org/zap"
)

const bodyLogPrefixLen = 500

// httpFetcher implements domain.DocumentFetcher with a single plain GET.
// The URL is assumed to be a published, publicly readable document; no
// retries, and the body is returned as text regardless of content type.
type httpFetcher struct {
	client *http.Client
}

// NewHTTPFetcher creates a fetcher using the default transport timeout.
func NewHTTPFetcher() domain.DocumentFetcher {
	return &httpFetcher{client: http.DefaultClient}
}

// NewHTTPFetcherWithClient creates a fetcher with a caller-supplied client.
func NewHTTPFetcherWithClient(client *http.Client) domain.DocumentFetcher {
	return &httpFetcher{client: client}
}

func (f *httpFetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", domain.NewFetchTransportError(url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Get().Warn("Document fetch failed", zap.String("url", url), zap.Error(err))
		return "", domain.NewFetchTransportError(url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", domain.NewFetchTransportError(url, err)
	}
	text := string(body)

	logger.Get().Info("Document fetch completed",
		zap.String("url", url),
		zap.Int("status", resp.StatusCode),
		zap.String("body_prefix", text[:min(bodyLogPrefixLen, len(text))]),
	)

	if resp.StatusCode != http.StatusOK {
		return "", domain.NewFetchError(url, resp.StatusCode)
	}
	return text, nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
