package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "github.com/Henners-111/Background-Colour-Suggestion-Library/internal/errors"
)

// LogoFetcher retrieves encoded logo bytes. FetchSymbol resolves a symbol
// identifier through the templated URL; FetchURL fetches an arbitrary image
// URL for the ad-hoc analyze endpoint.
type LogoFetcher interface {
	FetchSymbol(ctx context.Context, symbol string) ([]byte, error)
	FetchURL(ctx context.Context, imageURL string) ([]byte, error)
}

// HTTPLogoFetcher implements LogoFetcher over plain HTTP GET.
type HTTPLogoFetcher struct {
	baseURL string
	client  *http.Client
}

// NewHTTPLogoFetcher creates an HTTP logo fetcher. baseURL is the template
// prefix; the symbol is URL-encoded and appended as "/<symbol>.png".
func NewHTTPLogoFetcher(baseURL string, timeout time.Duration) *HTTPLogoFetcher {
	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 2,
		IdleConnTimeout:     30 * time.Second,

		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,

		MaxResponseHeaderBytes: 4096,
	}

	return &HTTPLogoFetcher{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Transport: transport,
			Timeout:   timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("too many redirects (limit: 3)")
				}
				return nil
			},
		},
	}
}

// SymbolURL builds the templated logo URL for a symbol.
func (h *HTTPLogoFetcher) SymbolURL(symbol string) string {
	return fmt.Sprintf("%s/%s.png", h.baseURL, url.PathEscape(symbol))
}

// FetchSymbol fetches the logo for a symbol. Any non-success response is a
// hard failure carrying the symbol and the upstream status.
func (h *HTTPLogoFetcher) FetchSymbol(ctx context.Context, symbol string) ([]byte, error) {
	data, status, err := h.get(ctx, h.SymbolURL(symbol))
	if err != nil {
		return nil, apperrors.NewNetworkError(fmt.Sprintf("failed to fetch logo for %q", symbol), err)
	}
	if status != http.StatusOK {
		return nil, apperrors.NewFetchError(symbol, status, nil)
	}
	return data, nil
}

// FetchURL fetches an arbitrary image URL.
func (h *HTTPLogoFetcher) FetchURL(ctx context.Context, imageURL string) ([]byte, error) {
	data, status, err := h.get(ctx, imageURL)
	if err != nil {
		return nil, apperrors.NewNetworkError("failed to fetch image", err)
	}
	if status != http.StatusOK {
		return nil, apperrors.NewNetworkError(fmt.Sprintf("unexpected status %d fetching image", status), nil)
	}
	return data, nil
}

// get performs the request with retries on transport errors and 5xx
// responses. 4xx responses return immediately; the caller decides how to
// report them.
func (h *HTTPLogoFetcher) get(ctx context.Context, rawURL string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("invalid URL: %w", err)
	}
	req.Header.Set("Accept", "image/png, image/jpeg, image/webp, */*")
	req.Header.Set("User-Agent", "background-tone-suggester/1.0")

	var lastErr error
	lastStatus := 0
	for attempt := 0; attempt < 3; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, 0, ctx.Err()
			case <-time.After(time.Duration(attempt) * time.Second):
			}
		}

		resp, err := h.client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode >= 500 {
			resp.Body.Close()
			lastStatus = resp.StatusCode
			lastErr = fmt.Errorf("server error: status code %d", resp.StatusCode)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, resp.StatusCode, nil
		}

		data, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("failed to read response body: %w", err)
			continue
		}
		return data, resp.StatusCode, nil
	}

	// Exhausted retries on 5xx: surface the status so callers can report
	// it alongside the identifier.
	if lastStatus != 0 {
		return nil, lastStatus, nil
	}
	return nil, 0, fmt.Errorf("failed after 3 attempts: %w", lastErr)
}
