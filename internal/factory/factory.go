package factory

import (
	"fmt"

	"github.com/Henners-111/Background-Colour-Suggestion-Library/internal/config"
	"github.com/Henners-111/Background-Colour-Suggestion-Library/internal/storage"
)

// FetcherType represents the available logo source backends.
type FetcherType string

const (
	// HTTPFetcher fetches logos from the templated CDN URL.
	HTTPFetcher FetcherType = "http"
	// AzureFetcher fetches logos from an Azure blob container.
	AzureFetcher FetcherType = "azure"
)

// FetcherFactory creates logo fetcher implementations.
type FetcherFactory interface {
	CreateFetcher(fetcherType FetcherType, cfg *config.Config) (storage.LogoFetcher, error)
}

type fetcherFactory struct{}

// NewFetcherFactory creates a new fetcher factory.
func NewFetcherFactory() FetcherFactory {
	return &fetcherFactory{}
}

// CreateFetcher creates a fetcher for the given backend type.
func (f *fetcherFactory) CreateFetcher(fetcherType FetcherType, cfg *config.Config) (storage.LogoFetcher, error) {
	switch fetcherType {
	case HTTPFetcher:
		return storage.NewHTTPLogoFetcher(cfg.SymbolURLBase, cfg.ImageFetchTimeout), nil
	case AzureFetcher:
		if cfg.AzureAccountName == "" || cfg.AzureAccountKey == "" {
			return nil, fmt.Errorf("azure fetcher requires AZURE_ACCOUNT_NAME and AZURE_ACCOUNT_KEY")
		}
		return storage.NewBlobLogoFetcher(cfg.AzureAccountName, cfg.AzureAccountKey, "logos")
	default:
		return nil, fmt.Errorf("unsupported fetcher type: %s", fetcherType)
	}
}
