package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"

	apperrors "github.com/Henners-111/Background-Colour-Suggestion-Library/internal/errors"
)

// BlobLogoFetcher implements LogoFetcher against an Azure blob container.
// Symbols map to blobs named "<symbol>.png" inside the configured container.
type BlobLogoFetcher struct {
	client    *azblob.Client
	container string
}

// NewBlobLogoFetcher creates a blob-backed logo fetcher.
func NewBlobLogoFetcher(accountName, accountKey, container string) (*BlobLogoFetcher, error) {
	credential, err := azblob.NewSharedKeyCredential(accountName, accountKey)
	if err != nil {
		return nil, fmt.Errorf("invalid shared key credential: %w", err)
	}

	client, err := azblob.NewClientWithSharedKeyCredential(
		fmt.Sprintf("https://%s.blob.core.windows.net", accountName),
		credential,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create blob client: %w", err)
	}

	return &BlobLogoFetcher{client: client, container: container}, nil
}

// FetchSymbol downloads the logo blob for a symbol.
func (s *BlobLogoFetcher) FetchSymbol(ctx context.Context, symbol string) ([]byte, error) {
	blobName := fmt.Sprintf("%s.png", symbol)

	resp, err := s.client.DownloadStream(ctx, s.container, blobName, nil)
	if err != nil {
		return nil, apperrors.NewNetworkError(fmt.Sprintf("blob download failed for %q", symbol), err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewNetworkError(fmt.Sprintf("failed to read blob for %q", symbol), err)
	}
	return data, nil
}

// FetchURL downloads a blob addressed as "<container-path>?blob=<name>".
func (s *BlobLogoFetcher) FetchURL(ctx context.Context, blobURL string) ([]byte, error) {
	parsedURL, err := url.Parse(blobURL)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid blob URL", err)
	}
	if len(parsedURL.Path) < 2 {
		return nil, apperrors.NewValidationError("blob URL missing container path", nil)
	}

	containerName := parsedURL.Path[1:]
	blobName := parsedURL.Query().Get("blob")

	resp, err := s.client.DownloadStream(ctx, containerName, blobName, nil)
	if err != nil {
		return nil, apperrors.NewNetworkError("blob download failed", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewNetworkError("failed to read blob", err)
	}
	return data, nil
}
