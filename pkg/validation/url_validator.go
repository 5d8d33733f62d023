package validation

import (
	"net/url"
	"regexp"
	"strings"

	apperrors "github.com/Henners-111/Background-Colour-Suggestion-Library/internal/errors"
)

// symbolPattern keeps symbols to the ticker-like shapes the logo CDN serves
// (letters, digits, dot and dash, e.g. "AMZN" or "BRK-A").
var symbolPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9.\-]{0,31}$`)

// URLValidator handles URL and symbol validation for incoming requests.
type URLValidator struct {
	allowedSchemes []string
	allowedHosts   []string
}

// NewURLValidator creates a URL validator allowing http/https to any host.
func NewURLValidator() *URLValidator {
	return &URLValidator{
		allowedSchemes: []string{"http", "https"},
		allowedHosts:   []string{},
	}
}

// NewURLValidatorWithOptions creates a URL validator with custom scheme and
// host allow-lists. An empty host list allows all hosts.
func NewURLValidatorWithOptions(schemes []string, hosts []string) *URLValidator {
	return &URLValidator{
		allowedSchemes: schemes,
		allowedHosts:   hosts,
	}
}

// ValidateImageURL validates a URL for the ad-hoc analyze endpoint.
func (v *URLValidator) ValidateImageURL(imageURL string) error {
	if strings.TrimSpace(imageURL) == "" {
		return apperrors.NewValidationError("URL cannot be empty", nil)
	}

	parsedURL, err := url.Parse(imageURL)
	if err != nil {
		return apperrors.NewValidationError("Invalid URL format", err)
	}

	if !v.isSchemeAllowed(parsedURL.Scheme) {
		return apperrors.NewValidationError("URL scheme not allowed", nil)
	}

	if parsedURL.Host == "" {
		return apperrors.NewValidationError("URL must have a valid host", nil)
	}

	if len(v.allowedHosts) > 0 && !v.isHostAllowed(parsedURL.Host) {
		return apperrors.NewValidationError("URL host not allowed", nil)
	}

	return nil
}

// ValidateSymbol validates a symbol identifier before it is templated into
// the logo URL.
func (v *URLValidator) ValidateSymbol(symbol string) error {
	if strings.TrimSpace(symbol) == "" {
		return apperrors.NewValidationError("symbol cannot be empty", nil)
	}
	if !symbolPattern.MatchString(symbol) {
		return apperrors.NewValidationError("symbol contains invalid characters", nil)
	}
	return nil
}

func (v *URLValidator) isSchemeAllowed(scheme string) bool {
	for _, allowed := range v.allowedSchemes {
		if scheme == allowed {
			return true
		}
	}
	return false
}

func (v *URLValidator) isHostAllowed(host string) bool {
	for _, allowed := range v.allowedHosts {
		if host == allowed {
			return true
		}
	}
	return false
}
