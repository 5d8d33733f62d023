package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config carries server settings plus the analyzer defaults that requests
// can override per call.
type Config struct {
	Host               string
	Port               string
	RequestTimeout     time.Duration
	ImageFetchTimeout  time.Duration
	MaxRequestBodySize int64

	// SymbolURLBase is the prefix of the templated logo URL; the fetcher
	// appends "/<urlEncoded(symbol)>.png".
	SymbolURLBase string

	// FetcherBackend selects the logo source: "http" or "azure".
	FetcherBackend   string
	AzureAccountName string
	AzureAccountKey  string

	// MaxSampleDim, when > 0, downscales decoded bitmaps so neither side
	// exceeds it before analysis. 0 disables sampling.
	MaxSampleDim int

	// Analyzer defaults (see analyzer.Options).
	AlphaThreshold  int
	IgnorePureWhite bool
	IgnorePureBlack bool
	EdgeSampleRatio float64
}

func (c *Config) ServerAddress() string {
	return net.JoinHostPort(strings.TrimSpace(c.Host), strings.TrimSpace(c.Port))
}

func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Host:               getEnvOrDefault("HOST", "0.0.0.0"),
		Port:               getEnvOrDefault("PORT", "8080"),
		RequestTimeout:     parseDurationOrDefault("REQUEST_TIMEOUT", 30*time.Second),
		ImageFetchTimeout:  parseDurationOrDefault("IMAGE_FETCH_TIMEOUT", 15*time.Second),
		MaxRequestBodySize: parseIntOrDefault("MAX_REQUEST_BODY_SIZE", 1*1024*1024), // 1MB; logos are small
		SymbolURLBase:      getEnvOrDefault("SYMBOL_URL_BASE", "https://cdn.example.com/symbol"),
		FetcherBackend:     getEnvOrDefault("FETCHER_BACKEND", "http"),
		AzureAccountName:   os.Getenv("AZURE_ACCOUNT_NAME"),
		AzureAccountKey:    os.Getenv("AZURE_ACCOUNT_KEY"),
		MaxSampleDim:       int(parseIntOrDefault("MAX_SAMPLE_DIM", 0)),
		AlphaThreshold:     int(parseIntOrDefault("ALPHA_THRESHOLD", 16)),
		IgnorePureWhite:    parseBoolOrDefault("IGNORE_PURE_WHITE", true),
		IgnorePureBlack:    parseBoolOrDefault("IGNORE_PURE_BLACK", false),
		EdgeSampleRatio:    parseFloatOrDefault("EDGE_SAMPLE_RATIO", 0.4),
	}

	p, err := strconv.Atoi(strings.TrimSpace(cfg.Port))
	if err != nil || p < 1 || p > 65535 {
		return nil, fmt.Errorf("invalid PORT: %q", cfg.Port)
	}
	if cfg.MaxRequestBodySize <= 0 {
		return nil, fmt.Errorf("MAX_REQUEST_BODY_SIZE must be > 0 (got %d)", cfg.MaxRequestBodySize)
	}
	if cfg.RequestTimeout <= 0 || cfg.ImageFetchTimeout <= 0 {
		return nil, fmt.Errorf("timeouts must be > 0 (got request=%s, fetch=%s)",
			cfg.RequestTimeout, cfg.ImageFetchTimeout)
	}
	if cfg.FetcherBackend != "http" && cfg.FetcherBackend != "azure" {
		return nil, fmt.Errorf("invalid FETCHER_BACKEND: %q (want http or azure)", cfg.FetcherBackend)
	}
	if cfg.AlphaThreshold < 0 || cfg.AlphaThreshold > 255 {
		return nil, fmt.Errorf("ALPHA_THRESHOLD must be in [0,255] (got %d)", cfg.AlphaThreshold)
	}
	if cfg.EdgeSampleRatio <= 0 || cfg.EdgeSampleRatio > 1 {
		return nil, fmt.Errorf("EDGE_SAMPLE_RATIO must be in (0,1] (got %g)", cfg.EdgeSampleRatio)
	}
	if cfg.MaxSampleDim < 0 {
		return nil, fmt.Errorf("MAX_SAMPLE_DIM must be >= 0 (got %d)", cfg.MaxSampleDim)
	}
	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(strings.TrimSpace(value)); err == nil && duration > 0 {
			return duration
		}
	}
	return defaultValue
}

func parseIntOrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func parseFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func parseBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
