package transport

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Henners-111/Background-Colour-Suggestion-Library/internal/analyzer"
	"github.com/Henners-111/Background-Colour-Suggestion-Library/internal/config"
	apperrors "github.com/Henners-111/Background-Colour-Suggestion-Library/internal/errors"
	"github.com/Henners-111/Background-Colour-Suggestion-Library/internal/logger"
	"github.com/Henners-111/Background-Colour-Suggestion-Library/internal/observer"
	"github.com/Henners-111/Background-Colour-Suggestion-Library/internal/service"
	"github.com/Henners-111/Background-Colour-Suggestion-Library/pkg/colormap"
	"github.com/Henners-111/Background-Colour-Suggestion-Library/pkg/models"
	"github.com/Henners-111/Background-Colour-Suggestion-Library/pkg/validation"
)

// NewHandler builds the demo server routes.
func NewHandler(svc service.SuggestionService, metrics *observer.MetricsObserver, cfg *config.Config) http.Handler {
	r := gin.Default()

	r.Use(
		requestSizeLimiter(cfg.MaxRequestBodySize),
		errorHandler(),
	)

	r.GET("/health", healthCheck)
	r.GET("/metrics", metricsHandler(metrics))
	r.GET("/suggestion/:symbol", suggestSymbol(svc, cfg))
	r.GET("/suggestion/:symbol/detailed", suggestDetailed(svc, cfg))
	r.POST("/analyze", analyzeURL(svc, cfg))
	r.POST("/analyze/batch", analyzeBatch(svc, cfg))

	return r
}

// defaultOptions maps the configured analyzer defaults.
func defaultOptions(cfg *config.Config) analyzer.Options {
	return analyzer.DefaultOptions().
		WithAlphaThreshold(uint8(cfg.AlphaThreshold)).
		WithPureWhiteIgnored(cfg.IgnorePureWhite).
		WithPureBlackIgnored(cfg.IgnorePureBlack).
		WithEdgeSampleRatio(cfg.EdgeSampleRatio)
}

// optionsFromQuery applies per-request analyzer overrides from query params.
func optionsFromQuery(c *gin.Context, cfg *config.Config) (analyzer.Options, error) {
	opts := defaultOptions(cfg)
	validator := validation.NewOptionsValidator()

	if raw := c.Query("alpha_threshold"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return opts, apperrors.NewValidationError("invalid alpha_threshold", err)
		}
		if err := validator.ValidateAlphaThreshold(v); err != nil {
			return opts, err
		}
		opts = opts.WithAlphaThreshold(uint8(v))
	}
	if raw := c.Query("edge_ratio"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return opts, apperrors.NewValidationError("invalid edge_ratio", err)
		}
		if err := validator.ValidateEdgeSampleRatio(v); err != nil {
			return opts, err
		}
		opts = opts.WithEdgeSampleRatio(v)
	}
	if raw := c.Query("ignore_white"); raw != "" {
		opts = opts.WithPureWhiteIgnored(raw == "true")
	}
	if raw := c.Query("ignore_black"); raw != "" {
		opts = opts.WithPureBlackIgnored(raw == "true")
	}
	return opts, nil
}

// mapperFromQuery builds the color mapper from caller-supplied colors.
func mapperFromQuery(c *gin.Context) (colormap.Mapper, error) {
	mapper := colormap.DefaultMapper()
	validator := validation.NewOptionsValidator()

	if raw := c.Query("light"); raw != "" {
		if _, _, _, err := colormap.ParseHex(raw); err != nil {
			return mapper, apperrors.NewValidationError("invalid light color", err)
		}
		mapper.LightColor = raw
	}
	if raw := c.Query("dark"); raw != "" {
		if _, _, _, err := colormap.ParseHex(raw); err != nil {
			return mapper, apperrors.NewValidationError("invalid dark color", err)
		}
		mapper.DarkColor = raw
	}
	if raw := c.Query("fallback"); raw != "" {
		if _, _, _, err := colormap.ParseHex(raw); err != nil {
			return mapper, apperrors.NewValidationError("invalid fallback color", err)
		}
		mapper.FallbackColor = raw
	}
	if raw := c.Query("floor"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return mapper, apperrors.NewValidationError("invalid confidence floor", err)
		}
		if err := validator.ValidateConfidenceFloor(v); err != nil {
			return mapper, err
		}
		mapper.ConfidenceFloor = v
	}
	return mapper, nil
}

func suggestSymbol(svc service.SuggestionService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.RequestTimeout)
		defer cancel()

		symbol := c.Param("symbol")
		logger.WithFields(logrus.Fields{
			"symbol": symbol,
			"ip":     c.ClientIP(),
		}).Info("Processing tone suggestion request")

		opts, err := optionsFromQuery(c, cfg)
		if err != nil {
			respondError(c, apperrors.GetStatusCode(err), "invalid analyzer options", err)
			return
		}
		mapper, err := mapperFromQuery(c)
		if err != nil {
			respondError(c, apperrors.GetStatusCode(err), "invalid color options", err)
			return
		}

		resp, err := svc.SuggestForSymbol(ctx, symbol, opts, mapper)
		if err != nil {
			respondServiceError(c, symbol, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

func suggestDetailed(svc service.SuggestionService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.RequestTimeout)
		defer cancel()

		symbol := c.Param("symbol")
		opts, err := optionsFromQuery(c, cfg)
		if err != nil {
			respondError(c, apperrors.GetStatusCode(err), "invalid analyzer options", err)
			return
		}
		mapper, err := mapperFromQuery(c)
		if err != nil {
			respondError(c, apperrors.GetStatusCode(err), "invalid color options", err)
			return
		}

		resp, err := svc.SuggestDetailed(ctx, symbol, opts, mapper)
		if err != nil {
			respondServiceError(c, symbol, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

func analyzeURL(svc service.SuggestionService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.RequestTimeout)
		defer cancel()

		var req models.AnalyzeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.WithError(err).WithField("ip", c.ClientIP()).Error("Invalid request format")
			respondError(c, http.StatusBadRequest, "invalid request format", err)
			return
		}

		opts, err := optionsFromQuery(c, cfg)
		if err != nil {
			respondError(c, apperrors.GetStatusCode(err), "invalid analyzer options", err)
			return
		}
		mapper, err := mapperFromQuery(c)
		if err != nil {
			respondError(c, apperrors.GetStatusCode(err), "invalid color options", err)
			return
		}

		resp, err := svc.SuggestForURL(ctx, req.URL, opts, mapper)
		if err != nil {
			respondServiceError(c, req.URL, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

func analyzeBatch(svc service.SuggestionService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.RequestTimeout)
		defer cancel()

		var req models.BatchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "invalid request format", err)
			return
		}

		opts, err := optionsFromQuery(c, cfg)
		if err != nil {
			respondError(c, apperrors.GetStatusCode(err), "invalid analyzer options", err)
			return
		}

		resp, err := svc.SuggestBatch(ctx, req.Symbols, opts)
		if err != nil {
			respondError(c, apperrors.GetStatusCode(err), "batch analysis failed", err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

func metricsHandler(metrics *observer.MetricsObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, metrics.GetMetrics())
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "available",
		"version": "1.0.0",
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

// Middleware and helper functions

func requestSizeLimiter(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

func errorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last()
			respondError(c, determineStatusCode(err), "request processing failed", err)
		}
	}
}

func determineStatusCode(err error) int {
	if appErr, ok := err.(*apperrors.AppError); ok {
		return appErr.StatusCode
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// respondServiceError maps pipeline failures to responses. Deadline errors
// become timeouts; everything else keeps its own error kind and status.
func respondServiceError(c *gin.Context, subject string, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		err = apperrors.NewTimeoutError("request timed out", err)
	}

	logger.WithError(err).WithFields(logrus.Fields{
		"subject": subject,
		"ip":      c.ClientIP(),
	}).Error("Suggestion request failed")

	respondError(c, determineStatusCode(err), "suggestion failed", err)
}

func respondError(c *gin.Context, code int, message string, err error) {
	logger.WithError(err).WithFields(logrus.Fields{
		"status_code": code,
		"message":     message,
		"path":        c.Request.URL.Path,
		"method":      c.Request.Method,
		"ip":          c.ClientIP(),
	}).Error("Request failed")

	c.AbortWithStatusJSON(code, models.ErrorResponse{
		Error:   http.StatusText(code),
		Message: fmt.Sprintf("%s: %v", message, err),
	})
}
