// Package colormap maps a tone suggestion to a concrete display color using
// caller-supplied light/dark colors and a confidence floor.
package colormap

import (
	"fmt"
	"strings"

	"github.com/Henners-111/Background-Colour-Suggestion-Library/internal/analyzer"
	"github.com/Henners-111/Background-Colour-Suggestion-Library/pkg/models"
)

// Mapper holds the caller's display colors. When a suggestion's confidence
// is below the floor the fallback color is used instead of the tone color.
type Mapper struct {
	LightColor      string
	DarkColor       string
	FallbackColor   string
	ConfidenceFloor float64
}

// DefaultMapper returns a mapper with neutral defaults: near-white for light,
// near-black for dark, mid-gray fallback below 0.2 confidence.
func DefaultMapper() Mapper {
	return Mapper{
		LightColor:      "#FAFAFA",
		DarkColor:       "#1E1E1E",
		FallbackColor:   "#808080",
		ConfidenceFloor: 0.2,
	}
}

// Map resolves the display color for a suggestion.
func (m Mapper) Map(s models.Suggestion) string {
	if s.Confidence < m.ConfidenceFloor {
		return m.FallbackColor
	}
	if s.Tone == models.ToneLight {
		return m.LightColor
	}
	return m.DarkColor
}

// ContrastRatio computes the WCAG contrast ratio between two hex colors,
// for checking that the mapped background is readable against a known
// foreground color.
func ContrastRatio(hexA, hexB string) (float64, error) {
	ra, ga, ba, err := ParseHex(hexA)
	if err != nil {
		return 0, err
	}
	rb, gb, bb, err := ParseHex(hexB)
	if err != nil {
		return 0, err
	}
	la := analyzer.RelativeLuminance(ra, ga, ba)
	lb := analyzer.RelativeLuminance(rb, gb, bb)
	return analyzer.ContrastRatio(la, lb), nil
}

// ParseHex parses "#RGB" or "#RRGGBB" (leading '#' optional).
func ParseHex(s string) (r, g, b uint8, err error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(s) {
	case 3:
		s = fmt.Sprintf("%c%c%c%c%c%c", s[0], s[0], s[1], s[1], s[2], s[2])
	case 6:
	default:
		return 0, 0, 0, fmt.Errorf("invalid hex color %q", s)
	}

	var rv, gv, bv int
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &rv, &gv, &bv); err != nil {
		return 0, 0, 0, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return uint8(rv), uint8(gv), uint8(bv), nil
}
