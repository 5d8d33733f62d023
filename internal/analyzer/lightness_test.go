package analyzer

import (
	"math"
	"testing"
)

func TestPerceivedLightness(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    float64
	}{
		{"black", 0, 0, 0, 0},
		{"white", 255, 255, 255, 1},
		{"mid gray", 128, 128, 128, 128.0 / 255.0},
		{"near white", 240, 240, 240, 240.0 / 255.0},
		{"near black", 10, 10, 10, 10.0 / 255.0},
		{"pure green", 0, 255, 0, math.Sqrt(0.587)},
		{"pure red", 255, 0, 0, math.Sqrt(0.299)},
		{"pure blue", 0, 0, 255, math.Sqrt(0.114)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PerceivedLightness(tt.r, tt.g, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("PerceivedLightness(%d,%d,%d) = %f, want %f", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestPerceivedLightness_GreenWeighedHeaviest(t *testing.T) {
	green := PerceivedLightness(0, 200, 0)
	red := PerceivedLightness(200, 0, 0)
	blue := PerceivedLightness(0, 0, 200)

	if !(green > red && red > blue) {
		t.Errorf("Expected green > red > blue, got g=%f r=%f b=%f", green, red, blue)
	}
}

func TestRelativeLuminance(t *testing.T) {
	if got := RelativeLuminance(0, 0, 0); got != 0 {
		t.Errorf("Expected 0 for black, got %f", got)
	}
	if got := RelativeLuminance(255, 255, 255); math.Abs(got-1) > 1e-9 {
		t.Errorf("Expected 1 for white, got %f", got)
	}

	// The linear WCAG formula must differ from the quadratic perceived
	// lightness for mid tones.
	if wcag, perceived := RelativeLuminance(128, 128, 128), PerceivedLightness(128, 128, 128); math.Abs(wcag-perceived) < 0.1 {
		t.Errorf("Expected distinct formulas, got wcag=%f perceived=%f", wcag, perceived)
	}
}

func TestContrastRatio(t *testing.T) {
	black := RelativeLuminance(0, 0, 0)
	white := RelativeLuminance(255, 255, 255)

	got := ContrastRatio(white, black)
	if math.Abs(got-21) > 1e-6 {
		t.Errorf("Expected 21:1 for white on black, got %f", got)
	}

	// Symmetric in its arguments.
	if ContrastRatio(black, white) != got {
		t.Error("Expected contrast ratio to be order-independent")
	}

	if got := ContrastRatio(0.5, 0.5); math.Abs(got-1) > 1e-9 {
		t.Errorf("Expected 1:1 for identical luminance, got %f", got)
	}
}
