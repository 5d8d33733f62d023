package colormap

import (
	"math"
	"testing"

	"github.com/Henners-111/Background-Colour-Suggestion-Library/pkg/models"
)

func TestMapper_Map(t *testing.T) {
	mapper := Mapper{
		LightColor:      "#FFFFFF",
		DarkColor:       "#000000",
		FallbackColor:   "#888888",
		ConfidenceFloor: 0.2,
	}

	tests := []struct {
		name       string
		suggestion models.Suggestion
		want       string
	}{
		{"confident light", models.Suggestion{Tone: models.ToneLight, Confidence: 0.9}, "#FFFFFF"},
		{"confident dark", models.Suggestion{Tone: models.ToneDark, Confidence: 0.5}, "#000000"},
		{"below floor", models.Suggestion{Tone: models.ToneLight, Confidence: 0.1}, "#888888"},
		{"at floor", models.Suggestion{Tone: models.ToneDark, Confidence: 0.2}, "#000000"},
		{"zero confidence fallback", models.Suggestion{Tone: models.ToneDark, Confidence: 0}, "#888888"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapper.Map(tt.suggestion); got != tt.want {
				t.Errorf("Map(%+v) = %s, want %s", tt.suggestion, got, tt.want)
			}
		})
	}
}

func TestMapper_ZeroFloorNeverFallsBack(t *testing.T) {
	mapper := DefaultMapper()
	mapper.ConfidenceFloor = 0

	got := mapper.Map(models.Suggestion{Tone: models.ToneDark, Confidence: 0})
	if got != mapper.DarkColor {
		t.Errorf("Expected tone color with zero floor, got %s", got)
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		r, g, b uint8
		wantErr bool
	}{
		{"#FFFFFF", 255, 255, 255, false},
		{"#000000", 0, 0, 0, false},
		{"1E1E1E", 30, 30, 30, false},
		{"#abc", 0xAA, 0xBB, 0xCC, false},
		{"  #FAFAFA ", 250, 250, 250, false},
		{"#12345", 0, 0, 0, true},
		{"#GGGGGG", 0, 0, 0, true},
		{"", 0, 0, 0, true},
	}

	for _, tt := range tests {
		r, g, b, err := ParseHex(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && (r != tt.r || g != tt.g || b != tt.b) {
			t.Errorf("ParseHex(%q) = (%d,%d,%d), want (%d,%d,%d)", tt.in, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}

func TestContrastRatio(t *testing.T) {
	got, err := ContrastRatio("#FFFFFF", "#000000")
	if err != nil {
		t.Fatalf("Expected success, got: %v", err)
	}
	if math.Abs(got-21) > 1e-6 {
		t.Errorf("Expected 21:1 for white on black, got %f", got)
	}

	if _, err := ContrastRatio("#FFFFFF", "bogus"); err == nil {
		t.Error("Expected error for invalid hex color")
	}
}

func TestDefaultMapperContrast(t *testing.T) {
	mapper := DefaultMapper()

	// The default light/dark pair must be clearly distinguishable.
	ratio, err := ContrastRatio(mapper.LightColor, mapper.DarkColor)
	if err != nil {
		t.Fatalf("Expected parseable defaults, got: %v", err)
	}
	if ratio < 7 {
		t.Errorf("Expected strong contrast between defaults, got %f", ratio)
	}
}
