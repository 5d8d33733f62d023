package analyzer

import (
	"github.com/Henners-111/Background-Colour-Suggestion-Library/pkg/bitmap"
	"github.com/Henners-111/Background-Colour-Suggestion-Library/pkg/models"
)

// ToneAnalyzer recommends a background tone for a decoded bitmap.
type ToneAnalyzer interface {
	// Analyze inspects the bitmap and returns a tone suggestion. It never
	// fails: empty or fully transparent bitmaps produce the defined
	// fallback suggestion rather than an error.
	Analyze(bm *bitmap.Bitmap, opts Options) models.Suggestion

	// LightnessStats summarizes the foreground lightness distribution for
	// detailed reporting. It applies the same foreground filter as Analyze.
	LightnessStats(bm *bitmap.Bitmap, opts Options) models.LightnessStats
}
