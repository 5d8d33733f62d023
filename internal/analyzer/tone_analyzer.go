package analyzer

import (
	"runtime"
	"sync"

	"github.com/Henners-111/Background-Colour-Suggestion-Library/pkg/bitmap"
	"github.com/Henners-111/Background-Colour-Suggestion-Library/pkg/models"
)

// Decision thresholds and confidence constants. These are fixed policy,
// chosen empirically; changing them changes the behavioral contract.
const (
	// lightForegroundThreshold: mean lightness above this means the
	// foreground is clearly light, so a dark background is recommended.
	lightForegroundThreshold = 0.58

	// darkForegroundThreshold: mean lightness below this means the
	// foreground is clearly dark, so a light background is recommended.
	darkForegroundThreshold = 0.42

	// ambiguousConfidence is the fixed confidence for edge-tiebreak
	// decisions inside the ambiguous band.
	ambiguousConfidence = 0.3

	// emptyEdgeConfidence is the fixed confidence when the ambiguous
	// tiebreak finds no qualifying edge pixels at all.
	emptyEdgeConfidence = 0.1
)

// parallelMinPixels is the pixel count above which the foreground scan is
// split into row strips across CPUs.
const parallelMinPixels = 1 << 16

// toneAnalyzer implements ToneAnalyzer. It holds no state between calls and
// never mutates its input, so a single instance is safe for concurrent use.
type toneAnalyzer struct{}

// NewToneAnalyzer creates the background tone analyzer.
func NewToneAnalyzer() ToneAnalyzer {
	return &toneAnalyzer{}
}

// Analyze classifies foreground pixels, computes their mean perceived
// lightness and maps it to a tone recommendation. Deterministic for
// identical inputs; never fails.
func (ta *toneAnalyzer) Analyze(bm *bitmap.Bitmap, opts Options) models.Suggestion {
	total := bm.Width * bm.Height

	sum, count := ta.scanForeground(bm, opts)
	if count == 0 {
		// No signal at all (fully transparent or fully filtered).
		// Default to a dark background with zero confidence.
		return models.Suggestion{
			Tone:         models.ToneDark,
			TotalSampled: total,
		}
	}

	avg := sum / float64(count)
	suggestion := models.Suggestion{
		ForegroundLightness: avg,
		ForegroundSampled:   count,
		TotalSampled:        total,
	}

	switch {
	case avg > lightForegroundThreshold:
		suggestion.Tone = models.ToneDark
		suggestion.Confidence = (avg - lightForegroundThreshold) / (1 - lightForegroundThreshold)
	case avg < darkForegroundThreshold:
		suggestion.Tone = models.ToneLight
		suggestion.Confidence = (darkForegroundThreshold - avg) / darkForegroundThreshold
	default:
		suggestion.Tone, suggestion.Confidence = ta.edgeTiebreak(bm, opts, avg)
	}

	suggestion.Confidence = clamp01(suggestion.Confidence)
	return suggestion
}

// scanForeground accumulates perceived lightness over all foreground pixels.
// Large bitmaps are scanned in horizontal strips across CPUs; strip results
// are reduced in strip order so repeated calls stay bit-identical.
func (ta *toneAnalyzer) scanForeground(bm *bitmap.Bitmap, opts Options) (float64, int) {
	if bm.Width*bm.Height < parallelMinPixels {
		return ta.scanRows(bm, opts, 0, bm.Height)
	}

	workers := runtime.NumCPU()
	if workers > bm.Height {
		workers = bm.Height
	}
	rowsPerWorker := (bm.Height + workers - 1) / workers

	sums := make([]float64, workers)
	counts := make([]int, workers)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		startY := i * rowsPerWorker
		endY := startY + rowsPerWorker
		if endY > bm.Height {
			endY = bm.Height
		}
		wg.Add(1)
		go func(i, startY, endY int) {
			defer wg.Done()
			sums[i], counts[i] = ta.scanRows(bm, opts, startY, endY)
		}(i, startY, endY)
	}
	wg.Wait()

	var sum float64
	count := 0
	for i := range sums {
		sum += sums[i]
		count += counts[i]
	}
	return sum, count
}

// scanRows scans rows [startY, endY) applying the full foreground filter:
// alpha threshold plus the exact pure-white/pure-black exclusions.
func (ta *toneAnalyzer) scanRows(bm *bitmap.Bitmap, opts Options, startY, endY int) (float64, int) {
	var sum float64
	count := 0

	for y := startY; y < endY; y++ {
		i := y * bm.Width * 4
		for x := 0; x < bm.Width; x++ {
			r, g, b, a := bm.Pix[i], bm.Pix[i+1], bm.Pix[i+2], bm.Pix[i+3]
			i += 4

			if a < opts.AlphaThreshold {
				continue
			}
			if opts.IgnorePureWhite && r == 255 && g == 255 && b == 255 {
				continue
			}
			if opts.IgnorePureBlack && r == 0 && g == 0 && b == 0 {
				continue
			}

			sum += PerceivedLightness(r, g, b)
			count++
		}
	}
	return sum, count
}

// edgeTiebreak resolves the ambiguous band by sampling the outer border: the
// union of the outer floor(height*ratio) rows and floor(width*ratio) columns,
// so corners count once. Only the alpha filter applies here; the pure
// white/black exclusions do not. Edges lighter than the overall foreground
// imply a darker motif inside a lighter fringe, so a light background wins.
func (ta *toneAnalyzer) edgeTiebreak(bm *bitmap.Bitmap, opts Options, avg float64) (models.Tone, float64) {
	bandY := int(float64(bm.Height) * opts.EdgeSampleRatio)
	bandX := int(float64(bm.Width) * opts.EdgeSampleRatio)

	var sum float64
	count := 0

	for y := 0; y < bm.Height; y++ {
		inRowBand := y < bandY || y >= bm.Height-bandY
		i := y * bm.Width * 4
		for x := 0; x < bm.Width; x++ {
			if !inRowBand && x >= bandX && x < bm.Width-bandX {
				i += 4
				continue
			}

			r, g, b, a := bm.Pix[i], bm.Pix[i+1], bm.Pix[i+2], bm.Pix[i+3]
			i += 4
			if a < opts.AlphaThreshold {
				continue
			}
			sum += PerceivedLightness(r, g, b)
			count++
		}
	}

	if count == 0 {
		return models.ToneDark, emptyEdgeConfidence
	}
	if sum/float64(count) > avg {
		return models.ToneLight, ambiguousConfidence
	}
	return models.ToneDark, ambiguousConfidence
}
