package analyzer

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/Henners-111/Background-Colour-Suggestion-Library/pkg/bitmap"
	"github.com/Henners-111/Background-Colour-Suggestion-Library/pkg/models"
)

// LightnessStats collects every foreground lightness value and summarizes
// the distribution. It is a separate pass from Analyze and only serves the
// detailed reporting surface.
func (ta *toneAnalyzer) LightnessStats(bm *bitmap.Bitmap, opts Options) models.LightnessStats {
	values := ta.collectForeground(bm, opts)
	if len(values) == 0 {
		return models.LightnessStats{}
	}

	mean := stat.Mean(values, nil)
	stdDev := 0.0
	if len(values) > 1 {
		stdDev = stat.StdDev(values, nil)
	}

	sort.Float64s(values)
	return models.LightnessStats{
		Mean:    mean,
		StdDev:  stdDev,
		Min:     values[0],
		Max:     values[len(values)-1],
		Median:  stat.Quantile(0.5, stat.Empirical, values, nil),
		Sampled: len(values),
	}
}

// collectForeground applies the same foreground filter as the tone decision
// and returns the individual lightness values in row-major order.
func (ta *toneAnalyzer) collectForeground(bm *bitmap.Bitmap, opts Options) []float64 {
	values := make([]float64, 0, bm.Width*bm.Height)

	for y := 0; y < bm.Height; y++ {
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
			values = append(values, PerceivedLightness(r, g, b))
		}
	}
	return values
}
