package analyzer

// Options configures foreground extraction and the ambiguous-tone tiebreak.
// All fields have defaults; use DefaultOptions and the With helpers rather
// than constructing the struct directly.
type Options struct {
	// AlphaThreshold is the minimum alpha for a pixel to count as
	// foreground. Pixels below it (near-transparent fringe) are ignored.
	AlphaThreshold uint8

	// IgnorePureWhite excludes exact (255,255,255) pixels from the
	// foreground statistics. Exact channel equality, not a tolerance band.
	IgnorePureWhite bool

	// IgnorePureBlack excludes exact (0,0,0) pixels the same way.
	IgnorePureBlack bool

	// EdgeSampleRatio is the fraction of width/height defining the outer
	// border band used only in the ambiguous-tone tiebreak. Valid range
	// is (0,1]; at 0.5 and above the band covers the whole image.
	EdgeSampleRatio float64
}

// DefaultOptions returns the default analysis options.
func DefaultOptions() Options {
	return Options{
		AlphaThreshold:  16,
		IgnorePureWhite: true,
		IgnorePureBlack: false,
		EdgeSampleRatio: 0.4,
	}
}

// WithAlphaThreshold sets the minimum foreground alpha.
func (opts Options) WithAlphaThreshold(threshold uint8) Options {
	opts.AlphaThreshold = threshold
	return opts
}

// WithPureWhiteIgnored toggles the exact pure-white exclusion.
func (opts Options) WithPureWhiteIgnored(ignore bool) Options {
	opts.IgnorePureWhite = ignore
	return opts
}

// WithPureBlackIgnored toggles the exact pure-black exclusion.
func (opts Options) WithPureBlackIgnored(ignore bool) Options {
	opts.IgnorePureBlack = ignore
	return opts
}

// WithEdgeSampleRatio sets the tiebreak border band fraction.
func (opts Options) WithEdgeSampleRatio(ratio float64) Options {
	opts.EdgeSampleRatio = ratio
	return opts
}
