package analyzer

import "math"

// PerceivedLightness computes the weighted quadratic "perceived brightness"
// of an RGB pixel, in [0,1]:
//
//	L = sqrt(0.299*R² + 0.587*G² + 0.114*B²) / 255
//
// Green is weighted most heavily, matching human luminance sensitivity. This
// is deliberately distinct from the linear WCAG relative luminance below,
// which is reserved for contrast-ratio work and not used in the tone
// decision path.
func PerceivedLightness(r, g, b uint8) float64 {
	rf := float64(r)
	gf := float64(g)
	bf := float64(b)
	return math.Sqrt(0.299*rf*rf+0.587*gf*gf+0.114*bf*bf) / 255
}

// RelativeLuminance computes WCAG 2.x relative luminance of an sRGB pixel,
// in [0,1].
func RelativeLuminance(r, g, b uint8) float64 {
	return 0.2126*linearize(r) + 0.7152*linearize(g) + 0.0722*linearize(b)
}

// ContrastRatio computes the WCAG contrast ratio between two relative
// luminances, in [1,21].
func ContrastRatio(l1, l2 float64) float64 {
	lighter := math.Max(l1, l2)
	darker := math.Min(l1, l2)
	return (lighter + 0.05) / (darker + 0.05)
}

// linearize maps one 8-bit sRGB channel to linear light per the WCAG
// definition.
func linearize(c uint8) float64 {
	cs := float64(c) / 255
	if cs <= 0.03928 {
		return cs / 12.92
	}
	return math.Pow((cs+0.055)/1.055, 2.4)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
