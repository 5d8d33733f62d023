package models

// Tone is the recommended background tone for an image.
type Tone string

const (
	// ToneLight recommends a light background (foreground is dark).
	ToneLight Tone = "light"
	// ToneDark recommends a dark background (foreground is light).
	ToneDark Tone = "dark"
)

// Suggestion is the analyzer output: a background tone recommendation with a
// confidence score and the sampling statistics that produced it.
type Suggestion struct {
	// Tone is the recommended background tone.
	Tone Tone `json:"tone"`

	// Confidence is in [0,1]. Clear decisions scale toward 1; ambiguous
	// edge-tiebreak decisions carry fixed low confidence.
	Confidence float64 `json:"confidence"`

	// ForegroundLightness is the mean perceived lightness of counted
	// foreground pixels, in [0,1]. Zero when no pixel qualified.
	ForegroundLightness float64 `json:"foreground_lightness"`

	// ForegroundSampled counts the pixels that passed the alpha threshold
	// and the pure-white/pure-black exclusions.
	ForegroundSampled int `json:"foreground_sampled"`

	// TotalSampled is always width*height, regardless of filtering.
	TotalSampled int `json:"total_sampled"`
}

// LightnessStats summarizes the distribution of foreground lightness values.
// It backs the detailed analysis response and is not part of the core
// suggestion contract.
type LightnessStats struct {
	Mean    float64 `json:"mean"`
	StdDev  float64 `json:"std_dev"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Median  float64 `json:"median"`
	Sampled int     `json:"sampled"`
}
