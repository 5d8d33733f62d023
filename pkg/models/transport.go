package models

// AnalyzeRequest asks for a tone suggestion for an arbitrary image URL.
type AnalyzeRequest struct {
	URL string `json:"url" binding:"required,url"`
}

// BatchRequest asks for tone suggestions for a set of symbols.
type BatchRequest struct {
	Symbols []string `json:"symbols" binding:"required,min=1"`
}

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// SuggestionResponse is the response for a single suggestion request.
type SuggestionResponse struct {
	Symbol            string     `json:"symbol,omitempty"`
	ImageURL          string     `json:"image_url,omitempty"`
	Suggestion        Suggestion `json:"suggestion"`
	BackgroundColor   string     `json:"background_color,omitempty"`
	ProcessingTimeSec float64    `json:"processing_time_sec"`
}

// DetailedSuggestionResponse adds the lightness distribution summary.
type DetailedSuggestionResponse struct {
	SuggestionResponse
	Stats LightnessStats `json:"lightness_stats"`
}

// BatchResponse carries per-symbol results. Failed symbols report an error
// string; a fetch or decode failure never turns into a fabricated suggestion.
type BatchResponse struct {
	Results []BatchResult `json:"results"`
}

// BatchResult is one entry of a BatchResponse.
type BatchResult struct {
	Symbol     string      `json:"symbol"`
	Suggestion *Suggestion `json:"suggestion,omitempty"`
	Error      string      `json:"error,omitempty"`
}
