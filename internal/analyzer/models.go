package analyzer

import (
	"github.com/Henners-111/Background-Colour-Suggestion-Library/pkg/models"
)

// Suggestion is an alias to the shared models.Suggestion so callers inside
// this package tree don't need a second import for the common case.
type Suggestion = models.Suggestion
