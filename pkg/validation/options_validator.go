package validation

import (
	"fmt"

	apperrors "github.com/Henners-111/Background-Colour-Suggestion-Library/internal/errors"
)

// OptionsValidator checks request-supplied analyzer overrides before they
// reach the analyzer. The analyzer itself tolerates pathological values;
// this keeps obviously broken requests out at the boundary.
type OptionsValidator struct{}

// NewOptionsValidator creates an options validator.
func NewOptionsValidator() *OptionsValidator {
	return &OptionsValidator{}
}

// ValidateAlphaThreshold checks an alpha threshold override.
func (v *OptionsValidator) ValidateAlphaThreshold(threshold int) error {
	if threshold < 0 || threshold > 255 {
		return apperrors.NewValidationError(
			fmt.Sprintf("alpha threshold must be in [0,255], got %d", threshold), nil)
	}
	return nil
}

// ValidateEdgeSampleRatio checks an edge sample ratio override.
func (v *OptionsValidator) ValidateEdgeSampleRatio(ratio float64) error {
	if ratio <= 0 || ratio > 1 {
		return apperrors.NewValidationError(
			fmt.Sprintf("edge sample ratio must be in (0,1], got %g", ratio), nil)
	}
	return nil
}

// ValidateConfidenceFloor checks a color-mapping confidence floor.
func (v *OptionsValidator) ValidateConfidenceFloor(floor float64) error {
	if floor < 0 || floor > 1 {
		return apperrors.NewValidationError(
			fmt.Sprintf("confidence floor must be in [0,1], got %g", floor), nil)
	}
	return nil
}
