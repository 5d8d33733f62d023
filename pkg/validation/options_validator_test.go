package validation

import "testing"

func TestValidateAlphaThreshold(t *testing.T) {
	validator := NewOptionsValidator()

	for _, valid := range []int{0, 16, 255} {
		if err := validator.ValidateAlphaThreshold(valid); err != nil {
			t.Errorf("Expected %d to be valid, got: %v", valid, err)
		}
	}
	for _, invalid := range []int{-1, 256, 1000} {
		if err := validator.ValidateAlphaThreshold(invalid); err == nil {
			t.Errorf("Expected %d to be rejected", invalid)
		}
	}
}

func TestValidateEdgeSampleRatio(t *testing.T) {
	validator := NewOptionsValidator()

	for _, valid := range []float64{0.01, 0.4, 1} {
		if err := validator.ValidateEdgeSampleRatio(valid); err != nil {
			t.Errorf("Expected %g to be valid, got: %v", valid, err)
		}
	}
	for _, invalid := range []float64{0, -0.1, 1.01} {
		if err := validator.ValidateEdgeSampleRatio(invalid); err == nil {
			t.Errorf("Expected %g to be rejected", invalid)
		}
	}
}

func TestValidateConfidenceFloor(t *testing.T) {
	validator := NewOptionsValidator()

	for _, valid := range []float64{0, 0.2, 1} {
		if err := validator.ValidateConfidenceFloor(valid); err != nil {
			t.Errorf("Expected %g to be valid, got: %v", valid, err)
		}
	}
	for _, invalid := range []float64{-0.01, 1.01} {
		if err := validator.ValidateConfidenceFloor(invalid); err == nil {
			t.Errorf("Expected %g to be rejected", invalid)
		}
	}
}
