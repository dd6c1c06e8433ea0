package avatar

import "fmt"

// Style is one category's appearance: sphere radius or generic size in meters,
// RGB color in the 0..1 range, and opacity in the 0..1 range.
type Style struct {
	Size    float32
	Color   [3]float32
	Opacity float32
}

// Validate checks the style's ranges: size strictly positive, color components
// and opacity within 0..1.
func (s Style) Validate(category string) error {
	if s.Size <= 0 {
		return fmt.Errorf("avatar: %s: size must be > 0, got %v", category, s.Size)
	}
	for i, c := range s.Color {
		if c < 0 || c > 1 {
			return fmt.Errorf("avatar: %s: color component %d out of range 0..1: %v", category, i, c)
		}
	}
	if s.Opacity < 0 || s.Opacity > 1 {
		return fmt.Errorf("avatar: %s: opacity out of range 0..1: %v", category, s.Opacity)
	}
	return nil
}
