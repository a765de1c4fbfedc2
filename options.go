package gridmark

import "fmt"

// Options holds configuration for loading and interaction.
type Options struct {
	// View scale factor, >= 1. Pointer thresholds expressed in screen
	// pixels are divided by this to get document units.
	viewScale float64

	// Brightness of the rendered backdrop, 0-1. Display-only.
	brightness float64

	// Whether completing a cell preserves its left/right edge selection
	// for the next cell.
	keepVerticalSelection bool
}

// defaultOptions returns the default options.
func defaultOptions() Options {
	return Options{
		viewScale:             1,
		brightness:            1,
		keepVerticalSelection: false,
	}
}

// validate checks option values.
func (o Options) validate() error {
	if o.viewScale < 1 {
		return fmt.Errorf("view scale %g out of range: must be >= 1", o.viewScale)
	}
	if o.brightness < 0 || o.brightness > 1 {
		return fmt.Errorf("brightness %g out of range: must be in [0, 1]", o.brightness)
	}
	return nil
}
