// Package icon - generates square application icons with rounded,
// transparent corners from arbitrary raster sources.
package icon

import (
	"fmt"

	"github.com/pkg/errors"
)

const (
	// DefaultSize is the default side length of the generated icon.
	DefaultSize = 1024
	// DefaultRadiusPercent is the default corner radius as a percentage
	// of the icon size.
	DefaultRadiusPercent = 20
	// DefaultScale is the default fraction of the icon occupied by the
	// foreground image (1.0 fills the whole canvas).
	DefaultScale = 1.0
)

// Config holds the parameters for one icon generation. A Config is
// validated before any pixel processing begins and is never mutated.
type Config struct {
	// Size is the side length of the square output icon in pixels.
	Size int
	// RadiusPercent is the corner radius as a percentage of Size,
	// in the range [0, 50]. 0 leaves the corners square.
	RadiusPercent int
	// Scale is the fraction of Size occupied by the foreground image,
	// in the range (0, 1]. Values below 1 center the image on a
	// transparent canvas.
	Scale float64
}

// DefaultConfig returns a Config matching the standard icon layout:
// a 1024px canvas, 20% corner radius, and a foreground that fills it.
func DefaultConfig() Config {
	return Config{
		Size:          DefaultSize,
		RadiusPercent: DefaultRadiusPercent,
		Scale:         DefaultScale,
	}
}

// Validate checks the Config ranges.
//
// Returns:
//   - error: An error describing the first invalid parameter, or nil.
func (c Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("invalid icon size: %d", c.Size)
	}
	if c.RadiusPercent < 0 || c.RadiusPercent > 50 {
		return fmt.Errorf("invalid corner radius percent: %d (must be in [0, 50])", c.RadiusPercent)
	}
	// A zero scale would demand a 0x0 foreground, so it is rejected
	// along with out-of-range values.
	if c.Scale <= 0 || c.Scale > 1 {
		return errors.Errorf("invalid scale: %g (must be in (0, 1])", c.Scale)
	}
	return nil
}

// RadiusPixels returns the corner radius in pixels for this Config:
// floor(Size * RadiusPercent / 100).
func (c Config) RadiusPixels() int {
	return c.Size * c.RadiusPercent / 100
}
