package icon

import (
	"image"

	"github.com/pkg/errors"
)

// SizedIcon pairs a generated icon with the size it was generated at.
type SizedIcon struct {
	// Size is the side length of the icon in pixels.
	Size int
	// Image is the rounded icon at that size.
	Image *image.NRGBA
}

// GenerateSizes produces one rounded icon per requested size from a
// single source image, recomputing the corner radius per size so every
// variant keeps the same proportions. Each size runs the full pipeline
// independently; invocations share nothing.
//
// Arguments:
//   - src: The source image of any dimensions and color mode.
//   - sizes: The square side lengths to generate, each > 0.
//   - radiusPercent: The corner radius percentage applied to every size.
//
// Returns:
//   - []SizedIcon: The generated icons in the order requested.
//   - error: An error if sizes is empty or any parameter is invalid.
func GenerateSizes(src image.Image, sizes []int, radiusPercent int) ([]SizedIcon, error) {
	if len(sizes) == 0 {
		return nil, errors.New("no icon sizes requested")
	}

	out := make([]SizedIcon, 0, len(sizes))
	for _, size := range sizes {
		cfg := Config{Size: size, RadiusPercent: radiusPercent, Scale: 1.0}
		img, err := Generate(src, cfg)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to generate %dx%d icon", size, size)
		}
		out = append(out, SizedIcon{Size: size, Image: img})
	}
	return out, nil
}
