package icon

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Rotate rotates an image clockwise by an arbitrary angle in degrees,
// expanding the canvas to fit the rotated bounds. The image is treated
// as having an alpha channel (one is synthesized for opaque sources)
// and the uncovered regions of the expanded canvas are fully
// transparent, so transparency survives the rotation.
//
// Arguments:
//   - img: The source image in any color mode.
//   - degrees: The clockwise rotation angle in degrees.
//
// Returns:
//   - *image.NRGBA: The rotated image.
func Rotate(img image.Image, degrees float64) *image.NRGBA {
	// imaging rotates counter-clockwise, so negate for clockwise.
	return imaging.Rotate(toNRGBA(img), -degrees, color.Transparent)
}
