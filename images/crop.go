package images

import (
	"image"

	"github.com/disintegration/imaging"
)

// CenterSquare center-crops a non-square image to a square whose side
// is min(width, height). The crop origin is ((width-side)/2,
// (height-side)/2) using integer (floor) division, so for a 500x300
// source the crop spans (100,0)-(400,300). A square input is returned
// unchanged; no resizing is performed.
//
// Arguments:
//   - img: The source image of any dimensions.
//
// Returns:
//   - image.Image: A square image of side min(width, height).
func CenterSquare(img image.Image) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width == height {
		return img
	}

	side := min(width, height)
	return imaging.CropCenter(img, side, side)
}
