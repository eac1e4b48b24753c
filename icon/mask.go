package icon

import (
	"image"

	"github.com/chewxy/math32"

	"github.com/iconforge/go-icon/images"
)

// RoundedRectMask rasterizes a size x size alpha mask for an
// axis-aligned rounded rectangle spanning the full canvas. Pixels
// inside the rounded region are 255, pixels in the four corner
// cut-outs are 0, and the boundary is anti-aliased over a one-pixel
// band so the final composite has no jagged edges.
//
// The radius is clamped to [0, size/2] before rasterization: a radius
// of 0 yields a plain rectangle, and a radius of size/2 yields a full
// circle (a stadium shape for non-square variants).
//
// Arguments:
//   - size: The mask side length in pixels.
//   - radius: The corner arc radius in pixels.
//
// Returns:
//   - *image.Alpha: The rasterized mask.
func RoundedRectMask(size, radius int) *image.Alpha {
	return roundedRectMask(size, size, radius)
}

// roundedRectMask rasterizes the mask for an arbitrary width x height
// canvas. The square contract goes through RoundedRectMask; this
// variant exists so corners can be applied to images that were never
// normalized to a square.
func roundedRectMask(width, height, radius int) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	if width <= 0 || height <= 0 {
		return mask
	}

	if radius < 0 {
		radius = 0
	}
	if half := min(width, height) / 2; radius > half {
		radius = half
	}

	if radius == 0 {
		for i := range mask.Pix {
			mask.Pix[i] = 0xff
		}
		return mask
	}

	// Corner arc centers sit radius pixels in from each edge.
	r := float32(radius)
	left := r
	right := float32(width) - r
	top := r
	bottom := float32(height) - r

	images.Parallel(height, func(partStart, partEnd int) {
		for y := partStart; y < partEnd; y++ {
			py := float32(y) + 0.5
			row := mask.Pix[y*mask.Stride : y*mask.Stride+width]
			for x := 0; x < width; x++ {
				px := float32(x) + 0.5

				// Pixels outside the four corner squares are fully inside
				// the rounded region.
				var cx, cy float32
				switch {
				case px < left && py < top:
					cx, cy = left, top
				case px > right && py < top:
					cx, cy = right, top
				case px < left && py > bottom:
					cx, cy = left, bottom
				case px > right && py > bottom:
					cx, cy = right, bottom
				default:
					row[x] = 0xff
					continue
				}

				// Coverage falls off linearly across a one-pixel band
				// around the arc.
				d := math32.Hypot(px-cx, py-cy)
				coverage := images.Clamp(float64(r-d+0.5), 0, 1)
				row[x] = uint8(coverage*255 + 0.5)
			}
		}
	})

	return mask
}
