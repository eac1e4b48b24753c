package icon

import (
	"image"
	"image/draw"

	"github.com/nfnt/resize"

	"github.com/iconforge/go-icon/images"
)

// NormalizeToSquare center-crops a source image to a square of side
// min(width, height) without resizing. Square inputs pass through
// unchanged.
//
// Arguments:
//   - img: The source image of any dimensions.
//
// Returns:
//   - image.Image: A square image.
func NormalizeToSquare(img image.Image) image.Image {
	return images.CenterSquare(img)
}

// ResizeIcon resamples a square image to iconSize x iconSize using the
// Lanczos3 filter, which holds up for both upscaling and downscaling
// without introducing aliasing artifacts.
//
// Arguments:
//   - img: The square source image.
//   - iconSize: The target side length in pixels (> 0).
//
// Returns:
//   - image.Image: The resized image.
func ResizeIcon(img image.Image, iconSize int) image.Image {
	return resize.Resize(uint(iconSize), uint(iconSize), img, resize.Lanczos3)
}

// PlaceOnCanvas composites a square icon onto the center of a fully
// transparent canvasSize x canvasSize canvas, using the icon's own
// alpha channel as the blend weight. The centering offset is
// ((canvasSize - iconSize) / 2, (canvasSize - iconSize) / 2) with
// integer (floor) division on both axes. When the icon already fills
// the canvas, the icon is returned unchanged.
//
// Arguments:
//   - icon: The square icon, side length <= canvasSize.
//   - canvasSize: The canvas side length in pixels.
//
// Returns:
//   - image.Image: The padded canvas, or the icon itself when no
//     padding is needed.
func PlaceOnCanvas(icon image.Image, canvasSize int) image.Image {
	iconSize := icon.Bounds().Dx()
	if iconSize == canvasSize {
		return icon
	}

	canvas := image.NewNRGBA(image.Rect(0, 0, canvasSize, canvasSize))
	offset := (canvasSize - iconSize) / 2
	target := image.Rect(offset, offset, offset+iconSize, offset+icon.Bounds().Dy())
	draw.Draw(canvas, target, icon, icon.Bounds().Min, draw.Over)
	return canvas
}

// ApplyRoundedCorners renders the corners of an image transparent
// outside a rounded-rectangle region of the given radius. The image is
// converted to NRGBA if needed (sources without an alpha channel get a
// fully opaque one), and the rounded-rect mask is multiplied into the
// existing alpha channel, so pre-existing transparency is preserved
// and never made more opaque.
//
// A negative radius selects the default of floor(0.2 * min(w, h)).
// Radii beyond half the side length are clamped by the mask.
//
// Arguments:
//   - img: The source image in any color mode.
//   - radius: The corner radius in pixels, or a negative value for the
//     default.
//
// Returns:
//   - *image.NRGBA: A new image with rounded, transparent corners.
func ApplyRoundedCorners(img image.Image, radius int) *image.NRGBA {
	bounds := img.Bounds()
	if radius < 0 {
		radius = min(bounds.Dx(), bounds.Dy()) * 20 / 100
	}

	out := toNRGBA(img)
	mask := roundedRectMask(out.Bounds().Dx(), out.Bounds().Dy(), radius)
	setAlphaChannel(out, MultiplyAlpha(alphaChannel(out), mask))
	return out
}

// Generate runs the full compositing pipeline:
//
//  1. Center-crop the source to a square.
//  2. Resize to floor(Size * Scale) if the side length differs.
//  3. Center on a transparent Size x Size canvas when Scale < 1.
//  4. Multiply a rounded-rect mask of floor(Size * RadiusPercent / 100)
//     pixels into the alpha channel.
//
// The result is always exactly Size x Size with straight (non-
// premultiplied) alpha, ready for PNG encoding.
//
// Arguments:
//   - src: The source image of any dimensions and color mode.
//   - cfg: The invocation parameters.
//
// Returns:
//   - *image.NRGBA: The finished icon.
//   - error: An error if cfg fails validation; no pixel processing
//     happens in that case.
func Generate(src image.Image, cfg Config) (*image.NRGBA, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	result := NormalizeToSquare(src)

	iconSize := int(float64(cfg.Size) * cfg.Scale)
	if iconSize < 1 {
		// A tiny Size*Scale product still needs at least one pixel of
		// foreground.
		iconSize = 1
	}
	if result.Bounds().Dx() != iconSize {
		result = ResizeIcon(result, iconSize)
	}
	if cfg.Scale < 1.0 {
		result = PlaceOnCanvas(result, cfg.Size)
	}

	return ApplyRoundedCorners(result, cfg.RadiusPixels()), nil
}

// toNRGBA returns a zero-origin NRGBA copy of img. Opaque source
// formats come out with a fully opaque synthesized alpha channel.
func toNRGBA(img image.Image) *image.NRGBA {
	bounds := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(out, out.Bounds(), img, bounds.Min, draw.Src)
	return out
}
