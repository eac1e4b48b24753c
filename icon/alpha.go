package icon

import (
	"image"
)

// MultiplyAlpha combines two equal-dimension alpha masks by pointwise
// multiplication normalized to [0, 255]:
//
//	out[x,y] = round(a[x,y] * b[x,y] / 255)
//
// The result is never more opaque than either input, so multiplying a
// rounded-rect mask into an image's existing alpha preserves any
// pre-existing transparency. Both masks must have identical dimensions.
//
// Arguments:
//   - a: The first alpha mask.
//   - b: The second alpha mask.
//
// Returns:
//   - *image.Alpha: A new mask with the combined coverage.
func MultiplyAlpha(a, b *image.Alpha) *image.Alpha {
	width := a.Bounds().Dx()
	height := a.Bounds().Dy()
	out := image.NewAlpha(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		ao := a.PixOffset(a.Bounds().Min.X, a.Bounds().Min.Y+y)
		bo := b.PixOffset(b.Bounds().Min.X, b.Bounds().Min.Y+y)
		ar := a.Pix[ao : ao+width]
		br := b.Pix[bo : bo+width]
		or := out.Pix[y*out.Stride : y*out.Stride+width]
		for x := 0; x < width; x++ {
			// (v + 127) / 255 rounds the normalized product to the
			// nearest integer.
			or[x] = uint8((uint32(ar[x])*uint32(br[x]) + 127) / 255)
		}
	}
	return out
}

// alphaChannel extracts the alpha channel of an NRGBA image as a
// standalone mask with the same dimensions.
func alphaChannel(img *image.NRGBA) *image.Alpha {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	out := image.NewAlpha(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		so := img.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		src := img.Pix[so : so+width*4]
		dst := out.Pix[y*out.Stride : y*out.Stride+width]
		for x := 0; x < width; x++ {
			dst[x] = src[x*4+3]
		}
	}
	return out
}

// setAlphaChannel replaces the alpha channel of an NRGBA image
// in place, leaving the color channels untouched. The mask must have
// the same dimensions as the image.
func setAlphaChannel(img *image.NRGBA, mask *image.Alpha) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	for y := 0; y < height; y++ {
		do := img.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		mo := mask.PixOffset(mask.Bounds().Min.X, mask.Bounds().Min.Y+y)
		dst := img.Pix[do : do+width*4]
		src := mask.Pix[mo : mo+width]
		for x := 0; x < width; x++ {
			dst[x*4+3] = src[x]
		}
	}
}
