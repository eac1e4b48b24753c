package images

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCenterSquare_WideImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 500, 300))
	src.SetNRGBA(100, 0, color.NRGBA{R: 255, A: 255})
	src.SetNRGBA(399, 299, color.NRGBA{G: 255, A: 255})

	result := CenterSquare(src)
	require.Equal(t, 300, result.Bounds().Dx())
	require.Equal(t, 300, result.Bounds().Dy())

	min := result.Bounds().Min
	origin := color.NRGBAModel.Convert(result.At(min.X, min.Y)).(color.NRGBA)
	far := color.NRGBAModel.Convert(result.At(min.X+299, min.Y+299)).(color.NRGBA)
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, origin, "Crop origin should be source (100,0)")
	assert.Equal(t, color.NRGBA{G: 255, A: 255}, far, "Crop end should be source (399,299)")
}

func TestCenterSquare_TallImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 300, 500))
	src.SetNRGBA(0, 100, color.NRGBA{B: 255, A: 255})

	result := CenterSquare(src)
	require.Equal(t, 300, result.Bounds().Dx())
	require.Equal(t, 300, result.Bounds().Dy())

	min := result.Bounds().Min
	origin := color.NRGBAModel.Convert(result.At(min.X, min.Y)).(color.NRGBA)
	assert.Equal(t, color.NRGBA{B: 255, A: 255}, origin, "Crop origin should be source (0,100)")
}

func TestCenterSquare_OddRemainderFloors(t *testing.T) {
	// (5-4)/2 floors to 0, so the crop starts at the left edge.
	src := image.NewNRGBA(image.Rect(0, 0, 5, 4))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})

	result := CenterSquare(src)
	require.Equal(t, 4, result.Bounds().Dx())

	min := result.Bounds().Min
	origin := color.NRGBAModel.Convert(result.At(min.X, min.Y)).(color.NRGBA)
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, origin)
}

func TestCenterSquare_SquarePassthrough(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	assert.Same(t, image.Image(src), CenterSquare(src), "Square input should be returned unchanged")
}
