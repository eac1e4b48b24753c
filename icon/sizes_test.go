package icon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSizes(t *testing.T) {
	src := opaqueRed(256, 256)

	icons, err := GenerateSizes(src, []int{16, 32, 100}, 20)
	require.NoError(t, err)
	require.Len(t, icons, 3)

	for i, want := range []int{16, 32, 100} {
		assert.Equal(t, want, icons[i].Size)
		assert.Equal(t, want, icons[i].Image.Bounds().Dx(), "Icon %d should be %dpx wide", i, want)
		assert.Equal(t, want, icons[i].Image.Bounds().Dy(), "Icon %d should be %dpx tall", i, want)
	}

	// The radius is recomputed per size, so each variant has its own
	// rounded corners.
	big := icons[2].Image
	assert.Equal(t, uint8(0), big.NRGBAAt(0, 0).A, "Corner should be transparent at every size")
	assert.Greater(t, big.NRGBAAt(50, 50).A, uint8(0))
}

func TestGenerateSizes_EmptySizes(t *testing.T) {
	icons, err := GenerateSizes(opaqueRed(64, 64), nil, 20)
	assert.Error(t, err)
	assert.Nil(t, icons)
}

func TestGenerateSizes_InvalidSize(t *testing.T) {
	icons, err := GenerateSizes(opaqueRed(64, 64), []int{32, 0}, 20)
	assert.Error(t, err)
	assert.Nil(t, icons)
	assert.Contains(t, err.Error(), "0x0")
}
