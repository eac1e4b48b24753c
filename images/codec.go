package images

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// DecodePNG decodes a PNG []byte into a Go-native image.Image.
//
// Arguments:
//   - b: The PNG []byte to decode.
//
// Returns:
//   - image.Image: The decoded image.
//   - error: An error if the data is empty or not a valid PNG.
func DecodePNG(b []byte) (image.Image, error) {
	if len(b) == 0 {
		return nil, errors.New("empty image data")
	}
	img, err := png.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode PNG")
	}
	return img, nil
}

// EncodePNG encodes an image.Image into a PNG []byte.
//
// Arguments:
//   - img: The image to encode.
//
// Returns:
//   - []byte: The encoded PNG data.
//   - error: An error if encoding fails.
func EncodePNG(img image.Image) ([]byte, error) {
	if img == nil {
		return nil, errors.New("image is nil")
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(err, "failed to encode PNG")
	}
	return buf.Bytes(), nil
}

// LoadPNG reads and decodes a PNG image from a file path.
//
// Arguments:
//   - path: The path of the PNG file to load.
//
// Returns:
//   - image.Image: The decoded image.
//   - error: An error naming the offending path if the file is missing,
//     unreadable, or not a valid PNG.
func LoadPNG(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read image %s", path)
	}
	img, err := DecodePNG(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode image %s", path)
	}
	return img, nil
}

// SavePNG encodes an image as PNG and writes it to the given path.
//
// The image is first written to a temporary file in the destination
// directory and renamed into place on success, so a failed write never
// leaves a partial or corrupt file at the destination path.
//
// Arguments:
//   - img: The image to save.
//   - path: The destination file path.
//
// Returns:
//   - error: An error if encoding or writing fails.
func SavePNG(img image.Image, path string) error {
	data, err := EncodePNG(img)
	if err != nil {
		return errors.Wrapf(err, "failed to encode image for %s", path)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.Wrapf(err, "failed to create temporary file in %s", dir)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return errors.Wrapf(err, "failed to write image %s", path)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return errors.Wrapf(err, "failed to write image %s", path)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return errors.Wrapf(err, "failed to move image into place at %s", path)
	}
	return nil
}
