// Command rotateicon rotates a PNG image clockwise by an arbitrary
// angle, expanding the canvas and keeping the background transparent.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/iconforge/go-icon/icon"
	"github.com/iconforge/go-icon/images"
)

const (
	// DefaultAngle is the clockwise rotation applied when -angle is not given.
	DefaultAngle = 45.0
)

func main() {
	var (
		inputPath  string
		outputPath string
		angle      float64
	)

	flag.StringVar(&inputPath, "in", "", "Path to the source PNG image (required)")
	flag.StringVar(&outputPath, "out", "", "Path of the rotated output PNG (required)")
	flag.Float64Var(&angle, "angle", DefaultAngle, "Clockwise rotation angle in degrees")
	flag.Parse()

	if inputPath == "" || outputPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	src, err := images.LoadPNG(inputPath)
	if err != nil {
		log.Fatalf("Failed to load source image: %v", err)
	}
	bounds := src.Bounds()
	log.Printf("Loaded %s (%dx%d)", inputPath, bounds.Dx(), bounds.Dy())

	rotated := icon.Rotate(src, angle)
	if err := images.SavePNG(rotated, outputPath); err != nil {
		log.Fatalf("Failed to save rotated image: %v", err)
	}
	log.Printf("Rotated %.1f degrees clockwise -> %s (%dx%d)",
		angle, outputPath, rotated.Bounds().Dx(), rotated.Bounds().Dy())
}
