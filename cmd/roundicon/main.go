// Command roundicon generates a square PNG application icon with
// rounded, transparent corners from a source image, optionally at
// several sizes at once.
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/iconforge/go-icon/icon"
	"github.com/iconforge/go-icon/images"
)

const (
	// DefaultOutputPath is where the icon is written when -out is not given.
	DefaultOutputPath = "app-icon.png"
)

func main() {
	var (
		inputPath     string
		outputPath    string
		size          int
		radiusPercent int
		scale         float64
		sizesList     string
	)

	flag.StringVar(&inputPath, "in", "", "Path to the source PNG image (required)")
	flag.StringVar(&outputPath, "out", DefaultOutputPath, "Path of the output PNG, or the output directory with -sizes")
	flag.IntVar(&size, "size", icon.DefaultSize, "Side length of the generated icon in pixels")
	flag.IntVar(&radiusPercent, "radius", icon.DefaultRadiusPercent, "Corner radius as a percentage of the icon size (0-50)")
	flag.Float64Var(&scale, "scale", icon.DefaultScale, "Fraction of the icon occupied by the image (0.0-1.0)")
	flag.StringVar(&sizesList, "sizes", "", "Comma-separated list of square sizes to generate into the -out directory (e.g. 16,32,128)")
	flag.Parse()

	if inputPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	src, err := images.LoadPNG(inputPath)
	if err != nil {
		log.Fatalf("Failed to load source image: %v", err)
	}
	bounds := src.Bounds()
	log.Printf("Loaded %s (%dx%d)", inputPath, bounds.Dx(), bounds.Dy())

	if sizesList != "" {
		if err := generateSizes(src, sizesList, radiusPercent, outputPath); err != nil {
			log.Fatalf("Failed to generate icon sizes: %v", err)
		}
		return
	}

	cfg := icon.Config{Size: size, RadiusPercent: radiusPercent, Scale: scale}
	result, err := icon.Generate(src, cfg)
	if err != nil {
		log.Fatalf("Failed to generate icon: %v", err)
	}
	if err := images.SavePNG(result, outputPath); err != nil {
		log.Fatalf("Failed to save icon: %v", err)
	}
	log.Printf("Generated %s (%dx%d, radius %dpx, scale %.1f%%)",
		outputPath, size, size, cfg.RadiusPixels(), scale*100)
}

// generateSizes writes one <N>x<N>.png per requested size into dir.
func generateSizes(src image.Image, list string, radiusPercent int, dir string) error {
	var sizes []int
	for _, field := range strings.Split(list, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return fmt.Errorf("invalid size %q: %w", field, err)
		}
		sizes = append(sizes, n)
	}

	icons, err := icon.GenerateSizes(src, sizes, radiusPercent)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	for _, si := range icons {
		path := filepath.Join(dir, fmt.Sprintf("%dx%d.png", si.Size, si.Size))
		if err := images.SavePNG(si.Image, path); err != nil {
			return err
		}
		log.Printf("Generated %s", path)
	}
	return nil
}
