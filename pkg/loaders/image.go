package loaders

import (
	"fmt"
	"image/png"
	"io"
	"os"

	"github.com/df07/go-pathtracer/pkg/renderer"
)

// EncodePNG writes the rendered image to w as an opaque PNG
func EncodePNG(w io.Writer, img *renderer.Image) error {
	if err := png.Encode(w, img.ToRGBA()); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// SavePNG writes the rendered image to a PNG file, creating or truncating it
func SavePNG(filename string, img *renderer.Image) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create image file %s: %w", filename, err)
	}

	if err := EncodePNG(file, img); err != nil {
		file.Close()
		return fmt.Errorf("%s: %w", filename, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close image file %s: %w", filename, err)
	}
	return nil
}
