package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// bytesPerPixel is the R, G, B layout of Image.Pix
const bytesPerPixel = 3

// Image is an 8-bit RGB pixel buffer, row-major with row 0 at the top
type Image struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewImage creates a black image of the given size
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*bytesPerPixel),
	}
}

// Row returns the bytes of raster row y. Distinct rows never share memory,
// so workers that own different rows can write them concurrently.
func (img *Image) Row(y int) []uint8 {
	stride := img.Width * bytesPerPixel
	return img.Pix[y*stride : (y+1)*stride : (y+1)*stride]
}

// SetPixel quantizes a display color (already gamma corrected) into pixel (x, y)
func (img *Image) SetPixel(x, y int, c core.Vec3) {
	rgb := QuantizeColor(c)
	copy(img.Row(y)[x*bytesPerPixel:], rgb[:])
}

// At returns the stored bytes of pixel (x, y)
func (img *Image) At(x, y int) [3]uint8 {
	offset := (y*img.Width + x) * bytesPerPixel
	return [3]uint8{img.Pix[offset], img.Pix[offset+1], img.Pix[offset+2]}
}

// ToRGBA converts the buffer to an opaque image.RGBA for standard encoders
func (img *Image) ToRGBA() *image.RGBA {
	rgba := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			p := img.At(x, y)
			rgba.SetRGBA(x, y, color.RGBA{R: p[0], G: p[1], B: p[2], A: 255})
		}
	}
	return rgba
}

// QuantizeColor clamps each channel to [0,1] and rounds it to 8 bits
func QuantizeColor(c core.Vec3) [3]uint8 {
	c = c.Clamp(0.0, 1.0)
	return [3]uint8{toByte(c.X), toByte(c.Y), toByte(c.Z)}
}

// GammaCorrect applies the gamma 2 tonemap used for display
func GammaCorrect(c core.Vec3) core.Vec3 {
	return c.Sqrt()
}

func toByte(v float64) uint8 {
	return uint8(math.Round(255 * v))
}
