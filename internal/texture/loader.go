// Package texture loads backdrop images and caches them by name.
package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
)

// extRank orders the supported formats; lower wins when two files share a
// stem.
var extRank = map[string]int{
	".png":  0,
	".tga":  1,
	".jpg":  2,
	".jpeg": 2,
}

// Supported reports whether path has a loadable image extension.
func Supported(path string) bool {
	_, ok := extRank[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Load reads a PNG, JPEG or TGA file and returns it as NRGBA.
func Load(path string) (*image.NRGBA, error) {
	if !Supported(path) {
		return nil, fmt.Errorf("texture: unknown extension: %s", filepath.Ext(path))
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("texture: read %s: %w", path, err)
	}

	// TGA has no magic number, so format sniffing is not reliable.
	img, err := decoderFor(path)(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}
	return toNRGBA(img), nil
}

func decoderFor(path string) func(io.Reader) (image.Image, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return png.Decode
	case ".tga":
		return tga.Decode
	default:
		return jpeg.Decode
	}
}

// toNRGBA converts any image to NRGBA format with its origin at (0, 0).
func toNRGBA(src image.Image) *image.NRGBA {
	b := src.Bounds()
	if n, ok := src.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	switch src.(type) {
	case *image.YCbCr, *image.Gray:
		// No alpha: draw and force it opaque.
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
		for i := 3; i < len(dst.Pix); i += 4 {
			dst.Pix[i] = 255
		}
	default:
		for y := 0; y < b.Dy(); y++ {
			for x := 0; x < b.Dx(); x++ {
				c := color.NRGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
				dst.SetNRGBA(x, y, c)
			}
		}
	}
	return dst
}
