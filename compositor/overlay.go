package compositor

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg" // overlays may be supplied as JPEG
	"image/png"
	"os"

	"github.com/nfnt/resize"
)

// LoadOverlay reads an overlay image from disk and normalizes it to RGBA
func LoadOverlay(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open overlay: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode overlay %s: %w", path, err)
	}

	return toRGBA(img), nil
}

// stretchOverlay resizes an overlay to exactly width x height, ignoring
// aspect ratio so the 1x1 default overlays become solid fills.
func stretchOverlay(img *image.RGBA, width, height int) *image.RGBA {
	if b := img.Bounds(); b.Dx() == width && b.Dy() == height {
		return img
	}
	return toRGBA(resize.Resize(uint(width), uint(height), img, resize.Bilinear))
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

// WriteSolidPNG writes a 1x1 PNG of the given color. The pipeline uses it
// to synthesize the default black and white overlays, which the compositor
// then stretches to frame size for a pure threshold effect.
func WriteSolidPNG(path string, c color.Color) error {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, c)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create overlay file: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to encode overlay: %w", err)
	}
	return f.Close()
}
