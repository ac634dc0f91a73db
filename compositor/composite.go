package compositor

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
)

// frameWorker composites frames against a fixed pair of overlays. Each pool
// worker owns one; the overlay images are shared read-only across workers
// and never mutated after construction.
type frameWorker struct {
	black *image.RGBA
	white *image.RGBA
}

type frameResult struct {
	path string
	err  error
}

func (w *frameWorker) run(jobs <-chan string, results chan<- frameResult) {
	for path := range jobs {
		results <- frameResult{path: path, err: w.composite(path)}
	}
}

// composite opens a frame as a grayscale mask and overwrites it in place
// with the white overlay blended over the black overlay, weighted per pixel
// by the mask value. A failed frame is left untouched on disk.
func (w *frameWorker) composite(path string) error {
	mask, err := loadMask(path)
	if err != nil {
		return err
	}

	b := w.black.Bounds()
	out := image.NewRGBA(b)
	draw.Draw(out, b, w.black, b.Min, draw.Src)
	draw.DrawMask(out, b, w.white, b.Min, mask, mask.Bounds().Min, draw.Over)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to rewrite frame: %w", err)
	}
	if err := png.Encode(f, out); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to encode frame: %w", err)
	}
	return f.Close()
}

// loadMask decodes a frame and reduces it to the single-channel alpha mask
// DrawMask blends with.
func loadMask(path string) (*image.Alpha, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open frame: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode frame: %w", err)
	}

	gray, ok := img.(*image.Gray)
	if !ok {
		b := img.Bounds()
		gray = image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(gray, gray.Bounds(), img, b.Min, draw.Src)
	}

	// A Gray image carries no alpha channel, so reinterpret its pixel
	// values as alpha coverage for the blend.
	return &image.Alpha{Pix: gray.Pix, Stride: gray.Stride, Rect: gray.Rect}, nil
}
