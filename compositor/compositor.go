// Package compositor replaces the black and white regions of extracted
// grayscale frames with pixels from two overlay images, fanning the work
// out over a fixed pool of workers.
package compositor

import (
	"fmt"
	"image"
	"os"
	"runtime"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"github.com/lepinkainen/maskblend/video"
)

// Result reports the outcome of a compositing run. Failures never abort
// the run; the failed frames stay grayscale on disk and are listed here.
type Result struct {
	Total     int
	Succeeded int
	Failures  []FrameFailure
}

// FrameFailure records a single frame that could not be composited
type FrameFailure struct {
	Path string
	Err  error
}

// ProcessFrames composites every frame in framesDir against the two overlay
// images. The overlays are loaded once, stretched to the dimensions of the
// first frame, and shared read-only across workers. A workers value <= 0
// means one worker per CPU. An empty frame directory is a no-op, not an
// error.
func ProcessFrames(framesDir, blackImagePath, whiteImagePath string, workers int) (*Result, error) {
	black, err := LoadOverlay(blackImagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load black overlay: %w", err)
	}
	white, err := LoadOverlay(whiteImagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load white overlay: %w", err)
	}

	frames, err := video.ListFrames(framesDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list frames: %w", err)
	}
	if len(frames) == 0 {
		fmt.Println("No frames found to process.")
		return &Result{}, nil
	}

	width, height, err := frameDimensions(frames[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read first frame: %w", err)
	}
	black = stretchOverlay(black, width, height)
	white = stretchOverlay(white, width, height)

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(frames) {
		workers = len(frames)
	}

	jobs := make(chan string, len(frames))
	results := make(chan frameResult, len(frames))

	var g errgroup.Group
	for i := 0; i < workers; i++ {
		w := &frameWorker{black: black, white: white}
		g.Go(func() error {
			w.run(jobs, results)
			return nil
		})
	}

	for _, frame := range frames {
		jobs <- frame
	}
	close(jobs)

	bar := progressbar.NewOptions(len(frames),
		progressbar.OptionSetDescription("Compositing frames"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
	)

	// Collect in completion order; every frame writes to its own file, so
	// ordering has no correctness impact.
	result := &Result{Total: len(frames)}
	for i := 0; i < len(frames); i++ {
		r := <-results
		_ = bar.Add(1)
		if r.err != nil {
			result.Failures = append(result.Failures, FrameFailure{Path: r.path, Err: r.err})
		} else {
			result.Succeeded++
		}
	}
	_ = g.Wait()
	fmt.Println()

	return result, nil
}

func frameDimensions(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer func() { _ = f.Close() }()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}
